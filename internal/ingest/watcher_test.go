package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStartWatcherRequiresRoots(t *testing.T) {
	_, _, err := StartWatcher(context.Background(), WatchConfig{}, nil)
	require.Error(t, err)
}

func TestStartWatcherEmitsDebouncedCreates(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	evCh, _, err := StartWatcher(ctx, WatchConfig{
		Roots:    []string{dir},
		Debounce: 20 * time.Millisecond,
	}, nil)
	require.NoError(t, err)

	// a burst of creates overlapping the debounce window must not lose
	// or corrupt pending paths
	const n = 100
	want := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		path := filepath.Join(dir, fmt.Sprintf("receipt-%03d.jpg", i))
		require.NoError(t, os.WriteFile(path, []byte("jpeg bytes"), 0o644))
		want[path] = struct{}{}
	}

	seen := make(map[string]struct{}, n)
	deadline := time.After(5 * time.Second)
	for len(seen) < n {
		select {
		case p := <-evCh:
			if _, ok := want[p]; ok {
				seen[p] = struct{}{}
			}
		case <-deadline:
			t.Fatalf("saw %d of %d watched files", len(seen), n)
		}
	}
}

func TestStartWatcherInitialScan(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "existing.png")
	require.NoError(t, os.WriteFile(existing, []byte("png bytes"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	evCh, _, err := StartWatcher(ctx, WatchConfig{
		Roots:       []string{dir},
		InitialScan: true,
	}, nil)
	require.NoError(t, err)

	select {
	case p := <-evCh:
		require.Equal(t, existing, p)
	case <-time.After(2 * time.Second):
		t.Fatal("initial scan emitted nothing")
	}
}
