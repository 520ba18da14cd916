package extract

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractNumbers(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []float64
	}{
		{
			name: "currency prefixed with thousands separator",
			text: "Widgets $1,234.56\nTax $99.10",
			want: []float64{1234.56, 99.10},
		},
		{
			name: "bare decimal amounts",
			text: "Coffee 4.50\nMuffin 3.25",
			want: []float64{4.50, 3.25},
		},
		{
			name: "keyword prefixed amount",
			text: "balance due: 88.20",
			want: []float64{88.20},
		},
		{
			name: "duplicates collapse to one value",
			text: "Item 12.00\nItem again 12.00\n$12.00",
			want: []float64{12.00},
		},
		{
			name: "no amounts",
			text: "just words, no money here",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractNumbers(tt.text)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractNumbersOrderingInvariant(t *testing.T) {
	// For all inputs the result must be strictly descending, duplicate-free,
	// and positive.
	texts := []string{
		"RECEIPT\n$5.00\n$125.99\n3.50\nTotal: 134.49",
		"a 0.00 b -4.20 c $9.99",
		"1,000.00 and 999.99 and 1,000.00",
		"",
	}
	for _, text := range texts {
		got := ExtractNumbers(text)
		require.True(t, sort.SliceIsSorted(got, func(i, j int) bool { return got[i] > got[j] }), "not descending: %v", got)
		seen := map[float64]bool{}
		for _, v := range got {
			assert.Greater(t, v, 0.0)
			assert.False(t, seen[v], "duplicate value %v", v)
			seen[v] = true
		}
	}
}

func TestExtractNumbersRejectsZeroAndNegative(t *testing.T) {
	got := ExtractNumbers("discount 0.00 applied")
	assert.Empty(t, got)
}
