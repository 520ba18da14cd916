package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractDate(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{"slash separated", "CORNER SHOP\n12/31/2024\nTotal 9.99", "12/31/2024", true},
		{"dash separated", "paid on 3-4-23", "3-4-23", true},
		{"dot separated", "Datum 24.12.2024", "24.12.2024", true},
		{"month name", "Issued Jan 5, 2024", "Jan 5, 2024", true},
		{"full month name", "Issued January 5 2024", "January 5 2024", true},
		{"day first month name", "5 Mar 2024", "5 Mar 2024", true},
		{"no date", "nothing to see here", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractDate(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractDateReturnsFirstMatchVerbatim(t *testing.T) {
	got, ok := ExtractDate("from 01/02/2023 to 04/05/2023")
	assert.True(t, ok)
	assert.Equal(t, "01/02/2023", got)
}
