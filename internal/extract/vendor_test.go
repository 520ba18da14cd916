package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractVendor(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "all caps header wins",
			text: "STORE NAME INC\n123 Main St\nTotal: $10",
			want: "STORE NAME INC",
		},
		{
			name: "skips receipt metadata lines",
			text: "Receipt #1042\nCorner Bakery\n12/01/2024",
			want: "Corner Bakery",
		},
		{
			name: "skips pure number lines",
			text: "48213\nGreen Grocer\nApples 3.00",
			want: "Green Grocer",
		},
		{
			name: "first qualifying mixed case line",
			text: "Joe's Diner\n99 High Street",
			want: "Joe's Diner",
		},
		{
			name: "falls back to first line when nothing qualifies",
			text: "12/12/2023 10:41\n404\n",
			want: "12/12/2023 10:41",
		},
		{
			name: "empty text",
			text: "",
			want: "Unknown Vendor",
		},
		{
			name: "whitespace only",
			text: "  \n \n",
			want: "Unknown Vendor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractVendor(tt.text))
		})
	}
}
