package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		item string
		want Category
	}{
		{"Grocery run", Food},
		{"Uber to airport", Transport},
		{"Dell Laptop", Asset},
		{"Mobile airtime top-up", Communication},
		{"Printer toner", Office},
		{"Certification exam", Education},
		{"Miscellaneous sundries", Other},
		{"", Other},
	}
	for _, tt := range tests {
		t.Run(tt.item, func(t *testing.T) {
			assert.Equal(t, tt.want, Categorize(tt.item))
		})
	}
}

func TestCategorizeFirstMatchWins(t *testing.T) {
	// "coffee" hits the food rule before "subscription" could hit education.
	assert.Equal(t, Food, Categorize("Coffee subscription"))
}

func TestCanonicalize(t *testing.T) {
	cat, ok := Canonicalize("  Transport ")
	assert.True(t, ok)
	assert.Equal(t, Transport, cat)

	cat, ok = Canonicalize("weird input")
	assert.False(t, ok)
	assert.Equal(t, Other, cat)

	cat, ok = Canonicalize("")
	assert.False(t, ok)
	assert.Equal(t, Other, cat)
}

func TestValid(t *testing.T) {
	for _, c := range allCategories {
		assert.True(t, Valid(c))
	}
	assert.False(t, Valid(Category("snacks")))
}
