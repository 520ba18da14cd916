package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tidebooks/tidebooks/constants"
	"github.com/tidebooks/tidebooks/internal/entity"
)

func TestSummarize(t *testing.T) {
	entries := []entity.LedgerEntry{
		{
			Date:  "12/05/2024",
			Total: 30.00,
			Items: []entity.LedgerItem{
				{Name: "Lunch", Price: "$12.00", Category: constants.Food},
				{Name: "Taxi", Price: "$18.00", Category: constants.Transport},
			},
		},
		{
			Date:  "12/01/2024",
			Total: 7.50,
			Items: []entity.LedgerItem{
				{Name: "Coffee", Price: "$7.50", Category: constants.Food},
			},
		},
	}

	s := Summarize(entries)

	assert.Equal(t, 37.50, s.GrandTotal)
	assert.Equal(t, 2, s.EntryCount)
	assert.Equal(t, "12/05/2024", s.LastActivity)
	assert.Equal(t, 19.50, s.TotalByCategory[constants.Food])
	assert.Equal(t, 18.00, s.TotalByCategory[constants.Transport])
}

func TestSummarizeEdgeCases(t *testing.T) {
	t.Run("empty ledger", func(t *testing.T) {
		s := Summarize(nil)
		assert.Zero(t, s.GrandTotal)
		assert.Zero(t, s.EntryCount)
		assert.Empty(t, s.LastActivity)
		assert.Empty(t, s.TotalByCategory)
	})

	t.Run("uncategorized items fall into other", func(t *testing.T) {
		s := Summarize([]entity.LedgerEntry{{
			Total: 5.00,
			Items: []entity.LedgerItem{{Name: "Mystery", Price: "$5.00"}},
		}})
		assert.Equal(t, 5.00, s.TotalByCategory[constants.Other])
	})

	t.Run("unparseable prices are skipped", func(t *testing.T) {
		s := Summarize([]entity.LedgerEntry{{
			Total: 5.00,
			Items: []entity.LedgerItem{{Name: "Bad", Price: "n/a", Category: constants.Food}},
		}})
		assert.Zero(t, s.TotalByCategory[constants.Food])
		assert.Equal(t, 5.00, s.GrandTotal)
	})
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{in: "$12.34", want: 12.34},
		{in: "12.34", want: 12.34},
		{in: "$1,234.56", want: 1234.56},
		{in: " $5.00 ", want: 5.00},
		{in: "$ 5.00", want: 5.00},
		{in: "free", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParsePrice(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		assert.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
