package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidebooks/tidebooks/internal/entity"
	"github.com/tidebooks/tidebooks/internal/extract"
)

func TestClassifyExpense(t *testing.T) {
	tests := []struct {
		name string
		item string
		pick func(b ExpenseBreakdown) float64
	}{
		{name: "salaries", item: "Employee Salary Payment", pick: func(b ExpenseBreakdown) float64 { return b.SalariesExpense }},
		{name: "bank charges", item: "Monthly bank charge", pick: func(b ExpenseBreakdown) float64 { return b.BankCharges }},
		{name: "web maintenance", item: "Website hosting renewal", pick: func(b ExpenseBreakdown) float64 { return b.WebMaintenance }},
		{name: "telephone", item: "Office wifi bill", pick: func(b ExpenseBreakdown) float64 { return b.TelephoneWifi }},
		{name: "subscription", item: "Software license", pick: func(b ExpenseBreakdown) float64 { return b.SubscriptionExpense }},
		{name: "transport", item: "Uber to client site", pick: func(b ExpenseBreakdown) float64 { return b.TransportExpense }},
		{name: "conference", item: "Catering for team event", pick: func(b ExpenseBreakdown) float64 { return b.ConferenceAndCatering }},
		{name: "accounting", item: "Quarterly bookkeeping", pick: func(b ExpenseBreakdown) float64 { return b.AccountingFees }},
		{name: "marketing", item: "Online advertising", pick: func(b ExpenseBreakdown) float64 { return b.MarketingExpenses }},
		{name: "direct costs fallback", item: "Raw materials", pick: func(b ExpenseBreakdown) float64 { return b.DirectCosts }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := classifyExpense(tt.item, 10)
			assert.Equal(t, 10.0, tt.pick(b))
			assert.Equal(t, 10.0, b.Total(), "amount lands in exactly one row")
		})
	}
}

func TestClassifyExpenseFirstRuleWins(t *testing.T) {
	// "fee" precedes "accounting" in the rule order, so accounting fees
	// described with the word "fee" go to bank charges.
	b := classifyExpense("Accounting fee", 25)
	assert.Equal(t, 25.0, b.BankCharges)
	assert.Zero(t, b.AccountingFees)
}

func TestGenerateQuarterly(t *testing.T) {
	entries := []entity.LedgerEntry{
		{
			Date: "01/15/2024",
			Items: []entity.LedgerItem{
				{Name: "Employee Salary Payment", Price: "$3000.00"},
				{Name: "Office wifi", Price: "$45.00"},
			},
		},
		{
			Date: "02/10/2024",
			Items: []entity.LedgerItem{
				{Name: "Taxi fare", Price: "$18.50"},
			},
		},
		{
			// outside Q1, must be ignored
			Date: "05/01/2024",
			Items: []entity.LedgerItem{
				{Name: "Employee Salary Payment", Price: "$3000.00"},
			},
		},
	}

	rep, err := GenerateQuarterly(entries, "Acme", Q1, "2024")
	require.NoError(t, err)

	assert.Equal(t, [3]time.Month{time.January, time.February, time.March}, rep.Months)
	assert.Equal(t, 3000.00, rep.MonthlyData[time.January].Expenses.SalariesExpense)
	assert.Equal(t, 45.00, rep.MonthlyData[time.January].Expenses.TelephoneWifi)
	assert.Equal(t, 18.50, rep.MonthlyData[time.February].Expenses.TransportExpense)
	assert.Zero(t, rep.MonthlyData[time.March].Expenses.Total())

	assert.Equal(t, 3000.00, rep.Totals.Expenses.SalariesExpense)
	assert.Equal(t, 3063.50, rep.Totals.Expenses.Total())
}

func TestGenerateQuarterlySkipsUnparseable(t *testing.T) {
	entries := []entity.LedgerEntry{
		{Date: "not a date", Items: []entity.LedgerItem{{Name: "Salary", Price: "$1.00"}}},
		{Date: "01/15/2024", Items: []entity.LedgerItem{{Name: "Salary", Price: "n/a"}}},
	}
	rep, err := GenerateQuarterly(entries, "Acme", Q1, "2024")
	require.NoError(t, err)
	assert.Zero(t, rep.Totals.Expenses.Total())
}

func TestParseQuarter(t *testing.T) {
	q, err := ParseQuarter(" q3 ")
	require.NoError(t, err)
	assert.Equal(t, Q3, q)

	_, err = ParseQuarter("Q5")
	assert.Error(t, err)
}

func TestParseEntryDate(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"12/01/2024", time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)},
		{"2024-12-01", time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)},
		{"December 1, 2024", time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)},
		{"1 December 2024", time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		got, err := ParseEntryDate(tt.in)
		require.NoError(t, err, tt.in)
		assert.True(t, got.Equal(tt.want), tt.in)
	}

	_, err := ParseEntryDate("yesterday")
	assert.Error(t, err)
}

func TestParseEntryDateAcceptsExtractedDates(t *testing.T) {
	// one receipt snippet per format the date extractor emits
	texts := []string{
		"RECEIPT\n12/25/2024\nTotal: $10.00",
		"RECEIPT\n12/25/24\nTotal: $10.00",
		"RECEIPT\n2024-01-15\nTotal: $10.00",
		"RECEIPT\n2024/01/15\nTotal: $10.00",
		"RECEIPT\n2024.01.15\nTotal: $10.00",
		"RECEIPT\n01-15-2024\nTotal: $10.00",
		"RECEIPT\n01-15-24\nTotal: $10.00",
		"RECEIPT\n01.15.2024\nTotal: $10.00",
		"RECEIPT\nJan 15, 2024\nTotal: $10.00",
		"RECEIPT\nJan 15 2024\nTotal: $10.00",
		"RECEIPT\n15 Jan 2024\nTotal: $10.00",
		"RECEIPT\nJanuary 15, 2024\nTotal: $10.00",
		"RECEIPT\n15 January 2024\nTotal: $10.00",
	}
	for _, text := range texts {
		raw, ok := extract.ExtractDate(text)
		require.True(t, ok, text)
		got, err := ParseEntryDate(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, 2024, got.Year(), raw)
	}
}
