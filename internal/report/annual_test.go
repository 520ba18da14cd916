package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidebooks/tidebooks/internal/entity"
)

func TestGenerateAnnual(t *testing.T) {
	entries := []entity.LedgerEntry{
		{
			Date: "03/10/2024",
			Items: []entity.LedgerItem{
				{Name: "Employee Salary Payment", Price: "$1000.00"},
				{Name: "Bank interest", Price: "$50.00"},
				{Name: "Online advertising", Price: "$200.00"},
			},
		},
		{
			Date: "09/01/2024",
			Items: []entity.LedgerItem{
				{Name: "R&D prototype parts", Price: "$300.00"},
				{Name: "Stationery", Price: "$20.00"},
			},
		},
		{
			// different financial year, must be excluded
			Date: "03/10/2023",
			Items: []entity.LedgerItem{
				{Name: "Employee Salary Payment", Price: "$9999.00"},
			},
		},
	}

	st := GenerateAnnual(entries, "Acme", 2024)

	opex := st.ProfitOrLoss.OperatingExpenses
	assert.Equal(t, 1000.00, opex.AdministrativeExpenses)
	assert.Equal(t, 200.00, opex.SellingExpenses)
	assert.Equal(t, 300.00, opex.ResearchDevelopment)
	assert.Equal(t, 20.00, opex.OtherOperatingExpenses)
	assert.Equal(t, 1520.00, opex.TotalOperatingExpenses)
	assert.Equal(t, 50.00, st.ProfitOrLoss.FinanceCosts)

	// Ratio model: revenue is 3x expenses, cost of sales 40% of revenue.
	assert.Equal(t, 4560.00, st.ProfitOrLoss.Revenue)
	assert.Equal(t, 1824.00, st.ProfitOrLoss.CostOfSales)
	assert.Equal(t, 2736.00, st.ProfitOrLoss.GrossProfit)
	assert.Equal(t, 1216.00, st.ProfitOrLoss.OperatingProfit)
	assert.Equal(t, 1166.00, st.ProfitOrLoss.ProfitBeforeTax)
	assert.InDelta(t, 233.20, st.ProfitOrLoss.TaxExpense, 0.001)
	assert.InDelta(t, 932.80, st.ProfitOrLoss.ProfitAfterTax, 0.001)

	// The balance sheet balances.
	fp := st.FinancialPosition
	assert.InDelta(t, fp.Assets.TotalAssets, fp.LiabilitiesAndEquity.TotalLiabilitiesAndEquity, 0.001)
	assert.InDelta(t,
		fp.LiabilitiesAndEquity.Current.TotalCurrentLiabilities+
			fp.LiabilitiesAndEquity.NonCurrent.TotalNonCurrentLiabilities+
			fp.LiabilitiesAndEquity.Equity.TotalEquity,
		fp.Assets.TotalAssets, 0.001)

	require.NotEmpty(t, st.Notes.AccountingPolicies)
	assert.Len(t, st.Notes.SignificantEstimates, 3)
}

func TestGenerateAnnualClassifierDiffersFromQuarterly(t *testing.T) {
	// "interest" is a finance cost on the annual statements but would be a
	// bank charge on the quarterly account.
	entries := []entity.LedgerEntry{
		{Date: "01/05/2024", Items: []entity.LedgerItem{{Name: "Loan interest", Price: "$80.00"}}},
	}
	st := GenerateAnnual(entries, "Acme", 2024)
	assert.Equal(t, 80.00, st.ProfitOrLoss.FinanceCosts)
	assert.Zero(t, st.ProfitOrLoss.OperatingExpenses.TotalOperatingExpenses)
}

func TestGenerateAnnualEmptyLedger(t *testing.T) {
	st := GenerateAnnual(nil, "Acme", 2024)
	assert.Zero(t, st.ProfitOrLoss.Revenue)
	assert.Zero(t, st.ProfitOrLoss.TaxExpense)
	assert.Zero(t, st.FinancialPosition.Assets.TotalAssets)
}

func TestQuarterlyXLSX(t *testing.T) {
	rep, err := GenerateQuarterly([]entity.LedgerEntry{
		{Date: "01/15/2024", Items: []entity.LedgerItem{{Name: "Salary run", Price: "$100.00"}}},
	}, "Acme", Q1, "2024")
	require.NoError(t, err)

	b, err := QuarterlyXLSX(rep)
	require.NoError(t, err)
	assert.NotEmpty(t, b)
}

func TestAnnualXLSX(t *testing.T) {
	st := GenerateAnnual([]entity.LedgerEntry{
		{Date: "01/15/2024", Items: []entity.LedgerItem{{Name: "Salary run", Price: "$100.00"}}},
	}, "Acme", 2024)

	b, err := AnnualXLSX(st)
	require.NoError(t, err)
	assert.NotEmpty(t, b)
}
