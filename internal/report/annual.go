package report

import (
	"strings"

	"github.com/tidebooks/tidebooks/internal/entity"
	"github.com/tidebooks/tidebooks/internal/ledger"
)

// CurrentAssets breaks down the short-term asset side of the balance sheet.
type CurrentAssets struct {
	CashAndCashEquivalents float64
	TradeReceivables       float64
	Inventory              float64
	PrepaidExpenses        float64
	OtherCurrentAssets     float64
	TotalCurrentAssets     float64
}

type NonCurrentAssets struct {
	PropertyPlantEquipment float64
	IntangibleAssets       float64
	Investments            float64
	DeferredTaxAssets      float64
	OtherNonCurrentAssets  float64
	TotalNonCurrentAssets  float64
}

type Assets struct {
	Current     CurrentAssets
	NonCurrent  NonCurrentAssets
	TotalAssets float64
}

type CurrentLiabilities struct {
	TradePayables           float64
	ShortTermBorrowings     float64
	AccruedExpenses         float64
	CurrentTaxLiabilities   float64
	OtherCurrentLiabilities float64
	TotalCurrentLiabilities float64
}

type NonCurrentLiabilities struct {
	LongTermBorrowings         float64
	DeferredTaxLiabilities     float64
	Provisions                 float64
	OtherNonCurrentLiabilities float64
	TotalNonCurrentLiabilities float64
}

type Equity struct {
	ShareCapital     float64
	RetainedEarnings float64
	OtherReserves    float64
	TotalEquity      float64
}

type LiabilitiesAndEquity struct {
	Current                   CurrentLiabilities
	NonCurrent                NonCurrentLiabilities
	Equity                    Equity
	TotalLiabilitiesAndEquity float64
}

// FinancialPosition is the balance sheet statement.
type FinancialPosition struct {
	Assets               Assets
	LiabilitiesAndEquity LiabilitiesAndEquity
}

type OperatingExpenses struct {
	AdministrativeExpenses float64
	SellingExpenses        float64
	ResearchDevelopment    float64
	OtherOperatingExpenses float64
	TotalOperatingExpenses float64
}

// ProfitOrLoss is the income statement. Only the operating expense rows and
// finance costs are ledger-backed; the rest follows the ratio model below.
type ProfitOrLoss struct {
	Revenue           float64
	CostOfSales       float64
	GrossProfit       float64
	OperatingExpenses OperatingExpenses
	OperatingProfit   float64
	FinanceIncome     float64
	FinanceCosts      float64
	ProfitBeforeTax   float64
	TaxExpense        float64
	ProfitAfterTax    float64
	EarningsPerShare  float64
}

type OperatingActivities struct {
	ProfitBeforeTax        float64
	Depreciation           float64
	InterestExpense        float64
	TradeReceivablesChange float64
	InventoryChange        float64
	TradePayablesChange    float64
	NetCashFromOperating   float64
}

type InvestingActivities struct {
	PropertyPlantEquipment float64
	Investments            float64
	NetCashFromInvesting   float64
}

type FinancingActivities struct {
	Borrowings           float64
	ShareCapital         float64
	Dividends            float64
	NetCashFromFinancing float64
}

type CashFlows struct {
	Operating         OperatingActivities
	Investing         InvestingActivities
	Financing         FinancingActivities
	NetIncreaseInCash float64
	CashAtBeginning   float64
	CashAtEnd         float64
}

// Notes carries the fixed disclosure text blocks attached to the statements.
type Notes struct {
	AccountingPolicies   []string
	SignificantEstimates []string
	Commitments          []string
	Contingencies        []string
}

// AnnualStatements is the full year-end financial statements pack.
type AnnualStatements struct {
	CompanyName       string
	FinancialYear     int
	FinancialPosition FinancialPosition
	ProfitOrLoss      ProfitOrLoss
	CashFlows         CashFlows
	Notes             Notes
}

// annualExpenses accumulates the ledger-derived rows of the income statement.
type annualExpenses struct {
	administrative float64
	selling        float64
	researchDev    float64
	other          float64
	financeCosts   float64
}

// classifyAnnual is the income-statement classifier. It is intentionally a
// separate, coarser rule set than the quarterly one: "fee" is a finance cost
// here but a bank charge there.
func classifyAnnual(itemName string, price float64, acc *annualExpenses) {
	name := strings.ToLower(itemName)
	contains := func(subs ...string) bool {
		for _, sub := range subs {
			if strings.Contains(name, sub) {
				return true
			}
		}
		return false
	}

	switch {
	case contains("bank", "fee", "interest"):
		acc.financeCosts += price
	case contains("salary", "wage", "payroll"):
		acc.administrative += price
	case contains("marketing", "advertising", "promotion"):
		acc.selling += price
	case contains("research", "development", "r&d"):
		acc.researchDev += price
	default:
		acc.other += price
	}
}

// GenerateAnnual builds year-end financial statements from ledger entries.
// Expense rows come from the ledger; everything else is derived through a
// fixed ratio model (revenue assumed 3x operating expenses, 40% cost of
// sales, 20% tax) so the statements always balance.
func GenerateAnnual(entries []entity.LedgerEntry, companyName string, financialYear int) *AnnualStatements {
	var acc annualExpenses
	for _, entry := range entries {
		date, err := ParseEntryDate(entry.Date)
		if err != nil || date.Year() != financialYear {
			continue
		}
		for _, item := range entry.Items {
			price, err := ledger.ParsePrice(item.Price)
			if err != nil {
				continue
			}
			classifyAnnual(item.Name, price, &acc)
		}
	}

	totalOpex := acc.administrative + acc.selling + acc.researchDev + acc.other

	revenue := totalOpex * 3
	costOfSales := revenue * 0.4
	grossProfit := revenue - costOfSales
	operatingProfit := grossProfit - totalOpex
	profitBeforeTax := operatingProfit - acc.financeCosts
	taxExpense := profitBeforeTax * 0.2
	if taxExpense < 0 {
		taxExpense = 0
	}
	profitAfterTax := profitBeforeTax - taxExpense

	totalAssets := revenue * 0.8
	currentAssets := totalAssets * 0.6
	nonCurrentAssets := totalAssets * 0.4
	totalLiabilities := totalAssets * 0.4
	currentLiabilities := totalLiabilities * 0.7
	nonCurrentLiabilities := totalLiabilities * 0.3
	totalEquity := totalAssets - totalLiabilities

	return &AnnualStatements{
		CompanyName:   companyName,
		FinancialYear: financialYear,
		FinancialPosition: FinancialPosition{
			Assets: Assets{
				Current: CurrentAssets{
					CashAndCashEquivalents: currentAssets * 0.3,
					TradeReceivables:       currentAssets * 0.4,
					Inventory:              currentAssets * 0.2,
					PrepaidExpenses:        currentAssets * 0.05,
					OtherCurrentAssets:     currentAssets * 0.05,
					TotalCurrentAssets:     currentAssets,
				},
				NonCurrent: NonCurrentAssets{
					PropertyPlantEquipment: nonCurrentAssets * 0.7,
					IntangibleAssets:       nonCurrentAssets * 0.1,
					Investments:            nonCurrentAssets * 0.1,
					DeferredTaxAssets:      nonCurrentAssets * 0.05,
					OtherNonCurrentAssets:  nonCurrentAssets * 0.05,
					TotalNonCurrentAssets:  nonCurrentAssets,
				},
				TotalAssets: totalAssets,
			},
			LiabilitiesAndEquity: LiabilitiesAndEquity{
				Current: CurrentLiabilities{
					TradePayables:           currentLiabilities * 0.5,
					ShortTermBorrowings:     currentLiabilities * 0.2,
					AccruedExpenses:         currentLiabilities * 0.2,
					CurrentTaxLiabilities:   currentLiabilities * 0.05,
					OtherCurrentLiabilities: currentLiabilities * 0.05,
					TotalCurrentLiabilities: currentLiabilities,
				},
				NonCurrent: NonCurrentLiabilities{
					LongTermBorrowings:         nonCurrentLiabilities * 0.8,
					DeferredTaxLiabilities:     nonCurrentLiabilities * 0.1,
					Provisions:                 nonCurrentLiabilities * 0.05,
					OtherNonCurrentLiabilities: nonCurrentLiabilities * 0.05,
					TotalNonCurrentLiabilities: nonCurrentLiabilities,
				},
				Equity: Equity{
					ShareCapital:     totalEquity * 0.3,
					RetainedEarnings: totalEquity * 0.6,
					OtherReserves:    totalEquity * 0.1,
					TotalEquity:      totalEquity,
				},
				TotalLiabilitiesAndEquity: totalAssets,
			},
		},
		ProfitOrLoss: ProfitOrLoss{
			Revenue:     revenue,
			CostOfSales: costOfSales,
			GrossProfit: grossProfit,
			OperatingExpenses: OperatingExpenses{
				AdministrativeExpenses: acc.administrative,
				SellingExpenses:        acc.selling,
				ResearchDevelopment:    acc.researchDev,
				OtherOperatingExpenses: acc.other,
				TotalOperatingExpenses: totalOpex,
			},
			OperatingProfit:  operatingProfit,
			FinanceIncome:    0,
			FinanceCosts:     acc.financeCosts,
			ProfitBeforeTax:  profitBeforeTax,
			TaxExpense:       taxExpense,
			ProfitAfterTax:   profitAfterTax,
			EarningsPerShare: profitAfterTax / 1000,
		},
		CashFlows: CashFlows{
			Operating: OperatingActivities{
				ProfitBeforeTax:        profitBeforeTax,
				Depreciation:           nonCurrentAssets * 0.1,
				InterestExpense:        acc.financeCosts,
				TradeReceivablesChange: -revenue * 0.05,
				InventoryChange:        -costOfSales * 0.1,
				TradePayablesChange:    totalOpex * 0.1,
				NetCashFromOperating:   profitBeforeTax + nonCurrentAssets*0.1 + acc.financeCosts,
			},
			Investing: InvestingActivities{
				PropertyPlantEquipment: -nonCurrentAssets * 0.2,
				Investments:            0,
				NetCashFromInvesting:   -nonCurrentAssets * 0.2,
			},
			Financing: FinancingActivities{
				Borrowings:           totalLiabilities * 0.1,
				ShareCapital:         0,
				Dividends:            -profitAfterTax * 0.3,
				NetCashFromFinancing: totalLiabilities*0.1 - profitAfterTax*0.3,
			},
			NetIncreaseInCash: 0,
			CashAtBeginning:   currentAssets * 0.2,
			CashAtEnd:         currentAssets * 0.3,
		},
		Notes: Notes{
			AccountingPolicies: []string{
				"The financial statements have been prepared in accordance with International Financial Reporting Standards (IFRS)",
				"Revenue is recognized when control of goods or services is transferred to the customer",
				"Property, plant and equipment is measured at cost less accumulated depreciation and impairment",
				"Financial instruments are initially measured at fair value",
			},
			SignificantEstimates: []string{
				"Useful lives of property, plant and equipment",
				"Impairment of non-financial assets",
				"Provisions and contingent liabilities",
			},
			Commitments: []string{
				"Operating lease commitments",
				"Capital expenditure commitments",
			},
			Contingencies: []string{
				"Pending legal proceedings",
				"Warranty provisions",
			},
		},
	}
}
