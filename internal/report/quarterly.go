package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/tidebooks/tidebooks/internal/entity"
	"github.com/tidebooks/tidebooks/internal/ledger"
)

// Quarter identifies one of the four financial quarters.
type Quarter string

const (
	Q1 Quarter = "Q1"
	Q2 Quarter = "Q2"
	Q3 Quarter = "Q3"
	Q4 Quarter = "Q4"
)

var quarterMonths = map[Quarter][3]time.Month{
	Q1: {time.January, time.February, time.March},
	Q2: {time.April, time.May, time.June},
	Q3: {time.July, time.August, time.September},
	Q4: {time.October, time.November, time.December},
}

// ParseQuarter canonicalizes user input like "q2" into a Quarter.
func ParseQuarter(s string) (Quarter, error) {
	q := Quarter(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := quarterMonths[q]; !ok {
		return "", fmt.Errorf("unknown quarter %q: want Q1..Q4", s)
	}
	return q, nil
}

// ExpenseBreakdown holds the fixed expense rows of the management-account
// layout. Items that match no named row accumulate under DirectCosts.
type ExpenseBreakdown struct {
	BankCharges           float64
	WebMaintenance        float64
	TelephoneWifi         float64
	SalariesExpense       float64
	SubscriptionExpense   float64
	TransportExpense      float64
	ConferenceAndCatering float64
	AccountingFees        float64
	MarketingExpenses     float64
	DirectCosts           float64
}

func (b *ExpenseBreakdown) add(o ExpenseBreakdown) {
	b.BankCharges += o.BankCharges
	b.WebMaintenance += o.WebMaintenance
	b.TelephoneWifi += o.TelephoneWifi
	b.SalariesExpense += o.SalariesExpense
	b.TransportExpense += o.TransportExpense
	b.SubscriptionExpense += o.SubscriptionExpense
	b.ConferenceAndCatering += o.ConferenceAndCatering
	b.AccountingFees += o.AccountingFees
	b.MarketingExpenses += o.MarketingExpenses
	b.DirectCosts += o.DirectCosts
}

// Total sums every expense row.
func (b ExpenseBreakdown) Total() float64 {
	return b.BankCharges + b.WebMaintenance + b.TelephoneWifi +
		b.SalariesExpense + b.SubscriptionExpense + b.TransportExpense +
		b.ConferenceAndCatering + b.AccountingFees + b.MarketingExpenses +
		b.DirectCosts
}

// MonthColumn is one month of the quarterly report. Income rows stay zero
// until revenue sourcing exists; only expenses are ledger-backed today.
type MonthColumn struct {
	OpeningBalance         float64
	SalesRevenue           float64
	CostOfSales            float64
	GrossProfit            float64
	FundingIncome          float64
	ServiceProvisionIncome float64
	TotalOperatingIncome   float64
	Expenses               ExpenseBreakdown
}

// QuarterlyReport is the three-month management account for one company.
type QuarterlyReport struct {
	CompanyName    string
	FinancialYear  string
	Quarter        Quarter
	QuarterEndDate string
	Months         [3]time.Month
	MonthlyData    map[time.Month]*MonthColumn
	Totals         MonthColumn
}

// classifyExpense routes an item into an expense row by keyword. Rules are
// ordered and the first hit wins; anything unmatched lands in DirectCosts.
func classifyExpense(itemName string, price float64) ExpenseBreakdown {
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
	case contains("bank", "fee", "charge"):
		return ExpenseBreakdown{BankCharges: price}
	case contains("web", "website", "hosting"):
		return ExpenseBreakdown{WebMaintenance: price}
	case contains("phone", "wifi", "internet", "mobile"):
		return ExpenseBreakdown{TelephoneWifi: price}
	case contains("salary", "wage", "payroll"):
		return ExpenseBreakdown{SalariesExpense: price}
	case contains("subscription", "software", "license"):
		return ExpenseBreakdown{SubscriptionExpense: price}
	case contains("transport", "fuel", "travel", "taxi", "uber"):
		return ExpenseBreakdown{TransportExpense: price}
	case contains("conference", "catering", "meeting", "event"):
		return ExpenseBreakdown{ConferenceAndCatering: price}
	case contains("accounting", "bookkeeping", "audit"):
		return ExpenseBreakdown{AccountingFees: price}
	case contains("marketing", "advertising", "promotion"):
		return ExpenseBreakdown{MarketingExpenses: price}
	default:
		return ExpenseBreakdown{DirectCosts: price}
	}
}

// GenerateQuarterly builds the quarterly management account from ledger
// entries. Entries outside the quarter's months, and items whose dates or
// prices cannot be parsed, are skipped rather than failing the whole report.
func GenerateQuarterly(entries []entity.LedgerEntry, companyName string, quarter Quarter, financialYear string) (*QuarterlyReport, error) {
	months, ok := quarterMonths[quarter]
	if !ok {
		return nil, fmt.Errorf("unknown quarter %q", quarter)
	}

	rep := &QuarterlyReport{
		CompanyName:    companyName,
		FinancialYear:  financialYear,
		Quarter:        quarter,
		QuarterEndDate: fmt.Sprintf("%s %d", months[2], time.Now().Year()),
		Months:         months,
		MonthlyData:    make(map[time.Month]*MonthColumn, 3),
	}
	for _, m := range months {
		rep.MonthlyData[m] = &MonthColumn{}
	}

	for _, entry := range entries {
		date, err := ParseEntryDate(entry.Date)
		if err != nil {
			continue
		}
		col, ok := rep.MonthlyData[date.Month()]
		if !ok {
			continue
		}
		for _, item := range entry.Items {
			price, err := ledger.ParsePrice(item.Price)
			if err != nil {
				continue
			}
			col.Expenses.add(classifyExpense(item.Name, price))
		}
	}

	for _, m := range months {
		col := rep.MonthlyData[m]
		rep.Totals.OpeningBalance += col.OpeningBalance
		rep.Totals.SalesRevenue += col.SalesRevenue
		rep.Totals.CostOfSales += col.CostOfSales
		rep.Totals.GrossProfit += col.GrossProfit
		rep.Totals.FundingIncome += col.FundingIncome
		rep.Totals.ServiceProvisionIncome += col.ServiceProvisionIncome
		rep.Totals.TotalOperatingIncome += col.TotalOperatingIncome
		rep.Totals.Expenses.add(col.Expenses)
	}

	return rep, nil
}

// entryDateLayouts covers every format the date extractor can emit,
// including two-digit years and abbreviated month names.
var entryDateLayouts = []string{
	"1/2/2006",
	"1/2/06",
	"2006/1/2",
	"2006-1-2",
	"1-2-2006",
	"1-2-06",
	"2006.1.2",
	"1.2.2006",
	"1.2.06",
	"January 2, 2006",
	"January 2 2006",
	"2 January 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"2 Jan 2006",
	"Jan 2, 06",
	"Jan 2 06",
	"2 Jan 06",
}

// ParseEntryDate reads a ledger entry date in any of the formats the date
// extractor emits.
func ParseEntryDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range entryDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
