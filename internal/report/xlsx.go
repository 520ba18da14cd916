package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// QuarterlyXLSX renders a quarterly report as an XLSX workbook: one column
// per month plus a totals column, one row per line of the management account.
func QuarterlyXLSX(rep *QuarterlyReport) ([]byte, error) {
	f := excelize.NewFile()
	sheet := string(rep.Quarter)
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	_ = f.DeleteSheet("Sheet1")

	write := func(col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}

	write(1, 1, rep.CompanyName)
	write(1, 2, fmt.Sprintf("Management Accounts %s %s", rep.Quarter, rep.FinancialYear))
	write(1, 3, "Quarter ending "+rep.QuarterEndDate)

	headerRow := 5
	write(1, headerRow, "")
	for i, m := range rep.Months {
		write(i+2, headerRow, m.String())
	}
	write(5, headerRow, "Total")

	rows := []struct {
		label string
		pick  func(c *MonthColumn) float64
	}{
		{"Opening Balance", func(c *MonthColumn) float64 { return c.OpeningBalance }},
		{"Sales Revenue", func(c *MonthColumn) float64 { return c.SalesRevenue }},
		{"Cost of Sales", func(c *MonthColumn) float64 { return c.CostOfSales }},
		{"Gross Profit", func(c *MonthColumn) float64 { return c.GrossProfit }},
		{"Funding Income", func(c *MonthColumn) float64 { return c.FundingIncome }},
		{"Service Provision Income", func(c *MonthColumn) float64 { return c.ServiceProvisionIncome }},
		{"Total Operating Income", func(c *MonthColumn) float64 { return c.TotalOperatingIncome }},
		{"Bank Charges", func(c *MonthColumn) float64 { return c.Expenses.BankCharges }},
		{"Web Maintenance", func(c *MonthColumn) float64 { return c.Expenses.WebMaintenance }},
		{"Telephone & Wifi", func(c *MonthColumn) float64 { return c.Expenses.TelephoneWifi }},
		{"Salaries Expense", func(c *MonthColumn) float64 { return c.Expenses.SalariesExpense }},
		{"Subscription Expense", func(c *MonthColumn) float64 { return c.Expenses.SubscriptionExpense }},
		{"Transport Expense", func(c *MonthColumn) float64 { return c.Expenses.TransportExpense }},
		{"Conference & Catering", func(c *MonthColumn) float64 { return c.Expenses.ConferenceAndCatering }},
		{"Accounting Fees", func(c *MonthColumn) float64 { return c.Expenses.AccountingFees }},
		{"Marketing Expenses", func(c *MonthColumn) float64 { return c.Expenses.MarketingExpenses }},
		{"Direct Costs", func(c *MonthColumn) float64 { return c.Expenses.DirectCosts }},
		{"Total Expenses", func(c *MonthColumn) float64 { return c.Expenses.Total() }},
	}

	for i, r := range rows {
		row := headerRow + 1 + i
		write(1, row, r.label)
		for j, m := range rep.Months {
			write(j+2, row, r.pick(rep.MonthlyData[m]))
		}
		write(5, row, r.pick(&rep.Totals))
	}

	_ = f.SetColWidth(sheet, "A", "A", 28)
	_ = f.SetColWidth(sheet, "B", "E", 14)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

// AnnualXLSX renders the annual statements pack across three sheets, one per
// statement, with the notes appended to the cash flow sheet.
func AnnualXLSX(st *AnnualStatements) ([]byte, error) {
	f := excelize.NewFile()

	write := func(sheet string, col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}
	newSheet := func(name string) error {
		if index, _ := f.GetSheetIndex(name); index == -1 {
			if _, err := f.NewSheet(name); err != nil {
				return err
			}
		}
		return nil
	}

	const (
		position = "Financial Position"
		pnl      = "Profit or Loss"
		cash     = "Cash Flows"
	)
	for _, name := range []string{position, pnl, cash} {
		if err := newSheet(name); err != nil {
			return nil, err
		}
	}
	_ = f.DeleteSheet("Sheet1")
	activeIndex, _ := f.GetSheetIndex(position)
	f.SetActiveSheet(activeIndex)

	writeLines := func(sheet string, lines []struct {
		label string
		value any
	}) {
		write(sheet, 1, 1, st.CompanyName)
		write(sheet, 1, 2, fmt.Sprintf("Financial Year %d", st.FinancialYear))
		row := 4
		for _, line := range lines {
			write(sheet, 1, row, line.label)
			if line.value != nil {
				write(sheet, 2, row, line.value)
			}
			row++
		}
		_ = f.SetColWidth(sheet, "A", "A", 36)
		_ = f.SetColWidth(sheet, "B", "B", 16)
	}

	fp := st.FinancialPosition
	writeLines(position, []struct {
		label string
		value any
	}{
		{"ASSETS", nil},
		{"Cash and cash equivalents", fp.Assets.Current.CashAndCashEquivalents},
		{"Trade receivables", fp.Assets.Current.TradeReceivables},
		{"Inventory", fp.Assets.Current.Inventory},
		{"Prepaid expenses", fp.Assets.Current.PrepaidExpenses},
		{"Other current assets", fp.Assets.Current.OtherCurrentAssets},
		{"Total current assets", fp.Assets.Current.TotalCurrentAssets},
		{"Property, plant and equipment", fp.Assets.NonCurrent.PropertyPlantEquipment},
		{"Intangible assets", fp.Assets.NonCurrent.IntangibleAssets},
		{"Investments", fp.Assets.NonCurrent.Investments},
		{"Deferred tax assets", fp.Assets.NonCurrent.DeferredTaxAssets},
		{"Other non-current assets", fp.Assets.NonCurrent.OtherNonCurrentAssets},
		{"Total non-current assets", fp.Assets.NonCurrent.TotalNonCurrentAssets},
		{"TOTAL ASSETS", fp.Assets.TotalAssets},
		{"", nil},
		{"LIABILITIES AND EQUITY", nil},
		{"Trade payables", fp.LiabilitiesAndEquity.Current.TradePayables},
		{"Short-term borrowings", fp.LiabilitiesAndEquity.Current.ShortTermBorrowings},
		{"Accrued expenses", fp.LiabilitiesAndEquity.Current.AccruedExpenses},
		{"Current tax liabilities", fp.LiabilitiesAndEquity.Current.CurrentTaxLiabilities},
		{"Other current liabilities", fp.LiabilitiesAndEquity.Current.OtherCurrentLiabilities},
		{"Total current liabilities", fp.LiabilitiesAndEquity.Current.TotalCurrentLiabilities},
		{"Long-term borrowings", fp.LiabilitiesAndEquity.NonCurrent.LongTermBorrowings},
		{"Deferred tax liabilities", fp.LiabilitiesAndEquity.NonCurrent.DeferredTaxLiabilities},
		{"Provisions", fp.LiabilitiesAndEquity.NonCurrent.Provisions},
		{"Other non-current liabilities", fp.LiabilitiesAndEquity.NonCurrent.OtherNonCurrentLiabilities},
		{"Total non-current liabilities", fp.LiabilitiesAndEquity.NonCurrent.TotalNonCurrentLiabilities},
		{"Share capital", fp.LiabilitiesAndEquity.Equity.ShareCapital},
		{"Retained earnings", fp.LiabilitiesAndEquity.Equity.RetainedEarnings},
		{"Other reserves", fp.LiabilitiesAndEquity.Equity.OtherReserves},
		{"Total equity", fp.LiabilitiesAndEquity.Equity.TotalEquity},
		{"TOTAL LIABILITIES AND EQUITY", fp.LiabilitiesAndEquity.TotalLiabilitiesAndEquity},
	})

	pl := st.ProfitOrLoss
	writeLines(pnl, []struct {
		label string
		value any
	}{
		{"Revenue", pl.Revenue},
		{"Cost of sales", pl.CostOfSales},
		{"Gross profit", pl.GrossProfit},
		{"Administrative expenses", pl.OperatingExpenses.AdministrativeExpenses},
		{"Selling expenses", pl.OperatingExpenses.SellingExpenses},
		{"Research and development", pl.OperatingExpenses.ResearchDevelopment},
		{"Other operating expenses", pl.OperatingExpenses.OtherOperatingExpenses},
		{"Total operating expenses", pl.OperatingExpenses.TotalOperatingExpenses},
		{"Operating profit", pl.OperatingProfit},
		{"Finance income", pl.FinanceIncome},
		{"Finance costs", pl.FinanceCosts},
		{"Profit before tax", pl.ProfitBeforeTax},
		{"Tax expense", pl.TaxExpense},
		{"Profit after tax", pl.ProfitAfterTax},
		{"Earnings per share", pl.EarningsPerShare},
	})

	cf := st.CashFlows
	cashLines := []struct {
		label string
		value any
	}{
		{"OPERATING ACTIVITIES", nil},
		{"Profit before tax", cf.Operating.ProfitBeforeTax},
		{"Depreciation", cf.Operating.Depreciation},
		{"Interest expense", cf.Operating.InterestExpense},
		{"Change in trade receivables", cf.Operating.TradeReceivablesChange},
		{"Change in inventory", cf.Operating.InventoryChange},
		{"Change in trade payables", cf.Operating.TradePayablesChange},
		{"Net cash from operating activities", cf.Operating.NetCashFromOperating},
		{"", nil},
		{"INVESTING ACTIVITIES", nil},
		{"Property, plant and equipment", cf.Investing.PropertyPlantEquipment},
		{"Investments", cf.Investing.Investments},
		{"Net cash from investing activities", cf.Investing.NetCashFromInvesting},
		{"", nil},
		{"FINANCING ACTIVITIES", nil},
		{"Borrowings", cf.Financing.Borrowings},
		{"Share capital", cf.Financing.ShareCapital},
		{"Dividends", cf.Financing.Dividends},
		{"Net cash from financing activities", cf.Financing.NetCashFromFinancing},
		{"", nil},
		{"Net increase in cash", cf.NetIncreaseInCash},
		{"Cash at beginning of year", cf.CashAtBeginning},
		{"Cash at end of year", cf.CashAtEnd},
		{"", nil},
		{"NOTES", nil},
	}
	for _, note := range st.Notes.AccountingPolicies {
		cashLines = append(cashLines, struct {
			label string
			value any
		}{note, nil})
	}
	for _, note := range st.Notes.SignificantEstimates {
		cashLines = append(cashLines, struct {
			label string
			value any
		}{note, nil})
	}
	writeLines(cash, cashLines)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}
