package tabular

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// WriteSampleWorkbook generates the large-company test fixture used for
// manual runs of the tax calculator. Turnover above ₦100M puts it in the
// 30% CIT bracket.
func WriteSampleWorkbook(path string) error {
	rows := [][]any{
		{"Metric", "Amount_NGN"},
		{"Total Revenue", 145_000_000},
		{"Cost of Sales", 60_000_000},
		{"Operating Expenses", 35_000_000},
		{"Other Income (Non-taxable)", 2_000_000},
		{"Depreciation (Non-allowable)", 5_000_000},
		{"Tax", 4_500_000},
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetList()[0]
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
