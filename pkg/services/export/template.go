package export

import (
	"github.com/xuri/excelize/v2"
)

// buildStarterTemplate writes a blank, fully styled template containing every
// placeholder token and both marker rows. Users download it, restyle or
// rearrange it, and upload it back for template-fill exports.
func buildStarterTemplate() (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}
	styles, err := newStylePalette(f)
	if err != nil {
		return nil, err
	}

	b := &builder{f: f, styles: styles, row: 1}
	if err := b.writeMergedLine(TokenCompanyName, styles.companyTitle); err != nil {
		return nil, err
	}
	if err := b.writeMergedLine(TokenCustomHeader, styles.customHeader); err != nil {
		return nil, err
	}
	if err := b.writeMergedLine(TokenReportTitle, styles.reportTitle); err != nil {
		return nil, err
	}
	if err := b.writeMergedLine("Period: "+TokenPeriodFrom+" to "+TokenPeriodTo, styles.headerLine); err != nil {
		return nil, err
	}
	if err := b.writeMergedLine("Generated: "+TokenGeneratedAt, styles.headerLine); err != nil {
		return nil, err
	}
	b.row++ // spacer

	err = b.writeTemplateSection(salesSectionTitle, salesColumns, TokenSalesStartRow,
		[]interface{}{"TOTAL", TokenTotalTransactions, TokenTotalRevenue}, 3)
	if err != nil {
		return nil, err
	}
	err = b.writeTemplateSection(productSectionTitle, productColumns, TokenProductsStartRow,
		[]interface{}{"TOTAL", "", TokenTotalQuantitySold, TokenTotalProductsRevenue}, 4)
	if err != nil {
		return nil, err
	}

	widths := []float64{20, 15, 15, 15}
	for i, w := range widths {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheetName, name, name, w); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// writeTemplateSection mirrors writeSection, but emits a marker row in place
// of data rows and placeholder tokens in the totals row.
func (b *builder) writeTemplateSection(title string, columns []interface{}, marker string, totals []interface{}, currencyCol int) error {
	start, err := excelize.CoordinatesToCellName(1, b.row)
	if err != nil {
		return err
	}
	end, err := excelize.CoordinatesToCellName(len(columns), b.row)
	if err != nil {
		return err
	}
	if err := b.f.SetCellValue(sheetName, start, title); err != nil {
		return err
	}
	if err := b.f.SetCellStyle(sheetName, start, end, b.styles.sectionTitle); err != nil {
		return err
	}
	if err := b.f.MergeCell(sheetName, start, end); err != nil {
		return err
	}
	b.row++

	if err := b.writeRow(columns, b.styles.columnHeader, b.styles.columnHeader, 0); err != nil {
		return err
	}

	// The marker row is greyed out to signal it will be replaced with data.
	addr, err := excelize.CoordinatesToCellName(1, b.row)
	if err != nil {
		return err
	}
	if err := b.f.SetCellValue(sheetName, addr, marker); err != nil {
		return err
	}
	if err := b.f.SetCellStyle(sheetName, addr, addr, b.styles.markerHint); err != nil {
		return err
	}
	b.row++

	if err := b.writeRow(totals, b.styles.totals, b.styles.totalsCurrency, currencyCol); err != nil {
		return err
	}
	b.row++ // spacer between sections
	return nil
}
