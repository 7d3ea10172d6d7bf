package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Mrasyid-dev/pos-system/pkg/models/domain"
)

const titleSpanCols = 4

var (
	salesSectionTitle   = "SALES BY DATE"
	salesColumns        = []interface{}{"Date", "Transactions", "Revenue"}
	productSectionTitle = "TOP PRODUCTS"
	productColumns      = []interface{}{"Product Name", "SKU", "Quantity Sold", "Revenue"}
)

// builder writes a brand-new report workbook from the data model, with no
// input template. It writes final values directly and never deals with
// placeholder tokens.
type builder struct {
	f      *excelize.File
	styles *stylePalette
	row    int
}

func buildWorkbook(ds *domain.ReportDataset, tctx domain.TemplateContext, reportType domain.ReportType) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}
	styles, err := newStylePalette(f)
	if err != nil {
		return nil, err
	}

	b := &builder{f: f, styles: styles, row: 1}
	if err := b.writeHeader(tctx); err != nil {
		return nil, err
	}
	if reportType.IncludesSales() {
		err := b.writeSection(salesSectionTitle, salesColumns, salesRows(ds.Sales),
			[]interface{}{"TOTAL", ds.Totals.Transactions, ds.Totals.Revenue}, 3)
		if err != nil {
			return nil, err
		}
	}
	if reportType.IncludesProducts() {
		err := b.writeSection(productSectionTitle, productColumns, productRows(ds.TopProducts),
			[]interface{}{"TOTAL", "", ds.Totals.QuantitySold, ds.Totals.ProductsRevenue}, 4)
		if err != nil {
			return nil, err
		}
	}
	if err := autoSizeColumns(f, sheetName); err != nil {
		return nil, err
	}
	return f, nil
}

// writeHeader emits the merged title block: company name, optional custom
// header, report title, period line, generation timestamp, then a spacer row.
func (b *builder) writeHeader(tctx domain.TemplateContext) error {
	if err := b.writeMergedLine(tctx.CompanyName, b.styles.companyTitle); err != nil {
		return err
	}
	if tctx.CustomHeader != "" {
		if err := b.writeMergedLine(tctx.CustomHeader, b.styles.customHeader); err != nil {
			return err
		}
	}
	if err := b.writeMergedLine(tctx.ReportTitle, b.styles.reportTitle); err != nil {
		return err
	}
	period := fmt.Sprintf("Period: %s to %s",
		tctx.PeriodFrom.Format(dateLayout), tctx.PeriodTo.Format(dateLayout))
	if err := b.writeMergedLine(period, b.styles.headerLine); err != nil {
		return err
	}
	generated := fmt.Sprintf("Generated: %s", tctx.GeneratedAt.Format(timestampLayout))
	if err := b.writeMergedLine(generated, b.styles.headerLine); err != nil {
		return err
	}
	b.row++ // spacer
	return nil
}

func (b *builder) writeMergedLine(text string, style int) error {
	start, err := excelize.CoordinatesToCellName(1, b.row)
	if err != nil {
		return err
	}
	end, err := excelize.CoordinatesToCellName(titleSpanCols, b.row)
	if err != nil {
		return err
	}
	if err := b.f.SetCellValue(sheetName, start, text); err != nil {
		return err
	}
	if err := b.f.SetCellStyle(sheetName, start, start, style); err != nil {
		return err
	}
	if err := b.f.MergeCell(sheetName, start, end); err != nil {
		return err
	}
	b.row++
	return nil
}

// writeSection emits a shaded section title, a bold bordered column header,
// one bordered data row per dataset element, and a bold totals row built from
// the precomputed aggregates. currencyCol is the 1-based money column.
func (b *builder) writeSection(title string, columns []interface{}, rows [][]interface{}, totals []interface{}, currencyCol int) error {
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
	for _, values := range rows {
		if err := b.writeRow(values, b.styles.dataCell, b.styles.dataCurrency, currencyCol); err != nil {
			return err
		}
	}
	if err := b.writeRow(totals, b.styles.totals, b.styles.totalsCurrency, currencyCol); err != nil {
		return err
	}
	b.row++ // spacer between sections
	return nil
}

func (b *builder) writeRow(values []interface{}, style, currencyStyle, currencyCol int) error {
	for col, v := range values {
		addr, err := excelize.CoordinatesToCellName(col+1, b.row)
		if err != nil {
			return err
		}
		if err := b.f.SetCellValue(sheetName, addr, v); err != nil {
			return err
		}
		cellStyle := style
		if col+1 == currencyCol {
			cellStyle = currencyStyle
		}
		if err := b.f.SetCellStyle(sheetName, addr, addr, cellStyle); err != nil {
			return err
		}
	}
	b.row++
	return nil
}

// autoSizeColumns derives each column width from its longest non-empty cell:
// max(10, longest+2).
func autoSizeColumns(f *excelize.File, sheet string) error {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return err
	}
	longest := map[int]int{}
	for _, row := range rows {
		for col, cell := range row {
			if cell == "" {
				continue
			}
			if len(cell) > longest[col] {
				longest[col] = len(cell)
			}
		}
	}
	for col, n := range longest {
		width := float64(n + 2)
		if width < 10 {
			width = 10
		}
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, width); err != nil {
			return err
		}
	}
	return nil
}
