package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Mrasyid-dev/pos-system/pkg/models/domain"
)

// regionBinding ties a marker token to the rows it expands into. Cell values
// are positional; currencyCol marks the 1-based column that receives the
// currency number format.
type regionBinding struct {
	token       string
	rows        [][]interface{}
	currencyCol int
}

// expandRegions replaces each marker row with one row per element of its
// bound dataset, in dataset order. Templates may omit either marker; an
// absent marker leaves that region untouched. Running this again on an
// already-expanded document is a no-op, since the markers no longer exist.
func expandRegions(f *excelize.File, sheet string, ds *domain.ReportDataset) error {
	numFmt := currencyFormat
	currencyStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
	if err != nil {
		return err
	}

	bindings := []regionBinding{
		{token: TokenSalesStartRow, rows: salesRows(ds.Sales), currencyCol: 3},
		{token: TokenProductsStartRow, rows: productRows(ds.TopProducts), currencyCol: 4},
	}
	for _, b := range bindings {
		if err := expandRegion(f, sheet, b, currencyStyle); err != nil {
			return fmt.Errorf("expand %s: %w", b.token, err)
		}
	}
	return nil
}

// expandRegion deletes the marker row and inserts len(rows) data rows at the
// same index, so everything below the marker shifts by len(rows)-1. An empty
// dataset removes the marker row and the content below closes the gap.
func expandRegion(f *excelize.File, sheet string, b regionBinding, currencyStyle int) error {
	markerRow, found, err := findMarkerRow(f, sheet, b.token)
	if err != nil || !found {
		return err
	}

	if err := f.RemoveRow(sheet, markerRow); err != nil {
		return err
	}
	if len(b.rows) == 0 {
		return nil
	}
	if err := f.InsertRows(sheet, markerRow, len(b.rows)); err != nil {
		return err
	}

	for i, values := range b.rows {
		rowIdx := markerRow + i
		for col, v := range values {
			addr, err := excelize.CoordinatesToCellName(col+1, rowIdx)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, addr, v); err != nil {
				return err
			}
		}
		addr, err := excelize.CoordinatesToCellName(b.currencyCol, rowIdx)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, addr, addr, currencyStyle); err != nil {
			return err
		}
	}
	return nil
}

// findMarkerRow walks the worksheet once and returns the 1-based index of the
// first row whose cell text contains the token. First match wins: if a
// template erroneously repeats a marker, only the first occurrence is treated
// as authoritative.
func findMarkerRow(f *excelize.File, sheet, token string) (int, bool, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return 0, false, fmt.Errorf("scan for %s: %w", token, err)
	}
	for i, row := range rows {
		for _, cell := range row {
			if strings.Contains(cell, token) {
				return i + 1, true, nil
			}
		}
	}
	return 0, false, nil
}

func salesRows(sales []domain.SalesBucket) [][]interface{} {
	rows := make([][]interface{}, len(sales))
	for i, s := range sales {
		rows[i] = []interface{}{s.Date.Format(dateLayout), s.Transactions, s.Revenue}
	}
	return rows
}

func productRows(products []domain.TopProduct) [][]interface{} {
	rows := make([][]interface{}, len(products))
	for i, p := range products {
		rows[i] = []interface{}{p.Name, p.SKU, p.QuantitySold, p.Revenue}
	}
	return rows
}
