package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Mrasyid-dev/pos-system/pkg/models/domain"
)

// resolveScalars replaces every scalar placeholder in every cell of the
// worksheet with its textual value. Literal text around a token is kept, and
// all tokens in a cell are resolved in a single pass. Region markers are left
// for the expander. Cell styles are not touched.
func resolveScalars(f *excelize.File, sheet string, ds *domain.ReportDataset, tctx domain.TemplateContext) error {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("read template rows: %w", err)
	}

	repl := scalarReplacer(ds, tctx)
	for rIdx, row := range rows {
		for cIdx, cell := range row {
			if !strings.Contains(cell, "{{") {
				continue
			}
			resolved := repl.Replace(cell)
			if resolved == cell {
				continue
			}
			addr, err := excelize.CoordinatesToCellName(cIdx+1, rIdx+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, addr, resolved); err != nil {
				return fmt.Errorf("set cell %s: %w", addr, err)
			}
		}
	}
	return nil
}

// scalarReplacer maps every scalar token to its resolved text. Optional
// values resolve to the empty string so the literal token never leaks into
// the output.
func scalarReplacer(ds *domain.ReportDataset, tctx domain.TemplateContext) *strings.Replacer {
	return strings.NewReplacer(
		TokenCompanyName, tctx.CompanyName,
		TokenCustomHeader, tctx.CustomHeader,
		TokenReportTitle, tctx.ReportTitle,
		TokenPeriodFrom, tctx.PeriodFrom.Format(dateLayout),
		TokenPeriodTo, tctx.PeriodTo.Format(dateLayout),
		TokenGeneratedAt, tctx.GeneratedAt.Format(timestampLayout),
		TokenTotalTransactions, strconv.FormatInt(ds.Totals.Transactions, 10),
		TokenTotalRevenue, currencyText(ds.Totals.Revenue),
		TokenTotalQuantitySold, strconv.FormatInt(ds.Totals.QuantitySold, 10),
		TokenTotalProductsRevenue, currencyText(ds.Totals.ProductsRevenue),
	)
}

// currencyText renders a monetary value as fixed two-decimal text, the same
// precision the currency number format applies to numeric cells.
func currencyText(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
