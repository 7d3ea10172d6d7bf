package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Mrasyid-dev/pos-system/pkg/models/domain"
)

func testDataset() *domain.ReportDataset {
	return domain.NewReportDataset(
		[]domain.SalesBucket{
			{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Transactions: 3, Revenue: 150.00},
			{Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), Transactions: 5, Revenue: 275.50},
		},
		[]domain.TopProduct{
			{Name: "Espresso Beans", SKU: "SKU-001", QuantitySold: 12, Revenue: 180.00},
		},
	)
}

func cellValue(t *testing.T, f *excelize.File, sheet, addr string) string {
	t.Helper()
	v, err := f.GetCellValue(sheet, addr, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	return v
}

func TestExpandRegions_SalesMarker(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := "Sheet1"
	require.NoError(t, f.SetCellValue(sheet, "A1", "Date"))
	require.NoError(t, f.SetCellValue(sheet, "A2", "{{SALES_START_ROW}}"))
	require.NoError(t, f.SetCellValue(sheet, "A3", "TOTAL"))

	ds := testDataset()
	require.NoError(t, expandRegions(f, sheet, ds))

	// 1 marker row became 2 data rows; the totals row shifted down by 1.
	assert.Equal(t, "2024-01-01", cellValue(t, f, sheet, "A2"))
	assert.Equal(t, "3", cellValue(t, f, sheet, "B2"))
	assert.Equal(t, "150", cellValue(t, f, sheet, "C2"))
	assert.Equal(t, "2024-01-02", cellValue(t, f, sheet, "A3"))
	assert.Equal(t, "5", cellValue(t, f, sheet, "B3"))
	assert.Equal(t, "275.5", cellValue(t, f, sheet, "C3"))
	assert.Equal(t, "TOTAL", cellValue(t, f, sheet, "A4"))
}

func TestExpandRegions_EmptyDatasetRemovesMarker(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := "Sheet1"
	require.NoError(t, f.SetCellValue(sheet, "A1", "Date"))
	require.NoError(t, f.SetCellValue(sheet, "A2", "{{SALES_START_ROW}}"))
	require.NoError(t, f.SetCellValue(sheet, "A3", "TOTAL"))

	ds := domain.NewReportDataset(nil, nil)
	require.NoError(t, expandRegions(f, sheet, ds))

	// The marker disappears and the following row closes the gap.
	assert.Equal(t, "TOTAL", cellValue(t, f, sheet, "A2"))
	assert.Equal(t, "", cellValue(t, f, sheet, "A3"))
}

func TestExpandRegions_AbsentMarkerIsNoop(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := "Sheet1"
	require.NoError(t, f.SetCellValue(sheet, "A1", "just text"))

	require.NoError(t, expandRegions(f, sheet, testDataset()))

	assert.Equal(t, "just text", cellValue(t, f, sheet, "A1"))
	assert.Equal(t, "", cellValue(t, f, sheet, "A2"))
}

func TestExpandRegions_ProductRowsArePositional(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := "Sheet1"
	require.NoError(t, f.SetCellValue(sheet, "A1", "{{PRODUCTS_START_ROW}}"))

	require.NoError(t, expandRegions(f, sheet, testDataset()))

	assert.Equal(t, "Espresso Beans", cellValue(t, f, sheet, "A1"))
	assert.Equal(t, "SKU-001", cellValue(t, f, sheet, "B1"))
	assert.Equal(t, "12", cellValue(t, f, sheet, "C1"))
	assert.Equal(t, "180", cellValue(t, f, sheet, "D1"))
}

func TestExpandRegions_BothMarkers(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := "Sheet1"
	require.NoError(t, f.SetCellValue(sheet, "A1", "{{SALES_START_ROW}}"))
	require.NoError(t, f.SetCellValue(sheet, "A2", "sales total"))
	require.NoError(t, f.SetCellValue(sheet, "A3", "{{PRODUCTS_START_ROW}}"))
	require.NoError(t, f.SetCellValue(sheet, "A4", "products total"))

	require.NoError(t, expandRegions(f, sheet, testDataset()))

	// Sales marker expanded to 2 rows, shifting everything below by 1;
	// the products marker was found at its shifted position.
	assert.Equal(t, "2024-01-01", cellValue(t, f, sheet, "A1"))
	assert.Equal(t, "2024-01-02", cellValue(t, f, sheet, "A2"))
	assert.Equal(t, "sales total", cellValue(t, f, sheet, "A3"))
	assert.Equal(t, "Espresso Beans", cellValue(t, f, sheet, "A4"))
	assert.Equal(t, "products total", cellValue(t, f, sheet, "A5"))
}

func TestExpandRegions_SecondRunIsNoop(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := "Sheet1"
	require.NoError(t, f.SetCellValue(sheet, "A1", "{{SALES_START_ROW}}"))
	require.NoError(t, f.SetCellValue(sheet, "A2", "TOTAL"))

	ds := testDataset()
	require.NoError(t, expandRegions(f, sheet, ds))
	before, err := f.GetRows(sheet)
	require.NoError(t, err)

	// Markers no longer exist, so a second run changes nothing.
	require.NoError(t, expandRegions(f, sheet, ds))
	after, err := f.GetRows(sheet)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestFindMarkerRow_FirstMatchWins(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := "Sheet1"
	require.NoError(t, f.SetCellValue(sheet, "B3", "{{SALES_START_ROW}}"))
	require.NoError(t, f.SetCellValue(sheet, "A7", "{{SALES_START_ROW}}"))

	row, found, err := findMarkerRow(f, sheet, TokenSalesStartRow)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 3, row)
}
