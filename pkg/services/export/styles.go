package export

import "github.com/xuri/excelize/v2"

const (
	sheetName = "Sales Report"

	// MIMEType is the content type of the produced artifact.
	MIMEType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	currencyFormat = "$#,##0.00"

	fillSectionTitle = "E0E0E0"
	fillColumnHeader = "F0F0F0"
)

// stylePalette holds the style IDs shared by generated documents and starter
// templates. Style IDs are scoped to a workbook, so a palette is built per
// file.
type stylePalette struct {
	companyTitle   int
	customHeader   int
	reportTitle    int
	headerLine     int
	sectionTitle   int
	columnHeader   int
	dataCell       int
	dataCurrency   int
	totals         int
	totalsCurrency int
	markerHint     int
}

func thinBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "top", Style: 1},
		{Type: "left", Style: 1},
		{Type: "bottom", Style: 1},
		{Type: "right", Style: 1},
	}
}

func totalsBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "top", Style: 2},
		{Type: "left", Style: 1},
		{Type: "bottom", Style: 1},
		{Type: "right", Style: 1},
	}
}

func newStylePalette(f *excelize.File) (*stylePalette, error) {
	p := &stylePalette{}
	center := &excelize.Alignment{Horizontal: "center", Vertical: "center"}
	currency := currencyFormat

	var err error
	if p.companyTitle, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 16, Bold: true},
		Alignment: center,
	}); err != nil {
		return nil, err
	}
	if p.customHeader, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Italic: true},
		Alignment: center,
	}); err != nil {
		return nil, err
	}
	if p.reportTitle, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 14, Bold: true},
		Alignment: center,
	}); err != nil {
		return nil, err
	}
	if p.headerLine, err = f.NewStyle(&excelize.Style{Alignment: center}); err != nil {
		return nil, err
	}
	if p.sectionTitle, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 12, Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{fillSectionTitle}},
		Border:    thinBorder(),
		Alignment: center,
	}); err != nil {
		return nil, err
	}
	if p.columnHeader, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{fillColumnHeader}},
		Border:    thinBorder(),
		Alignment: center,
	}); err != nil {
		return nil, err
	}
	if p.dataCell, err = f.NewStyle(&excelize.Style{Border: thinBorder()}); err != nil {
		return nil, err
	}
	if p.dataCurrency, err = f.NewStyle(&excelize.Style{
		Border:       thinBorder(),
		CustomNumFmt: &currency,
	}); err != nil {
		return nil, err
	}
	if p.totals, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Border: totalsBorder(),
	}); err != nil {
		return nil, err
	}
	if p.totalsCurrency, err = f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true},
		Border:       totalsBorder(),
		CustomNumFmt: &currency,
	}); err != nil {
		return nil, err
	}
	if p.markerHint, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Italic: true, Color: "999999"},
	}); err != nil {
		return nil, err
	}
	return p, nil
}
