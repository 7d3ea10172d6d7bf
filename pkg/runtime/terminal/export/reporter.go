package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/Mrasyid-dev/pos-system/pkg/models/domain"
)

type TableConfig struct {
	LabelWidth  int
	CountWidth  int
	AmountWidth int
	ExtraWidth  int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		LabelWidth:  32,
		CountWidth:  14,
		AmountWidth: 14,
		ExtraWidth:  14,
	}
}

// Summary describes one finished export for console output.
type Summary struct {
	Dataset *domain.ReportDataset
	Context domain.TemplateContext
	Path    string
	Size    int
}

type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

func (c *Reporter) Handle(summary *Summary) error {
	funcMap := template.FuncMap{
		"formatRow": func(label string, count interface{}, amount interface{}, extra string) string {
			return fmt.Sprintf("| %-*s | %-*v | %-*v | %-*s |",
				c.config.LabelWidth, label,
				c.config.CountWidth, count,
				c.config.AmountWidth, amount,
				c.config.ExtraWidth, extra)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+%s+",
				strings.Repeat("-", c.config.LabelWidth+2),
				strings.Repeat("-", c.config.CountWidth+2),
				strings.Repeat("-", c.config.AmountWidth+2),
				strings.Repeat("-", c.config.ExtraWidth+2))
		},
		"money": func(v float64) string {
			return fmt.Sprintf("$%.2f", v)
		},
	}

	tmpl := `
{{.Context.ReportTitle}} for {{.Context.CompanyName}}

Period: {{.Context.PeriodFrom.Format "2006-01-02"}} to {{.Context.PeriodTo.Format "2006-01-02"}}
Written: {{.Path}} ({{.Size}} bytes)

=== SALES BY DATE ===
{{separator}}
{{formatRow "Date" "Transactions" "Revenue" ""}}
{{separator}}
{{range .Dataset.Sales}}{{formatRow (.Date.Format "2006-01-02") .Transactions (money .Revenue) ""}}
{{end}}{{separator}}
{{formatRow "TOTAL" .Dataset.Totals.Transactions (money .Dataset.Totals.Revenue) ""}}
{{separator}}

=== TOP PRODUCTS ===
{{separator}}
{{formatRow "Product" "Qty Sold" "Revenue" "SKU"}}
{{separator}}
{{range .Dataset.TopProducts}}{{formatRow .Name .QuantitySold (money .Revenue) .SKU}}
{{end}}{{separator}}
{{formatRow "TOTAL" .Dataset.Totals.QuantitySold (money .Dataset.Totals.ProductsRevenue) ""}}
{{separator}}
`

	t, err := template.New("summary").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, summary)
}
