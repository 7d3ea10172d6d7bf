package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/Mrasyid-dev/pos-system/pkg/models/domain"
	terminalexport "github.com/Mrasyid-dev/pos-system/pkg/runtime/terminal/export"
	"github.com/Mrasyid-dev/pos-system/pkg/services/export"
	"github.com/Mrasyid-dev/pos-system/pkg/services/report"
)

// datasetFile is the JSON shape accepted by the export command. It carries the
// raw aggregates; totals are derived, never read from the file.
type datasetFile struct {
	Sales []struct {
		Date         string  `json:"date"`
		Transactions int64   `json:"transactions"`
		Revenue      float64 `json:"revenue"`
	} `json:"sales"`
	Products []struct {
		Name         string  `json:"name"`
		SKU          string  `json:"sku"`
		QuantitySold int64   `json:"quantity_sold"`
		Revenue      float64 `json:"revenue"`
	} `json:"products"`
}

func NewExportCmd(exporter *export.Exporter, reporter *terminalexport.Reporter) *cobra.Command {
	var (
		dataPath     string
		templatePath string
		reportType   string
		fromStr      string
		toStr        string
		companyName  string
		customHeader string
		outDir       string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a sales report workbook from a JSON dataset",
		RunE: func(cmd *cobra.Command, _ []string) error {
			period, err := report.ResolvePeriod(fromStr, toStr)
			if err != nil {
				return err
			}
			rt, err := domain.ParseReportType(reportType)
			if err != nil {
				return err
			}

			ds, err := loadDataset(dataPath)
			if err != nil {
				return err
			}

			tctx := domain.TemplateContext{
				CompanyName:  companyName,
				CustomHeader: customHeader,
				ReportTitle:  "Sales Report",
				PeriodFrom:   period.From,
				PeriodTo:     period.To,
				GeneratedAt:  time.Now(),
			}

			opts := export.Options{ReportType: rt}
			if templatePath != "" {
				raw, err := os.ReadFile(templatePath)
				if err != nil {
					return fmt.Errorf("read template %s: %w", templatePath, err)
				}
				opts.Template = raw
				opts.TemplateName = filepath.Base(templatePath)
			}

			artifact, err := exporter.Export(ds, tctx, opts)
			if err != nil {
				return err
			}

			outPath := filepath.Join(outDir, artifact.Filename)
			if err := os.WriteFile(outPath, artifact.Data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", outPath, err)
			}

			return reporter.Handle(&terminalexport.Summary{
				Dataset: ds,
				Context: tctx,
				Path:    outPath,
				Size:    len(artifact.Data),
			})
		},
	}

	cmd.Flags().StringVarP(&dataPath, "data", "d", "", "Path to the JSON dataset file")
	cmd.Flags().StringVar(&templatePath, "template", "", "Optional .xlsx template to fill")
	cmd.Flags().StringVarP(&reportType, "type", "t", "", "Report type: sales, top-products or combined")
	cmd.Flags().StringVar(&fromStr, "from", "", "Period start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&toStr, "to", "", "Period end (YYYY-MM-DD)")
	cmd.Flags().StringVar(&companyName, "company", "POS System", "Company name shown in the report header")
	cmd.Flags().StringVar(&customHeader, "header", "", "Optional custom header line")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "Directory to write the workbook into")
	_ = cmd.MarkFlagRequired("data")

	return cmd
}

func loadDataset(path string) (*domain.ReportDataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}

	var file datasetFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, err)
	}

	sales := make([]domain.SalesBucket, len(file.Sales))
	for i, s := range file.Sales {
		date, err := time.Parse("2006-01-02", s.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid sale date %q: %w", s.Date, err)
		}
		sales[i] = domain.SalesBucket{
			Date:         date,
			Transactions: s.Transactions,
			Revenue:      s.Revenue,
		}
	}

	products := make([]domain.TopProduct, len(file.Products))
	for i, p := range file.Products {
		products[i] = domain.TopProduct{
			Name:         p.Name,
			SKU:          p.SKU,
			QuantitySold: p.QuantitySold,
			Revenue:      p.Revenue,
		}
	}

	return domain.NewReportDataset(sales, products), nil
}
