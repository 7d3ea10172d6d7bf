package domain

import (
	"fmt"
	"time"
)

// ReportType selects which data sections appear in an exported report.
type ReportType string

const (
	ReportTypeSales       ReportType = "sales"
	ReportTypeTopProducts ReportType = "top-products"
	ReportTypeCombined    ReportType = "combined"
)

func ParseReportType(s string) (ReportType, error) {
	switch ReportType(s) {
	case ReportTypeSales, ReportTypeTopProducts, ReportTypeCombined:
		return ReportType(s), nil
	case "":
		return ReportTypeCombined, nil
	default:
		return "", fmt.Errorf("unknown report type %q", s)
	}
}

func (t ReportType) IncludesSales() bool {
	return t == ReportTypeSales || t == ReportTypeCombined
}

func (t ReportType) IncludesProducts() bool {
	return t == ReportTypeTopProducts || t == ReportTypeCombined
}

// Period is an inclusive calendar-date range for a report.
type Period struct {
	From time.Time
	To   time.Time
}

// SalesBucket is one date bucket of aggregated sales.
type SalesBucket struct {
	Date         time.Time
	Transactions int64
	Revenue      float64
}

// TopProduct is one entry of the top-product ranking.
type TopProduct struct {
	Name         string
	SKU          string
	QuantitySold int64
	Revenue      float64
}

// ReportTotals carries the aggregates derived from the dataset sequences.
// They are computed once by NewReportDataset and never mutated afterwards.
type ReportTotals struct {
	Transactions    int64
	Revenue         float64
	QuantitySold    int64
	ProductsRevenue float64
}

// ReportDataset is an immutable snapshot of the data behind one report export.
type ReportDataset struct {
	Sales       []SalesBucket
	TopProducts []TopProduct
	Totals      ReportTotals
}

// NewReportDataset builds a dataset and derives its totals as sums over the
// source sequences.
func NewReportDataset(sales []SalesBucket, products []TopProduct) *ReportDataset {
	ds := &ReportDataset{Sales: sales, TopProducts: products}
	for _, s := range sales {
		ds.Totals.Transactions += s.Transactions
		ds.Totals.Revenue += s.Revenue
	}
	for _, p := range products {
		ds.Totals.QuantitySold += p.QuantitySold
		ds.Totals.ProductsRevenue += p.Revenue
	}
	return ds
}

// TemplateContext is the scalar metadata substituted into report documents.
type TemplateContext struct {
	CompanyName  string
	CustomHeader string
	ReportTitle  string
	PeriodFrom   time.Time
	PeriodTo     time.Time
	GeneratedAt  time.Time
}

// SalesStats is the summary block shown on the reports dashboard.
type SalesStats struct {
	TotalSales    int64
	TotalRevenue  float64
	AvgSaleAmount float64
}

// PaymentMethodStat aggregates sales per payment method.
type PaymentMethodStat struct {
	Method       string
	Transactions int64
	Amount       float64
}
