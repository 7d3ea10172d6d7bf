package report

import (
	"context"
	"fmt"
	"time"

	"github.com/Mrasyid-dev/pos-system/pkg/models/domain"
	"github.com/Mrasyid-dev/pos-system/pkg/store/postgres"
)

const (
	dateLayout = "2006-01-02"

	// DefaultTopProductsLimit bounds the ranking when the caller does not ask
	// for a specific size.
	DefaultTopProductsLimit = 10

	defaultPeriodDays = 30
)

// Service aggregates POS sales data into report datasets and dashboard
// responses.
type Service interface {
	SalesByDate(ctx context.Context, period domain.Period) ([]domain.SalesBucket, error)
	TopProducts(ctx context.Context, period domain.Period, limit int) ([]domain.TopProduct, error)
	Stats(ctx context.Context, period domain.Period) (*domain.SalesStats, error)
	PaymentMethods(ctx context.Context, period domain.Period) ([]domain.PaymentMethodStat, error)
	Dataset(ctx context.Context, period domain.Period, productLimit int) (*domain.ReportDataset, error)
	ExportContext(period domain.Period, customHeader string) domain.TemplateContext
}

type service struct {
	store       postgres.Store
	companyName string
	now         func() time.Time
}

func NewService(store postgres.Store, companyName string) Service {
	return &service{
		store:       store,
		companyName: companyName,
		now:         time.Now,
	}
}

// ResolvePeriod parses inclusive calendar-date bounds, defaulting to the last
// 30 days when either bound is missing. The upper bound is pushed to the end
// of its day so the whole closing date is included.
func ResolvePeriod(fromStr, toStr string) (domain.Period, error) {
	if fromStr == "" || toStr == "" {
		to := time.Now()
		from := to.AddDate(0, 0, -defaultPeriodDays)
		fromStr = from.Format(dateLayout)
		toStr = to.Format(dateLayout)
	}

	from, err := time.Parse(dateLayout, fromStr)
	if err != nil {
		return domain.Period{}, fmt.Errorf("invalid 'from' date format (use YYYY-MM-DD): %w", err)
	}
	to, err := time.Parse(dateLayout, toStr)
	if err != nil {
		return domain.Period{}, fmt.Errorf("invalid 'to' date format (use YYYY-MM-DD): %w", err)
	}
	return domain.Period{From: from, To: to}, nil
}

// queryBounds widens the period's upper bound to the end of its day.
func queryBounds(p domain.Period) (time.Time, time.Time) {
	return p.From, p.To.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}

func (s *service) SalesByDate(ctx context.Context, period domain.Period) ([]domain.SalesBucket, error) {
	from, to := queryBounds(period)
	return s.store.GetSalesByDate(ctx, from, to)
}

func (s *service) TopProducts(ctx context.Context, period domain.Period, limit int) ([]domain.TopProduct, error) {
	if limit <= 0 {
		limit = DefaultTopProductsLimit
	}
	from, to := queryBounds(period)
	return s.store.GetTopProducts(ctx, from, to, limit)
}

func (s *service) Stats(ctx context.Context, period domain.Period) (*domain.SalesStats, error) {
	from, to := queryBounds(period)
	return s.store.GetSalesStats(ctx, from, to)
}

func (s *service) PaymentMethods(ctx context.Context, period domain.Period) ([]domain.PaymentMethodStat, error) {
	from, to := queryBounds(period)
	return s.store.GetSalesByPaymentMethod(ctx, from, to)
}

// Dataset assembles the immutable snapshot behind one export: both sequences
// in store order, with totals derived once from the sequences themselves.
func (s *service) Dataset(ctx context.Context, period domain.Period, productLimit int) (*domain.ReportDataset, error) {
	sales, err := s.SalesByDate(ctx, period)
	if err != nil {
		return nil, fmt.Errorf("load sales: %w", err)
	}
	products, err := s.TopProducts(ctx, period, productLimit)
	if err != nil {
		return nil, fmt.Errorf("load top products: %w", err)
	}
	return domain.NewReportDataset(sales, products), nil
}

func (s *service) ExportContext(period domain.Period, customHeader string) domain.TemplateContext {
	return domain.TemplateContext{
		CompanyName:  s.companyName,
		CustomHeader: customHeader,
		ReportTitle:  "Sales Report",
		PeriodFrom:   period.From,
		PeriodTo:     period.To,
		GeneratedAt:  s.now(),
	}
}
