package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Mrasyid-dev/pos-system/pkg/models/domain"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) GetSalesByDate(ctx context.Context, from, to time.Time) ([]domain.SalesBucket, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]domain.SalesBucket), args.Error(1)
}

func (m *mockStore) GetTopProducts(ctx context.Context, from, to time.Time, limit int) ([]domain.TopProduct, error) {
	args := m.Called(ctx, from, to, limit)
	return args.Get(0).([]domain.TopProduct), args.Error(1)
}

func (m *mockStore) GetSalesStats(ctx context.Context, from, to time.Time) (*domain.SalesStats, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(*domain.SalesStats), args.Error(1)
}

func (m *mockStore) GetSalesByPaymentMethod(ctx context.Context, from, to time.Time) ([]domain.PaymentMethodStat, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]domain.PaymentMethodStat), args.Error(1)
}

func TestResolvePeriod(t *testing.T) {
	t.Run("explicit bounds", func(t *testing.T) {
		p, err := ResolvePeriod("2024-01-01", "2024-01-31")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), p.From)
		assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), p.To)
	})

	t.Run("defaults to last 30 days", func(t *testing.T) {
		p, err := ResolvePeriod("", "")
		require.NoError(t, err)
		assert.Equal(t, 30*24*time.Hour, p.To.Sub(p.From))
	})

	t.Run("bad input", func(t *testing.T) {
		_, err := ResolvePeriod("01/01/2024", "2024-01-31")
		assert.Error(t, err)
		_, err = ResolvePeriod("2024-01-01", "soon")
		assert.Error(t, err)
	})
}

func TestDataset(t *testing.T) {
	store := new(mockStore)
	svc := NewService(store, "Warung Kopi")

	period := domain.Period{
		From: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	}
	// The store is queried up to end-of-day of the closing date.
	to := time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)

	sales := []domain.SalesBucket{
		{Date: period.From, Transactions: 3, Revenue: 150.00},
		{Date: period.From.AddDate(0, 0, 1), Transactions: 5, Revenue: 275.50},
	}
	products := []domain.TopProduct{
		{Name: "Espresso Beans", SKU: "SKU-001", QuantitySold: 12, Revenue: 180.00},
	}
	store.On("GetSalesByDate", mock.Anything, period.From, to).Return(sales, nil)
	store.On("GetTopProducts", mock.Anything, period.From, to, 10).Return(products, nil)

	ds, err := svc.Dataset(context.Background(), period, 0)
	require.NoError(t, err)

	// Totals are exactly the sums over the source sequences.
	assert.Equal(t, int64(8), ds.Totals.Transactions)
	assert.Equal(t, 425.50, ds.Totals.Revenue)
	assert.Equal(t, int64(12), ds.Totals.QuantitySold)
	assert.Equal(t, 180.00, ds.Totals.ProductsRevenue)
	store.AssertExpectations(t)
}

func TestExportContext(t *testing.T) {
	svc := NewService(new(mockStore), "Warung Kopi").(*service)
	generated := time.Date(2024, 2, 1, 9, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return generated }

	period := domain.Period{
		From: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	}
	tctx := svc.ExportContext(period, "Q1 review")

	assert.Equal(t, "Warung Kopi", tctx.CompanyName)
	assert.Equal(t, "Q1 review", tctx.CustomHeader)
	assert.Equal(t, "Sales Report", tctx.ReportTitle)
	assert.Equal(t, generated, tctx.GeneratedAt)
	assert.Equal(t, period.From, tctx.PeriodFrom)
}
