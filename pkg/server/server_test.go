package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Mrasyid-dev/pos-system/pkg/models/api"
	"github.com/Mrasyid-dev/pos-system/pkg/models/domain"
	"github.com/Mrasyid-dev/pos-system/pkg/services/export"
)

type mockReportService struct {
	mock.Mock
}

func (m *mockReportService) SalesByDate(ctx context.Context, period domain.Period) ([]domain.SalesBucket, error) {
	args := m.Called(ctx, period)
	return args.Get(0).([]domain.SalesBucket), args.Error(1)
}

func (m *mockReportService) TopProducts(ctx context.Context, period domain.Period, limit int) ([]domain.TopProduct, error) {
	args := m.Called(ctx, period, limit)
	return args.Get(0).([]domain.TopProduct), args.Error(1)
}

func (m *mockReportService) Stats(ctx context.Context, period domain.Period) (*domain.SalesStats, error) {
	args := m.Called(ctx, period)
	return args.Get(0).(*domain.SalesStats), args.Error(1)
}

func (m *mockReportService) PaymentMethods(ctx context.Context, period domain.Period) ([]domain.PaymentMethodStat, error) {
	args := m.Called(ctx, period)
	return args.Get(0).([]domain.PaymentMethodStat), args.Error(1)
}

func (m *mockReportService) Dataset(ctx context.Context, period domain.Period, productLimit int) (*domain.ReportDataset, error) {
	args := m.Called(ctx, period, productLimit)
	return args.Get(0).(*domain.ReportDataset), args.Error(1)
}

func (m *mockReportService) ExportContext(period domain.Period, customHeader string) domain.TemplateContext {
	args := m.Called(period, customHeader)
	return args.Get(0).(domain.TemplateContext)
}

func TestWebAPI_Endpoints(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))

	mockReports := new(mockReportService)

	config := Config{
		Addr:            ":8080",
		ShutdownTimeout: 10 * time.Second,
		Dependencies: Dependencies{
			Reports:  mockReports,
			Exporter: export.NewExporter(),
			Logger:   logger,
		},
	}
	router := ConfigureRouter(config)
	testServer := httptest.NewServer(router)
	defer testServer.Close()

	period := domain.Period{
		From: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name           string
		path           string
		setupMocks     func()
		expectedStatus int
		expected       interface{}
		parseResponse  func([]byte) (interface{}, error)
	}{
		{
			name: "GetSales",
			path: "/api/v1/reports/sales?from=2024-01-01&to=2024-01-31",
			setupMocks: func() {
				mockReports.On("SalesByDate", mock.Anything, period).
					Return([]domain.SalesBucket{
						{Date: period.From, Transactions: 3, Revenue: 150.00},
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expected: []api.SalesByDate{
				{SaleDate: "2024-01-01", TotalTransactions: 3, TotalRevenue: "150.00"},
			},
			parseResponse: unmarshalResponse[[]api.SalesByDate](),
		},
		{
			name: "GetTopProducts",
			path: "/api/v1/reports/top-products?from=2024-01-01&to=2024-01-31&limit=5",
			setupMocks: func() {
				mockReports.On("TopProducts", mock.Anything, period, 5).
					Return([]domain.TopProduct{
						{Name: "Espresso Beans", SKU: "SKU-001", QuantitySold: 12, Revenue: 180.00},
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expected: []api.TopProduct{
				{ProductName: "Espresso Beans", SKU: "SKU-001", TotalQtySold: 12, TotalRevenue: "180.00"},
			},
			parseResponse: unmarshalResponse[[]api.TopProduct](),
		},
		{
			name: "GetStats",
			path: "/api/v1/reports/stats?from=2024-01-01&to=2024-01-31",
			setupMocks: func() {
				mockReports.On("Stats", mock.Anything, period).
					Return(&domain.SalesStats{TotalSales: 8, TotalRevenue: 425.50, AvgSaleAmount: 53.19}, nil)
			},
			expectedStatus: http.StatusOK,
			expected: api.SalesStats{
				TotalSales: 8, TotalRevenue: "425.50", AvgSaleAmount: "53.19",
			},
			parseResponse: unmarshalResponse[api.SalesStats](),
		},
		{
			name: "GetPaymentMethods",
			path: "/api/v1/reports/payment-methods?from=2024-01-01&to=2024-01-31",
			setupMocks: func() {
				mockReports.On("PaymentMethods", mock.Anything, period).
					Return([]domain.PaymentMethodStat{
						{Method: "cash", Transactions: 5, Amount: 250.00},
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expected: []api.PaymentMethodStats{
				{PaymentMethod: "cash", TransactionCount: 5, TotalAmount: "250.00"},
			},
			parseResponse: unmarshalResponse[[]api.PaymentMethodStats](),
		},
		{
			name:           "GetSales_InvalidFromDate",
			path:           "/api/v1/reports/sales?from=invalid-date&to=2024-01-31",
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
			expected:       true,
			parseResponse: func(data []byte) (interface{}, error) {
				var apiErr api.Error
				if err := json.Unmarshal(data, &apiErr); err != nil {
					return nil, err
				}
				return apiErr.Error != "", nil
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMocks()
			resp, err := http.Get(testServer.URL + tc.path)
			require.NoError(t, err, "Failed to send request")
			defer resp.Body.Close()

			assert.Equal(t, tc.expectedStatus, resp.StatusCode, "Status code mismatch")

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err, "Failed to read response body")

			actual, err := tc.parseResponse(body)
			require.NoError(t, err, "Failed to parse response")

			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestWebAPI_DownloadTemplate(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))

	config := Config{
		Addr: ":8080",
		Dependencies: Dependencies{
			Reports:  new(mockReportService),
			Exporter: export.NewExporter(),
			Logger:   logger,
		},
	}
	testServer := httptest.NewServer(ConfigureRouter(config))
	defer testServer.Close()

	resp, err := http.Get(testServer.URL + "/api/v1/reports/export/template")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, export.MIMEType, resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "report-template.xlsx")
}

func unmarshalResponse[T any]() func([]byte) (interface{}, error) {
	return func(data []byte) (interface{}, error) {
		var response T
		err := json.Unmarshal(data, &response)
		return response, err
	}
}
