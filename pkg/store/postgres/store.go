package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/Mrasyid-dev/pos-system/pkg/models/domain"
)

type Settings struct {
	DSN string
}

// NewDB opens a pooled connection to the POS database via the pgx stdlib
// driver and verifies it is reachable.
func NewDB(ctx context.Context, settings Settings) (*sql.DB, error) {
	db, err := sql.Open("pgx", settings.DSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// Store exposes the aggregated reporting reads used by the report service.
type Store interface {
	GetSalesByDate(ctx context.Context, from, to time.Time) ([]domain.SalesBucket, error)
	GetTopProducts(ctx context.Context, from, to time.Time, limit int) ([]domain.TopProduct, error)
	GetSalesStats(ctx context.Context, from, to time.Time) (*domain.SalesStats, error)
	GetSalesByPaymentMethod(ctx context.Context, from, to time.Time) ([]domain.PaymentMethodStat, error)
}

type reportStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &reportStore{db: db}, nil
}

func (s *reportStore) GetSalesByDate(ctx context.Context, from, to time.Time) ([]domain.SalesBucket, error) {
	query := `
		SELECT created_at::date AS sale_date,
		       COUNT(*) AS total_transactions,
		       COALESCE(SUM(total_amount), 0) AS total_revenue
		FROM sales
		WHERE created_at BETWEEN $1 AND $2
		GROUP BY created_at::date
		ORDER BY sale_date`

	rows, err := s.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("query sales by date: %w", err)
	}
	defer rows.Close()

	var buckets []domain.SalesBucket
	for rows.Next() {
		var b domain.SalesBucket
		if err := rows.Scan(&b.Date, &b.Transactions, &b.Revenue); err != nil {
			return nil, fmt.Errorf("scan sales bucket: %w", err)
		}
		buckets = append(buckets, b)
	}
	return buckets, rows.Err()
}

func (s *reportStore) GetTopProducts(ctx context.Context, from, to time.Time, limit int) ([]domain.TopProduct, error) {
	query := `
		SELECT p.name,
		       COALESCE(p.sku, '') AS sku,
		       SUM(si.quantity) AS total_qty_sold,
		       COALESCE(SUM(si.quantity * si.unit_price), 0) AS total_revenue
		FROM sale_items si
		JOIN sales s ON s.id = si.sale_id
		JOIN products p ON p.id = si.product_id
		WHERE s.created_at BETWEEN $1 AND $2
		GROUP BY p.id, p.name, p.sku
		ORDER BY total_qty_sold DESC
		LIMIT $3`

	rows, err := s.db.QueryContext(ctx, query, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("query top products: %w", err)
	}
	defer rows.Close()

	var products []domain.TopProduct
	for rows.Next() {
		var p domain.TopProduct
		if err := rows.Scan(&p.Name, &p.SKU, &p.QuantitySold, &p.Revenue); err != nil {
			return nil, fmt.Errorf("scan top product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (s *reportStore) GetSalesStats(ctx context.Context, from, to time.Time) (*domain.SalesStats, error) {
	query := `
		SELECT COUNT(*) AS total_sales,
		       COALESCE(SUM(total_amount), 0) AS total_revenue,
		       COALESCE(AVG(total_amount), 0) AS avg_sale_amount
		FROM sales
		WHERE created_at BETWEEN $1 AND $2`

	var stats domain.SalesStats
	err := s.db.QueryRowContext(ctx, query, from, to).
		Scan(&stats.TotalSales, &stats.TotalRevenue, &stats.AvgSaleAmount)
	if err != nil {
		return nil, fmt.Errorf("query sales stats: %w", err)
	}
	return &stats, nil
}

func (s *reportStore) GetSalesByPaymentMethod(ctx context.Context, from, to time.Time) ([]domain.PaymentMethodStat, error) {
	query := `
		SELECT COALESCE(payment_method, 'unknown') AS payment_method,
		       COUNT(*) AS transaction_count,
		       COALESCE(SUM(total_amount), 0) AS total_amount
		FROM sales
		WHERE created_at BETWEEN $1 AND $2
		GROUP BY payment_method
		ORDER BY total_amount DESC`

	rows, err := s.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("query sales by payment method: %w", err)
	}
	defer rows.Close()

	var stats []domain.PaymentMethodStat
	for rows.Next() {
		var st domain.PaymentMethodStat
		if err := rows.Scan(&st.Method, &st.Transactions, &st.Amount); err != nil {
			return nil, fmt.Errorf("scan payment method stat: %w", err)
		}
		stats = append(stats, st)
	}
	return stats, rows.Err()
}
