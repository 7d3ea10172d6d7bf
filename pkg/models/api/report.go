package api

// SalesByDate mirrors one aggregated sales bucket on the wire.
type SalesByDate struct {
	SaleDate          string `json:"sale_date"`
	TotalTransactions int64  `json:"total_transactions"`
	TotalRevenue      string `json:"total_revenue"`
}

// TopProduct mirrors one top-product ranking entry on the wire.
type TopProduct struct {
	ProductName  string `json:"product_name"`
	SKU          string `json:"sku,omitempty"`
	TotalQtySold int64  `json:"total_qty_sold"`
	TotalRevenue string `json:"total_revenue"`
}

// SalesStats is the dashboard summary response.
type SalesStats struct {
	TotalSales    int64  `json:"total_sales"`
	TotalRevenue  string `json:"total_revenue"`
	AvgSaleAmount string `json:"avg_sale_amount"`
}

// PaymentMethodStats aggregates sales per payment method.
type PaymentMethodStats struct {
	PaymentMethod    string `json:"payment_method"`
	TransactionCount int64  `json:"transaction_count"`
	TotalAmount      string `json:"total_amount"`
}

// Error is the uniform error payload returned by the API.
type Error struct {
	Error string `json:"error"`
}
