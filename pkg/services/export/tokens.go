package export

// Placeholder tokens recognized inside template cells. Tokens are matched as
// exact substrings, so a cell may mix literal text and tokens, e.g.
// "Period: {{PERIOD_FROM}} to {{PERIOD_TO}}".
const (
	TokenCompanyName          = "{{COMPANY_NAME}}"
	TokenCustomHeader         = "{{CUSTOM_HEADER}}"
	TokenReportTitle          = "{{REPORT_TITLE}}"
	TokenPeriodFrom           = "{{PERIOD_FROM}}"
	TokenPeriodTo             = "{{PERIOD_TO}}"
	TokenGeneratedAt          = "{{GENERATED_AT}}"
	TokenTotalTransactions    = "{{TOTAL_TRANSACTIONS}}"
	TokenTotalRevenue         = "{{TOTAL_REVENUE}}"
	TokenTotalQuantitySold    = "{{TOTAL_QUANTITY_SOLD}}"
	TokenTotalProductsRevenue = "{{TOTAL_PRODUCTS_REVENUE}}"
)

// Region markers denote rows that get replaced by a repeating data block.
// The marker row is deleted during expansion and never survives into the
// output document.
const (
	TokenSalesStartRow    = "{{SALES_START_ROW}}"
	TokenProductsStartRow = "{{PRODUCTS_START_ROW}}"
)

const (
	dateLayout      = "2006-01-02"
	timestampLayout = "January 2, 2006 at 3:04 PM"
)
