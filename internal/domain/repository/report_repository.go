package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// DailySalesRow represents order totals rolled up for one calendar day
type DailySalesRow struct {
	Day        string          `json:"day"`
	TotalSales decimal.Decimal `json:"total_sales"`
	OrderCount int64           `json:"order_count"`
}

// WeeklySalesRow represents order totals rolled up for one ISO-8601 week
type WeeklySalesRow struct {
	YearWeek   string          `json:"year_week"`
	TotalSales decimal.Decimal `json:"total_sales"`
	OrderCount int64           `json:"order_count"`
}

// MonthlySalesRow represents order totals rolled up for one calendar month
type MonthlySalesRow struct {
	YearMonth  string          `json:"year_month"`
	TotalSales decimal.Decimal `json:"total_sales"`
	OrderCount int64           `json:"order_count"`
}

// TopItemRow represents an item's ranking across all historical order lines.
// Grouping is by item name, so renamed or duplicate catalog entries that
// share a name collapse into one row.
type TopItemRow struct {
	ItemName      string          `json:"item_name"`
	TotalQuantity int64           `json:"total_quantity"`
	TotalSales    decimal.Decimal `json:"total_sales"`
}

// ReportRepository defines interface for sales aggregation queries.
// All queries are read-only over persisted orders/order_items.
type ReportRepository interface {
	DailySummary(ctx context.Context) ([]DailySalesRow, error)
	WeeklySummary(ctx context.Context) ([]WeeklySalesRow, error)
	MonthlySummary(ctx context.Context) ([]MonthlySalesRow, error)
	TopItems(ctx context.Context, limit int) ([]TopItemRow, error)
}
