package repository

import (
	"context"

	domainRepo "github.com/restobill/restobill-api/internal/domain/repository"
	"gorm.io/gorm"
)

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) domainRepo.ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) DailySummary(ctx context.Context) ([]domainRepo.DailySalesRow, error) {
	var results []domainRepo.DailySalesRow

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			to_char(created_at, 'YYYY-MM-DD') AS day,
			COALESCE(SUM(total_amount), 0) AS total_sales,
			COUNT(*) AS order_count
		FROM orders
		GROUP BY 1
		ORDER BY 1
	`).Scan(&results).Error
	if err != nil {
		return nil, err
	}

	return results, nil
}

// WeeklySummary buckets by ISO-8601 week-numbering year and week,
// e.g. "2026-36".
func (r *reportRepository) WeeklySummary(ctx context.Context) ([]domainRepo.WeeklySalesRow, error) {
	var results []domainRepo.WeeklySalesRow

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			to_char(created_at, 'IYYY-IW') AS year_week,
			COALESCE(SUM(total_amount), 0) AS total_sales,
			COUNT(*) AS order_count
		FROM orders
		GROUP BY 1
		ORDER BY 1
	`).Scan(&results).Error
	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *reportRepository) MonthlySummary(ctx context.Context) ([]domainRepo.MonthlySalesRow, error) {
	var results []domainRepo.MonthlySalesRow

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			to_char(created_at, 'YYYY-MM') AS year_month,
			COALESCE(SUM(total_amount), 0) AS total_sales,
			COUNT(*) AS order_count
		FROM orders
		GROUP BY 1
		ORDER BY 1
	`).Scan(&results).Error
	if err != nil {
		return nil, err
	}

	return results, nil
}

// TopItems groups historical order lines by item name. Ties on quantity
// break by total sales descending, then name ascending.
func (r *reportRepository) TopItems(ctx context.Context, limit int) ([]domainRepo.TopItemRow, error) {
	var results []domainRepo.TopItemRow

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			item_name,
			COALESCE(SUM(quantity), 0) AS total_quantity,
			COALESCE(SUM(line_total), 0) AS total_sales
		FROM order_items
		GROUP BY item_name
		ORDER BY total_quantity DESC, total_sales DESC, item_name ASC
		LIMIT ?
	`, limit).Scan(&results).Error
	if err != nil {
		return nil, err
	}

	return results, nil
}
