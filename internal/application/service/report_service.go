package service

import (
	"context"

	"github.com/restobill/restobill-api/internal/domain/repository"
	"github.com/restobill/restobill-api/pkg/apperror"
)

const (
	defaultTopItemsLimit = 10
	maxTopItemsLimit     = 100
)

// ReportService provides read-only sales aggregation over persisted orders.
// It never touches the live menu catalog.
type ReportService struct {
	reportRepo repository.ReportRepository
}

// NewReportService creates a new report service
func NewReportService(reportRepo repository.ReportRepository) *ReportService {
	return &ReportService{reportRepo: reportRepo}
}

// DailySummary returns order totals and counts per calendar day
func (s *ReportService) DailySummary(ctx context.Context) ([]repository.DailySalesRow, error) {
	rows, err := s.reportRepo.DailySummary(ctx)
	if err != nil {
		return nil, apperror.NewStorageError(err)
	}
	return rows, nil
}

// WeeklySummary returns order totals and counts per ISO-8601 week
func (s *ReportService) WeeklySummary(ctx context.Context) ([]repository.WeeklySalesRow, error) {
	rows, err := s.reportRepo.WeeklySummary(ctx)
	if err != nil {
		return nil, apperror.NewStorageError(err)
	}
	return rows, nil
}

// MonthlySummary returns order totals and counts per calendar month
func (s *ReportService) MonthlySummary(ctx context.Context) ([]repository.MonthlySalesRow, error) {
	rows, err := s.reportRepo.MonthlySummary(ctx)
	if err != nil {
		return nil, apperror.NewStorageError(err)
	}
	return rows, nil
}

// TopItems returns the best-selling items ranked by quantity sold.
// A non-positive limit falls back to the default of 10; the limit is
// capped at 100.
func (s *ReportService) TopItems(ctx context.Context, limit int) ([]repository.TopItemRow, error) {
	if limit <= 0 {
		limit = defaultTopItemsLimit
	}
	if limit > maxTopItemsLimit {
		limit = maxTopItemsLimit
	}

	rows, err := s.reportRepo.TopItems(ctx, limit)
	if err != nil {
		return nil, apperror.NewStorageError(err)
	}
	return rows, nil
}
