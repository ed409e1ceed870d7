package service

import (
	"context"
	"testing"

	"github.com/restobill/restobill-api/internal/domain/repository"
)

// Mock ReportRepository
type mockReportRepo struct {
	daily     []repository.DailySalesRow
	topItems  []repository.TopItemRow
	lastLimit int
}

func (m *mockReportRepo) DailySummary(ctx context.Context) ([]repository.DailySalesRow, error) {
	return m.daily, nil
}

func (m *mockReportRepo) WeeklySummary(ctx context.Context) ([]repository.WeeklySalesRow, error) {
	return nil, nil
}

func (m *mockReportRepo) MonthlySummary(ctx context.Context) ([]repository.MonthlySalesRow, error) {
	return nil, nil
}

func (m *mockReportRepo) TopItems(ctx context.Context, limit int) ([]repository.TopItemRow, error) {
	m.lastLimit = limit
	if limit < len(m.topItems) {
		return m.topItems[:limit], nil
	}
	return m.topItems, nil
}

func TestDailySummary(t *testing.T) {
	repo := &mockReportRepo{
		daily: []repository.DailySalesRow{
			{Day: "2026-08-30", TotalSales: dec("617.20"), OrderCount: 2},
		},
	}
	svc := NewReportService(repo)

	rows, err := svc.DailySummary(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Day != "2026-08-30" || rows[0].OrderCount != 2 {
		t.Errorf("unexpected row: %+v", rows[0])
	}
	if !rows[0].TotalSales.Equal(dec("617.20")) {
		t.Errorf("total sales: expected 617.20, got %s", rows[0].TotalSales)
	}
}

func TestTopItems_LimitHandling(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{name: "explicit limit", limit: 5, wantLimit: 5},
		{name: "zero falls back to default", limit: 0, wantLimit: 10},
		{name: "negative falls back to default", limit: -3, wantLimit: 10},
		{name: "oversized limit is capped", limit: 5000, wantLimit: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockReportRepo{}
			svc := NewReportService(repo)

			if _, err := svc.TopItems(context.Background(), tt.limit); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if repo.lastLimit != tt.wantLimit {
				t.Errorf("expected limit %d, got %d", tt.wantLimit, repo.lastLimit)
			}
		})
	}
}

func TestTopItems_Ranking(t *testing.T) {
	repo := &mockReportRepo{
		topItems: []repository.TopItemRow{
			{ItemName: "Masala Dosa", TotalQuantity: 2, TotalSales: dec("252.00")},
			{ItemName: "Cold Coffee", TotalQuantity: 1, TotalSales: dec("165.20")},
		},
	}
	svc := NewReportService(repo)

	rows, err := svc.TopItems(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].ItemName != "Masala Dosa" {
		t.Errorf("expected Masala Dosa first, got %s", rows[0].ItemName)
	}
}
