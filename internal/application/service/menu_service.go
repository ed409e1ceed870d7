package service

import (
	"context"
	"fmt"

	"github.com/restobill/restobill-api/internal/domain/entity"
	"github.com/restobill/restobill-api/internal/domain/repository"
	"github.com/restobill/restobill-api/pkg/apperror"
	"github.com/shopspring/decimal"
)

// MenuService exposes the menu catalog to terminals
type MenuService struct {
	menuRepo repository.MenuRepository
}

// NewMenuService creates a new menu service
func NewMenuService(menuRepo repository.MenuRepository) *MenuService {
	return &MenuService{menuRepo: menuRepo}
}

// MenuRowInput represents one catalog row in an import
type MenuRowInput struct {
	ItemName string
	Category string
	Price    decimal.Decimal
	GSTRate  decimal.Decimal
}

// ListActiveMenuItems returns the active menu entries
func (s *MenuService) ListActiveMenuItems(ctx context.Context) ([]entity.MenuItem, error) {
	items, err := s.menuRepo.ListActive(ctx)
	if err != nil {
		return nil, apperror.NewStorageError(err)
	}
	return items, nil
}

// ImportMenu upserts catalog rows by item name: new names are inserted,
// existing ones get their category, price and GST rate replaced and are
// reactivated.
func (s *MenuService) ImportMenu(ctx context.Context, rows []MenuRowInput) (int, error) {
	if len(rows) == 0 {
		return 0, apperror.NewValidationError([]apperror.FieldError{
			{Field: "items", Message: "import must contain at least one row"},
		})
	}

	var fieldErrors []apperror.FieldError
	items := make([]entity.MenuItem, 0, len(rows))
	for i, row := range rows {
		if row.ItemName == "" {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   fmt.Sprintf("items[%d].item_name", i),
				Message: "item name is required",
			})
		}
		if row.Price.IsNegative() {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   fmt.Sprintf("items[%d].price", i),
				Message: "price must not be negative",
			})
		}
		if row.GSTRate.IsNegative() {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   fmt.Sprintf("items[%d].gst_rate", i),
				Message: "GST rate must not be negative",
			})
		}
		items = append(items, entity.MenuItem{
			ItemName: row.ItemName,
			Category: row.Category,
			Price:    row.Price,
			GSTRate:  row.GSTRate,
			IsActive: true,
		})
	}
	if len(fieldErrors) > 0 {
		return 0, apperror.NewValidationError(fieldErrors)
	}

	if err := s.menuRepo.UpsertByName(ctx, items); err != nil {
		return 0, apperror.NewStorageError(err)
	}
	return len(items), nil
}
