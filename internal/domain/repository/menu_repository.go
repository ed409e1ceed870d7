package repository

import (
	"context"

	"github.com/restobill/restobill-api/internal/domain/entity"
)

// MenuRepository defines the interface for menu catalog data operations
type MenuRepository interface {
	ListActive(ctx context.Context) ([]entity.MenuItem, error)
	UpsertByName(ctx context.Context, items []entity.MenuItem) error
}
