package repository

import (
	"context"

	"github.com/restobill/restobill-api/internal/domain/entity"
	domainRepo "github.com/restobill/restobill-api/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type menuRepository struct {
	db *gorm.DB
}

// NewMenuRepository creates a new menu repository
func NewMenuRepository(db *gorm.DB) domainRepo.MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) ListActive(ctx context.Context) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("category ASC, item_name ASC").
		Find(&items).Error
	return items, err
}

// UpsertByName inserts new catalog rows and replaces price, category and
// GST rate for existing names, reactivating them. Item name is the natural
// key of the catalog.
func (r *menuRepository) UpsertByName(ctx context.Context, items []entity.MenuItem) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "item_name"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"category", "price", "gst_rate", "is_active", "updated_at",
		}),
	}).Create(&items).Error
}
