package repository

import (
	"context"
	"time"

	"github.com/restobill/restobill-api/internal/domain/entity"
	"github.com/restobill/restobill-api/internal/domain/enum"
	"github.com/restobill/restobill-api/pkg/pagination"
)

// OrderRepository defines the interface for order data operations
type OrderRepository interface {
	// CreateWithItems persists the order header and all of its items as a
	// single atomic unit. On success order.ID and the item IDs are set;
	// on failure nothing is committed.
	CreateWithItems(ctx context.Context, order *entity.Order, items []entity.OrderItem) error
	GetWithItems(ctx context.Context, id int64) (*entity.Order, error)
	List(ctx context.Context, params *OrderFilterParams) ([]entity.Order, int64, error)
}

// OrderFilterParams contains filtering parameters for order history queries
type OrderFilterParams struct {
	Pagination *pagination.PaginationParams
	Mode       *enum.OrderMode
	StartDate  *time.Time
	EndDate    *time.Time
}
