package service

import (
	"context"
	"time"

	"github.com/restobill/restobill-api/internal/domain/entity"
	"github.com/restobill/restobill-api/internal/domain/enum"
	"github.com/restobill/restobill-api/internal/domain/repository"
	"github.com/restobill/restobill-api/pkg/apperror"
	"github.com/restobill/restobill-api/pkg/pagination"
	"github.com/shopspring/decimal"
)

// OrderService handles the order transaction: pricing a cart, applying the
// payment policy and persisting the bill atomically.
type OrderService struct {
	orderRepo    repository.OrderRepository
	pricing      *PricingService
	allowPartial bool
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo repository.OrderRepository, pricing *PricingService, allowPartial bool) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		pricing:      pricing,
		allowPartial: allowPartial,
	}
}

// CreateOrderInput represents the create order input
type CreateOrderInput struct {
	OrderMode     enum.OrderMode
	TableNo       *string
	CustomerName  *string
	PaymentMethod enum.PaymentMethod
	Items         []CartLine
	Discount      decimal.Decimal
	AmountPaid    decimal.Decimal
	Notes         *string
}

// CreateOrder prices the cart and persists the order header together with
// all line snapshots in one transaction. Validation and payment-policy
// failures happen before any write; on a storage failure nothing is
// committed and the caller may retry with the same input.
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error) {
	var fieldErrors []apperror.FieldError
	if !input.OrderMode.Valid() {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   "order_mode",
			Message: "order mode must be DINE_IN or TAKEAWAY",
		})
	}
	if !input.PaymentMethod.Valid() {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   "payment_method",
			Message: "payment method must be CASH, CARD, UPI or OTHER",
		})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	priced, err := s.pricing.Compute(input.Items, input.Discount)
	if err != nil {
		return nil, err
	}

	changeDue := input.AmountPaid.Sub(priced.Total)
	if changeDue.IsNegative() {
		if !s.allowPartial {
			return nil, apperror.NewInsufficientPaymentError(
				priced.Total.StringFixed(2), input.AmountPaid.StringFixed(2))
		}
		changeDue = decimal.Zero
	}

	order := &entity.Order{
		OrderMode:      input.OrderMode,
		TableNo:        input.TableNo,
		CustomerName:   input.CustomerName,
		Subtotal:       priced.Subtotal,
		DiscountAmount: priced.Discount,
		TaxAmount:      priced.TaxAmount,
		TotalAmount:    priced.Total,
		PaymentMethod:  input.PaymentMethod,
		AmountPaid:     input.AmountPaid,
		ChangeDue:      changeDue,
		CreatedAt:      time.Now().UTC(),
		Notes:          input.Notes,
	}

	items := make([]entity.OrderItem, 0, len(priced.Lines))
	for _, line := range priced.Lines {
		items = append(items, entity.OrderItem{
			MenuID:       line.MenuID,
			ItemName:     line.ItemName,
			UnitPrice:    line.UnitPrice,
			GSTRate:      line.GSTRate,
			Quantity:     line.Quantity,
			LineSubtotal: line.LineSubtotal,
			LineTax:      line.LineTax,
			LineTotal:    line.LineTotal,
		})
	}

	if err := s.orderRepo.CreateWithItems(ctx, order, items); err != nil {
		return nil, apperror.NewStorageError(err)
	}

	return order, nil
}

// GetOrder retrieves a persisted order header with its line items
func (s *OrderService) GetOrder(ctx context.Context, id int64) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, apperror.NewStorageError(err)
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrders lists order history with filtering
func (s *OrderService) ListOrders(ctx context.Context, params *repository.OrderFilterParams) (*pagination.PaginatedResult[entity.Order], error) {
	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, apperror.NewStorageError(err)
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}
