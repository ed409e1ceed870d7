package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/restobill/restobill-api/internal/domain/entity"
	"github.com/restobill/restobill-api/internal/domain/enum"
	"github.com/restobill/restobill-api/internal/domain/repository"
	"github.com/restobill/restobill-api/pkg/apperror"
	"github.com/shopspring/decimal"
)

// Mock OrderRepository
type mockOrderRepo struct {
	orders      map[int64]*entity.Order
	nextID      int64
	failCreate  error
	createCalls int
}

func newMockOrderRepo() *mockOrderRepo {
	return &mockOrderRepo{orders: make(map[int64]*entity.Order)}
}

func (m *mockOrderRepo) CreateWithItems(ctx context.Context, order *entity.Order, items []entity.OrderItem) error {
	m.createCalls++
	if m.failCreate != nil {
		// Simulated mid-transaction failure: nothing is committed
		return m.failCreate
	}

	m.nextID++
	order.ID = m.nextID
	for i := range items {
		items[i].ID = int64(i + 1)
		items[i].OrderID = order.ID
	}
	order.Items = items

	stored := *order
	m.orders[order.ID] = &stored
	return nil
}

func (m *mockOrderRepo) GetWithItems(ctx context.Context, id int64) (*entity.Order, error) {
	order, ok := m.orders[id]
	if !ok {
		return nil, nil
	}
	return order, nil
}

func (m *mockOrderRepo) List(ctx context.Context, params *repository.OrderFilterParams) ([]entity.Order, int64, error) {
	var orders []entity.Order
	for _, o := range m.orders {
		orders = append(orders, *o)
	}
	return orders, int64(len(orders)), nil
}

func sampleInput() *CreateOrderInput {
	return &CreateOrderInput{
		OrderMode:     enum.OrderModeDineIn,
		PaymentMethod: enum.PaymentMethodCash,
		Items:         sampleCart(),
		Discount:      dec("17.20"),
		AmountPaid:    dec("400.00"),
	}
}

func appErrorCode(t *testing.T, err error) int {
	t.Helper()
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %v", err)
	}
	return appErr.Code
}

func TestCreateOrder_RoundTrip(t *testing.T) {
	repo := newMockOrderRepo()
	svc := NewOrderService(repo, NewPricingService(), false)

	created, err := svc.CreateOrder(context.Background(), sampleInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected order ID to be assigned")
	}

	got, err := svc.GetOrder(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}

	if !got.Subtotal.Equal(dec("380")) {
		t.Errorf("subtotal: expected 380, got %s", got.Subtotal)
	}
	if !got.TaxAmount.Equal(dec("37.2")) {
		t.Errorf("tax: expected 37.2, got %s", got.TaxAmount)
	}
	if !got.TotalAmount.Equal(dec("400")) {
		t.Errorf("total: expected 400, got %s", got.TotalAmount)
	}
	if !got.ChangeDue.Equal(decimal.Zero) {
		t.Errorf("change due: expected 0, got %s", got.ChangeDue)
	}
	if len(got.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got.Items))
	}

	// Stored rows must satisfy the header/line invariants
	sumSubtotal := decimal.Zero
	sumTax := decimal.Zero
	for _, item := range got.Items {
		sumSubtotal = sumSubtotal.Add(item.LineSubtotal)
		sumTax = sumTax.Add(item.LineTax)
	}
	if !got.Subtotal.Equal(sumSubtotal) {
		t.Errorf("header subtotal %s does not match line sum %s", got.Subtotal, sumSubtotal)
	}
	if !got.TaxAmount.Equal(sumTax) {
		t.Errorf("header tax %s does not match line sum %s", got.TaxAmount, sumTax)
	}
	if !got.TotalAmount.Equal(got.Subtotal.Add(got.TaxAmount).Sub(got.DiscountAmount)) {
		t.Error("header total violates subtotal+tax-discount")
	}
}

func TestCreateOrder_Overpayment(t *testing.T) {
	repo := newMockOrderRepo()
	svc := NewOrderService(repo, NewPricingService(), false)

	input := sampleInput()
	input.Discount = decimal.Zero
	input.AmountPaid = dec("500.00")

	order, err := svc.CreateOrder(context.Background(), input)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !order.TotalAmount.Equal(dec("417.2")) {
		t.Errorf("total: expected 417.2, got %s", order.TotalAmount)
	}
	if !order.ChangeDue.Equal(dec("82.8")) {
		t.Errorf("change due: expected 82.8, got %s", order.ChangeDue)
	}
}

func TestCreateOrder_InsufficientPayment(t *testing.T) {
	repo := newMockOrderRepo()
	svc := NewOrderService(repo, NewPricingService(), false)

	input := sampleInput()
	input.AmountPaid = dec("300.00")

	_, err := svc.CreateOrder(context.Background(), input)
	if err == nil {
		t.Fatal("expected error, got none")
	}
	if code := appErrorCode(t, err); code != http.StatusPaymentRequired {
		t.Errorf("expected status %d, got %d", http.StatusPaymentRequired, code)
	}
	if repo.createCalls != 0 {
		t.Errorf("expected no write attempt, got %d", repo.createCalls)
	}
}

func TestCreateOrder_PartialPaymentAllowed(t *testing.T) {
	repo := newMockOrderRepo()
	svc := NewOrderService(repo, NewPricingService(), true)

	input := sampleInput()
	input.AmountPaid = dec("300.00")

	order, err := svc.CreateOrder(context.Background(), input)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !order.AmountPaid.Equal(dec("300")) {
		t.Errorf("amount paid: expected 300, got %s", order.AmountPaid)
	}
	if !order.ChangeDue.Equal(decimal.Zero) {
		t.Errorf("change due: expected 0, got %s", order.ChangeDue)
	}
}

func TestCreateOrder_ValidationBeforeWrite(t *testing.T) {
	tests := []struct {
		name  string
		input *CreateOrderInput
	}{
		{
			name: "invalid order mode",
			input: func() *CreateOrderInput {
				in := sampleInput()
				in.OrderMode = "DELIVERY"
				return in
			}(),
		},
		{
			name: "invalid payment method",
			input: func() *CreateOrderInput {
				in := sampleInput()
				in.PaymentMethod = "CHEQUE"
				return in
			}(),
		},
		{
			name: "empty cart",
			input: func() *CreateOrderInput {
				in := sampleInput()
				in.Items = nil
				return in
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockOrderRepo()
			svc := NewOrderService(repo, NewPricingService(), false)

			_, err := svc.CreateOrder(context.Background(), tt.input)
			if err == nil {
				t.Fatal("expected error, got none")
			}
			if code := appErrorCode(t, err); code != http.StatusUnprocessableEntity {
				t.Errorf("expected status %d, got %d", http.StatusUnprocessableEntity, code)
			}
			if repo.createCalls != 0 {
				t.Errorf("expected no write attempt, got %d", repo.createCalls)
			}
		})
	}
}

func TestCreateOrder_AtomicFailure(t *testing.T) {
	repo := newMockOrderRepo()
	repo.failCreate = errors.New("connection reset during commit")
	svc := NewOrderService(repo, NewPricingService(), false)

	_, err := svc.CreateOrder(context.Background(), sampleInput())
	if err == nil {
		t.Fatal("expected error, got none")
	}
	if code := appErrorCode(t, err); code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, code)
	}

	// The failed transaction left nothing behind: retrieval must report
	// not-found, never a header without its lines.
	_, err = svc.GetOrder(context.Background(), 1)
	if err == nil {
		t.Fatal("expected not found, got order")
	}
	if code := appErrorCode(t, err); code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, code)
	}
}

func TestGetOrder_NotFound(t *testing.T) {
	svc := NewOrderService(newMockOrderRepo(), NewPricingService(), false)

	_, err := svc.GetOrder(context.Background(), 42)
	if err == nil {
		t.Fatal("expected error, got none")
	}
	if code := appErrorCode(t, err); code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, code)
	}
}
