package service

import (
	"errors"
	"net/http"
	"testing"

	"github.com/restobill/restobill-api/pkg/apperror"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleCart() []CartLine {
	return []CartLine{
		{ItemName: "Masala Dosa", UnitPrice: dec("120.0"), GSTRate: dec("5.0"), Quantity: 2},
		{ItemName: "Cold Coffee", UnitPrice: dec("140.0"), GSTRate: dec("18.0"), Quantity: 1},
	}
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status %d, got %d", http.StatusUnprocessableEntity, appErr.Code)
	}
}

func TestCompute_Validation(t *testing.T) {
	tests := []struct {
		name     string
		lines    []CartLine
		discount decimal.Decimal
	}{
		{
			name:     "empty cart",
			lines:    nil,
			discount: decimal.Zero,
		},
		{
			name: "zero quantity",
			lines: []CartLine{
				{ItemName: "Masala Dosa", UnitPrice: dec("120"), GSTRate: dec("5"), Quantity: 0},
			},
			discount: decimal.Zero,
		},
		{
			name: "negative quantity",
			lines: []CartLine{
				{ItemName: "Masala Dosa", UnitPrice: dec("120"), GSTRate: dec("5"), Quantity: -1},
			},
			discount: decimal.Zero,
		},
		{
			name: "negative unit price",
			lines: []CartLine{
				{ItemName: "Masala Dosa", UnitPrice: dec("-1"), GSTRate: dec("5"), Quantity: 1},
			},
			discount: decimal.Zero,
		},
		{
			name: "negative tax rate",
			lines: []CartLine{
				{ItemName: "Masala Dosa", UnitPrice: dec("120"), GSTRate: dec("-5"), Quantity: 1},
			},
			discount: decimal.Zero,
		},
		{
			name:     "negative discount",
			lines:    sampleCart(),
			discount: dec("-10"),
		},
		{
			name:     "discount exceeding subtotal plus tax",
			lines:    sampleCart(),
			discount: dec("417.21"),
		},
	}

	svc := NewPricingService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Compute(tt.lines, tt.discount)
			if err == nil {
				t.Fatal("expected error, got none")
			}
			assertValidationError(t, err)
		})
	}
}

func TestCompute_BillBreakdown(t *testing.T) {
	svc := NewPricingService()

	priced, err := svc.Compute(sampleCart(), decimal.Zero)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(priced.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(priced.Lines))
	}

	wantLines := []struct {
		subtotal, tax, total string
	}{
		{"240", "12", "252"},
		{"140", "25.2", "165.2"},
	}
	for i, want := range wantLines {
		line := priced.Lines[i]
		if !line.LineSubtotal.Equal(dec(want.subtotal)) {
			t.Errorf("line %d subtotal: expected %s, got %s", i, want.subtotal, line.LineSubtotal)
		}
		if !line.LineTax.Equal(dec(want.tax)) {
			t.Errorf("line %d tax: expected %s, got %s", i, want.tax, line.LineTax)
		}
		if !line.LineTotal.Equal(dec(want.total)) {
			t.Errorf("line %d total: expected %s, got %s", i, want.total, line.LineTotal)
		}
	}

	if !priced.Subtotal.Equal(dec("380")) {
		t.Errorf("subtotal: expected 380, got %s", priced.Subtotal)
	}
	if !priced.TaxAmount.Equal(dec("37.2")) {
		t.Errorf("tax: expected 37.2, got %s", priced.TaxAmount)
	}
	if !priced.Total.Equal(dec("417.2")) {
		t.Errorf("total: expected 417.2, got %s", priced.Total)
	}
}

func TestCompute_Discount(t *testing.T) {
	svc := NewPricingService()

	priced, err := svc.Compute(sampleCart(), dec("17.20"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !priced.Total.Equal(dec("400")) {
		t.Errorf("total: expected 400, got %s", priced.Total)
	}
	// Discount never touches subtotal or tax
	if !priced.Subtotal.Equal(dec("380")) {
		t.Errorf("subtotal: expected 380, got %s", priced.Subtotal)
	}
	if !priced.TaxAmount.Equal(dec("37.2")) {
		t.Errorf("tax: expected 37.2, got %s", priced.TaxAmount)
	}
}

func TestCompute_SumInvariants(t *testing.T) {
	svc := NewPricingService()

	cart := []CartLine{
		{ItemName: "Paneer Tikka", UnitPrice: dec("180.00"), GSTRate: dec("5.0"), Quantity: 3},
		{ItemName: "Butter Naan", UnitPrice: dec("35.00"), GSTRate: dec("5.0"), Quantity: 7},
		{ItemName: "Fresh Lime Soda", UnitPrice: dec("90.00"), GSTRate: dec("18.0"), Quantity: 2},
	}

	priced, err := svc.Compute(cart, dec("25"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sumSubtotal := decimal.Zero
	sumTax := decimal.Zero
	for _, line := range priced.Lines {
		if !line.LineSubtotal.Equal(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))) {
			t.Errorf("line %s subtotal does not match price*qty", line.ItemName)
		}
		if !line.LineTotal.Equal(line.LineSubtotal.Add(line.LineTax)) {
			t.Errorf("line %s total does not match subtotal+tax", line.ItemName)
		}
		sumSubtotal = sumSubtotal.Add(line.LineSubtotal)
		sumTax = sumTax.Add(line.LineTax)
	}

	if !priced.Subtotal.Equal(sumSubtotal) {
		t.Errorf("subtotal %s does not equal sum of line subtotals %s", priced.Subtotal, sumSubtotal)
	}
	if !priced.TaxAmount.Equal(sumTax) {
		t.Errorf("tax %s does not equal sum of line taxes %s", priced.TaxAmount, sumTax)
	}
	if !priced.Total.Equal(priced.Subtotal.Add(priced.TaxAmount).Sub(priced.Discount)) {
		t.Errorf("total %s violates subtotal+tax-discount", priced.Total)
	}
}

func TestCompute_Deterministic(t *testing.T) {
	svc := NewPricingService()

	first, err := svc.Compute(sampleCart(), dec("10"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Compute(sampleCart(), dec("10"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.Total.String() != second.Total.String() ||
		first.Subtotal.String() != second.Subtotal.String() ||
		first.TaxAmount.String() != second.TaxAmount.String() {
		t.Error("identical inputs produced different totals")
	}
	for i := range first.Lines {
		if first.Lines[i].LineTotal.String() != second.Lines[i].LineTotal.String() {
			t.Errorf("line %d differs between runs", i)
		}
	}
}
