package service

import (
	"fmt"

	"github.com/restobill/restobill-api/pkg/apperror"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// CartLine is one selected item as handed over by the terminal. It carries
// the price/GST snapshot taken when the item was added to the cart, so a
// later catalog edit never changes a bill in progress.
type CartLine struct {
	MenuID    *int64
	ItemName  string
	UnitPrice decimal.Decimal
	GSTRate   decimal.Decimal
	Quantity  int
}

// LineBreakdown is the priced form of a cart line
type LineBreakdown struct {
	CartLine
	LineSubtotal decimal.Decimal
	LineTax      decimal.Decimal
	LineTotal    decimal.Decimal
}

// PricedOrder holds the computed bill for a cart
type PricedOrder struct {
	Subtotal  decimal.Decimal
	TaxAmount decimal.Decimal
	Discount  decimal.Decimal
	Total     decimal.Decimal
	Lines     []LineBreakdown
}

// PricingService computes bill totals for a cart. It is pure: no I/O,
// deterministic, safe to call repeatedly for previews before commit.
type PricingService struct{}

// NewPricingService creates a new pricing service
func NewPricingService() *PricingService {
	return &PricingService{}
}

// Compute prices every cart line and derives subtotal, tax and total.
// Per line: lineSubtotal = unitPrice * quantity,
// lineTax = lineSubtotal * gstRate / 100, lineTotal = lineSubtotal + lineTax.
// Total = subtotal + tax - discount. All arithmetic is exact decimal;
// rounding is left to display boundaries.
func (s *PricingService) Compute(lines []CartLine, discount decimal.Decimal) (*PricedOrder, error) {
	if len(lines) == 0 {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "items", Message: "cart must contain at least one line"},
		})
	}

	var fieldErrors []apperror.FieldError
	for i, line := range lines {
		if line.Quantity <= 0 {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   fmt.Sprintf("items[%d].quantity", i),
				Message: "quantity must be positive",
			})
		}
		if line.UnitPrice.IsNegative() {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   fmt.Sprintf("items[%d].unit_price", i),
				Message: "unit price must not be negative",
			})
		}
		if line.GSTRate.IsNegative() {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   fmt.Sprintf("items[%d].gst_rate", i),
				Message: "GST rate must not be negative",
			})
		}
	}
	if discount.IsNegative() {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   "discount",
			Message: "discount must not be negative",
		})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	priced := &PricedOrder{
		Subtotal:  decimal.Zero,
		TaxAmount: decimal.Zero,
		Discount:  discount,
		Lines:     make([]LineBreakdown, 0, len(lines)),
	}

	for _, line := range lines {
		qty := decimal.NewFromInt(int64(line.Quantity))
		lineSubtotal := line.UnitPrice.Mul(qty)
		lineTax := lineSubtotal.Mul(line.GSTRate).Div(oneHundred)

		priced.Subtotal = priced.Subtotal.Add(lineSubtotal)
		priced.TaxAmount = priced.TaxAmount.Add(lineTax)
		priced.Lines = append(priced.Lines, LineBreakdown{
			CartLine:     line,
			LineSubtotal: lineSubtotal,
			LineTax:      lineTax,
			LineTotal:    lineSubtotal.Add(lineTax),
		})
	}

	gross := priced.Subtotal.Add(priced.TaxAmount)
	if discount.GreaterThan(gross) {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "discount", Message: "discount must not exceed subtotal plus tax"},
		})
	}

	priced.Total = gross.Sub(discount)
	return priced, nil
}
