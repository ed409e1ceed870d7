package enum

import "database/sql/driver"

// PaymentMethod represents how an order was paid
type PaymentMethod string

const (
	PaymentMethodCash  PaymentMethod = "CASH"
	PaymentMethodCard  PaymentMethod = "CARD"
	PaymentMethodUPI   PaymentMethod = "UPI"
	PaymentMethodOther PaymentMethod = "OTHER"
)

func (p PaymentMethod) String() string {
	return string(p)
}

// Valid reports whether the payment method is one of the known values
func (p PaymentMethod) Valid() bool {
	switch p {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodUPI, PaymentMethodOther:
		return true
	}
	return false
}

func (p PaymentMethod) Value() (driver.Value, error) {
	return string(p), nil
}

func (p *PaymentMethod) Scan(value interface{}) error {
	if value == nil {
		*p = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		*p = PaymentMethod(v)
	case []byte:
		*p = PaymentMethod(v)
	}
	return nil
}
