package enum

import "database/sql/driver"

// OrderMode represents whether an order is for on-premises dining or takeaway
type OrderMode string

const (
	OrderModeDineIn   OrderMode = "DINE_IN"
	OrderModeTakeaway OrderMode = "TAKEAWAY"
)

func (m OrderMode) String() string {
	return string(m)
}

// Valid reports whether the mode is one of the known values
func (m OrderMode) Valid() bool {
	switch m {
	case OrderModeDineIn, OrderModeTakeaway:
		return true
	}
	return false
}

func (m OrderMode) Value() (driver.Value, error) {
	return string(m), nil
}

func (m *OrderMode) Scan(value interface{}) error {
	if value == nil {
		*m = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		*m = OrderMode(v)
	case []byte:
		*m = OrderMode(v)
	}
	return nil
}
