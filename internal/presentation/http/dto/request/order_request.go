package request

// OrderItemRequest is one cart line with its price/GST snapshot as taken
// by the terminal when the item was added.
type OrderItemRequest struct {
	MenuID    *int64  `json:"menu_id"`
	ItemName  string  `json:"item_name" binding:"required"`
	UnitPrice float64 `json:"unit_price"`
	GSTRate   float64 `json:"gst_rate"`
	Quantity  int     `json:"quantity"`
}

// CreateOrderRequest is the payload for placing an order
type CreateOrderRequest struct {
	OrderMode     string             `json:"order_mode" binding:"required"`
	TableNo       *string            `json:"table_no"`
	CustomerName  *string            `json:"customer_name"`
	PaymentMethod string             `json:"payment_method" binding:"required"`
	Items         []OrderItemRequest `json:"items" binding:"required"`
	Discount      float64            `json:"discount"`
	AmountPaid    float64            `json:"amount_paid"`
	Notes         *string            `json:"notes"`
}

// PreviewOrderRequest is the payload for pricing a cart without saving it
type PreviewOrderRequest struct {
	Items    []OrderItemRequest `json:"items" binding:"required"`
	Discount float64            `json:"discount"`
}
