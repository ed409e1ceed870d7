package entity

import (
	"time"

	"github.com/restobill/restobill-api/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// Order represents a placed bill. An order and its items are written
// together in one transaction and are never updated afterwards; they form
// a permanent audit record. Invariant:
// total_amount = subtotal + tax_amount - discount_amount.
type Order struct {
	ID             int64              `gorm:"primaryKey" json:"id"`
	OrderMode      enum.OrderMode     `gorm:"size:20;not null;index" json:"order_mode"`
	TableNo        *string            `gorm:"size:20" json:"table_no,omitempty"`
	CustomerName   *string            `gorm:"size:255" json:"customer_name,omitempty"`
	Subtotal       decimal.Decimal    `gorm:"type:numeric;not null" json:"subtotal"`
	DiscountAmount decimal.Decimal    `gorm:"type:numeric;not null" json:"discount_amount"`
	TaxAmount      decimal.Decimal    `gorm:"type:numeric;not null" json:"tax_amount"`
	TotalAmount    decimal.Decimal    `gorm:"type:numeric;not null" json:"total_amount"`
	PaymentMethod  enum.PaymentMethod `gorm:"size:20;not null" json:"payment_method"`
	AmountPaid     decimal.Decimal    `gorm:"type:numeric;not null" json:"amount_paid"`
	ChangeDue      decimal.Decimal    `gorm:"type:numeric;not null" json:"change_due"`
	CreatedAt      time.Time          `gorm:"not null;index" json:"created_at"`
	Notes          *string            `gorm:"type:text" json:"notes,omitempty"`

	// Relationships
	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// OrderItem represents a line of an order. Name, price and GST rate are
// snapshots taken at sale time; MenuID is a lookup convenience and goes
// NULL if the catalog entry is later deleted.
type OrderItem struct {
	ID           int64           `gorm:"primaryKey" json:"id"`
	OrderID      int64           `gorm:"not null;index" json:"order_id"`
	MenuID       *int64          `gorm:"index" json:"menu_id,omitempty"`
	ItemName     string          `gorm:"size:255;not null" json:"item_name"`
	UnitPrice    decimal.Decimal `gorm:"type:numeric;not null" json:"unit_price"`
	GSTRate      decimal.Decimal `gorm:"type:numeric;not null" json:"gst_rate"`
	Quantity     int             `gorm:"not null" json:"quantity"`
	LineSubtotal decimal.Decimal `gorm:"type:numeric;not null" json:"line_subtotal"`
	LineTax      decimal.Decimal `gorm:"type:numeric;not null" json:"line_tax"`
	LineTotal    decimal.Decimal `gorm:"type:numeric;not null" json:"line_total"`

	// Relationships
	MenuItem *MenuItem `gorm:"foreignKey:MenuID;constraint:OnDelete:SET NULL" json:"-"`
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}
