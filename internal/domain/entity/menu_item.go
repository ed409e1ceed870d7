package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuItem represents an entry in the menu catalog. The billing engine
// reads active items only; placed orders keep their own price snapshots,
// so later edits here never alter historical bills.
type MenuItem struct {
	ID        int64           `gorm:"primaryKey" json:"id"`
	ItemName  string          `gorm:"size:255;uniqueIndex;not null" json:"item_name"`
	Category  string          `gorm:"size:100;index" json:"category"`
	Price     decimal.Decimal `gorm:"type:numeric;not null" json:"price"`
	GSTRate   decimal.Decimal `gorm:"type:numeric;not null" json:"gst_rate"`
	IsActive  bool            `gorm:"default:true;index" json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// TableName returns the table name for the MenuItem model
func (MenuItem) TableName() string {
	return "menu"
}
