package request

// MenuRowRequest is one catalog row in a menu import
type MenuRowRequest struct {
	ItemName string  `json:"item_name" binding:"required"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	GSTRate  float64 `json:"gst_rate"`
}

// ImportMenuRequest is the payload for a menu catalog import
type ImportMenuRequest struct {
	Items []MenuRowRequest `json:"items" binding:"required"`
}
