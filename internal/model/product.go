package model

// Product is immutable reference data. Request and order lines snapshot the
// unit price at creation time and do not follow later catalog changes.
type Product struct {
	ID         string  `json:"id"`
	SKU        string  `json:"sku"`
	Name       string  `json:"name"`
	CategoryID string  `json:"category_id"`
	UnitPrice  float64 `json:"unit_price"`
}
