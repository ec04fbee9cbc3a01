package model

import "time"

// PurchaseOrder status enum constants
const (
	OrderStatusOpen   = "OPEN"
	OrderStatusClosed = "CLOSED"
)

// PurchaseOrder is a formal order raised from an approved purchase request.
// Lines are copied from the request at creation time and are independent of
// it thereafter; RequestID may dangle if the source request is later deleted.
type PurchaseOrder struct {
	ID           string     `json:"id"`
	RequestID    string     `json:"request_id"`
	Vendor       string     `json:"vendor"`
	BuyerName    string     `json:"buyer_name"`
	BuyerEmail   string     `json:"buyer_email"`
	OrderDate    string     `json:"order_date"` // date, YYYY-MM-DD
	PaymentTerms string     `json:"payment_terms"`
	Lines        []LineItem `json:"lines"`
	Total        float64    `json:"total"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
}

// LinesTotal recomputes the grand total from the order's lines.
func (o PurchaseOrder) LinesTotal() float64 {
	var sum float64
	for _, l := range o.Lines {
		sum += l.Total()
	}
	return sum
}
