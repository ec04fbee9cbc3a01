package model

import "time"

// PurchaseRequest status enum constants
const (
	RequestStatusDraft     = "DRAFT"
	RequestStatusSubmitted = "SUBMITTED"
	RequestStatusApproved  = "APPROVED"
	RequestStatusRejected  = "REJECTED"
	RequestStatusCancelled = "CANCELLED"
)

// LineItem is one requested product position. UnitPrice is snapshotted from
// the catalog when the line is created and may diverge from the current
// catalog price afterwards.
type LineItem struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// Total returns quantity * unit price for this line.
func (l LineItem) Total() float64 {
	return float64(l.Quantity) * l.UnitPrice
}

// Requester holds the metadata of the person raising a purchase request.
type Requester struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Title      string `json:"title"`
	NeededBy   string `json:"needed_by"` // date, YYYY-MM-DD
}

// PurchaseRequest aggregates requested line items and approval metadata.
// Status is mutated only by the workflow engine; lines and metadata may be
// edited while the request is still a draft.
type PurchaseRequest struct {
	ID          string     `json:"id"`
	Requester   Requester  `json:"requester"`
	Lines       []LineItem `json:"lines"`
	Notes       string     `json:"notes"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
	DecidedAt   *time.Time `json:"decided_at,omitempty"`
}

// Total returns the grand total of all lines.
func (r PurchaseRequest) Total() float64 {
	var sum float64
	for _, l := range r.Lines {
		sum += l.Total()
	}
	return sum
}
