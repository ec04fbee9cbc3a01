package model

import "time"

// PaymentRequest status enum constants
const (
	PaymentStatusSubmitted = "SUBMITTED"
	PaymentStatusApproved  = "APPROVED"
	PaymentStatusPaid      = "PAID"
)

// PaymentRequest asks for a disbursement against a purchase order. OrderID
// may dangle if the order is deleted out from under it.
type PaymentRequest struct {
	ID             string    `json:"id"`
	OrderID        string    `json:"po_id"`
	Amount         float64   `json:"amount"`
	SubmitterName  string    `json:"submitter_name"`
	SubmitterEmail string    `json:"submitter_email"`
	InvoiceNumber  string    `json:"invoice_number"`
	InvoiceDate    string    `json:"invoice_date"` // date, YYYY-MM-DD
	Notes          string    `json:"notes"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}
