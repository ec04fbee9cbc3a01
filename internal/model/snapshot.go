package model

import "fmt"

// SchemaVersion is the current snapshot schema. Snapshots written by older
// builds are upgraded in place by the store's migration pass on load.
const SchemaVersion = 3

// Counters mint human-readable sequential identities per document kind. They
// only ever increase; values are never reused, even after a delete. A full
// data reset is the single exception.
type Counters struct {
	Request int `json:"request"`
	Order   int `json:"order"`
	Payment int `json:"payment"`
}

// Meta carries snapshot bookkeeping that is not itself a document.
type Meta struct {
	Counters Counters `json:"counters"`
}

// Snapshot is the complete state of the system at one point in time: all
// documents, the catalog, and the counters. It is read and written as one
// unit through the store.
type Snapshot struct {
	SchemaVersion int               `json:"schema_version"`
	Categories    []Category        `json:"categories"`
	Products      []Product         `json:"products"`
	Requests      []PurchaseRequest `json:"requests"`
	Orders        []PurchaseOrder   `json:"orders"`
	Payments      []PaymentRequest  `json:"payments"`
	Meta          Meta              `json:"meta"`
}

// NextRequestID consumes the request counter and mints the next identity.
func (s *Snapshot) NextRequestID() string {
	s.Meta.Counters.Request++
	return fmt.Sprintf("PR-%04d", s.Meta.Counters.Request)
}

// NextOrderID consumes the order counter and mints the next identity.
func (s *Snapshot) NextOrderID() string {
	s.Meta.Counters.Order++
	return fmt.Sprintf("PO-%04d", s.Meta.Counters.Order)
}

// NextPaymentID consumes the payment counter and mints the next identity.
func (s *Snapshot) NextPaymentID() string {
	s.Meta.Counters.Payment++
	return fmt.Sprintf("PAY-%04d", s.Meta.Counters.Payment)
}

// CategoryByID returns a pointer into the snapshot, or nil.
func (s *Snapshot) CategoryByID(id string) *Category {
	for i := range s.Categories {
		if s.Categories[i].ID == id {
			return &s.Categories[i]
		}
	}
	return nil
}

// ProductByID returns a pointer into the snapshot, or nil.
func (s *Snapshot) ProductByID(id string) *Product {
	for i := range s.Products {
		if s.Products[i].ID == id {
			return &s.Products[i]
		}
	}
	return nil
}

// RequestByID returns a pointer into the snapshot, or nil.
func (s *Snapshot) RequestByID(id string) *PurchaseRequest {
	for i := range s.Requests {
		if s.Requests[i].ID == id {
			return &s.Requests[i]
		}
	}
	return nil
}

// OrderByID returns a pointer into the snapshot, or nil.
func (s *Snapshot) OrderByID(id string) *PurchaseOrder {
	for i := range s.Orders {
		if s.Orders[i].ID == id {
			return &s.Orders[i]
		}
	}
	return nil
}

// PaymentByID returns a pointer into the snapshot, or nil.
func (s *Snapshot) PaymentByID(id string) *PaymentRequest {
	for i := range s.Payments {
		if s.Payments[i].ID == id {
			return &s.Payments[i]
		}
	}
	return nil
}

// DeleteRequest removes the request with the given id and reports whether it
// existed. Dependent orders are left untouched; their request reference is
// allowed to dangle.
func (s *Snapshot) DeleteRequest(id string) bool {
	for i := range s.Requests {
		if s.Requests[i].ID == id {
			s.Requests = append(s.Requests[:i], s.Requests[i+1:]...)
			return true
		}
	}
	return false
}

// Clone returns a deep copy. Mutating the copy never affects the original.
func (s *Snapshot) Clone() *Snapshot {
	out := *s
	out.Categories = append([]Category(nil), s.Categories...)
	out.Products = append([]Product(nil), s.Products...)

	out.Requests = make([]PurchaseRequest, len(s.Requests))
	for i, r := range s.Requests {
		r.Lines = append([]LineItem(nil), r.Lines...)
		if r.SubmittedAt != nil {
			t := *r.SubmittedAt
			r.SubmittedAt = &t
		}
		if r.DecidedAt != nil {
			t := *r.DecidedAt
			r.DecidedAt = &t
		}
		out.Requests[i] = r
	}

	out.Orders = make([]PurchaseOrder, len(s.Orders))
	for i, o := range s.Orders {
		o.Lines = append([]LineItem(nil), o.Lines...)
		out.Orders[i] = o
	}

	out.Payments = append([]PaymentRequest(nil), s.Payments...)
	return &out
}
