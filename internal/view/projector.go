// Package view joins documents with catalog and parent data into read-only
// enriched projections for presentation. Resolution failures degrade to
// sentinel values or absent references; deletions are unguarded elsewhere,
// so the projector must never fail on a dangling id.
package view

import (
	"time"

	"github.com/shopspring/decimal"

	"procurement/internal/model"
)

// UnknownProduct is shown when a line references a product that no longer
// resolves in the catalog.
const UnknownProduct = "Unknown product"

// Line is a request or order line annotated with catalog data.
type Line struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	CategoryID  string  `json:"category_id,omitempty"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	LineTotal   float64 `json:"line_total"`
}

// Request is the enriched projection of a purchase request.
type Request struct {
	ID          string          `json:"id"`
	Requester   model.Requester `json:"requester"`
	Lines       []Line          `json:"lines"`
	Notes       string          `json:"notes"`
	Status      string          `json:"status"`
	Total       float64         `json:"total"`
	CreatedAt   time.Time       `json:"created_at"`
	SubmittedAt *time.Time      `json:"submitted_at,omitempty"`
	DecidedAt   *time.Time      `json:"decided_at,omitempty"`
}

// Order is the enriched projection of a purchase order. Request is nil when
// the source request has been deleted.
type Order struct {
	ID           string    `json:"id"`
	RequestID    string    `json:"request_id"`
	Request      *Request  `json:"request,omitempty"`
	Vendor       string    `json:"vendor"`
	BuyerName    string    `json:"buyer_name"`
	BuyerEmail   string    `json:"buyer_email"`
	OrderDate    string    `json:"order_date"`
	PaymentTerms string    `json:"payment_terms"`
	Lines        []Line    `json:"lines"`
	Total        float64   `json:"total"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// Payment is the enriched projection of a payment request. Order is nil when
// the purchase order no longer resolves.
type Payment struct {
	ID             string    `json:"id"`
	OrderID        string    `json:"po_id"`
	Order          *Order    `json:"order,omitempty"`
	Amount         float64   `json:"amount"`
	SubmitterName  string    `json:"submitter_name"`
	SubmitterEmail string    `json:"submitter_email"`
	InvoiceNumber  string    `json:"invoice_number"`
	InvoiceDate    string    `json:"invoice_date"`
	Notes          string    `json:"notes"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

// Product is catalog reference data annotated with its category name.
type Product struct {
	ID           string  `json:"id"`
	SKU          string  `json:"sku"`
	Name         string  `json:"name"`
	CategoryID   string  `json:"category_id"`
	CategoryName string  `json:"category_name"`
	UnitPrice    float64 `json:"unit_price"`
}

// Category carries the budget figures rounded for display.
type Category struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	BudgetAllocated float64 `json:"budget_allocated"`
	BudgetCommitted float64 `json:"budget_committed"`
	BudgetSpent     float64 `json:"budget_spent"`
	BudgetAvailable float64 `json:"budget_available"`
}

// round2 rounds a currency figure to two decimals for display. The ledger
// itself keeps raw float64 values.
func round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

func projectLines(snap *model.Snapshot, lines []model.LineItem) ([]Line, float64) {
	out := make([]Line, 0, len(lines))
	var total float64
	for _, l := range lines {
		line := Line{
			ProductID:   l.ProductID,
			ProductName: UnknownProduct,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			LineTotal:   round2(l.Total()),
		}
		if p := snap.ProductByID(l.ProductID); p != nil {
			line.ProductName = p.Name
			line.CategoryID = p.CategoryID
		}
		total += l.Total()
		out = append(out, line)
	}
	return out, total
}

// ProjectRequest builds the enriched view of one purchase request.
func ProjectRequest(snap *model.Snapshot, req model.PurchaseRequest) Request {
	lines, total := projectLines(snap, req.Lines)
	return Request{
		ID:          req.ID,
		Requester:   req.Requester,
		Lines:       lines,
		Notes:       req.Notes,
		Status:      req.Status,
		Total:       round2(total),
		CreatedAt:   req.CreatedAt,
		SubmittedAt: req.SubmittedAt,
		DecidedAt:   req.DecidedAt,
	}
}

// ProjectOrder builds the enriched view of one purchase order, resolving the
// source request when it still exists.
func ProjectOrder(snap *model.Snapshot, order model.PurchaseOrder) Order {
	lines, total := projectLines(snap, order.Lines)
	out := Order{
		ID:           order.ID,
		RequestID:    order.RequestID,
		Vendor:       order.Vendor,
		BuyerName:    order.BuyerName,
		BuyerEmail:   order.BuyerEmail,
		OrderDate:    order.OrderDate,
		PaymentTerms: order.PaymentTerms,
		Lines:        lines,
		Total:        round2(total),
		Status:       order.Status,
		CreatedAt:    order.CreatedAt,
	}
	if req := snap.RequestByID(order.RequestID); req != nil {
		enriched := ProjectRequest(snap, *req)
		out.Request = &enriched
	}
	return out
}

// ProjectPayment builds the enriched view of one payment request, resolving
// the purchase order when it still exists.
func ProjectPayment(snap *model.Snapshot, payment model.PaymentRequest) Payment {
	out := Payment{
		ID:             payment.ID,
		OrderID:        payment.OrderID,
		Amount:         payment.Amount,
		SubmitterName:  payment.SubmitterName,
		SubmitterEmail: payment.SubmitterEmail,
		InvoiceNumber:  payment.InvoiceNumber,
		InvoiceDate:    payment.InvoiceDate,
		Notes:          payment.Notes,
		Status:         payment.Status,
		CreatedAt:      payment.CreatedAt,
	}
	if order := snap.OrderByID(payment.OrderID); order != nil {
		enriched := ProjectOrder(snap, *order)
		out.Order = &enriched
	}
	return out
}

// ProjectCategory rounds the derived budget figures for display.
func ProjectCategory(c model.Category) Category {
	return Category{
		ID:              c.ID,
		Name:            c.Name,
		BudgetAllocated: round2(c.BudgetAllocated),
		BudgetCommitted: round2(c.BudgetCommitted),
		BudgetSpent:     round2(c.BudgetSpent),
		BudgetAvailable: round2(c.BudgetAvailable),
	}
}

// ProjectRequests maps the whole collection.
func ProjectRequests(snap *model.Snapshot) []Request {
	out := make([]Request, 0, len(snap.Requests))
	for _, r := range snap.Requests {
		out = append(out, ProjectRequest(snap, r))
	}
	return out
}

// ProjectOrders maps the whole collection.
func ProjectOrders(snap *model.Snapshot) []Order {
	out := make([]Order, 0, len(snap.Orders))
	for _, o := range snap.Orders {
		out = append(out, ProjectOrder(snap, o))
	}
	return out
}

// ProjectPayments maps the whole collection.
func ProjectPayments(snap *model.Snapshot) []Payment {
	out := make([]Payment, 0, len(snap.Payments))
	for _, p := range snap.Payments {
		out = append(out, ProjectPayment(snap, p))
	}
	return out
}

// ProjectProducts maps the catalog, resolving category names.
func ProjectProducts(snap *model.Snapshot) []Product {
	out := make([]Product, 0, len(snap.Products))
	for _, p := range snap.Products {
		view := Product{
			ID:           p.ID,
			SKU:          p.SKU,
			Name:         p.Name,
			CategoryID:   p.CategoryID,
			CategoryName: "Unknown category",
			UnitPrice:    p.UnitPrice,
		}
		if c := snap.CategoryByID(p.CategoryID); c != nil {
			view.CategoryName = c.Name
		}
		out = append(out, view)
	}
	return out
}

// ProjectCategories maps the whole collection.
func ProjectCategories(snap *model.Snapshot) []Category {
	out := make([]Category, 0, len(snap.Categories))
	for _, c := range snap.Categories {
		out = append(out, ProjectCategory(c))
	}
	return out
}
