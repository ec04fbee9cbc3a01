package service

import (
	"fmt"
	"strings"
	"time"

	"procurement/internal/apperr"
	"procurement/internal/ledger"
	"procurement/internal/model"
	"procurement/internal/store"
	"procurement/internal/view"
	ws "procurement/internal/websocket"
	"procurement/internal/workflow"
)

// --- DTOs ---

type CreateOrderDTO struct {
	RequestID    string `json:"request_id" binding:"required"`
	Vendor       string `json:"vendor" binding:"required"`
	BuyerName    string `json:"buyer_name" binding:"required"`
	BuyerEmail   string `json:"buyer_email" binding:"required,email"`
	OrderDate    string `json:"order_date" binding:"required"`
	PaymentTerms string `json:"payment_terms"`
}

// --- Interface ---

type OrderService interface {
	Create(req CreateOrderDTO) (view.Order, error)
	Transition(id, target string) (view.Order, error)
	Get(id string) (view.Order, error)
	List() ([]view.Order, error)
}

type orderService struct {
	store store.Store
	audit AuditService
	hub   *ws.Hub
}

func NewOrderService(store store.Store, audit AuditService, hub *ws.Hub) OrderService {
	return &orderService{store: store, audit: audit, hub: hub}
}

// --- Implementation ---

func (d CreateOrderDTO) validate() error {
	switch {
	case strings.TrimSpace(d.RequestID) == "":
		return fmt.Errorf("%w: request id is required", apperr.ErrValidation)
	case strings.TrimSpace(d.Vendor) == "":
		return fmt.Errorf("%w: vendor is required", apperr.ErrValidation)
	case strings.TrimSpace(d.BuyerName) == "":
		return fmt.Errorf("%w: buyer name is required", apperr.ErrValidation)
	case strings.TrimSpace(d.BuyerEmail) == "":
		return fmt.Errorf("%w: buyer email is required", apperr.ErrValidation)
	case strings.TrimSpace(d.OrderDate) == "":
		return fmt.Errorf("%w: order date is required", apperr.ErrValidation)
	}
	return nil
}

// Create raises an order from an approved request. Lines are copied from the
// request at this moment and are independent of it afterwards; the request
// itself is not mutated, and nothing limits how many orders one approved
// request may spawn.
func (s *orderService) Create(req CreateOrderDTO) (view.Order, error) {
	if err := req.validate(); err != nil {
		return view.Order{}, err
	}

	var out view.Order
	var budgets []view.Category
	err := s.store.Update(func(snap *model.Snapshot) error {
		source := snap.RequestByID(req.RequestID)
		if source == nil {
			return fmt.Errorf("purchase request %s: %w", req.RequestID, apperr.ErrNotFound)
		}
		if source.Status != model.RequestStatusApproved {
			return fmt.Errorf("purchase request %s is %s: %w",
				source.ID, source.Status, apperr.ErrPrecursorNotApproved)
		}

		terms := req.PaymentTerms
		if terms == "" {
			terms = "NET_30"
		}

		doc := model.PurchaseOrder{
			ID:           snap.NextOrderID(),
			RequestID:    source.ID,
			Vendor:       req.Vendor,
			BuyerName:    req.BuyerName,
			BuyerEmail:   req.BuyerEmail,
			OrderDate:    req.OrderDate,
			PaymentTerms: terms,
			Lines:        append([]model.LineItem(nil), source.Lines...),
			Status:       model.OrderStatusOpen,
			CreatedAt:    time.Now().UTC(),
		}
		doc.Total = doc.LinesTotal()
		snap.Orders = append(snap.Orders, doc)

		ledger.Recalculate(snap)
		out = view.ProjectOrder(snap, doc)
		budgets = view.ProjectCategories(snap)
		return nil
	})
	if err != nil {
		return view.Order{}, err
	}

	s.audit.Record(model.ActionCreateOrder, out.ID, req.Vendor, map[string]interface{}{
		"request_id": req.RequestID,
		"total":      out.Total,
	})
	notify(s.hub, EventDocumentChanged, "order", out.ID, out)
	notifyBudgets(s.hub, budgets)
	return out, nil
}

func (s *orderService) Transition(id, target string) (view.Order, error) {
	var out view.Order
	var budgets []view.Category
	err := s.store.Update(func(snap *model.Snapshot) error {
		doc := snap.OrderByID(id)
		if doc == nil {
			return fmt.Errorf("purchase order %s: %w", id, apperr.ErrNotFound)
		}
		if err := workflow.ApplyOrder(doc, target); err != nil {
			return err
		}

		ledger.Recalculate(snap)
		out = view.ProjectOrder(snap, *doc)
		budgets = view.ProjectCategories(snap)
		return nil
	})
	if err != nil {
		return view.Order{}, err
	}

	s.audit.Record(model.ActionTransitionOrder, out.ID, "", map[string]interface{}{
		"status": out.Status,
	})
	notify(s.hub, EventDocumentChanged, "order", out.ID, out)
	notifyBudgets(s.hub, budgets)
	return out, nil
}

func (s *orderService) Get(id string) (view.Order, error) {
	var out view.Order
	err := s.store.View(func(snap *model.Snapshot) error {
		doc := snap.OrderByID(id)
		if doc == nil {
			return fmt.Errorf("purchase order %s: %w", id, apperr.ErrNotFound)
		}
		out = view.ProjectOrder(snap, *doc)
		return nil
	})
	return out, err
}

func (s *orderService) List() ([]view.Order, error) {
	var out []view.Order
	err := s.store.View(func(snap *model.Snapshot) error {
		out = view.ProjectOrders(snap)
		return nil
	})
	return out, err
}
