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

type CreatePaymentDTO struct {
	OrderID        string  `json:"po_id" binding:"required"`
	Amount         float64 `json:"amount" binding:"required,gt=0"`
	SubmitterName  string  `json:"submitter_name" binding:"required"`
	SubmitterEmail string  `json:"submitter_email" binding:"required,email"`
	InvoiceNumber  string  `json:"invoice_number" binding:"required"`
	InvoiceDate    string  `json:"invoice_date" binding:"required"`
	Notes          string  `json:"notes"`
}

// --- Interface ---

type PaymentService interface {
	Create(req CreatePaymentDTO) (view.Payment, error)
	Transition(id, target string) (view.Payment, error)
	Get(id string) (view.Payment, error)
	List() ([]view.Payment, error)
}

type paymentService struct {
	store store.Store
	audit AuditService
	hub   *ws.Hub
}

func NewPaymentService(store store.Store, audit AuditService, hub *ws.Hub) PaymentService {
	return &paymentService{store: store, audit: audit, hub: hub}
}

// --- Implementation ---

func (d CreatePaymentDTO) validate() error {
	switch {
	case strings.TrimSpace(d.OrderID) == "":
		return fmt.Errorf("%w: purchase order id is required", apperr.ErrValidation)
	case d.Amount <= 0:
		return fmt.Errorf("%w: amount must be positive", apperr.ErrValidation)
	case strings.TrimSpace(d.SubmitterName) == "":
		return fmt.Errorf("%w: submitter name is required", apperr.ErrValidation)
	case strings.TrimSpace(d.SubmitterEmail) == "":
		return fmt.Errorf("%w: submitter email is required", apperr.ErrValidation)
	case strings.TrimSpace(d.InvoiceNumber) == "":
		return fmt.Errorf("%w: invoice number is required", apperr.ErrValidation)
	case strings.TrimSpace(d.InvoiceDate) == "":
		return fmt.Errorf("%w: invoice date is required", apperr.ErrValidation)
	}
	return nil
}

// Create raises a payment against an existing order, regardless of the
// order's status. The amount may not exceed the order total minus already
// paid payments, with a small tolerance for floating-point rounding.
func (s *paymentService) Create(req CreatePaymentDTO) (view.Payment, error) {
	if err := req.validate(); err != nil {
		return view.Payment{}, err
	}

	var out view.Payment
	var budgets []view.Category
	err := s.store.Update(func(snap *model.Snapshot) error {
		order := snap.OrderByID(req.OrderID)
		if order == nil {
			return fmt.Errorf("purchase order %s: %w", req.OrderID, apperr.ErrUnknownOrder)
		}

		remaining := ledger.RemainingBalance(snap, order)
		if req.Amount > remaining+ledger.Tolerance {
			return fmt.Errorf("amount %.2f exceeds remaining balance %.2f on %s: %w",
				req.Amount, remaining, order.ID, apperr.ErrAmountExceedsBalance)
		}

		doc := model.PaymentRequest{
			ID:             snap.NextPaymentID(),
			OrderID:        order.ID,
			Amount:         req.Amount,
			SubmitterName:  req.SubmitterName,
			SubmitterEmail: req.SubmitterEmail,
			InvoiceNumber:  req.InvoiceNumber,
			InvoiceDate:    req.InvoiceDate,
			Notes:          req.Notes,
			Status:         model.PaymentStatusSubmitted,
			CreatedAt:      time.Now().UTC(),
		}
		snap.Payments = append(snap.Payments, doc)

		ledger.Recalculate(snap)
		out = view.ProjectPayment(snap, doc)
		budgets = view.ProjectCategories(snap)
		return nil
	})
	if err != nil {
		return view.Payment{}, err
	}

	s.audit.Record(model.ActionCreatePayment, out.ID, req.InvoiceNumber, map[string]interface{}{
		"po_id":  req.OrderID,
		"amount": req.Amount,
	})
	notify(s.hub, EventDocumentChanged, "payment", out.ID, out)
	notifyBudgets(s.hub, budgets)
	return out, nil
}

func (s *paymentService) Transition(id, target string) (view.Payment, error) {
	var out view.Payment
	var budgets []view.Category
	err := s.store.Update(func(snap *model.Snapshot) error {
		doc := snap.PaymentByID(id)
		if doc == nil {
			return fmt.Errorf("payment request %s: %w", id, apperr.ErrNotFound)
		}
		if err := workflow.ApplyPayment(doc, target); err != nil {
			return err
		}

		ledger.Recalculate(snap)
		out = view.ProjectPayment(snap, *doc)
		budgets = view.ProjectCategories(snap)
		return nil
	})
	if err != nil {
		return view.Payment{}, err
	}

	s.audit.Record(model.ActionTransitionPayment, out.ID, "", map[string]interface{}{
		"status": out.Status,
	})
	notify(s.hub, EventDocumentChanged, "payment", out.ID, out)
	notifyBudgets(s.hub, budgets)
	return out, nil
}

func (s *paymentService) Get(id string) (view.Payment, error) {
	var out view.Payment
	err := s.store.View(func(snap *model.Snapshot) error {
		doc := snap.PaymentByID(id)
		if doc == nil {
			return fmt.Errorf("payment request %s: %w", id, apperr.ErrNotFound)
		}
		out = view.ProjectPayment(snap, *doc)
		return nil
	})
	return out, err
}

func (s *paymentService) List() ([]view.Payment, error) {
	var out []view.Payment
	err := s.store.View(func(snap *model.Snapshot) error {
		out = view.ProjectPayments(snap)
		return nil
	})
	return out, err
}
