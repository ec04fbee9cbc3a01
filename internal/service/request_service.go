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

type RequestLineDTO struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
	// Optional price override; the current catalog price is snapshotted
	// when zero.
	UnitPrice float64 `json:"unit_price"`
}

type CreateRequestDTO struct {
	RequesterName  string           `json:"requester_name" binding:"required"`
	RequesterEmail string           `json:"requester_email" binding:"required,email"`
	Department     string           `json:"department" binding:"required"`
	Title          string           `json:"title" binding:"required"`
	NeededBy       string           `json:"needed_by" binding:"required"`
	Notes          string           `json:"notes"`
	Lines          []RequestLineDTO `json:"lines" binding:"required,min=1,dive"`
}

// UpdateRequestDTO replaces the editable fields of a draft request.
type UpdateRequestDTO = CreateRequestDTO

// --- Interface ---

type RequestService interface {
	Create(req CreateRequestDTO) (view.Request, error)
	Update(id string, req UpdateRequestDTO) (view.Request, error)
	Transition(id, target string) (view.Request, error)
	Delete(id string) error
	Get(id string) (view.Request, error)
	List() ([]view.Request, error)
}

type requestService struct {
	store store.Store
	audit AuditService
	hub   *ws.Hub
}

func NewRequestService(store store.Store, audit AuditService, hub *ws.Hub) RequestService {
	return &requestService{store: store, audit: audit, hub: hub}
}

// --- Implementation ---

func (d CreateRequestDTO) validate() error {
	switch {
	case strings.TrimSpace(d.RequesterName) == "":
		return fmt.Errorf("%w: requester name is required", apperr.ErrValidation)
	case strings.TrimSpace(d.RequesterEmail) == "":
		return fmt.Errorf("%w: requester email is required", apperr.ErrValidation)
	case strings.TrimSpace(d.Department) == "":
		return fmt.Errorf("%w: department is required", apperr.ErrValidation)
	case strings.TrimSpace(d.Title) == "":
		return fmt.Errorf("%w: title is required", apperr.ErrValidation)
	case strings.TrimSpace(d.NeededBy) == "":
		return fmt.Errorf("%w: needed-by date is required", apperr.ErrValidation)
	case len(d.Lines) == 0:
		return fmt.Errorf("%w: at least one line item is required", apperr.ErrValidation)
	}
	return nil
}

// buildLines resolves products and snapshots unit prices. Any unknown
// product or non-positive quantity rejects the whole payload.
func buildLines(snap *model.Snapshot, dtos []RequestLineDTO) ([]model.LineItem, error) {
	lines := make([]model.LineItem, 0, len(dtos))
	for _, l := range dtos {
		if l.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be positive for product %s", apperr.ErrValidation, l.ProductID)
		}
		product := snap.ProductByID(l.ProductID)
		if product == nil {
			return nil, fmt.Errorf("%w: unknown product %s", apperr.ErrValidation, l.ProductID)
		}
		price := l.UnitPrice
		if price == 0 {
			price = product.UnitPrice
		}
		lines = append(lines, model.LineItem{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: price,
		})
	}
	return lines, nil
}

func (s *requestService) Create(req CreateRequestDTO) (view.Request, error) {
	if err := req.validate(); err != nil {
		return view.Request{}, err
	}

	var out view.Request
	var budgets []view.Category
	err := s.store.Update(func(snap *model.Snapshot) error {
		lines, err := buildLines(snap, req.Lines)
		if err != nil {
			return err
		}

		doc := model.PurchaseRequest{
			ID: snap.NextRequestID(),
			Requester: model.Requester{
				Name:       req.RequesterName,
				Email:      req.RequesterEmail,
				Department: req.Department,
				Title:      req.Title,
				NeededBy:   req.NeededBy,
			},
			Lines:     lines,
			Notes:     req.Notes,
			Status:    model.RequestStatusDraft,
			CreatedAt: time.Now().UTC(),
		}
		snap.Requests = append(snap.Requests, doc)

		ledger.Recalculate(snap)
		out = view.ProjectRequest(snap, doc)
		budgets = view.ProjectCategories(snap)
		return nil
	})
	if err != nil {
		return view.Request{}, err
	}

	s.audit.Record(model.ActionCreateRequest, out.ID, req.RequesterName, map[string]interface{}{
		"total": out.Total,
		"lines": len(out.Lines),
	})
	notify(s.hub, EventDocumentChanged, "request", out.ID, out)
	notifyBudgets(s.hub, budgets)
	return out, nil
}

func (s *requestService) Update(id string, req UpdateRequestDTO) (view.Request, error) {
	if err := req.validate(); err != nil {
		return view.Request{}, err
	}

	var out view.Request
	var budgets []view.Category
	err := s.store.Update(func(snap *model.Snapshot) error {
		doc := snap.RequestByID(id)
		if doc == nil {
			return fmt.Errorf("purchase request %s: %w", id, apperr.ErrNotFound)
		}
		if doc.Status != model.RequestStatusDraft {
			return fmt.Errorf("purchase request %s is %s and can no longer be edited: %w",
				id, doc.Status, apperr.ErrInvalidTransition)
		}

		lines, err := buildLines(snap, req.Lines)
		if err != nil {
			return err
		}

		doc.Requester = model.Requester{
			Name:       req.RequesterName,
			Email:      req.RequesterEmail,
			Department: req.Department,
			Title:      req.Title,
			NeededBy:   req.NeededBy,
		}
		doc.Lines = lines
		doc.Notes = req.Notes

		ledger.Recalculate(snap)
		out = view.ProjectRequest(snap, *doc)
		budgets = view.ProjectCategories(snap)
		return nil
	})
	if err != nil {
		return view.Request{}, err
	}

	s.audit.Record(model.ActionUpdateRequest, out.ID, req.RequesterName, map[string]interface{}{
		"total": out.Total,
	})
	notify(s.hub, EventDocumentChanged, "request", out.ID, out)
	notifyBudgets(s.hub, budgets)
	return out, nil
}

func (s *requestService) Transition(id, target string) (view.Request, error) {
	var out view.Request
	var budgets []view.Category
	err := s.store.Update(func(snap *model.Snapshot) error {
		doc := snap.RequestByID(id)
		if doc == nil {
			return fmt.Errorf("purchase request %s: %w", id, apperr.ErrNotFound)
		}
		if err := workflow.ApplyRequest(doc, target, time.Now().UTC()); err != nil {
			return err
		}

		ledger.Recalculate(snap)
		out = view.ProjectRequest(snap, *doc)
		budgets = view.ProjectCategories(snap)
		return nil
	})
	if err != nil {
		return view.Request{}, err
	}

	s.audit.Record(model.ActionTransitionRequest, out.ID, "", map[string]interface{}{
		"status": out.Status,
	})
	notify(s.hub, EventDocumentChanged, "request", out.ID, out)
	notifyBudgets(s.hub, budgets)
	return out, nil
}

// Delete removes a request unconditionally. Dependent orders are not
// touched; their request reference dangles and the projector degrades it.
func (s *requestService) Delete(id string) error {
	var budgets []view.Category
	err := s.store.Update(func(snap *model.Snapshot) error {
		if !snap.DeleteRequest(id) {
			return fmt.Errorf("purchase request %s: %w", id, apperr.ErrNotFound)
		}
		ledger.Recalculate(snap)
		budgets = view.ProjectCategories(snap)
		return nil
	})
	if err != nil {
		return err
	}

	s.audit.Record(model.ActionDeleteRequest, id, "", nil)
	notify(s.hub, EventDocumentChanged, "request", id, nil)
	notifyBudgets(s.hub, budgets)
	return nil
}

func (s *requestService) Get(id string) (view.Request, error) {
	var out view.Request
	err := s.store.View(func(snap *model.Snapshot) error {
		doc := snap.RequestByID(id)
		if doc == nil {
			return fmt.Errorf("purchase request %s: %w", id, apperr.ErrNotFound)
		}
		out = view.ProjectRequest(snap, *doc)
		return nil
	})
	return out, err
}

func (s *requestService) List() ([]view.Request, error) {
	var out []view.Request
	err := s.store.View(func(snap *model.Snapshot) error {
		out = view.ProjectRequests(snap)
		return nil
	})
	return out, err
}
