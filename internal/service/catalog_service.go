package service

import (
	"procurement/internal/catalog"
	"procurement/internal/ledger"
	"procurement/internal/model"
	"procurement/internal/store"
	"procurement/internal/view"
	ws "procurement/internal/websocket"
)

// --- Interface ---

type CatalogService interface {
	// ListCategories recomputes the ledger and persists the refreshed
	// figures before returning them. Listing categories is therefore not
	// read-only with respect to stored budget figures.
	ListCategories() ([]view.Category, error)
	ListProducts() ([]view.Product, error)
	// Reset discards every document and restores the seed catalog with
	// zeroed counters.
	Reset() error
}

type catalogService struct {
	store store.Store
	audit AuditService
	hub   *ws.Hub
}

func NewCatalogService(store store.Store, audit AuditService, hub *ws.Hub) CatalogService {
	return &catalogService{store: store, audit: audit, hub: hub}
}

// --- Implementation ---

func (s *catalogService) ListCategories() ([]view.Category, error) {
	var out []view.Category
	err := s.store.Update(func(snap *model.Snapshot) error {
		ledger.Recalculate(snap)
		out = view.ProjectCategories(snap)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *catalogService) ListProducts() ([]view.Product, error) {
	var out []view.Product
	err := s.store.View(func(snap *model.Snapshot) error {
		out = view.ProjectProducts(snap)
		return nil
	})
	return out, err
}

func (s *catalogService) Reset() error {
	err := s.store.Update(func(snap *model.Snapshot) error {
		*snap = *catalog.NewSnapshot()
		ledger.Recalculate(snap)
		return nil
	})
	if err != nil {
		return err
	}

	s.audit.Record(model.ActionResetData, "", "", nil)
	notify(s.hub, EventDataReset, "", "", nil)
	return nil
}
