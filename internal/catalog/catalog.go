// Package catalog holds the fixed seed reference data. The workflow consults
// it but never mutates it; a full reset restores exactly this data.
package catalog

import "procurement/internal/model"

// SeedCategories returns the reference categories with their fixed
// allocations. Derived budget figures start at zero and are filled in by the
// first ledger recompute.
func SeedCategories() []model.Category {
	return []model.Category{
		{ID: "CAT-1", Name: "Office Supplies", BudgetAllocated: 5000},
		{ID: "CAT-2", Name: "IT Equipment", BudgetAllocated: 20000},
		{ID: "CAT-3", Name: "Facilities", BudgetAllocated: 8000},
		{ID: "CAT-4", Name: "Travel", BudgetAllocated: 6000},
	}
}

// SeedProducts returns the reference products.
func SeedProducts() []model.Product {
	return []model.Product{
		{ID: "PROD-1", SKU: "OFF-PAPER-A4", Name: "Printer Paper A4 (500 sheets)", CategoryID: "CAT-1", UnitPrice: 6.5},
		{ID: "PROD-2", SKU: "OFF-TONER-BK", Name: "Laser Toner Cartridge Black", CategoryID: "CAT-1", UnitPrice: 89},
		{ID: "PROD-3", SKU: "IT-LAPTOP-14", Name: "Business Laptop 14in", CategoryID: "CAT-2", UnitPrice: 1250},
		{ID: "PROD-4", SKU: "IT-MON-27", Name: "Monitor 27in QHD", CategoryID: "CAT-2", UnitPrice: 310},
		{ID: "PROD-5", SKU: "IT-DOCK-USB", Name: "USB-C Docking Station", CategoryID: "CAT-2", UnitPrice: 180},
		{ID: "PROD-6", SKU: "FAC-CHAIR-ERG", Name: "Ergonomic Office Chair", CategoryID: "CAT-3", UnitPrice: 420},
		{ID: "PROD-7", SKU: "FAC-DESK-STD", Name: "Standing Desk Frame", CategoryID: "CAT-3", UnitPrice: 550},
		{ID: "PROD-8", SKU: "TRV-CASE-CAB", Name: "Cabin Trolley Case", CategoryID: "CAT-4", UnitPrice: 95},
	}
}

// NewSnapshot builds a fresh snapshot: seed catalog, no documents, zeroed
// counters.
func NewSnapshot() *model.Snapshot {
	return &model.Snapshot{
		SchemaVersion: model.SchemaVersion,
		Categories:    SeedCategories(),
		Products:      SeedProducts(),
		Requests:      []model.PurchaseRequest{},
		Orders:        []model.PurchaseOrder{},
		Payments:      []model.PaymentRequest{},
	}
}
