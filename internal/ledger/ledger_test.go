package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procurement/internal/model"
)

func snapshotFixture() *model.Snapshot {
	return &model.Snapshot{
		SchemaVersion: model.SchemaVersion,
		Categories: []model.Category{
			{ID: "CAT-1", Name: "Office Supplies", BudgetAllocated: 1000},
			{ID: "CAT-2", Name: "IT Equipment", BudgetAllocated: 5000},
		},
		Products: []model.Product{
			{ID: "PROD-1", SKU: "OFF-1", Name: "Widget", CategoryID: "CAT-1", UnitPrice: 100},
			{ID: "PROD-2", SKU: "IT-1", Name: "Laptop", CategoryID: "CAT-2", UnitPrice: 1200},
		},
	}
}

func TestRecalculateCommittedCountsOnlyInFlightRequests(t *testing.T) {
	t.Parallel()

	snap := snapshotFixture()
	line := model.LineItem{ProductID: "PROD-1", Quantity: 2, UnitPrice: 100}
	for _, status := range []string{
		model.RequestStatusDraft,
		model.RequestStatusSubmitted,
		model.RequestStatusApproved,
		model.RequestStatusRejected,
		model.RequestStatusCancelled,
	} {
		snap.Requests = append(snap.Requests, model.PurchaseRequest{
			ID:     "PR-" + status,
			Status: status,
			Lines:  []model.LineItem{line},
		})
	}

	Recalculate(snap)

	// Only the submitted and the approved request count: 2 * 200.
	cat := snap.CategoryByID("CAT-1")
	require.NotNil(t, cat)
	assert.InDelta(t, 400, cat.BudgetCommitted, 1e-9)
	assert.InDelta(t, 0, cat.BudgetSpent, 1e-9)
	assert.InDelta(t, 1000-400, cat.BudgetAvailable, 1e-9)
}

func TestRecalculateSpentProportionalAttribution(t *testing.T) {
	t.Parallel()

	snap := snapshotFixture()
	// Order total 1000: 40% office (400), 60% IT (600).
	snap.Orders = []model.PurchaseOrder{{
		ID:     "PO-0001",
		Status: model.OrderStatusOpen,
		Lines: []model.LineItem{
			{ProductID: "PROD-1", Quantity: 4, UnitPrice: 100},
			{ProductID: "PROD-2", Quantity: 1, UnitPrice: 600},
		},
	}}
	snap.Payments = []model.PaymentRequest{
		{ID: "PAY-0001", OrderID: "PO-0001", Amount: 500, Status: model.PaymentStatusPaid},
		{ID: "PAY-0002", OrderID: "PO-0001", Amount: 100, Status: model.PaymentStatusSubmitted},
	}

	Recalculate(snap)

	// Only the paid 500 counts, split 40/60 across categories.
	assert.InDelta(t, 200, snap.CategoryByID("CAT-1").BudgetSpent, 1e-9)
	assert.InDelta(t, 300, snap.CategoryByID("CAT-2").BudgetSpent, 1e-9)
}

func TestRecalculateZeroTotalOrderContributesNothing(t *testing.T) {
	t.Parallel()

	snap := snapshotFixture()
	snap.Orders = []model.PurchaseOrder{{
		ID:     "PO-0001",
		Status: model.OrderStatusOpen,
		Lines:  []model.LineItem{{ProductID: "PROD-1", Quantity: 1, UnitPrice: 0}},
	}}
	snap.Payments = []model.PaymentRequest{
		{ID: "PAY-0001", OrderID: "PO-0001", Amount: 50, Status: model.PaymentStatusPaid},
	}

	Recalculate(snap)

	// 0/0 proportions collapse to zero instead of propagating NaN.
	assert.Equal(t, 0.0, snap.CategoryByID("CAT-1").BudgetSpent)
	assert.Equal(t, 1000.0, snap.CategoryByID("CAT-1").BudgetAvailable)
}

func TestRecalculateDanglingReferencesIgnored(t *testing.T) {
	t.Parallel()

	snap := snapshotFixture()
	snap.Requests = []model.PurchaseRequest{{
		ID:     "PR-0001",
		Status: model.RequestStatusSubmitted,
		Lines:  []model.LineItem{{ProductID: "PROD-GONE", Quantity: 3, UnitPrice: 10}},
	}}
	snap.Payments = []model.PaymentRequest{
		{ID: "PAY-0001", OrderID: "PO-GONE", Amount: 75, Status: model.PaymentStatusPaid},
	}

	Recalculate(snap)

	for _, c := range snap.Categories {
		assert.Zero(t, c.BudgetCommitted)
		assert.Zero(t, c.BudgetSpent)
	}
}

func TestRecalculateCommittedNotReducedBySpend(t *testing.T) {
	t.Parallel()

	snap := snapshotFixture()
	lines := []model.LineItem{{ProductID: "PROD-1", Quantity: 2, UnitPrice: 100}}
	snap.Requests = []model.PurchaseRequest{{
		ID: "PR-0001", Status: model.RequestStatusApproved, Lines: lines,
	}}
	snap.Orders = []model.PurchaseOrder{{
		ID: "PO-0001", RequestID: "PR-0001", Status: model.OrderStatusOpen, Lines: lines,
	}}
	snap.Payments = []model.PaymentRequest{
		{ID: "PAY-0001", OrderID: "PO-0001", Amount: 120, Status: model.PaymentStatusPaid},
	}

	Recalculate(snap)

	// Committed and spent overlap on purpose; available is the single
	// derived truth.
	cat := snap.CategoryByID("CAT-1")
	assert.InDelta(t, 200, cat.BudgetCommitted, 1e-9)
	assert.InDelta(t, 120, cat.BudgetSpent, 1e-9)
	assert.InDelta(t, 680, cat.BudgetAvailable, 1e-9)
}

func TestRecalculateAvailableMayGoNegative(t *testing.T) {
	t.Parallel()

	snap := snapshotFixture()
	snap.Requests = []model.PurchaseRequest{{
		ID:     "PR-0001",
		Status: model.RequestStatusSubmitted,
		Lines:  []model.LineItem{{ProductID: "PROD-1", Quantity: 20, UnitPrice: 100}},
	}}

	Recalculate(snap)

	assert.InDelta(t, -1000, snap.CategoryByID("CAT-1").BudgetAvailable, 1e-9)
}

func TestRecalculateIsIdempotent(t *testing.T) {
	t.Parallel()

	snap := snapshotFixture()
	lines := []model.LineItem{{ProductID: "PROD-1", Quantity: 3, UnitPrice: 99.99}}
	snap.Requests = []model.PurchaseRequest{{
		ID: "PR-0001", Status: model.RequestStatusSubmitted, Lines: lines,
	}}
	snap.Orders = []model.PurchaseOrder{{
		ID: "PO-0001", RequestID: "PR-0001", Status: model.OrderStatusOpen, Lines: lines,
	}}
	snap.Payments = []model.PaymentRequest{
		{ID: "PAY-0001", OrderID: "PO-0001", Amount: 100, Status: model.PaymentStatusPaid},
	}

	Recalculate(snap)
	first := append([]model.Category(nil), snap.Categories...)
	Recalculate(snap)

	assert.Equal(t, first, snap.Categories)
}

func TestRecalculateInvariantHolds(t *testing.T) {
	t.Parallel()

	snap := snapshotFixture()
	lines := []model.LineItem{
		{ProductID: "PROD-1", Quantity: 7, UnitPrice: 13.37},
		{ProductID: "PROD-2", Quantity: 2, UnitPrice: 1199.5},
	}
	snap.Requests = []model.PurchaseRequest{{
		ID: "PR-0001", Status: model.RequestStatusApproved, Lines: lines,
	}}
	snap.Orders = []model.PurchaseOrder{{
		ID: "PO-0001", RequestID: "PR-0001", Status: model.OrderStatusOpen, Lines: lines,
	}}
	snap.Payments = []model.PaymentRequest{
		{ID: "PAY-0001", OrderID: "PO-0001", Amount: 1000, Status: model.PaymentStatusPaid},
	}

	Recalculate(snap)

	for _, c := range snap.Categories {
		assert.Equal(t, c.BudgetAllocated-c.BudgetCommitted-c.BudgetSpent, c.BudgetAvailable)
	}
}

func TestRemainingBalance(t *testing.T) {
	t.Parallel()

	snap := snapshotFixture()
	order := model.PurchaseOrder{
		ID:     "PO-0001",
		Status: model.OrderStatusOpen,
		Lines:  []model.LineItem{{ProductID: "PROD-1", Quantity: 2, UnitPrice: 100}},
	}
	snap.Orders = []model.PurchaseOrder{order}
	snap.Payments = []model.PaymentRequest{
		{ID: "PAY-0001", OrderID: "PO-0001", Amount: 120, Status: model.PaymentStatusPaid},
		{ID: "PAY-0002", OrderID: "PO-0001", Amount: 50, Status: model.PaymentStatusSubmitted},
	}

	// Only paid payments reduce the balance.
	assert.InDelta(t, 80, RemainingBalance(snap, &snap.Orders[0]), 1e-9)
}
