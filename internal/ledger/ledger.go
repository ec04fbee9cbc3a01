// Package ledger derives the per-category budget figures from the full
// document set. The recompute is from scratch on every call; there is no
// incremental bookkeeping to drift.
package ledger

import (
	"math"

	"procurement/internal/model"
)

// Tolerance absorbs floating-point rounding when comparing a payment amount
// against an order's remaining balance.
const Tolerance = 0.01

// Recalculate resets and rebuilds committed, spent and available for every
// category in the snapshot.
//
// Committed counts the line totals of requests that have left drafting and
// are still in flight (submitted or approved). Spent counts paid payment
// amounts, attributed to categories proportionally by the order's line
// value. Committed is intentionally not reduced when spend is recorded; the
// two figures overlap and available is the derived single source of truth.
// Available may go negative; surfacing over-budget conditions is the
// caller's concern.
func Recalculate(snap *model.Snapshot) {
	committed := make(map[string]float64, len(snap.Categories))
	spent := make(map[string]float64, len(snap.Categories))

	productCategory := make(map[string]string, len(snap.Products))
	for _, p := range snap.Products {
		productCategory[p.ID] = p.CategoryID
	}

	for _, req := range snap.Requests {
		if req.Status != model.RequestStatusSubmitted && req.Status != model.RequestStatusApproved {
			continue
		}
		for _, line := range req.Lines {
			cat, ok := productCategory[line.ProductID]
			if !ok {
				continue
			}
			committed[cat] += line.Total()
		}
	}

	for _, payment := range snap.Payments {
		if payment.Status != model.PaymentStatusPaid {
			continue
		}
		order := snap.OrderByID(payment.OrderID)
		if order == nil {
			continue
		}
		orderTotal := order.LinesTotal()
		for _, line := range order.Lines {
			cat, ok := productCategory[line.ProductID]
			if !ok {
				continue
			}
			proportion := line.Total() / orderTotal
			if math.IsNaN(proportion) || math.IsInf(proportion, 0) {
				proportion = 0
			}
			spent[cat] += payment.Amount * proportion
		}
	}

	for i := range snap.Categories {
		c := &snap.Categories[i]
		c.BudgetCommitted = committed[c.ID]
		c.BudgetSpent = spent[c.ID]
		c.BudgetAvailable = c.BudgetAllocated - c.BudgetCommitted - c.BudgetSpent
	}
}

// RemainingBalance returns the order total minus the sum of already paid
// payments against that order.
func RemainingBalance(snap *model.Snapshot, order *model.PurchaseOrder) float64 {
	remaining := order.LinesTotal()
	for _, payment := range snap.Payments {
		if payment.OrderID == order.ID && payment.Status == model.PaymentStatusPaid {
			remaining -= payment.Amount
		}
	}
	return remaining
}
