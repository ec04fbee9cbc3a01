// Package workflow enforces the fixed status life-cycles of procurement
// documents. It is the only code allowed to change a document's status.
package workflow

import (
	"fmt"
	"time"

	"procurement/internal/apperr"
	"procurement/internal/model"
)

// Transition tables per document kind. A status maps to the set of statuses
// reachable from it; a status absent from the values of every entry is
// terminal. No table lists a self-loop, so transitioning to the current
// status always fails.
var (
	requestTransitions = map[string][]string{
		model.RequestStatusDraft:     {model.RequestStatusSubmitted},
		model.RequestStatusSubmitted: {model.RequestStatusApproved, model.RequestStatusRejected, model.RequestStatusCancelled},
		model.RequestStatusApproved:  {model.RequestStatusCancelled},
		model.RequestStatusRejected:  {},
		model.RequestStatusCancelled: {},
	}

	orderTransitions = map[string][]string{
		model.OrderStatusOpen:   {model.OrderStatusClosed},
		model.OrderStatusClosed: {},
	}

	paymentTransitions = map[string][]string{
		model.PaymentStatusSubmitted: {model.PaymentStatusApproved, model.PaymentStatusPaid},
		model.PaymentStatusApproved:  {model.PaymentStatusPaid},
		model.PaymentStatusPaid:      {},
	}
)

func allowed(table map[string][]string, from, to string) bool {
	for _, s := range table[from] {
		if s == to {
			return true
		}
	}
	return false
}

// ApplyRequest moves a purchase request to target. Entering the submitted
// status stamps the submission time once; re-entering later life-cycle
// states never overwrites an existing stamp. The first terminal-direction
// decision (approved, rejected or cancelled) stamps the decision time.
func ApplyRequest(req *model.PurchaseRequest, target string, now time.Time) error {
	if !allowed(requestTransitions, req.Status, target) {
		return fmt.Errorf("purchase request %s cannot move from %s to %s: %w",
			req.ID, req.Status, target, apperr.ErrInvalidTransition)
	}
	req.Status = target
	switch target {
	case model.RequestStatusSubmitted:
		if req.SubmittedAt == nil {
			req.SubmittedAt = &now
		}
	case model.RequestStatusApproved, model.RequestStatusRejected, model.RequestStatusCancelled:
		if req.DecidedAt == nil {
			req.DecidedAt = &now
		}
	}
	return nil
}

// ApplyOrder moves a purchase order to target.
func ApplyOrder(order *model.PurchaseOrder, target string) error {
	if !allowed(orderTransitions, order.Status, target) {
		return fmt.Errorf("purchase order %s cannot move from %s to %s: %w",
			order.ID, order.Status, target, apperr.ErrInvalidTransition)
	}
	order.Status = target
	return nil
}

// ApplyPayment moves a payment request to target.
func ApplyPayment(payment *model.PaymentRequest, target string) error {
	if !allowed(paymentTransitions, payment.Status, target) {
		return fmt.Errorf("payment request %s cannot move from %s to %s: %w",
			payment.ID, payment.Status, target, apperr.ErrInvalidTransition)
	}
	payment.Status = target
	return nil
}
