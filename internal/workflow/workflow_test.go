package workflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procurement/internal/apperr"
	"procurement/internal/model"
)

func TestApplyRequestTransitions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		from    string
		target  string
		wantErr bool
	}{
		{name: "draft to submitted", from: model.RequestStatusDraft, target: model.RequestStatusSubmitted},
		{name: "submitted to approved", from: model.RequestStatusSubmitted, target: model.RequestStatusApproved},
		{name: "submitted to rejected", from: model.RequestStatusSubmitted, target: model.RequestStatusRejected},
		{name: "submitted to cancelled", from: model.RequestStatusSubmitted, target: model.RequestStatusCancelled},
		{name: "approved to cancelled", from: model.RequestStatusApproved, target: model.RequestStatusCancelled},
		{name: "draft to approved skips submission", from: model.RequestStatusDraft, target: model.RequestStatusApproved, wantErr: true},
		{name: "rejected is terminal", from: model.RequestStatusRejected, target: model.RequestStatusApproved, wantErr: true},
		{name: "cancelled is terminal", from: model.RequestStatusCancelled, target: model.RequestStatusSubmitted, wantErr: true},
		{name: "self loop never allowed", from: model.RequestStatusSubmitted, target: model.RequestStatusSubmitted, wantErr: true},
		{name: "unknown target", from: model.RequestStatusDraft, target: "SHIPPED", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := model.PurchaseRequest{ID: "PR-0001", Status: tt.from}
			err := ApplyRequest(&req, tt.target, time.Now())

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperr.ErrInvalidTransition)
				assert.Equal(t, tt.from, req.Status, "status must not change on a rejected transition")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.target, req.Status)
		})
	}
}

func TestApplyRequestStampsSubmissionOnce(t *testing.T) {
	t.Parallel()

	req := model.PurchaseRequest{ID: "PR-0001", Status: model.RequestStatusDraft}
	first := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, ApplyRequest(&req, model.RequestStatusSubmitted, first))
	require.NotNil(t, req.SubmittedAt)
	assert.Equal(t, first, *req.SubmittedAt)

	// Walk the request back around the life-cycle and submit again; the
	// original stamp must survive.
	stamped := *req.SubmittedAt
	req.Status = model.RequestStatusDraft
	require.NoError(t, ApplyRequest(&req, model.RequestStatusSubmitted, first.Add(time.Hour)))
	assert.Equal(t, stamped, *req.SubmittedAt)
}

func TestApplyRequestStampsDecision(t *testing.T) {
	t.Parallel()

	req := model.PurchaseRequest{ID: "PR-0001", Status: model.RequestStatusSubmitted}
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	require.NoError(t, ApplyRequest(&req, model.RequestStatusApproved, now))
	require.NotNil(t, req.DecidedAt)
	assert.Equal(t, now, *req.DecidedAt)
}

func TestApplyOrderTransitions(t *testing.T) {
	t.Parallel()

	order := model.PurchaseOrder{ID: "PO-0001", Status: model.OrderStatusOpen}
	require.NoError(t, ApplyOrder(&order, model.OrderStatusClosed))
	assert.Equal(t, model.OrderStatusClosed, order.Status)

	err := ApplyOrder(&order, model.OrderStatusOpen)
	assert.ErrorIs(t, err, apperr.ErrInvalidTransition, "closed is terminal")
}

func TestApplyPaymentTransitions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		from    string
		target  string
		wantErr bool
	}{
		{name: "submitted to approved", from: model.PaymentStatusSubmitted, target: model.PaymentStatusApproved},
		{name: "submitted straight to paid", from: model.PaymentStatusSubmitted, target: model.PaymentStatusPaid},
		{name: "approved to paid", from: model.PaymentStatusApproved, target: model.PaymentStatusPaid},
		{name: "paid is terminal", from: model.PaymentStatusPaid, target: model.PaymentStatusApproved, wantErr: true},
		{name: "no way back from approved", from: model.PaymentStatusApproved, target: model.PaymentStatusSubmitted, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			payment := model.PaymentRequest{ID: "PAY-0001", Status: tt.from}
			err := ApplyPayment(&payment, tt.target)

			if tt.wantErr {
				assert.ErrorIs(t, err, apperr.ErrInvalidTransition)
				assert.Equal(t, tt.from, payment.Status)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.target, payment.Status)
		})
	}
}
