package model

import (
	"time"

	"github.com/google/uuid"
)

// Audit action constants
const (
	ActionCreateRequest     = "CREATE_REQUEST"
	ActionUpdateRequest     = "UPDATE_REQUEST"
	ActionDeleteRequest     = "DELETE_REQUEST"
	ActionTransitionRequest = "TRANSITION_REQUEST"
	ActionCreateOrder       = "CREATE_ORDER"
	ActionTransitionOrder   = "TRANSITION_ORDER"
	ActionCreatePayment     = "CREATE_PAYMENT"
	ActionTransitionPayment = "TRANSITION_PAYMENT"
	ActionResetData         = "RESET_DATA"
)

// AuditEntry tracks What and When for every mutating operation. Entries are
// operational records kept in process memory; they are not part of the
// persisted snapshot.
type AuditEntry struct {
	ID         uuid.UUID `json:"id"`
	Action     string    `json:"action"`
	EntityID   string    `json:"entity_id"`
	EntityName string    `json:"entity_name,omitempty"`
	Details    string    `json:"details"` // serialized JSON payload of the action
	CreatedAt  time.Time `json:"created_at"`
}
