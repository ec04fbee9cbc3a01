package service

import (
	"encoding/json"
	"time"

	"procurement/internal/view"
	ws "procurement/internal/websocket"
)

// Event type constants pushed to dashboard clients
const (
	EventDocumentChanged = "document.changed"
	EventBudgetUpdated   = "budget.updated"
	EventDataReset       = "data.reset"
)

type wsEvent struct {
	Type     string      `json:"type"`
	Entity   string      `json:"entity,omitempty"`
	EntityID string      `json:"entity_id,omitempty"`
	Data     interface{} `json:"data,omitempty"`
	At       time.Time   `json:"at"`
}

// notify pushes an event to the hub. A nil hub (tests) is a no-op.
func notify(hub *ws.Hub, eventType, entity, entityID string, data interface{}) {
	if hub == nil {
		return
	}
	payload, err := json.Marshal(wsEvent{
		Type:     eventType,
		Entity:   entity,
		EntityID: entityID,
		Data:     data,
		At:       time.Now().UTC(),
	})
	if err != nil {
		return
	}
	hub.Publish(payload)
}

// notifyBudgets pushes the freshly recomputed budget figures.
func notifyBudgets(hub *ws.Hub, categories []view.Category) {
	notify(hub, EventBudgetUpdated, "category", "", categories)
}
