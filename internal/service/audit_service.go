package service

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"procurement/internal/model"
)

// Audit entries beyond this count are dropped oldest first.
const maxAuditEntries = 1000

type AuditLogResponse struct {
	ID         string `json:"id"`
	Action     string `json:"action"`
	EntityID   string `json:"entity_id"`
	EntityName string `json:"entity_name"`
	Details    string `json:"details"`
	CreatedAt  string `json:"created_at"`
}

type AuditService interface {
	Record(action, entityID, entityName string, details interface{})
	GetAuditLogs(page, limit int) ([]AuditLogResponse, int64)
}

type auditService struct {
	mu      sync.Mutex
	entries []model.AuditEntry
}

// NewAuditService creates a new in-memory AuditService instance
func NewAuditService() AuditService {
	return &auditService{}
}

// Record appends an audit entry for a completed mutating operation
func (s *auditService) Record(action, entityID, entityName string, details interface{}) {
	payload, _ := json.Marshal(details)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, model.AuditEntry{
		ID:         uuid.New(),
		Action:     action,
		EntityID:   entityID,
		EntityName: entityName,
		Details:    string(payload),
		CreatedAt:  time.Now().UTC(),
	})
	if len(s.entries) > maxAuditEntries {
		s.entries = s.entries[len(s.entries)-maxAuditEntries:]
	}
}

// GetAuditLogs returns paginated entries newest first
func (s *auditService) GetAuditLogs(page, limit int) ([]AuditLogResponse, int64) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	total := int64(len(s.entries))
	res := make([]AuditLogResponse, 0, limit)
	// entries are appended in order, walk backwards for newest first
	start := len(s.entries) - 1 - (page-1)*limit
	for i := start; i >= 0 && len(res) < limit; i-- {
		e := s.entries[i]
		res = append(res, AuditLogResponse{
			ID:         e.ID.String(),
			Action:     e.Action,
			EntityID:   e.EntityID,
			EntityName: e.EntityName,
			Details:    e.Details,
			CreatedAt:  e.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	return res, total
}
