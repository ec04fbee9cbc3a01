package store

import "procurement/internal/model"

// Snapshot schema migrations. Each entry upgrades from its index+1 to
// index+2; existing documents are never discarded, newly introduced optional
// fields get defaults. Files written before versioning carry version 0 and
// are treated as version 1.
var migrations = []func(*model.Snapshot){
	migratePaymentTerms,     // 1 -> 2
	migrateRequestDecidedAt, // 2 -> 3
}

// Migrate upgrades snap in place to the current schema version.
func Migrate(snap *model.Snapshot) {
	if snap.SchemaVersion < 1 {
		snap.SchemaVersion = 1
	}
	for snap.SchemaVersion < model.SchemaVersion {
		migrations[snap.SchemaVersion-1](snap)
		snap.SchemaVersion++
	}
}

// Orders written before payment terms existed default to net 30.
func migratePaymentTerms(snap *model.Snapshot) {
	for i := range snap.Orders {
		if snap.Orders[i].PaymentTerms == "" {
			snap.Orders[i].PaymentTerms = "NET_30"
		}
	}
}

// Requests written before life-cycle stamps existed get their timestamps
// back-filled from the creation time where the status proves the event
// happened.
func migrateRequestDecidedAt(snap *model.Snapshot) {
	for i := range snap.Requests {
		req := &snap.Requests[i]
		if req.Status == model.RequestStatusDraft {
			continue
		}
		if req.SubmittedAt == nil {
			t := req.CreatedAt
			req.SubmittedAt = &t
		}
		if req.Status != model.RequestStatusSubmitted && req.DecidedAt == nil {
			t := req.CreatedAt
			req.DecidedAt = &t
		}
	}
}
