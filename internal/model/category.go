package model

// Category groups products for budgeting purposes. BudgetAllocated is fixed
// reference data; the other budget figures are derived and rebuilt from the
// full document set after every mutation, never stored as authoritative
// deltas.
type Category struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	BudgetAllocated float64 `json:"budget_allocated"`
	BudgetCommitted float64 `json:"budget_committed"`
	BudgetSpent     float64 `json:"budget_spent"`
	BudgetAvailable float64 `json:"budget_available"`
}
