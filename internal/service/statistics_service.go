package service

import (
	"github.com/shopspring/decimal"

	"procurement/internal/model"
	"procurement/internal/store"
)

type Statistics struct {
	RequestsByStatus map[string]int `json:"requests_by_status"`
	OrdersByStatus   map[string]int `json:"orders_by_status"`
	PaymentsByStatus map[string]int `json:"payments_by_status"`
	TotalAllocated   float64        `json:"total_allocated"`
	TotalCommitted   float64        `json:"total_committed"`
	TotalSpent       float64        `json:"total_spent"`
	TotalAvailable   float64        `json:"total_available"`
}

type StatisticsService interface {
	GetStatistics() (Statistics, error)
}

type statisticsService struct {
	store store.Store
}

func NewStatisticsService(store store.Store) StatisticsService {
	return &statisticsService{store: store}
}

// GetStatistics aggregates document counts by status and overall budget
// totals. Budget figures on the snapshot were refreshed by the last
// mutation, so this is a pure read.
func (s *statisticsService) GetStatistics() (Statistics, error) {
	stats := Statistics{
		RequestsByStatus: make(map[string]int),
		OrdersByStatus:   make(map[string]int),
		PaymentsByStatus: make(map[string]int),
	}

	err := s.store.View(func(snap *model.Snapshot) error {
		for _, r := range snap.Requests {
			stats.RequestsByStatus[r.Status]++
		}
		for _, o := range snap.Orders {
			stats.OrdersByStatus[o.Status]++
		}
		for _, p := range snap.Payments {
			stats.PaymentsByStatus[p.Status]++
		}

		allocated := decimal.Zero
		committed := decimal.Zero
		spent := decimal.Zero
		for _, c := range snap.Categories {
			allocated = allocated.Add(decimal.NewFromFloat(c.BudgetAllocated))
			committed = committed.Add(decimal.NewFromFloat(c.BudgetCommitted))
			spent = spent.Add(decimal.NewFromFloat(c.BudgetSpent))
		}
		available := allocated.Sub(committed).Sub(spent)

		stats.TotalAllocated, _ = allocated.Round(2).Float64()
		stats.TotalCommitted, _ = committed.Round(2).Float64()
		stats.TotalSpent, _ = spent.Round(2).Float64()
		stats.TotalAvailable, _ = available.Round(2).Float64()
		return nil
	})
	if err != nil {
		return Statistics{}, err
	}

	return stats, nil
}
