package service

import (
	"context"

	"github.com/alisinasultani/citycenter-api/internal/domain/enum"
	"github.com/alisinasultani/citycenter-api/internal/domain/repository"
	"github.com/alisinasultani/citycenter-api/internal/ledger"
)

// DashboardService aggregates directory counts and billing totals
type DashboardService struct {
	periodRepo   repository.BillingPeriodRepository
	customerRepo repository.CustomerRepository
	staffRepo    repository.StaffRepository
	athleteRepo  repository.AthleteRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	periodRepo repository.BillingPeriodRepository,
	customerRepo repository.CustomerRepository,
	staffRepo repository.StaffRepository,
	athleteRepo repository.AthleteRepository,
) *DashboardService {
	return &DashboardService{
		periodRepo:   periodRepo,
		customerRepo: customerRepo,
		staffRepo:    staffRepo,
		athleteRepo:  athleteRepo,
	}
}

// KindSummary holds aggregated balances for one billing kind
type KindSummary struct {
	Kind           enum.BillingKind `json:"kind"`
	Periods        int              `json:"periods"`
	TotalCharge    float64          `json:"total_charge"`
	TotalTaken     float64          `json:"total_taken"`
	TotalRemainder float64          `json:"total_remainder"`
}

// DashboardStats is the landing page summary
type DashboardStats struct {
	Customers int64         `json:"customers"`
	Staff     int64         `json:"staff"`
	Athletes  int64         `json:"athletes"`
	Billing   []KindSummary `json:"billing"`
}

// GetStats builds the dashboard summary. Billing totals follow the same
// rule as period totals: remainder is the difference of the sums.
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	customers, err := s.customerRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	staff, err := s.staffRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	athletes, err := s.athleteRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	kinds := []enum.BillingKind{enum.KindRent, enum.KindService, enum.KindUtility, enum.KindSalary}
	summaries := make([]KindSummary, 0, len(kinds))
	for _, kind := range kinds {
		periods, err := s.periodRepo.ListByKind(ctx, kind)
		if err != nil {
			return nil, err
		}

		summary := KindSummary{Kind: kind, Periods: len(periods)}
		for _, period := range periods {
			totals := ledger.Sum(map[string]ledger.Entry(period.Ledger))
			summary.TotalCharge += totals.TotalCharge
			summary.TotalTaken += totals.TotalTaken
		}
		summary.TotalRemainder = summary.TotalCharge - summary.TotalTaken
		summaries = append(summaries, summary)
	}

	return &DashboardStats{
		Customers: customers,
		Staff:     staff,
		Athletes:  athletes,
		Billing:   summaries,
	}, nil
}
