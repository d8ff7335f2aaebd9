package usecase

import (
	"context"

	"github.com/brunovtr/pipecrm/internal/entity"
)

type DashboardService struct {
	Leads  LeadRepositoryInterface
	Orders OrderRepositoryInterface
}

func NewDashboardService(leads LeadRepositoryInterface, orders OrderRepositoryInterface) *DashboardService {
	return &DashboardService{
		Leads:  leads,
		Orders: orders,
	}
}

// GetSummary returns per-bucket counts for both pipelines. Every
// enumeration value gets a bucket, zero or not, in board order.
func (s *DashboardService) GetSummary(ctx context.Context) (*DashboardSummary, error) {
	byStage, err := s.Leads.CountByStage(ctx)
	if err != nil {
		return nil, err
	}

	byStatus, err := s.Orders.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	summary := &DashboardSummary{
		LeadsByStage:   make([]BucketCount, 0, len(entity.Stages)),
		OrdersByStatus: make([]BucketCount, 0, len(entity.Statuses)),
	}

	for _, stage := range entity.Stages {
		n := byStage[stage]
		summary.LeadsByStage = append(summary.LeadsByStage, BucketCount{Name: stage, Count: n})
		summary.TotalLeads += n
	}
	for _, status := range entity.Statuses {
		n := byStatus[status]
		summary.OrdersByStatus = append(summary.OrdersByStatus, BucketCount{Name: status, Count: n})
		summary.TotalOrders += n
	}

	return summary, nil
}
