package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/brunovtr/pipecrm/internal/entity"
	"github.com/brunovtr/pipecrm/internal/infra/queue"
)

type OrderService struct {
	Repo   OrderRepositoryInterface
	Events EventPublisherInterface
	Log    *zap.SugaredLogger
}

func NewOrderService(repo OrderRepositoryInterface, events EventPublisherInterface, log *zap.SugaredLogger) *OrderService {
	return &OrderService{
		Repo:   repo,
		Events: events,
		Log:    log,
	}
}

// CreateOrder validates presence only; whether the lead actually exists is
// the store's call (foreign key), surfaced as entity.ErrLeadNotFound.
func (s *OrderService) CreateOrder(ctx context.Context, input CreateOrderInput) (*entity.Order, error) {
	if errs := validateCreateOrder(input); len(errs) > 0 {
		return nil, errs
	}

	order := entity.NewOrder(input.LeadID, input.Status, input.Courier, input.TrackingNumber)

	if err := s.Repo.Create(ctx, order); err != nil {
		return nil, err
	}

	s.publish(ctx, order.ID, order.Status)

	return order, nil
}

func (s *OrderService) UpdateOrder(ctx context.Context, id int64, input UpdateOrderInput) (*entity.Order, error) {
	if errs := validateUpdateOrder(input); len(errs) > 0 {
		return nil, errs
	}

	fields := entity.Fields{
		"status":          input.Status,
		"courier":         input.Courier,
		"tracking_number": input.TrackingNumber,
	}

	order, err := s.Repo.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	if input.Status != "" {
		s.publish(ctx, order.ID, order.Status)
	}

	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context, filter OrderFilter) ([]entity.Order, error) {
	return s.Repo.List(ctx, filter.Status)
}

func (s *OrderService) publish(ctx context.Context, orderID int64, status string) {
	if s.Events == nil {
		return
	}
	event := queue.NewPipelineEvent("order", orderID, "status", status)
	if err := s.Events.PublishPipelineEvent(ctx, event); err != nil {
		s.Log.Errorw("publishing order pipeline event", "order_id", orderID, "status", status, "error", err)
	}
}
