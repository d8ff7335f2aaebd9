package usecase

import (
	"context"

	"github.com/brunovtr/pipecrm/internal/entity"
	"github.com/brunovtr/pipecrm/internal/infra/queue"
)

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *entity.Lead) error
	List(ctx context.Context, stage, followUpBefore string) ([]entity.Lead, error)
	Update(ctx context.Context, id int64, fields entity.Fields) (*entity.Lead, error)
	CountByStage(ctx context.Context) (map[string]int, error)
}

type OrderRepositoryInterface interface {
	Create(ctx context.Context, order *entity.Order) error
	List(ctx context.Context, status string) ([]entity.Order, error)
	Update(ctx context.Context, id int64, fields entity.Fields) (*entity.Order, error)
	CountByStatus(ctx context.Context) (map[string]int, error)
}

type EventPublisherInterface interface {
	PublishPipelineEvent(ctx context.Context, event queue.PipelineEvent) error
}
