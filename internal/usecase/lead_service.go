package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/brunovtr/pipecrm/internal/entity"
	"github.com/brunovtr/pipecrm/internal/infra/queue"
)

type LeadService struct {
	Repo   LeadRepositoryInterface
	Events EventPublisherInterface
	Log    *zap.SugaredLogger
}

func NewLeadService(repo LeadRepositoryInterface, events EventPublisherInterface, log *zap.SugaredLogger) *LeadService {
	return &LeadService{
		Repo:   repo,
		Events: events,
		Log:    log,
	}
}

func (s *LeadService) CreateLead(ctx context.Context, input CreateLeadInput) (*entity.Lead, error) {
	if errs := validateCreateLead(input); len(errs) > 0 {
		return nil, errs
	}

	lead := entity.NewLead(
		input.Name,
		input.Contact,
		input.Company,
		input.ProductInterest,
		input.Stage,
		parseDate(input.FollowUpDate),
	)

	if err := s.Repo.Create(ctx, lead); err != nil {
		return nil, err
	}

	s.publish(ctx, lead.ID, lead.Stage)

	return lead, nil
}

// UpdateLead writes only the fields present in the patch. The repository
// reports entity.ErrNoFieldsToUpdate for an empty patch and
// entity.ErrLeadNotFound for an unknown id.
func (s *LeadService) UpdateLead(ctx context.Context, id int64, input UpdateLeadInput) (*entity.Lead, error) {
	if errs := validateUpdateLead(input); len(errs) > 0 {
		return nil, errs
	}

	fields := entity.Fields{
		"stage":            input.Stage,
		"follow_up_date":   input.FollowUpDate,
		"name":             input.Name,
		"contact":          input.Contact,
		"company":          input.Company,
		"product_interest": input.ProductInterest,
	}

	lead, err := s.Repo.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	if input.Stage != "" {
		s.publish(ctx, lead.ID, lead.Stage)
	}

	return lead, nil
}

func (s *LeadService) ListLeads(ctx context.Context, filter LeadFilter) ([]entity.Lead, error) {
	return s.Repo.List(ctx, filter.Stage, filter.FollowUpBefore)
}

// publish is best-effort: the row is already committed, so a bus failure
// is logged and the request still succeeds.
func (s *LeadService) publish(ctx context.Context, leadID int64, stage string) {
	if s.Events == nil {
		return
	}
	event := queue.NewPipelineEvent("lead", leadID, "stage", stage)
	if err := s.Events.PublishPipelineEvent(ctx, event); err != nil {
		s.Log.Errorw("publishing lead pipeline event", "lead_id", leadID, "stage", stage, "error", err)
	}
}
