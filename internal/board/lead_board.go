package board

import (
	"context"

	"github.com/brunovtr/pipecrm/internal/entity"
	"github.com/brunovtr/pipecrm/internal/usecase"
)

// LeadColumn is one kanban column: a stage plus the leads currently in it,
// in the order the server returned them (created_at descending).
type LeadColumn struct {
	Stage string
	Leads []entity.Lead
}

// LeadForm carries the create/edit form fields. Empty values are omitted
// from the resulting patch, so editing never blanks a stored field.
type LeadForm struct {
	Name            string
	Contact         string
	Company         string
	ProductInterest string
	Stage           string
	FollowUpDate    string
}

type LeadBoard struct {
	client *Client
	leads  []entity.Lead
}

func NewLeadBoard(client *Client) *LeadBoard {
	return &LeadBoard{client: client}
}

// Load replaces the in-memory list with the server's.
func (b *LeadBoard) Load(ctx context.Context) error {
	leads, err := b.client.ListLeads(ctx, "", "")
	if err != nil {
		return err
	}
	b.leads = leads
	return nil
}

func (b *LeadBoard) Leads() []entity.Lead {
	return b.leads
}

// MoveLead is the drag-drop transition: when the target stage differs from
// the lead's current stage it patches that single field and reloads the
// whole list; dropping a lead on its own column makes no network call.
func (b *LeadBoard) MoveLead(ctx context.Context, id int64, targetStage string) error {
	lead := b.find(id)
	if lead == nil {
		return entity.ErrLeadNotFound
	}
	if lead.Stage == targetStage {
		return nil
	}

	if _, err := b.client.UpdateLead(ctx, id, usecase.UpdateLeadInput{Stage: targetStage}); err != nil {
		return err
	}
	return b.Load(ctx)
}

// SubmitForm is the modal flow: patch when editing, create otherwise, then
// reload. On failure the list stays as it was and the error goes back to
// the caller to resubmit.
func (b *LeadBoard) SubmitForm(ctx context.Context, editingID *int64, form LeadForm) error {
	if editingID != nil {
		patch := usecase.UpdateLeadInput{
			Stage:           form.Stage,
			FollowUpDate:    form.FollowUpDate,
			Name:            form.Name,
			Contact:         form.Contact,
			Company:         form.Company,
			ProductInterest: form.ProductInterest,
		}
		if _, err := b.client.UpdateLead(ctx, *editingID, patch); err != nil {
			return err
		}
	} else {
		input := usecase.CreateLeadInput{
			Name:            form.Name,
			Contact:         form.Contact,
			Company:         form.Company,
			ProductInterest: form.ProductInterest,
			Stage:           form.Stage,
			FollowUpDate:    form.FollowUpDate,
		}
		if _, err := b.client.CreateLead(ctx, input); err != nil {
			return err
		}
	}

	return b.Load(ctx)
}

// Columns recomputes the grouping from the current list: one column per
// stage in the fixed enumeration, empty ones included, list order preserved
// within each column. It is a pure projection and is never mutated in place.
func (b *LeadBoard) Columns() []LeadColumn {
	columns := make([]LeadColumn, len(entity.Stages))
	index := make(map[string]int, len(entity.Stages))
	for i, stage := range entity.Stages {
		columns[i] = LeadColumn{Stage: stage, Leads: []entity.Lead{}}
		index[stage] = i
	}

	for _, lead := range b.leads {
		i, ok := index[lead.Stage]
		if !ok {
			continue
		}
		columns[i].Leads = append(columns[i].Leads, lead)
	}

	return columns
}

func (b *LeadBoard) find(id int64) *entity.Lead {
	for i := range b.leads {
		if b.leads[i].ID == id {
			return &b.leads[i]
		}
	}
	return nil
}
