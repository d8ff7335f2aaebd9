package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/brunovtr/pipecrm/internal/entity"
	"github.com/brunovtr/pipecrm/internal/infra/http/middleware"
	"github.com/brunovtr/pipecrm/internal/usecase"
)

type LeadService interface {
	CreateLead(ctx context.Context, input usecase.CreateLeadInput) (*entity.Lead, error)
	UpdateLead(ctx context.Context, id int64, input usecase.UpdateLeadInput) (*entity.Lead, error)
	ListLeads(ctx context.Context, filter usecase.LeadFilter) ([]entity.Lead, error)
}

type LeadHandler struct {
	Service LeadService
	Log     *zap.SugaredLogger
}

func NewLeadHandler(service LeadService, log *zap.SugaredLogger) *LeadHandler {
	return &LeadHandler{
		Service: service,
		Log:     log,
	}
}

func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateLeadInput
	if err := decode(r, &input); err != nil {
		respondErr(w, http.StatusBadRequest, errors.New("invalid JSON"))
		return
	}

	lead, err := h.Service.CreateLead(r.Context(), input)
	if err != nil {
		h.Log.Errorw("create lead", "error", err)
		respondErr(w, statusFromErr(err), err)
		return
	}

	middleware.RecordLeadCreated(lead.Stage)
	respond(w, http.StatusCreated, lead)
}

func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := usecase.LeadFilter{
		Stage:          r.URL.Query().Get("stage"),
		FollowUpBefore: r.URL.Query().Get("follow_up_before"),
	}

	leads, err := h.Service.ListLeads(r.Context(), filter)
	if err != nil {
		h.Log.Errorw("list leads", "error", err)
		respondErr(w, statusFromErr(err), err)
		return
	}

	respond(w, http.StatusOK, leads)
}

func (h *LeadHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondErr(w, http.StatusBadRequest, errors.New("id must be an integer"))
		return
	}

	var input usecase.UpdateLeadInput
	if err := decode(r, &input); err != nil {
		respondErr(w, http.StatusBadRequest, errors.New("invalid JSON"))
		return
	}

	lead, err := h.Service.UpdateLead(r.Context(), id, input)
	if err != nil {
		h.Log.Errorw("update lead", "id", id, "error", err)
		respondErr(w, statusFromErr(err), err)
		return
	}

	if input.Stage != "" {
		middleware.RecordPipelineTransition("lead", lead.Stage)
	}
	respond(w, http.StatusOK, lead)
}
