package handlers

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/brunovtr/pipecrm/internal/usecase"
)

type DashboardService interface {
	GetSummary(ctx context.Context) (*usecase.DashboardSummary, error)
}

type DashboardHandler struct {
	Service DashboardService
	Log     *zap.SugaredLogger
}

func NewDashboardHandler(service DashboardService, log *zap.SugaredLogger) *DashboardHandler {
	return &DashboardHandler{
		Service: service,
		Log:     log,
	}
}

func (h *DashboardHandler) Handle(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Service.GetSummary(r.Context())
	if err != nil {
		h.Log.Errorw("dashboard summary", "error", err)
		respondErr(w, statusFromErr(err), err)
		return
	}

	respond(w, http.StatusOK, summary)
}
