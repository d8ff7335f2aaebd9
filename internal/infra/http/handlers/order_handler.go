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

type OrderService interface {
	CreateOrder(ctx context.Context, input usecase.CreateOrderInput) (*entity.Order, error)
	UpdateOrder(ctx context.Context, id int64, input usecase.UpdateOrderInput) (*entity.Order, error)
	ListOrders(ctx context.Context, filter usecase.OrderFilter) ([]entity.Order, error)
}

type OrderHandler struct {
	Service OrderService
	Log     *zap.SugaredLogger
}

func NewOrderHandler(service OrderService, log *zap.SugaredLogger) *OrderHandler {
	return &OrderHandler{
		Service: service,
		Log:     log,
	}
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateOrderInput
	if err := decode(r, &input); err != nil {
		respondErr(w, http.StatusBadRequest, errors.New("invalid JSON"))
		return
	}

	order, err := h.Service.CreateOrder(r.Context(), input)
	if err != nil {
		h.Log.Errorw("create order", "error", err)
		respondErr(w, statusFromErr(err), err)
		return
	}

	middleware.RecordOrderCreated(order.Status)
	respond(w, http.StatusCreated, order)
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := usecase.OrderFilter{
		Status: r.URL.Query().Get("status"),
	}

	orders, err := h.Service.ListOrders(r.Context(), filter)
	if err != nil {
		h.Log.Errorw("list orders", "error", err)
		respondErr(w, statusFromErr(err), err)
		return
	}

	respond(w, http.StatusOK, orders)
}

func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondErr(w, http.StatusBadRequest, errors.New("id must be an integer"))
		return
	}

	var input usecase.UpdateOrderInput
	if err := decode(r, &input); err != nil {
		respondErr(w, http.StatusBadRequest, errors.New("invalid JSON"))
		return
	}

	order, err := h.Service.UpdateOrder(r.Context(), id, input)
	if err != nil {
		h.Log.Errorw("update order", "id", id, "error", err)
		respondErr(w, statusFromErr(err), err)
		return
	}

	if input.Status != "" {
		middleware.RecordPipelineTransition("order", order.Status)
	}
	respond(w, http.StatusOK, order)
}
