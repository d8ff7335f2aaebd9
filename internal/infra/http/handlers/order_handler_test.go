package handlers_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/brunovtr/pipecrm/internal/entity"
	"github.com/brunovtr/pipecrm/internal/infra/http/handlers"
	"github.com/brunovtr/pipecrm/internal/usecase"
)

// MockOrderService
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) CreateOrder(ctx context.Context, input usecase.CreateOrderInput) (*entity.Order, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Order), args.Error(1)
}

func (m *MockOrderService) UpdateOrder(ctx context.Context, id int64, input usecase.UpdateOrderInput) (*entity.Order, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Order), args.Error(1)
}

func (m *MockOrderService) ListOrders(ctx context.Context, filter usecase.OrderFilter) ([]entity.Order, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Order), args.Error(1)
}

func orderRouter(svc handlers.OrderService) *chi.Mux {
	h := handlers.NewOrderHandler(svc, zap.NewNop().Sugar())
	r := chi.NewRouter()
	r.Post("/api/orders", h.Create)
	r.Get("/api/orders", h.List)
	r.Patch("/api/orders/{id}", h.Update)
	return r
}

func TestOrderHandlerCreateReturns201(t *testing.T) {
	svc := new(MockOrderService)
	svc.On("CreateOrder", mock.Anything, usecase.CreateOrderInput{
		LeadID: 1,
		Status: "Order Received",
	}).Return(&entity.Order{ID: 10, LeadID: 1, Status: "Order Received"}, nil)

	body := bytes.NewBufferString(`{"lead_id":1,"status":"Order Received"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/orders", body)
	rec := httptest.NewRecorder()

	orderRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	svc.AssertExpectations(t)
}

func TestOrderHandlerCreateUnknownLeadReturns404(t *testing.T) {
	svc := new(MockOrderService)
	svc.On("CreateOrder", mock.Anything, mock.Anything).Return(nil, entity.ErrLeadNotFound)

	body := bytes.NewBufferString(`{"lead_id":99,"status":"Order Received"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/orders", body)
	rec := httptest.NewRecorder()

	orderRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "lead not found")
}

func TestOrderHandlerListFiltersByStatus(t *testing.T) {
	svc := new(MockOrderService)
	svc.On("ListOrders", mock.Anything, usecase.OrderFilter{Status: "Dispatched"}).
		Return([]entity.Order{{ID: 10, Status: "Dispatched"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/orders?status=Dispatched", nil)
	rec := httptest.NewRecorder()

	orderRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestOrderHandlerUpdateUnknownIDReturns404(t *testing.T) {
	svc := new(MockOrderService)
	svc.On("UpdateOrder", mock.Anything, int64(42), mock.Anything).
		Return(nil, entity.ErrOrderNotFound)

	req := httptest.NewRequest(http.MethodPatch, "/api/orders/42", bytes.NewBufferString(`{"status":"Dispatched"}`))
	rec := httptest.NewRecorder()

	orderRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOrderHandlerUpdateInvalidJSONReturns400(t *testing.T) {
	req := httptest.NewRequest(http.MethodPatch, "/api/orders/1", bytes.NewBufferString(`{status`))
	rec := httptest.NewRecorder()

	orderRouter(new(MockOrderService)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
