package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
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

// MockLeadService
type MockLeadService struct {
	mock.Mock
}

func (m *MockLeadService) CreateLead(ctx context.Context, input usecase.CreateLeadInput) (*entity.Lead, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadService) UpdateLead(ctx context.Context, id int64, input usecase.UpdateLeadInput) (*entity.Lead, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadService) ListLeads(ctx context.Context, filter usecase.LeadFilter) ([]entity.Lead, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func leadRouter(svc handlers.LeadService) *chi.Mux {
	h := handlers.NewLeadHandler(svc, zap.NewNop().Sugar())
	r := chi.NewRouter()
	r.Post("/api/leads", h.Create)
	r.Get("/api/leads", h.List)
	r.Patch("/api/leads/{id}", h.Update)
	return r
}

func TestLeadHandlerCreateReturns201(t *testing.T) {
	svc := new(MockLeadService)
	svc.On("CreateLead", mock.Anything, mock.Anything).Return(&entity.Lead{
		ID:      1,
		Name:    "Alice",
		Contact: "a@x.com",
		Stage:   "New",
	}, nil)

	body := bytes.NewBufferString(`{"name":"Alice","contact":"a@x.com","stage":"New"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/leads", body)
	rec := httptest.NewRecorder()

	leadRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var lead entity.Lead
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &lead))
	assert.Equal(t, int64(1), lead.ID)
	assert.Equal(t, "New", lead.Stage)
}

func TestLeadHandlerCreateValidationErrorReturns400(t *testing.T) {
	svc := new(MockLeadService)
	svc.On("CreateLead", mock.Anything, mock.Anything).
		Return(nil, usecase.ValidationErrors{{Field: "name", Message: "is required"}})

	req := httptest.NewRequest(http.MethodPost, "/api/leads", bytes.NewBufferString(`{}`))
	rec := httptest.NewRecorder()

	leadRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "name is required")
}

func TestLeadHandlerUpdateNoFieldsReturns400(t *testing.T) {
	svc := new(MockLeadService)
	svc.On("UpdateLead", mock.Anything, int64(1), mock.Anything).
		Return(nil, entity.ErrNoFieldsToUpdate)

	req := httptest.NewRequest(http.MethodPatch, "/api/leads/1", bytes.NewBufferString(`{}`))
	rec := httptest.NewRecorder()

	leadRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLeadHandlerUpdateUnknownIDReturns404(t *testing.T) {
	svc := new(MockLeadService)
	svc.On("UpdateLead", mock.Anything, int64(42), mock.Anything).
		Return(nil, entity.ErrLeadNotFound)

	req := httptest.NewRequest(http.MethodPatch, "/api/leads/42", bytes.NewBufferString(`{"stage":"Won"}`))
	rec := httptest.NewRecorder()

	leadRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLeadHandlerUpdateNonIntegerIDReturns400(t *testing.T) {
	req := httptest.NewRequest(http.MethodPatch, "/api/leads/abc", bytes.NewBufferString(`{"stage":"Won"}`))
	rec := httptest.NewRecorder()

	leadRouter(new(MockLeadService)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLeadHandlerListPassesQueryFilters(t *testing.T) {
	svc := new(MockLeadService)
	svc.On("ListLeads", mock.Anything, usecase.LeadFilter{
		Stage:          "Qualified",
		FollowUpBefore: "2025-05-30",
	}).Return([]entity.Lead{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/leads?stage=Qualified&follow_up_before=2025-05-30", nil)
	rec := httptest.NewRecorder()

	leadRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestLeadHandlerListStoreErrorReturns500(t *testing.T) {
	svc := new(MockLeadService)
	svc.On("ListLeads", mock.Anything, mock.Anything).Return(nil, assert.AnError)

	req := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
	rec := httptest.NewRecorder()

	leadRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
