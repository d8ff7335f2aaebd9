package board_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/brunovtr/pipecrm/internal/entity"
	"github.com/brunovtr/pipecrm/internal/usecase"
)

// fakeAPI is an in-memory stand-in for the real server. Lists come back
// newest first, patches apply only non-empty fields, and every request is
// counted so tests can assert how much traffic a flow produced.
type fakeAPI struct {
	mu       sync.Mutex
	leads    []entity.Lead
	orders   []entity.Order
	nextID   int64
	requests int
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{nextID: 1}
}

func (f *fakeAPI) server() *httptest.Server {
	r := chi.NewRouter()
	r.Use(f.count)
	r.Post("/api/leads", f.createLead)
	r.Get("/api/leads", f.listLeads)
	r.Patch("/api/leads/{id}", f.updateLead)
	r.Post("/api/orders", f.createOrder)
	r.Get("/api/orders", f.listOrders)
	r.Patch("/api/orders/{id}", f.updateOrder)
	return httptest.NewServer(r)
}

func (f *fakeAPI) count(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.requests++
		f.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (f *fakeAPI) requestCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests
}

func (f *fakeAPI) addLead(name, contact, stage string) entity.Lead {
	f.mu.Lock()
	defer f.mu.Unlock()
	lead := entity.Lead{
		ID:        f.nextID,
		Name:      name,
		Contact:   contact,
		Stage:     stage,
		CreatedAt: time.Now().UTC(),
	}
	f.nextID++
	f.leads = append([]entity.Lead{lead}, f.leads...)
	return lead
}

func (f *fakeAPI) addOrder(leadID int64, status string) entity.Order {
	f.mu.Lock()
	defer f.mu.Unlock()
	order := entity.Order{
		ID:        f.nextID,
		LeadID:    leadID,
		Status:    status,
		CreatedAt: time.Now().UTC(),
	}
	f.nextID++
	f.orders = append([]entity.Order{order}, f.orders...)
	return order
}

func (f *fakeAPI) createLead(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateLeadInput
	json.NewDecoder(r.Body).Decode(&input)
	if input.Name == "" || input.Contact == "" || input.Stage == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing required fields"})
		return
	}
	lead := f.addLead(input.Name, input.Contact, input.Stage)
	writeJSON(w, http.StatusCreated, lead)
}

func (f *fakeAPI) listLeads(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	stage := r.URL.Query().Get("stage")
	out := []entity.Lead{}
	for _, l := range f.leads {
		if stage != "" && l.Stage != stage {
			continue
		}
		out = append(out, l)
	}
	writeJSON(w, http.StatusOK, out)
}

func (f *fakeAPI) updateLead(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	var patch usecase.UpdateLeadInput
	json.NewDecoder(r.Body).Decode(&patch)

	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.leads {
		if f.leads[i].ID != id {
			continue
		}
		applyString(&f.leads[i].Stage, patch.Stage)
		applyString(&f.leads[i].Name, patch.Name)
		applyString(&f.leads[i].Contact, patch.Contact)
		if patch.Company != "" {
			f.leads[i].Company = &patch.Company
		}
		if patch.ProductInterest != "" {
			f.leads[i].ProductInterest = &patch.ProductInterest
		}
		writeJSON(w, http.StatusOK, f.leads[i])
		return
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "lead not found"})
}

func (f *fakeAPI) createOrder(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateOrderInput
	json.NewDecoder(r.Body).Decode(&input)
	if input.LeadID == 0 || input.Status == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing required fields"})
		return
	}
	order := f.addOrder(input.LeadID, input.Status)
	writeJSON(w, http.StatusCreated, order)
}

func (f *fakeAPI) listOrders(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	status := r.URL.Query().Get("status")
	out := []entity.Order{}
	for _, o := range f.orders {
		if status != "" && o.Status != status {
			continue
		}
		o := o
		for _, l := range f.leads {
			if l.ID == o.LeadID {
				name, contact := l.Name, l.Contact
				o.LeadName = &name
				o.LeadContact = &contact
			}
		}
		out = append(out, o)
	}
	writeJSON(w, http.StatusOK, out)
}

func (f *fakeAPI) updateOrder(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(strings.TrimSpace(chi.URLParam(r, "id")), 10, 64)
	var patch usecase.UpdateOrderInput
	json.NewDecoder(r.Body).Decode(&patch)

	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.orders {
		if f.orders[i].ID != id {
			continue
		}
		applyString(&f.orders[i].Status, patch.Status)
		if patch.Courier != "" {
			f.orders[i].Courier = &patch.Courier
		}
		if patch.TrackingNumber != "" {
			f.orders[i].TrackingNumber = &patch.TrackingNumber
		}
		writeJSON(w, http.StatusOK, f.orders[i])
		return
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "order not found"})
}

func applyString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
