package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/brunovtr/pipecrm/internal/entity"
	"github.com/brunovtr/pipecrm/internal/usecase"
)

func decode(r *http.Request, into any) error {
	rawJSON, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(rawJSON, into)
}

func respond(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func respondErr(w http.ResponseWriter, status int, err error) {
	respond(w, status, map[string]string{"error": err.Error()})
}

// statusFromErr maps the service error taxonomy onto HTTP statuses:
// client-correctable input problems are 400, unknown ids 404, and any
// store failure stays an opaque 500.
func statusFromErr(err error) int {
	switch {
	case usecase.IsValidationError(err),
		errors.Is(err, entity.ErrNoFieldsToUpdate):
		return http.StatusBadRequest
	case errors.Is(err, entity.ErrLeadNotFound),
		errors.Is(err, entity.ErrOrderNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
