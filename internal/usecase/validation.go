package usecase

import (
	"strings"
	"time"

	"github.com/brunovtr/pipecrm/internal/entity"
)

func validateCreateLead(input CreateLeadInput) ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(input.Name) == "" {
		errs = append(errs, ValidationError{"name", "is required"})
	}
	if strings.TrimSpace(input.Contact) == "" {
		errs = append(errs, ValidationError{"contact", "is required"})
	}
	if strings.TrimSpace(input.Stage) == "" {
		errs = append(errs, ValidationError{"stage", "is required"})
	} else if !entity.IsValidStage(input.Stage) {
		errs = append(errs, ValidationError{"stage", "must be one of " + strings.Join(entity.Stages, ", ")})
	}
	if input.FollowUpDate != "" && !isValidDate(input.FollowUpDate) {
		errs = append(errs, ValidationError{"follow_up_date", "must be a valid date (YYYY-MM-DD)"})
	}

	return errs
}

func validateUpdateLead(input UpdateLeadInput) ValidationErrors {
	var errs ValidationErrors

	if input.Stage != "" && !entity.IsValidStage(input.Stage) {
		errs = append(errs, ValidationError{"stage", "must be one of " + strings.Join(entity.Stages, ", ")})
	}
	if input.FollowUpDate != "" && !isValidDate(input.FollowUpDate) {
		errs = append(errs, ValidationError{"follow_up_date", "must be a valid date (YYYY-MM-DD)"})
	}

	return errs
}

func validateCreateOrder(input CreateOrderInput) ValidationErrors {
	var errs ValidationErrors

	if input.LeadID == 0 {
		errs = append(errs, ValidationError{"lead_id", "is required"})
	}
	if strings.TrimSpace(input.Status) == "" {
		errs = append(errs, ValidationError{"status", "is required"})
	} else if !entity.IsValidStatus(input.Status) {
		errs = append(errs, ValidationError{"status", "must be one of " + strings.Join(entity.Statuses, ", ")})
	}

	return errs
}

func validateUpdateOrder(input UpdateOrderInput) ValidationErrors {
	var errs ValidationErrors

	if input.Status != "" && !entity.IsValidStatus(input.Status) {
		errs = append(errs, ValidationError{"status", "must be one of " + strings.Join(entity.Statuses, ", ")})
	}

	return errs
}

func isValidDate(dateStr string) bool {
	if _, err := time.Parse("2006-01-02", dateStr); err == nil {
		return true
	}
	if _, err := time.Parse(time.RFC3339, dateStr); err == nil {
		return true
	}
	return false
}

func parseDate(dateStr string) *time.Time {
	if dateStr == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		if t, err = time.Parse(time.RFC3339, dateStr); err != nil {
			return nil
		}
	}
	return &t
}
