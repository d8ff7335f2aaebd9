package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/brunovtr/pipecrm/internal/entity"
)

const leadColumns = "id, name, contact, company, product_interest, stage, follow_up_date, created_at"

// Mutable columns, in the order the update builder examines them.
var leadMutable = []string{"stage", "follow_up_date", "name", "contact", "company", "product_interest"}

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

// Create inserts the lead and reads the stored row back in the same
// statement, filling in the generated id and created_at.
func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (name, contact, company, product_interest, stage, follow_up_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + leadColumns

	row := r.DB.QueryRowContext(ctx, query,
		lead.Name,
		lead.Contact,
		lead.Company,
		lead.ProductInterest,
		lead.Stage,
		lead.FollowUpDate,
	)

	return scanLead(row, lead)
}

// List returns leads newest first. Empty filter values are skipped;
// followUpBefore keeps rows with follow_up_date on or before the given date.
func (r *LeadRepository) List(ctx context.Context, stage, followUpBefore string) ([]entity.Lead, error) {
	var filters []Filter
	if stage != "" {
		filters = append(filters, Filter{Column: "stage", Op: "=", Value: stage})
	}
	if followUpBefore != "" {
		filters = append(filters, Filter{Column: "follow_up_date", Op: "<=", Value: followUpBefore})
	}

	query, args := BuildSelect("SELECT "+leadColumns+" FROM leads", filters, "created_at DESC")

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := []entity.Lead{}
	for rows.Next() {
		var lead entity.Lead
		if err := scanLead(rows, &lead); err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}

	return leads, rows.Err()
}

// Update writes exactly the fields present in the patch and returns the
// updated row, or entity.ErrLeadNotFound when the id matches nothing.
func (r *LeadRepository) Update(ctx context.Context, id int64, fields entity.Fields) (*entity.Lead, error) {
	query, args, err := BuildUpdate("leads", leadMutable, fields, id, leadColumns)
	if err != nil {
		return nil, err
	}

	var lead entity.Lead
	if err := scanLead(r.DB.QueryRowContext(ctx, query, args...), &lead); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrLeadNotFound
		}
		return nil, err
	}

	return &lead, nil
}

// CountByStage feeds the dashboard. Stages with no leads are absent from
// the result; callers fill in the zero buckets.
func (r *LeadRepository) CountByStage(ctx context.Context) (map[string]int, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT stage, COUNT(*) FROM leads GROUP BY stage`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var stage string
		var n int
		if err := rows.Scan(&stage, &n); err != nil {
			return nil, err
		}
		counts[stage] = n
	}

	return counts, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLead(row rowScanner, lead *entity.Lead) error {
	return row.Scan(
		&lead.ID,
		&lead.Name,
		&lead.Contact,
		&lead.Company,
		&lead.ProductInterest,
		&lead.Stage,
		&lead.FollowUpDate,
		&lead.CreatedAt,
	)
}
