package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/brunovtr/pipecrm/internal/entity"
)

// lib/pq errorCodeNames
// https://github.com/lib/pq/blob/master/error.go#L178
const foreignKeyViolation = "23503"

const orderColumns = "id, lead_id, status, courier, tracking_number, created_at"

// Listing joins leads to denormalize the lead's name and contact into each
// row. LEFT JOIN so an order survives a lead removed out of band.
const orderListQuery = `
	SELECT o.id, o.lead_id, o.status, o.courier, o.tracking_number, o.created_at,
	       l.name AS lead_name, l.contact AS lead_contact
	FROM orders o
	LEFT JOIN leads l ON o.lead_id = l.id`

var orderMutable = []string{"status", "courier", "tracking_number"}

type OrderRepository struct {
	DB *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) Create(ctx context.Context, order *entity.Order) error {
	query := `
		INSERT INTO orders (lead_id, status, courier, tracking_number)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + orderColumns

	row := r.DB.QueryRowContext(ctx, query,
		order.LeadID,
		order.Status,
		order.Courier,
		order.TrackingNumber,
	)

	err := row.Scan(
		&order.ID,
		&order.LeadID,
		&order.Status,
		&order.Courier,
		&order.TrackingNumber,
		&order.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
			return entity.ErrLeadNotFound
		}
		return err
	}

	return nil
}

func (r *OrderRepository) List(ctx context.Context, status string) ([]entity.Order, error) {
	var filters []Filter
	if status != "" {
		filters = append(filters, Filter{Column: "o.status", Op: "=", Value: status})
	}

	query, args := BuildSelect(orderListQuery, filters, "o.created_at DESC")

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []entity.Order{}
	for rows.Next() {
		var o entity.Order
		err := rows.Scan(
			&o.ID,
			&o.LeadID,
			&o.Status,
			&o.Courier,
			&o.TrackingNumber,
			&o.CreatedAt,
			&o.LeadName,
			&o.LeadContact,
		)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, rows.Err()
}

func (r *OrderRepository) Update(ctx context.Context, id int64, fields entity.Fields) (*entity.Order, error) {
	query, args, err := BuildUpdate("orders", orderMutable, fields, id, orderColumns)
	if err != nil {
		return nil, err
	}

	var o entity.Order
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(
		&o.ID,
		&o.LeadID,
		&o.Status,
		&o.Courier,
		&o.TrackingNumber,
		&o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrOrderNotFound
		}
		return nil, err
	}

	return &o, nil
}

func (r *OrderRepository) CountByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT status, COUNT(*) FROM orders GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[status] = n
	}

	return counts, rows.Err()
}
