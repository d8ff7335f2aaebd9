package board

import (
	"context"

	"github.com/brunovtr/pipecrm/internal/entity"
	"github.com/brunovtr/pipecrm/internal/usecase"
)

type OrderColumn struct {
	Status string
	Orders []entity.Order
}

type OrderForm struct {
	LeadID         int64
	Status         string
	Courier        string
	TrackingNumber string
}

type OrderBoard struct {
	client *Client
	orders []entity.Order
}

func NewOrderBoard(client *Client) *OrderBoard {
	return &OrderBoard{client: client}
}

func (b *OrderBoard) Load(ctx context.Context) error {
	orders, err := b.client.ListOrders(ctx, "")
	if err != nil {
		return err
	}
	b.orders = orders
	return nil
}

func (b *OrderBoard) Orders() []entity.Order {
	return b.orders
}

// MoveOrder mirrors MoveLead: no-op without a network call when the order
// already has the target status, otherwise patch + full reload.
func (b *OrderBoard) MoveOrder(ctx context.Context, id int64, targetStatus string) error {
	order := b.find(id)
	if order == nil {
		return entity.ErrOrderNotFound
	}
	if order.Status == targetStatus {
		return nil
	}

	if _, err := b.client.UpdateOrder(ctx, id, usecase.UpdateOrderInput{Status: targetStatus}); err != nil {
		return err
	}
	return b.Load(ctx)
}

func (b *OrderBoard) SubmitForm(ctx context.Context, editingID *int64, form OrderForm) error {
	if editingID != nil {
		patch := usecase.UpdateOrderInput{
			Status:         form.Status,
			Courier:        form.Courier,
			TrackingNumber: form.TrackingNumber,
		}
		if _, err := b.client.UpdateOrder(ctx, *editingID, patch); err != nil {
			return err
		}
	} else {
		input := usecase.CreateOrderInput{
			LeadID:         form.LeadID,
			Status:         form.Status,
			Courier:        form.Courier,
			TrackingNumber: form.TrackingNumber,
		}
		if _, err := b.client.CreateOrder(ctx, input); err != nil {
			return err
		}
	}

	return b.Load(ctx)
}

func (b *OrderBoard) Columns() []OrderColumn {
	columns := make([]OrderColumn, len(entity.Statuses))
	index := make(map[string]int, len(entity.Statuses))
	for i, status := range entity.Statuses {
		columns[i] = OrderColumn{Status: status, Orders: []entity.Order{}}
		index[status] = i
	}

	for _, order := range b.orders {
		i, ok := index[order.Status]
		if !ok {
			continue
		}
		columns[i].Orders = append(columns[i].Orders, order)
	}

	return columns
}

func (b *OrderBoard) find(id int64) *entity.Order {
	for i := range b.orders {
		if b.orders[i].ID == id {
			return &b.orders[i]
		}
	}
	return nil
}
