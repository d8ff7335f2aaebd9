package entity

import "time"

// Fulfillment pipeline statuses, in board order.
const (
	StatusReceived    = "Order Received"
	StatusDevelopment = "In Development"
	StatusReady       = "Ready to Dispatch"
	StatusDispatched  = "Dispatched"
)

var Statuses = []string{
	StatusReceived,
	StatusDevelopment,
	StatusReady,
	StatusDispatched,
}

// Order is a fulfillment record tied to exactly one lead. LeadName and
// LeadContact are denormalized from the leads table on listing; they stay
// nil when a lead was removed out of band.
type Order struct {
	ID             int64     `json:"id"`
	LeadID         int64     `json:"lead_id"`
	Status         string    `json:"status"`
	Courier        *string   `json:"courier"`
	TrackingNumber *string   `json:"tracking_number"`
	CreatedAt      time.Time `json:"created_at"`
	LeadName       *string   `json:"lead_name,omitempty"`
	LeadContact    *string   `json:"lead_contact,omitempty"`
}

func NewOrder(leadID int64, status, courier, trackingNumber string) *Order {
	return &Order{
		LeadID:         leadID,
		Status:         status,
		Courier:        nullString(courier),
		TrackingNumber: nullString(trackingNumber),
	}
}

func IsValidStatus(status string) bool {
	for _, s := range Statuses {
		if s == status {
			return true
		}
	}
	return false
}
