package usecase

type CreateLeadInput struct {
	Name            string `json:"name"`
	Contact         string `json:"contact"`
	Company         string `json:"company"`
	ProductInterest string `json:"product_interest"`
	Stage           string `json:"stage"`
	FollowUpDate    string `json:"follow_up_date"`
}

// UpdateLeadInput is a partial update: empty fields are left untouched in
// the store, so a PATCH carries only what the caller wants changed.
type UpdateLeadInput struct {
	Stage           string `json:"stage"`
	FollowUpDate    string `json:"follow_up_date"`
	Name            string `json:"name"`
	Contact         string `json:"contact"`
	Company         string `json:"company"`
	ProductInterest string `json:"product_interest"`
}

type LeadFilter struct {
	Stage          string
	FollowUpBefore string
}

type CreateOrderInput struct {
	LeadID         int64  `json:"lead_id"`
	Status         string `json:"status"`
	Courier        string `json:"courier"`
	TrackingNumber string `json:"tracking_number"`
}

type UpdateOrderInput struct {
	Status         string `json:"status"`
	Courier        string `json:"courier"`
	TrackingNumber string `json:"tracking_number"`
}

type OrderFilter struct {
	Status string
}

type BucketCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// DashboardSummary feeds the chart views. Both slices cover every value of
// the fixed enumerations, zero buckets included, in board order.
type DashboardSummary struct {
	TotalLeads     int           `json:"total_leads"`
	TotalOrders    int           `json:"total_orders"`
	LeadsByStage   []BucketCount `json:"leads_by_stage"`
	OrdersByStatus []BucketCount `json:"orders_by_status"`
}
