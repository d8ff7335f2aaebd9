package entity

import "time"

// Sales pipeline stages, in board order.
const (
	StageNew          = "New"
	StageContacted    = "Contacted"
	StageQualified    = "Qualified"
	StageProposalSent = "Proposal Sent"
	StageWon          = "Won"
	StageLost         = "Lost"
)

var Stages = []string{
	StageNew,
	StageContacted,
	StageQualified,
	StageProposalSent,
	StageWon,
	StageLost,
}

type Lead struct {
	ID              int64      `json:"id"`
	Name            string     `json:"name"`
	Contact         string     `json:"contact"`
	Company         *string    `json:"company"`
	ProductInterest *string    `json:"product_interest"`
	Stage           string     `json:"stage"`
	FollowUpDate    *time.Time `json:"follow_up_date"`
	CreatedAt       time.Time  `json:"created_at"`
}

// NewLead builds a lead ready for insertion. Empty optional fields are
// stored as NULL, never as empty strings.
func NewLead(name, contact, company, productInterest, stage string, followUpDate *time.Time) *Lead {
	return &Lead{
		Name:            name,
		Contact:         contact,
		Company:         nullString(company),
		ProductInterest: nullString(productInterest),
		Stage:           stage,
		FollowUpDate:    followUpDate,
	}
}

func IsValidStage(stage string) bool {
	for _, s := range Stages {
		if s == stage {
			return true
		}
	}
	return false
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
