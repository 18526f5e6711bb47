package models

import "time"

type FraudStatus string

const (
	FraudSubmitted   FraudStatus = "submitted"
	FraudUnderReview FraudStatus = "under-review"
	FraudVerified    FraudStatus = "verified"
	FraudRejected    FraudStatus = "rejected"
)

func (s FraudStatus) Valid() bool {
	switch s {
	case FraudSubmitted, FraudUnderReview, FraudVerified, FraudRejected:
		return true
	}
	return false
}

// FraudReport - жалоба гражданина на нарушение на выборах
type FraudReport struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Category    string      `json:"category"`
	Location    string      `json:"location"`
	Description string      `json:"description"`
	Status      FraudStatus `json:"status"`
	CreatedBy   string      `json:"createdBy"`
	CreatedByID string      `json:"createdById,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
}

type AnalystStatus string

const (
	AnalystDraft     AnalystStatus = "draft"
	AnalystReview    AnalystStatus = "review"
	AnalystPublished AnalystStatus = "published"
)

func (s AnalystStatus) Valid() bool {
	switch s {
	case AnalystDraft, AnalystReview, AnalystPublished:
		return true
	}
	return false
}

// AnalystReport - аналитический отчёт с циклом draft -> review -> published
type AnalystReport struct {
	ID             string        `json:"id"`
	Title          string        `json:"title"`
	Summary        string        `json:"summary"`
	Recommendation string        `json:"recommendation"`
	Status         AnalystStatus `json:"status"`
	CreatedBy      string        `json:"createdBy"`
	CreatedByID    string        `json:"createdById,omitempty"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}
