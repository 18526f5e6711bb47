package models

import (
	"time"
)

type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return true
	}
	return false
}

type IncidentStatus string

const (
	IncidentOpen          IncidentStatus = "open"
	IncidentInvestigating IncidentStatus = "investigating"
	IncidentResolved      IncidentStatus = "resolved"
)

func (s IncidentStatus) Valid() bool {
	switch s {
	case IncidentOpen, IncidentInvestigating, IncidentResolved:
		return true
	}
	return false
}

// Incident - событие, зафиксированное наблюдателем на участке
type Incident struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Location    string         `json:"location"`
	Severity    Severity       `json:"severity"`
	Status      IncidentStatus `json:"status"`
	Details     string         `json:"details"`
	CreatedBy   string         `json:"createdBy"`
	CreatedByID string         `json:"createdById,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
}
