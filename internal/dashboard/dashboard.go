// Package dashboard содержит производные представления, которые показывают
// панели администратора, гражданина, наблюдателя и аналитика. Все функции
// чистые и не меняют переданные срезы.
package dashboard

import (
	"cmp"
	"slices"

	"github.com/shenikar/election_monitoring/internal/models"
)

// IncidentsOwnedBy возвращает инциденты, созданные пользователем userID
func IncidentsOwnedBy(items []models.Incident, userID string) []models.Incident {
	return ownedBy(items, userID, func(i models.Incident) string { return i.CreatedByID })
}

func FraudReportsOwnedBy(items []models.FraudReport, userID string) []models.FraudReport {
	return ownedBy(items, userID, func(r models.FraudReport) string { return r.CreatedByID })
}

func AnalystReportsOwnedBy(items []models.AnalystReport, userID string) []models.AnalystReport {
	return ownedBy(items, userID, func(r models.AnalystReport) string { return r.CreatedByID })
}

func ownedBy[T any](items []T, userID string, owner func(T) string) []T {
	out := make([]T, 0)
	if userID == "" {
		return out
	}
	for _, item := range items {
		if owner(item) == userID {
			out = append(out, item)
		}
	}
	return out
}

type IncidentStatusCounts struct {
	Open          int `json:"open"`
	Investigating int `json:"investigating"`
	Resolved      int `json:"resolved"`
}

// CountIncidentStatuses считает инциденты по статусу; пустой статус считается open
func CountIncidentStatuses(items []models.Incident) IncidentStatusCounts {
	var c IncidentStatusCounts
	for _, item := range items {
		switch cmp.Or(item.Status, models.IncidentOpen) {
		case models.IncidentOpen:
			c.Open++
		case models.IncidentInvestigating:
			c.Investigating++
		case models.IncidentResolved:
			c.Resolved++
		}
	}
	return c
}

type SeverityCounts struct {
	Low    int `json:"low"`
	Medium int `json:"medium"`
	High   int `json:"high"`
}

// CountSeverities считает инциденты по важности; пустая важность считается medium
func CountSeverities(items []models.Incident) SeverityCounts {
	var c SeverityCounts
	for _, item := range items {
		switch cmp.Or(item.Severity, models.SeverityMedium) {
		case models.SeverityLow:
			c.Low++
		case models.SeverityMedium:
			c.Medium++
		case models.SeverityHigh:
			c.High++
		}
	}
	return c
}

// HighSeverityCount - число инцидентов высокой важности ("risk cases")
func HighSeverityCount(items []models.Incident) int {
	n := 0
	for _, item := range items {
		if item.Severity == models.SeverityHigh {
			n++
		}
	}
	return n
}

type FraudStatusCounts struct {
	Submitted   int `json:"submitted"`
	UnderReview int `json:"under-review"`
	Verified    int `json:"verified"`
	Rejected    int `json:"rejected"`
}

// CountFraudStatuses считает жалобы по статусу; пустой статус считается submitted
func CountFraudStatuses(items []models.FraudReport) FraudStatusCounts {
	var c FraudStatusCounts
	for _, item := range items {
		switch cmp.Or(item.Status, models.FraudSubmitted) {
		case models.FraudSubmitted:
			c.Submitted++
		case models.FraudUnderReview:
			c.UnderReview++
		case models.FraudVerified:
			c.Verified++
		case models.FraudRejected:
			c.Rejected++
		}
	}
	return c
}

// NewestFirst сортирует копию по createdAt по убыванию
func NewestFirst[T any](items []T, createdAt func(T) int64) []T {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b T) int {
		return cmp.Compare(createdAt(b), createdAt(a))
	})
	return out
}
