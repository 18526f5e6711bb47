package dashboard

import (
	"strings"

	"github.com/shenikar/election_monitoring/internal/models"
)

// StatusAll отключает фильтр по статусу или роли
const StatusAll = "all"

// SearchIncidents фильтрует по статусу и подстроке в title/location/details,
// результат отсортирован от новых к старым
func SearchIncidents(items []models.Incident, query, status string) []models.Incident {
	q := normalizeQuery(query)
	out := make([]models.Incident, 0)
	for _, item := range items {
		if !statusMatches(status, string(item.Status)) {
			continue
		}
		if !contains(q, item.Title, item.Location, item.Details) {
			continue
		}
		out = append(out, item)
	}
	return NewestFirst(out, func(i models.Incident) int64 { return i.CreatedAt.UnixNano() })
}

// SearchFraudReports фильтрует по статусу и подстроке в title/location/category/createdBy
func SearchFraudReports(items []models.FraudReport, query, status string) []models.FraudReport {
	q := normalizeQuery(query)
	out := make([]models.FraudReport, 0)
	for _, item := range items {
		if !statusMatches(status, string(item.Status)) {
			continue
		}
		if !contains(q, item.Title, item.Location, item.Category, item.CreatedBy) {
			continue
		}
		out = append(out, item)
	}
	return NewestFirst(out, func(r models.FraudReport) int64 { return r.CreatedAt.UnixNano() })
}

// SearchUsers фильтрует по роли и подстроке в name/email/role, порядок сохраняется
func SearchUsers(users []models.User, query, role string) []models.User {
	q := normalizeQuery(query)
	out := make([]models.User, 0)
	for _, u := range users {
		if !statusMatches(role, string(u.Role)) {
			continue
		}
		if !contains(q, u.Name, u.Email, string(u.Role)) {
			continue
		}
		out = append(out, u)
	}
	return out
}

func normalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

func statusMatches(filter, value string) bool {
	return filter == "" || filter == StatusAll || filter == value
}

func contains(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(strings.Join(fields, " ")), query)
}
