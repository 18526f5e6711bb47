package v1

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shenikar/election_monitoring/internal/dashboard"
	"github.com/shenikar/election_monitoring/internal/models"
)

// Response - общий конверт ответа API
// @Description Общий конверт ответа API
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// RegisterRequest DTO для регистрации и создания пользователя
// @Description DTO для регистрации и создания пользователя
type RegisterRequest struct {
	Name     string `json:"name" validate:"max=255"`
	Email    string `json:"email" validate:"max=255"`
	Password string `json:"password" validate:"max=255"`
	Role     string `json:"role" validate:"max=32"`
}

// LoginRequest DTO для входа
// @Description DTO для входа
type LoginRequest struct {
	Email    string `json:"email" validate:"max=255"`
	Password string `json:"password" validate:"max=255"`
}

// UpdateUserRequest DTO для обновления пользователя; пустой пароль сохраняет прежний
// @Description DTO для обновления пользователя
type UpdateUserRequest struct {
	Name     string `json:"name" validate:"max=255"`
	Email    string `json:"email" validate:"max=255"`
	Password string `json:"password,omitempty" validate:"max=255"`
	Role     string `json:"role" validate:"max=32"`
}

// UserResponse DTO пользователя без пароля
// @Description DTO пользователя без пароля
type UserResponse struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
}

// IncidentRequest DTO для создания инцидента
// @Description DTO для создания инцидента
type IncidentRequest struct {
	Title    string `json:"title" validate:"max=255"`
	Location string `json:"location" validate:"max=255"`
	Severity string `json:"severity" validate:"max=32"`
	Status   string `json:"status,omitempty" validate:"max=32"`
	Details  string `json:"details" validate:"max=4000"`
}

// IncidentPatchRequest DTO для частичного обновления инцидента
// @Description DTO для частичного обновления инцидента
type IncidentPatchRequest struct {
	Title    *string `json:"title,omitempty" validate:"omitempty,max=255"`
	Location *string `json:"location,omitempty" validate:"omitempty,max=255"`
	Severity *string `json:"severity,omitempty" validate:"omitempty,max=32"`
	Status   *string `json:"status,omitempty" validate:"omitempty,max=32"`
	Details  *string `json:"details,omitempty" validate:"omitempty,max=4000"`
}

// FraudReportRequest DTO для подачи жалобы
// @Description DTO для подачи жалобы
type FraudReportRequest struct {
	Title       string `json:"title" validate:"max=255"`
	Category    string `json:"category" validate:"max=64"`
	Location    string `json:"location" validate:"max=255"`
	Description string `json:"description" validate:"max=4000"`
}

// FraudReportPatchRequest DTO для частичного обновления жалобы
// @Description DTO для частичного обновления жалобы
type FraudReportPatchRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,max=255"`
	Category    *string `json:"category,omitempty" validate:"omitempty,max=64"`
	Location    *string `json:"location,omitempty" validate:"omitempty,max=255"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=4000"`
	Status      *string `json:"status,omitempty" validate:"omitempty,max=32"`
}

// AnalystReportRequest DTO для создания и обновления аналитического отчёта
// @Description DTO для аналитического отчёта
type AnalystReportRequest struct {
	Title          string `json:"title" validate:"max=255"`
	Summary        string `json:"summary" validate:"max=4000"`
	Recommendation string `json:"recommendation" validate:"max=4000"`
	Status         string `json:"status" validate:"max=32"`
}

// VoteCount принимает число голосов как JSON-число или строку
type VoteCount string

func (v *VoteCount) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = VoteCount(s)
		return nil
	}
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		raw = ""
	}
	*v = VoteCount(raw)
	return nil
}

// ElectionResultRequest DTO для создания и обновления результата участка
// @Description DTO для результата участка
type ElectionResultRequest struct {
	BoothName    string    `json:"boothName" validate:"max=255"`
	Constituency string    `json:"constituency" validate:"max=255"`
	Winner       string    `json:"winner" validate:"max=255"`
	Party        string    `json:"party" validate:"max=255"`
	Votes        VoteCount `json:"votes" swaggertype:"string"`
	TotalVotes   VoteCount `json:"totalVotes" swaggertype:"string"`
	Status       string    `json:"status" validate:"max=32"`
}

// IncidentStatsResponse DTO со сводкой по инцидентам
// @Description DTO со сводкой по инцидентам
type IncidentStatsResponse struct {
	Status   dashboard.IncidentStatusCounts `json:"status"`
	Severity dashboard.SeverityCounts       `json:"severity"`
	HighRisk int                            `json:"highRisk"`
	Total    int                            `json:"total"`
}

// HealthResponse DTO health-check
type HealthResponse struct {
	Status    string    `json:"status"`
	CheckedAt time.Time `json:"checkedAt"`
}
