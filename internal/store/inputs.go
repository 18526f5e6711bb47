package store

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shenikar/election_monitoring/internal/models"
)

// UserInput - данные для регистрации и создания пользователя
type UserInput struct {
	Name     string      `validate:"required"`
	Email    string      `validate:"required"`
	Password string      `validate:"required"`
	Role     models.Role `validate:"required,enum"`
}

func (in *UserInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = normalizeEmail(in.Email)
}

// UserUpdate - изменяемые поля пользователя; пустой пароль оставляет прежний
type UserUpdate struct {
	Name     string      `validate:"required"`
	Email    string      `validate:"required"`
	Password string
	Role     models.Role `validate:"required,enum"`
}

func (in *UserUpdate) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = normalizeEmail(in.Email)
}

type IncidentInput struct {
	Title    string                `validate:"required"`
	Location string                `validate:"required"`
	Severity models.Severity       `validate:"required,enum"`
	Status   models.IncidentStatus `validate:"omitempty,enum"`
	Details  string                `validate:"required"`
}

func (in *IncidentInput) normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Location = strings.TrimSpace(in.Location)
	in.Details = strings.TrimSpace(in.Details)
	if in.Status == "" {
		in.Status = models.IncidentOpen
	}
}

// IncidentPatch - частичное обновление инцидента, nil-поля не меняются
type IncidentPatch struct {
	Title    *string
	Location *string
	Severity *models.Severity       `validate:"omitempty,enum"`
	Status   *models.IncidentStatus `validate:"omitempty,enum"`
	Details  *string
}

type FraudReportInput struct {
	Title       string `validate:"required"`
	Category    string `validate:"required"`
	Location    string `validate:"required"`
	Description string `validate:"required"`
}

func (in *FraudReportInput) normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Category = strings.TrimSpace(in.Category)
	in.Location = strings.TrimSpace(in.Location)
	in.Description = strings.TrimSpace(in.Description)
}

type FraudReportPatch struct {
	Title       *string
	Category    *string
	Location    *string
	Description *string
	Status      *models.FraudStatus `validate:"omitempty,enum"`
}

type AnalystReportInput struct {
	Title          string               `validate:"required"`
	Summary        string               `validate:"required"`
	Recommendation string               `validate:"required"`
	Status         models.AnalystStatus `validate:"required,enum"`
}

func (in *AnalystReportInput) normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Summary = strings.TrimSpace(in.Summary)
	in.Recommendation = strings.TrimSpace(in.Recommendation)
}

// ElectionResultInput - данные участка; голоса приходят строками и разбираются как числа
type ElectionResultInput struct {
	BoothName    string              `validate:"required"`
	Constituency string              `validate:"required"`
	Winner       string              `validate:"required"`
	Party        string              `validate:"required"`
	Votes        string              `validate:"required,number"`
	TotalVotes   string              `validate:"required,number"`
	Status       models.ResultStatus `validate:"required,enum"`
}

func (in *ElectionResultInput) normalize() {
	in.BoothName = strings.TrimSpace(in.BoothName)
	in.Constituency = strings.TrimSpace(in.Constituency)
	in.Winner = strings.TrimSpace(in.Winner)
	in.Party = strings.TrimSpace(in.Party)
	in.Votes = strings.TrimSpace(in.Votes)
	in.TotalVotes = strings.TrimSpace(in.TotalVotes)
}

// counts разбирает голоса после валидации; переполнение int64 тоже считается ошибкой
func (in *ElectionResultInput) counts() (int64, int64, bool) {
	votes, err := strconv.ParseInt(in.Votes, 10, 64)
	if err != nil {
		return 0, 0, false
	}
	total, err := strconv.ParseInt(in.TotalVotes, 10, 64)
	if err != nil {
		return 0, 0, false
	}
	return votes, total, true
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type enumerated interface {
	Valid() bool
}

// newValidator регистрирует тег enum для ролей и статусов
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("enum", func(fl validator.FieldLevel) bool {
		field := fl.Field()
		if field.Kind() == reflect.Ptr {
			if field.IsNil() {
				return true
			}
			field = field.Elem()
		}
		e, ok := field.Interface().(enumerated)
		return ok && e.Valid()
	})
	return v
}
