package v1

import (
	"github.com/shenikar/election_monitoring/internal/models"
	"github.com/shenikar/election_monitoring/internal/store"
)

func registerToInput(r RegisterRequest) store.UserInput {
	return store.UserInput{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Role:     models.Role(r.Role),
	}
}

func updateUserToInput(r UpdateUserRequest) store.UserUpdate {
	return store.UserUpdate{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Role:     models.Role(r.Role),
	}
}

// ModelToUserResponse скрывает пароль пользователя
func ModelToUserResponse(u *models.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

func ModelsToUserResponses(users []models.User) []*UserResponse {
	responses := make([]*UserResponse, len(users))
	for i := range users {
		responses[i] = ModelToUserResponse(&users[i])
	}
	return responses
}

func incidentToInput(r IncidentRequest) store.IncidentInput {
	return store.IncidentInput{
		Title:    r.Title,
		Location: r.Location,
		Severity: models.Severity(r.Severity),
		Status:   models.IncidentStatus(r.Status),
		Details:  r.Details,
	}
}

func incidentPatchToInput(r IncidentPatchRequest) store.IncidentPatch {
	return store.IncidentPatch{
		Title:    r.Title,
		Location: r.Location,
		Severity: convertPtr[models.Severity](r.Severity),
		Status:   convertPtr[models.IncidentStatus](r.Status),
		Details:  r.Details,
	}
}

func fraudReportToInput(r FraudReportRequest) store.FraudReportInput {
	return store.FraudReportInput{
		Title:       r.Title,
		Category:    r.Category,
		Location:    r.Location,
		Description: r.Description,
	}
}

func fraudPatchToInput(r FraudReportPatchRequest) store.FraudReportPatch {
	return store.FraudReportPatch{
		Title:       r.Title,
		Category:    r.Category,
		Location:    r.Location,
		Description: r.Description,
		Status:      convertPtr[models.FraudStatus](r.Status),
	}
}

func analystReportToInput(r AnalystReportRequest) store.AnalystReportInput {
	return store.AnalystReportInput{
		Title:          r.Title,
		Summary:        r.Summary,
		Recommendation: r.Recommendation,
		Status:         models.AnalystStatus(r.Status),
	}
}

func electionResultToInput(r ElectionResultRequest) store.ElectionResultInput {
	return store.ElectionResultInput{
		BoothName:    r.BoothName,
		Constituency: r.Constituency,
		Winner:       r.Winner,
		Party:        r.Party,
		Votes:        string(r.Votes),
		TotalVotes:   string(r.TotalVotes),
		Status:       models.ResultStatus(r.Status),
	}
}

func convertPtr[T ~string](s *string) *T {
	if s == nil {
		return nil
	}
	v := T(*s)
	return &v
}
