package store_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shenikar/election_monitoring/internal/models"
	"github.com/shenikar/election_monitoring/internal/repository"
	"github.com/shenikar/election_monitoring/internal/store"
	"github.com/shenikar/election_monitoring/internal/store/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

// newTestStore создаёт хранилище поверх памяти с фиксированными часами и id
func newTestStore(t *testing.T) (*store.Store, *repository.MemoryStorage) {
	t.Helper()
	storage := repository.NewMemoryStorage()
	s := store.New(context.Background(), storage, newTestLogger(),
		store.WithClock(func() time.Time { return fixedNow }),
		store.WithIDGenerator(sequentialIDs()),
	)
	return s, storage
}

func registerAndLogin(t *testing.T, s *store.Store, role models.Role) *models.User {
	t.Helper()
	ctx := context.Background()
	email := string(role) + "@example.com"
	_, res := s.Register(ctx, store.UserInput{Name: string(role), Email: email, Password: "secret", Role: role})
	require.True(t, res.Success, res.Message)
	user, res := s.Login(ctx, email, "secret")
	require.True(t, res.Success, res.Message)
	return user
}

func TestNew_SeedsElectionResultsOnEmptyStorage(t *testing.T) {
	s, _ := newTestStore(t)

	results := s.ElectionResults()
	require.Len(t, results, 3)
	assert.Equal(t, "res-1", results[0].ID)
	assert.Equal(t, int64(1423), results[0].Votes)
	assert.Empty(t, s.Users())
	assert.Nil(t, s.CurrentUser())
	assert.Equal(t, models.Summary{ElectionResults: 3}, s.Summary())
}

func TestNew_MalformedDataFallsBack(t *testing.T) {
	ctx := context.Background()
	storage := repository.NewMemoryStorage()
	require.NoError(t, storage.Save(ctx, store.KeyUsers, []byte(`{not json`)))
	require.NoError(t, storage.Save(ctx, store.KeyIncidents, []byte(`{"id":"x"}`)))
	require.NoError(t, storage.Save(ctx, store.KeyElectionResults, []byte(`null`)))
	require.NoError(t, storage.Save(ctx, store.KeyCurrentUser, []byte(`[`)))

	s := store.New(ctx, storage, newTestLogger())

	assert.Empty(t, s.Users())
	assert.Empty(t, s.Incidents())
	assert.Len(t, s.ElectionResults(), 3)
	assert.Nil(t, s.CurrentUser())
}

func TestNew_LoadErrorFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mocks.NewMockStorage(ctrl)
	storage.EXPECT().Load(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused")).Times(len(store.Keys))

	s := store.New(context.Background(), storage, newTestLogger())

	assert.Empty(t, s.Users())
	assert.Len(t, s.ElectionResults(), 3)
}

func TestRegister_ThenLogin(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	created, res := s.Register(ctx, store.UserInput{
		Name:     "  Asha Rao ",
		Email:    " Asha@Example.COM ",
		Password: "pw",
		Role:     models.RoleCitizen,
	})
	require.True(t, res.Success)
	assert.Equal(t, "Registration successful.", res.Message)
	assert.Equal(t, "Asha Rao", created.Name)
	assert.Equal(t, "asha@example.com", created.Email)
	assert.Nil(t, s.CurrentUser(), "registration must not open a session")

	user, res := s.Login(ctx, "ASHA@example.com", "pw")
	require.True(t, res.Success)
	assert.Equal(t, created.ID, user.ID)
	assert.Equal(t, created.ID, s.CurrentUser().ID)
}

func TestRegister_MissingFields(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	cases := []store.UserInput{
		{Name: "   ", Email: "a@b.c", Password: "pw", Role: models.RoleAdmin},
		{Name: "A", Email: "", Password: "pw", Role: models.RoleAdmin},
		{Name: "A", Email: "a@b.c", Password: "", Role: models.RoleAdmin},
		{Name: "A", Email: "a@b.c", Password: "pw"},
		{Name: "A", Email: "a@b.c", Password: "pw", Role: "superuser"},
	}
	for _, in := range cases {
		_, res := s.Register(ctx, in)
		assert.False(t, res.Success)
		assert.True(t, res.Is(store.ErrValidation))
		assert.Equal(t, "All fields are required.", res.Message)
	}
	assert.Empty(t, s.Users())
}

func TestRegister_DuplicateEmailDifferentCase(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, res := s.Register(ctx, store.UserInput{Name: "A", Email: "dup@example.com", Password: "pw", Role: models.RoleCitizen})
	require.True(t, res.Success)

	_, res = s.Register(ctx, store.UserInput{Name: "B", Email: "DUP@Example.com", Password: "pw", Role: models.RoleObserver})
	assert.False(t, res.Success)
	assert.True(t, res.Is(store.ErrConflict))
	assert.Equal(t, "Email is already registered.", res.Message)

	_, res = s.CreateUser(ctx, store.UserInput{Name: "C", Email: "Dup@example.com", Password: "pw", Role: models.RoleAnalyst})
	assert.True(t, res.Is(store.ErrConflict))
	assert.Equal(t, "Email already exists.", res.Message)
	assert.Len(t, s.Users(), 1)
}

func TestLogin_WrongPasswordKeepsSession(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	admin := registerAndLogin(t, s, models.RoleAdmin)

	_, res := s.Register(ctx, store.UserInput{Name: "Obs", Email: "obs@example.com", Password: "right", Role: models.RoleObserver})
	require.True(t, res.Success)

	user, res := s.Login(ctx, "obs@example.com", "wrong")
	assert.Nil(t, user)
	assert.False(t, res.Success)
	assert.True(t, res.Is(store.ErrAuth))
	assert.Equal(t, "Invalid email or password.", res.Message)
	assert.Equal(t, admin.ID, s.CurrentUser().ID)
}

func TestLogout_PersistsNull(t *testing.T) {
	s, storage := newTestStore(t)
	ctx := context.Background()
	registerAndLogin(t, s, models.RoleAdmin)

	res := s.Logout(ctx)
	assert.True(t, res.Success)
	assert.Nil(t, s.CurrentUser())

	raw, err := storage.Load(ctx, store.KeyCurrentUser)
	require.NoError(t, err)
	assert.JSONEq(t, `null`, string(raw))
}

func TestUpdateUser(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	admin := registerAndLogin(t, s, models.RoleAdmin)
	other, res := s.CreateUser(ctx, store.UserInput{Name: "Obs", Email: "obs@example.com", Password: "pw", Role: models.RoleObserver})
	require.True(t, res.Success)

	t.Run("conflicting email", func(t *testing.T) {
		_, res := s.UpdateUser(ctx, other.ID, store.UserUpdate{Name: "Obs", Email: "ADMIN@example.com", Role: models.RoleObserver})
		assert.True(t, res.Is(store.ErrConflict))
	})

	t.Run("missing role", func(t *testing.T) {
		_, res := s.UpdateUser(ctx, other.ID, store.UserUpdate{Name: "Obs", Email: "obs@example.com"})
		assert.True(t, res.Is(store.ErrValidation))
		assert.Equal(t, "Name, email, and role are required.", res.Message)
	})

	t.Run("keeps own email and password", func(t *testing.T) {
		updated, res := s.UpdateUser(ctx, other.ID, store.UserUpdate{Name: " Observer One ", Email: "OBS@example.com", Role: models.RoleAnalyst})
		require.True(t, res.Success)
		assert.Equal(t, "Observer One", updated.Name)
		assert.Equal(t, "obs@example.com", updated.Email)
		assert.Equal(t, "pw", updated.Password)
		assert.Equal(t, models.RoleAnalyst, updated.Role)
	})

	t.Run("refreshes session", func(t *testing.T) {
		_, res := s.UpdateUser(ctx, admin.ID, store.UserUpdate{Name: "Chief", Email: "admin@example.com", Password: "new", Role: models.RoleAdmin})
		require.True(t, res.Success)
		current := s.CurrentUser()
		assert.Equal(t, "Chief", current.Name)
		assert.Equal(t, "new", current.Password)
	})
}

func TestDeleteUser_SelfDeleteRejected(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	admin := registerAndLogin(t, s, models.RoleAdmin)

	res := s.DeleteUser(ctx, admin.ID)
	assert.False(t, res.Success)
	assert.True(t, res.Is(store.ErrSelfDelete))
	_, found := s.User(admin.ID)
	assert.True(t, found)
}

func TestDeleteUser_Other(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	registerAndLogin(t, s, models.RoleAdmin)
	other, _ := s.CreateUser(ctx, store.UserInput{Name: "X", Email: "x@example.com", Password: "pw", Role: models.RoleCitizen})

	res := s.DeleteUser(ctx, other.ID)
	assert.True(t, res.Success)
	_, found := s.User(other.ID)
	assert.False(t, found)
}

func TestCreateIncident(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	observer := registerAndLogin(t, s, models.RoleObserver)

	item, res := s.CreateIncident(ctx, store.IncidentInput{
		Title:    " Queue blocked ",
		Location: "Booth 12",
		Severity: models.SeverityHigh,
		Details:  "Crowd at gate",
	})
	require.True(t, res.Success)
	assert.Equal(t, "Incident added.", res.Message)

	got, found := s.Incident(item.ID)
	require.True(t, found)
	assert.Equal(t, "Queue blocked", got.Title)
	assert.Equal(t, models.IncidentOpen, got.Status)
	assert.Equal(t, observer.Name, got.CreatedBy)
	assert.Equal(t, observer.ID, got.CreatedByID)
	assert.Equal(t, fixedNow, got.CreatedAt)

	_, res = s.CreateIncident(ctx, store.IncidentInput{Title: "x", Location: "y", Severity: "extreme", Details: "z"})
	assert.True(t, res.Is(store.ErrValidation))
}

func TestCreateIncident_WithoutSessionIsUnknown(t *testing.T) {
	s, _ := newTestStore(t)

	item, res := s.CreateIncident(context.Background(), store.IncidentInput{
		Title: "t", Location: "l", Severity: models.SeverityLow, Details: "d",
	})
	require.True(t, res.Success)
	assert.Equal(t, "Unknown", item.CreatedBy)
	assert.Empty(t, item.CreatedByID)
}

func TestCreate_PrependsNewestFirst(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	first, _ := s.CreateFraudReport(ctx, store.FraudReportInput{Title: "a", Category: "Bribery", Location: "l", Description: "d"})
	second, _ := s.CreateFraudReport(ctx, store.FraudReportInput{Title: "b", Category: "Bribery", Location: "l", Description: "d"})

	reports := s.FraudReports()
	require.Len(t, reports, 2)
	assert.Equal(t, second.ID, reports[0].ID)
	assert.Equal(t, first.ID, reports[1].ID)
}

func TestUpdateIncident_PartialMerge(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	item, _ := s.CreateIncident(ctx, store.IncidentInput{Title: "t", Location: "l", Severity: models.SeverityLow, Details: "d"})

	status := models.IncidentResolved
	updated, res := s.UpdateIncident(ctx, item.ID, store.IncidentPatch{Status: &status})
	require.True(t, res.Success)
	assert.Equal(t, models.IncidentResolved, updated.Status)
	assert.Equal(t, "t", updated.Title)

	empty := ""
	_, res = s.UpdateIncident(ctx, item.ID, store.IncidentPatch{Title: &empty})
	assert.True(t, res.Success, "partial updates are merged without required-field checks")

	bad := models.IncidentStatus("closed")
	_, res = s.UpdateIncident(ctx, item.ID, store.IncidentPatch{Status: &bad})
	assert.True(t, res.Is(store.ErrValidation))
}

func TestFraudReport_DefaultsAndStatusChange(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	citizen := registerAndLogin(t, s, models.RoleCitizen)

	_, res := s.CreateFraudReport(ctx, store.FraudReportInput{Title: "t", Category: "Bribery", Location: " ", Description: "d"})
	assert.True(t, res.Is(store.ErrValidation))
	assert.Equal(t, "All fraud report fields are required.", res.Message)

	report, res := s.CreateFraudReport(ctx, store.FraudReportInput{Title: "Cash for votes", Category: "Bribery", Location: "Ward 3", Description: "Seen at booth"})
	require.True(t, res.Success)
	assert.Equal(t, models.FraudSubmitted, report.Status)
	assert.Equal(t, citizen.ID, report.CreatedByID)

	status := models.FraudVerified
	updated, res := s.UpdateFraudReport(ctx, report.ID, store.FraudReportPatch{Status: &status})
	require.True(t, res.Success)
	assert.Equal(t, models.FraudVerified, updated.Status)
	assert.Equal(t, "Cash for votes", updated.Title)
}

func TestAnalystReport_UpdateRevalidates(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	registerAndLogin(t, s, models.RoleAnalyst)

	in := store.AnalystReportInput{Title: "Turnout", Summary: "Low", Recommendation: "More booths", Status: models.AnalystDraft}
	report, res := s.CreateAnalystReport(ctx, in)
	require.True(t, res.Success)
	assert.Equal(t, fixedNow, report.CreatedAt)
	assert.Equal(t, fixedNow, report.UpdatedAt)

	in.Summary = "  "
	_, res = s.UpdateAnalystReport(ctx, report.ID, in)
	assert.True(t, res.Is(store.ErrValidation))
	got, _ := s.AnalystReport(report.ID)
	assert.Equal(t, "Low", got.Summary)

	in.Summary = "Very low"
	in.Status = models.AnalystPublished
	updated, res := s.UpdateAnalystReport(ctx, report.ID, in)
	require.True(t, res.Success)
	assert.Equal(t, "Very low", updated.Summary)
	assert.Equal(t, models.AnalystPublished, updated.Status)
	assert.Equal(t, report.CreatedBy, updated.CreatedBy)
}

func TestElectionResult_CreateParsesVotes(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	result, res := s.CreateElectionResult(ctx, store.ElectionResultInput{
		BoothName: "Booth 1", Constituency: "East", Winner: "W", Party: "P",
		Votes: " 120 ", TotalVotes: "300", Status: models.ResultInProgress,
	})
	require.True(t, res.Success)
	got, found := s.ElectionResult(result.ID)
	require.True(t, found)
	assert.Equal(t, int64(120), got.Votes)
	assert.Equal(t, int64(300), got.TotalVotes)
	assert.Len(t, s.ElectionResults(), 4)

	for _, votes := range []string{"abc", "", "-5", "1.5", "99999999999999999999"} {
		_, res := s.CreateElectionResult(ctx, store.ElectionResultInput{
			BoothName: "B", Constituency: "C", Winner: "W", Party: "P",
			Votes: votes, TotalVotes: "10", Status: models.ResultFinal,
		})
		assert.True(t, res.Is(store.ErrValidation), "votes %q", votes)
	}
}

func TestUpdateElectionResult_NonNumericLeavesResultUnchanged(t *testing.T) {
	s, storage := newTestStore(t)
	ctx := context.Background()
	before, _ := s.ElectionResult("res-1")
	_, errBefore := storage.Load(ctx, store.KeyElectionResults)

	_, res := s.UpdateElectionResult(ctx, "res-1", store.ElectionResultInput{
		BoothName: "Booth 12", Constituency: "North City", Winner: "X", Party: "Y",
		Votes: "many", TotalVotes: "2980", Status: models.ResultFinal,
	})
	assert.False(t, res.Success)
	assert.True(t, res.Is(store.ErrValidation))

	after, _ := s.ElectionResult("res-1")
	assert.Equal(t, before, after)
	_, errAfter := storage.Load(ctx, store.KeyElectionResults)
	assert.Equal(t, errBefore, errAfter, "failed update must not persist")
}

func TestDelete_UnknownIDSucceeds(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	assert.True(t, s.DeleteIncident(ctx, "missing").Success)
	assert.True(t, s.DeleteFraudReport(ctx, "missing").Success)
	assert.True(t, s.DeleteAnalystReport(ctx, "missing").Success)
	assert.True(t, s.DeleteElectionResult(ctx, "missing").Success)
	assert.Len(t, s.ElectionResults(), 3)

	assert.True(t, s.DeleteElectionResult(ctx, "res-2").Success)
	assert.Len(t, s.ElectionResults(), 2)
}

func TestPersistence_RoundTrip(t *testing.T) {
	s, storage := newTestStore(t)
	ctx := context.Background()
	registerAndLogin(t, s, models.RoleObserver)
	for _, title := range []string{"one", "two", "three"} {
		_, res := s.CreateIncident(ctx, store.IncidentInput{Title: title, Location: "l", Severity: models.SeverityMedium, Details: "d"})
		require.True(t, res.Success)
	}
	_, res := s.CreateAnalystReport(ctx, store.AnalystReportInput{Title: "t", Summary: "s", Recommendation: "r", Status: models.AnalystReview})
	require.True(t, res.Success)

	reloaded := store.New(ctx, storage, newTestLogger())

	assert.Equal(t, s.Users(), reloaded.Users())
	assert.Equal(t, s.Incidents(), reloaded.Incidents())
	assert.Equal(t, s.AnalystReports(), reloaded.AnalystReports())
	assert.Equal(t, s.ElectionResults(), reloaded.ElectionResults())
	assert.Equal(t, s.CurrentUser(), reloaded.CurrentUser())
}

func TestMutation_PersistsOnlyOwningKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mocks.NewMockStorage(ctrl)
	storage.EXPECT().Load(gomock.Any(), gomock.Any()).Return(nil, store.ErrNotFound).Times(len(store.Keys))
	s := store.New(context.Background(), storage, newTestLogger())

	storage.EXPECT().
		Save(gomock.Any(), store.KeyFraudReports, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value []byte) error {
			var reports []models.FraudReport
			require.NoError(t, json.Unmarshal(value, &reports))
			assert.Len(t, reports, 1)
			return nil
		}).Times(1)

	_, res := s.CreateFraudReport(context.Background(), store.FraudReportInput{Title: "t", Category: "c", Location: "l", Description: "d"})
	assert.True(t, res.Success)
}

func TestMutation_StorageFailureIsLogged(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mocks.NewMockStorage(ctrl)
	storage.EXPECT().Load(gomock.Any(), gomock.Any()).Return(nil, store.ErrNotFound).AnyTimes()
	storage.EXPECT().Save(gomock.Any(), store.KeyElectionResults, gomock.Any()).Return(errors.New("disk full")).Times(1)

	s := store.New(context.Background(), storage, newTestLogger())
	res := s.DeleteElectionResult(context.Background(), "res-3")

	assert.True(t, res.Success)
	assert.Len(t, s.ElectionResults(), 2)
}

func TestMutation_NotifiesChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := mocks.NewMockNotifier(ctrl)
	s := store.New(context.Background(), repository.NewMemoryStorage(), newTestLogger(),
		store.WithNotifier(notifier),
		store.WithClock(func() time.Time { return fixedNow }),
	)

	notifier.EXPECT().Notify(gomock.Any(), models.ChangeEvent{
		Collection: models.CollectionElectionResults,
		Action:     models.ActionDeleted,
		EntityID:   "res-1",
		OccurredAt: fixedNow,
	}).Return(errors.New("redis down")).Times(1)

	res := s.DeleteElectionResult(context.Background(), "res-1")
	assert.True(t, res.Success)
}

func TestValidationFailure_DoesNotNotify(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := mocks.NewMockNotifier(ctrl)
	s := store.New(context.Background(), repository.NewMemoryStorage(), newTestLogger(), store.WithNotifier(notifier))

	notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Times(0)

	_, res := s.CreateAnalystReport(context.Background(), store.AnalystReportInput{Title: "t"})
	assert.False(t, res.Success)
}
