package store

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/election_monitoring/internal/models"
	"github.com/sirupsen/logrus"
)

// Ключи долговременного хранилища, по одному на коллекцию
const (
	KeyUsers           = "ems_users_v1"
	KeyCurrentUser     = "ems_current_user_v1"
	KeyIncidents       = "ems_incidents_v1"
	KeyFraudReports    = "ems_fraud_reports_v1"
	KeyAnalystReports  = "ems_analyst_reports_v1"
	KeyElectionResults = "ems_election_results_v1"
)

// Keys перечисляет все ключи, которые хранилище читает при старте
var Keys = []string{
	KeyUsers,
	KeyCurrentUser,
	KeyIncidents,
	KeyFraudReports,
	KeyAnalystReports,
	KeyElectionResults,
}

// Storage определяет контракт долговременного key-value хранилища
type Storage interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
}

// Notifier получает событие после каждой успешной мутации
type Notifier interface {
	Notify(ctx context.Context, event models.ChangeEvent) error
}

// NopNotifier отбрасывает события
type NopNotifier struct{}

func (NopNotifier) Notify(context.Context, models.ChangeEvent) error { return nil }

// Store - единственный источник данных портала: пять коллекций и текущая сессия
type Store struct {
	mu       sync.Mutex
	storage  Storage
	notifier Notifier
	logger   *logrus.Logger
	validate *validator.Validate
	now      func() time.Time
	newID    func() string

	users           []models.User
	session         *models.User
	incidents       []models.Incident
	fraudReports    []models.FraudReport
	analystReports  []models.AnalystReport
	electionResults []models.ElectionResult
}

type Option func(*Store)

func WithNotifier(n Notifier) Option {
	return func(s *Store) {
		if n != nil {
			s.notifier = n
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// New создаёт хранилище и восстанавливает коллекции из storage
func New(ctx context.Context, storage Storage, logger *logrus.Logger, opts ...Option) *Store {
	s := &Store{
		storage:  storage,
		notifier: NopNotifier{},
		logger:   logger,
		validate: newValidator(),
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.users = readList(ctx, s, KeyUsers, []models.User{})
	s.session = readObject[models.User](ctx, s, KeyCurrentUser)
	s.incidents = readList(ctx, s, KeyIncidents, []models.Incident{})
	s.fraudReports = readList(ctx, s, KeyFraudReports, []models.FraudReport{})
	s.analystReports = readList(ctx, s, KeyAnalystReports, []models.AnalystReport{})
	s.electionResults = readList(ctx, s, KeyElectionResults, SeedElectionResults())

	s.logger.WithFields(logrus.Fields{
		"service":          "store",
		"users":            len(s.users),
		"incidents":        len(s.incidents),
		"fraud_reports":    len(s.fraudReports),
		"analyst_reports":  len(s.analystReports),
		"election_results": len(s.electionResults),
		"session":          s.session != nil,
	}).Info("Store rehydrated")
	return s
}

// readList читает список; отсутствующее или повреждённое значение заменяется fallback
func readList[T any](ctx context.Context, s *Store, key string, fallback []T) []T {
	raw := s.load(ctx, key)
	if len(raw) == 0 {
		return fallback
	}
	var list []T
	if err := json.Unmarshal(raw, &list); err != nil || list == nil {
		s.logger.WithField("key", key).WithError(err).Warn("Malformed stored list, using fallback")
		return fallback
	}
	return list
}

func readObject[T any](ctx context.Context, s *Store, key string) *T {
	raw := s.load(ctx, key)
	if len(raw) == 0 {
		return nil
	}
	var obj *T
	if err := json.Unmarshal(raw, &obj); err != nil {
		s.logger.WithField("key", key).WithError(err).Warn("Malformed stored object, using fallback")
		return nil
	}
	return obj
}

func (s *Store) load(ctx context.Context, key string) []byte {
	raw, err := s.storage.Load(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.WithField("key", key).WithError(err).Warn("Failed to load key from storage")
		}
		return nil
	}
	return raw
}

// persist перезаписывает значение ключа целиком. Ошибка только логируется.
// Вызывается под s.mu.
func (s *Store) persist(ctx context.Context, key string, value any) {
	payload, err := json.Marshal(value)
	if err != nil {
		s.logger.WithField("key", key).WithError(err).Error("Failed to marshal collection")
		return
	}
	if err := s.storage.Save(ctx, key, payload); err != nil {
		s.logger.WithField("key", key).WithError(err).Warn("Failed to persist collection")
	}
}

func (s *Store) notify(ctx context.Context, collection models.Collection, action models.Action, entityID, actorID string) {
	event := models.ChangeEvent{
		Collection: collection,
		Action:     action,
		EntityID:   entityID,
		ActorID:    actorID,
		OccurredAt: s.now(),
	}
	if err := s.notifier.Notify(ctx, event); err != nil {
		s.logger.WithFields(logrus.Fields{
			"collection": collection,
			"action":     action,
		}).WithError(err).Warn("Failed to publish change event")
	}
}

// actor возвращает имя и id пользователя сессии. Вызывается под s.mu.
func (s *Store) actor() (string, string) {
	if s.session == nil {
		return "Unknown", ""
	}
	name := s.session.Name
	if name == "" {
		name = "Unknown"
	}
	return name, s.session.ID
}

// CurrentUser возвращает копию пользователя активной сессии или nil
func (s *Store) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil
	}
	u := *s.session
	return &u
}

func (s *Store) Users() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.users)
}

func (s *Store) Incidents() []models.Incident {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.incidents)
}

func (s *Store) FraudReports() []models.FraudReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.fraudReports)
}

func (s *Store) AnalystReports() []models.AnalystReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.analystReports)
}

func (s *Store) ElectionResults() []models.ElectionResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.electionResults)
}

func (s *Store) User(id string) (*models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return find(s.users, id, func(u models.User) string { return u.ID })
}

func (s *Store) Incident(id string) (*models.Incident, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return find(s.incidents, id, func(i models.Incident) string { return i.ID })
}

func (s *Store) FraudReport(id string) (*models.FraudReport, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return find(s.fraudReports, id, func(r models.FraudReport) string { return r.ID })
}

func (s *Store) AnalystReport(id string) (*models.AnalystReport, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return find(s.analystReports, id, func(r models.AnalystReport) string { return r.ID })
}

func (s *Store) ElectionResult(id string) (*models.ElectionResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return find(s.electionResults, id, func(r models.ElectionResult) string { return r.ID })
}

// Summary возвращает количество записей в каждой коллекции
func (s *Store) Summary() models.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.Summary{
		Users:           len(s.users),
		Incidents:       len(s.incidents),
		FraudReports:    len(s.fraudReports),
		AnalystReports:  len(s.analystReports),
		ElectionResults: len(s.electionResults),
	}
}

func find[T any](list []T, id string, idOf func(T) string) (*T, bool) {
	i := slices.IndexFunc(list, func(item T) bool { return idOf(item) == id })
	if i < 0 {
		return nil, false
	}
	item := list[i]
	return &item, true
}

func prepend[T any](list []T, item T) []T {
	return append([]T{item}, list...)
}

func remove[T any](list []T, id string, idOf func(T) string) []T {
	return slices.DeleteFunc(slices.Clone(list), func(item T) bool { return idOf(item) == id })
}
