package store

import (
	"context"
	"slices"

	"github.com/shenikar/election_monitoring/internal/models"
	"github.com/sirupsen/logrus"
)

func incidentID(i models.Incident) string { return i.ID }

// CreateIncident добавляет инцидент от имени пользователя сессии
func (s *Store) CreateIncident(ctx context.Context, in IncidentInput) (*models.Incident, Result) {
	in.normalize()
	log := s.logger.WithFields(logrus.Fields{
		"service": "store",
		"method":  "CreateIncident",
		"title":   in.Title,
	})

	if err := s.validate.Struct(in); err != nil {
		log.WithError(err).Debug("Incident validation failed")
		return nil, fail(ErrValidation, "All incident fields are required.")
	}

	s.mu.Lock()
	name, actorID := s.actor()
	item := models.Incident{
		ID:          s.newID(),
		Title:       in.Title,
		Location:    in.Location,
		Severity:    in.Severity,
		Status:      in.Status,
		Details:     in.Details,
		CreatedBy:   name,
		CreatedByID: actorID,
		CreatedAt:   s.now(),
	}
	s.incidents = prepend(s.incidents, item)
	s.persist(ctx, KeyIncidents, s.incidents)
	s.mu.Unlock()

	s.notify(ctx, models.CollectionIncidents, models.ActionCreated, item.ID, actorID)
	log.WithField("incident_id", item.ID).Info("Incident created successfully")
	return &item, succeed("Incident added.")
}

// UpdateIncident применяет частичное обновление без проверки обязательных полей
func (s *Store) UpdateIncident(ctx context.Context, id string, patch IncidentPatch) (*models.Incident, Result) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "store",
		"method":      "UpdateIncident",
		"incident_id": id,
	})

	if err := s.validate.Struct(patch); err != nil {
		log.WithError(err).Debug("Incident patch validation failed")
		return nil, fail(ErrValidation, "Incident severity or status is invalid.")
	}

	s.mu.Lock()
	var updated *models.Incident
	items := slices.Clone(s.incidents)
	for i := range items {
		if items[i].ID != id {
			continue
		}
		patch.apply(&items[i])
		item := items[i]
		updated = &item
	}
	s.incidents = items
	s.persist(ctx, KeyIncidents, s.incidents)
	_, actorID := s.actor()
	s.mu.Unlock()

	s.notify(ctx, models.CollectionIncidents, models.ActionUpdated, id, actorID)
	log.Info("Incident updated successfully")
	return updated, succeed("Incident updated.")
}

func (p IncidentPatch) apply(item *models.Incident) {
	if p.Title != nil {
		item.Title = *p.Title
	}
	if p.Location != nil {
		item.Location = *p.Location
	}
	if p.Severity != nil {
		item.Severity = *p.Severity
	}
	if p.Status != nil {
		item.Status = *p.Status
	}
	if p.Details != nil {
		item.Details = *p.Details
	}
}

// DeleteIncident удаляет инцидент; неизвестный id не считается ошибкой
func (s *Store) DeleteIncident(ctx context.Context, id string) Result {
	s.mu.Lock()
	s.incidents = remove(s.incidents, id, incidentID)
	s.persist(ctx, KeyIncidents, s.incidents)
	_, actorID := s.actor()
	s.mu.Unlock()

	s.notify(ctx, models.CollectionIncidents, models.ActionDeleted, id, actorID)
	s.logger.WithFields(logrus.Fields{
		"service":     "store",
		"method":      "DeleteIncident",
		"incident_id": id,
	}).Info("Incident deleted")
	return succeed("Incident deleted.")
}
