package store

import (
	"context"
	"slices"

	"github.com/shenikar/election_monitoring/internal/models"
	"github.com/sirupsen/logrus"
)

func fraudReportID(r models.FraudReport) string { return r.ID }

// CreateFraudReport регистрирует жалобу гражданина со статусом submitted
func (s *Store) CreateFraudReport(ctx context.Context, in FraudReportInput) (*models.FraudReport, Result) {
	in.normalize()
	log := s.logger.WithFields(logrus.Fields{
		"service": "store",
		"method":  "CreateFraudReport",
		"title":   in.Title,
	})

	if err := s.validate.Struct(in); err != nil {
		log.WithError(err).Debug("Fraud report validation failed")
		return nil, fail(ErrValidation, "All fraud report fields are required.")
	}

	s.mu.Lock()
	name, actorID := s.actor()
	item := models.FraudReport{
		ID:          s.newID(),
		Title:       in.Title,
		Category:    in.Category,
		Location:    in.Location,
		Description: in.Description,
		Status:      models.FraudSubmitted,
		CreatedBy:   name,
		CreatedByID: actorID,
		CreatedAt:   s.now(),
	}
	s.fraudReports = prepend(s.fraudReports, item)
	s.persist(ctx, KeyFraudReports, s.fraudReports)
	s.mu.Unlock()

	s.notify(ctx, models.CollectionFraudReports, models.ActionCreated, item.ID, actorID)
	log.WithField("report_id", item.ID).Info("Fraud report submitted")
	return &item, succeed("Fraud report submitted.")
}

// UpdateFraudReport применяет частичное обновление, например смену статуса
func (s *Store) UpdateFraudReport(ctx context.Context, id string, patch FraudReportPatch) (*models.FraudReport, Result) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "store",
		"method":    "UpdateFraudReport",
		"report_id": id,
	})

	if err := s.validate.Struct(patch); err != nil {
		log.WithError(err).Debug("Fraud report patch validation failed")
		return nil, fail(ErrValidation, "Fraud report status is invalid.")
	}

	s.mu.Lock()
	var updated *models.FraudReport
	items := slices.Clone(s.fraudReports)
	for i := range items {
		if items[i].ID != id {
			continue
		}
		patch.apply(&items[i])
		item := items[i]
		updated = &item
	}
	s.fraudReports = items
	s.persist(ctx, KeyFraudReports, s.fraudReports)
	_, actorID := s.actor()
	s.mu.Unlock()

	s.notify(ctx, models.CollectionFraudReports, models.ActionUpdated, id, actorID)
	log.Info("Fraud report updated")
	return updated, succeed("Fraud report updated.")
}

func (p FraudReportPatch) apply(item *models.FraudReport) {
	if p.Title != nil {
		item.Title = *p.Title
	}
	if p.Category != nil {
		item.Category = *p.Category
	}
	if p.Location != nil {
		item.Location = *p.Location
	}
	if p.Description != nil {
		item.Description = *p.Description
	}
	if p.Status != nil {
		item.Status = *p.Status
	}
}

func (s *Store) DeleteFraudReport(ctx context.Context, id string) Result {
	s.mu.Lock()
	s.fraudReports = remove(s.fraudReports, id, fraudReportID)
	s.persist(ctx, KeyFraudReports, s.fraudReports)
	_, actorID := s.actor()
	s.mu.Unlock()

	s.notify(ctx, models.CollectionFraudReports, models.ActionDeleted, id, actorID)
	s.logger.WithFields(logrus.Fields{
		"service":   "store",
		"method":    "DeleteFraudReport",
		"report_id": id,
	}).Info("Fraud report deleted")
	return succeed("Fraud report deleted.")
}
