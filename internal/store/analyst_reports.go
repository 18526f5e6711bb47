package store

import (
	"context"
	"slices"

	"github.com/shenikar/election_monitoring/internal/models"
	"github.com/sirupsen/logrus"
)

const msgAnalystFieldsRequired = "All analyst report fields are required."

func analystReportID(r models.AnalystReport) string { return r.ID }

func (s *Store) CreateAnalystReport(ctx context.Context, in AnalystReportInput) (*models.AnalystReport, Result) {
	in.normalize()
	log := s.logger.WithFields(logrus.Fields{
		"service": "store",
		"method":  "CreateAnalystReport",
		"title":   in.Title,
	})

	if err := s.validate.Struct(in); err != nil {
		log.WithError(err).Debug("Analyst report validation failed")
		return nil, fail(ErrValidation, msgAnalystFieldsRequired)
	}

	s.mu.Lock()
	name, actorID := s.actor()
	now := s.now()
	item := models.AnalystReport{
		ID:             s.newID(),
		Title:          in.Title,
		Summary:        in.Summary,
		Recommendation: in.Recommendation,
		Status:         in.Status,
		CreatedBy:      name,
		CreatedByID:    actorID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	s.analystReports = prepend(s.analystReports, item)
	s.persist(ctx, KeyAnalystReports, s.analystReports)
	s.mu.Unlock()

	s.notify(ctx, models.CollectionAnalystReports, models.ActionCreated, item.ID, actorID)
	log.WithField("report_id", item.ID).Info("Analysis report created")
	return &item, succeed("Analysis report created.")
}

// UpdateAnalystReport заново проверяет все поля, как при создании, и обновляет updatedAt
func (s *Store) UpdateAnalystReport(ctx context.Context, id string, in AnalystReportInput) (*models.AnalystReport, Result) {
	in.normalize()
	log := s.logger.WithFields(logrus.Fields{
		"service":   "store",
		"method":    "UpdateAnalystReport",
		"report_id": id,
	})

	if err := s.validate.Struct(in); err != nil {
		log.WithError(err).Debug("Analyst report validation failed")
		return nil, fail(ErrValidation, msgAnalystFieldsRequired)
	}

	s.mu.Lock()
	var updated *models.AnalystReport
	items := slices.Clone(s.analystReports)
	for i := range items {
		if items[i].ID != id {
			continue
		}
		items[i].Title = in.Title
		items[i].Summary = in.Summary
		items[i].Recommendation = in.Recommendation
		items[i].Status = in.Status
		items[i].UpdatedAt = s.now()
		item := items[i]
		updated = &item
	}
	s.analystReports = items
	s.persist(ctx, KeyAnalystReports, s.analystReports)
	_, actorID := s.actor()
	s.mu.Unlock()

	s.notify(ctx, models.CollectionAnalystReports, models.ActionUpdated, id, actorID)
	log.Info("Analysis report updated")
	return updated, succeed("Analysis report updated.")
}

func (s *Store) DeleteAnalystReport(ctx context.Context, id string) Result {
	s.mu.Lock()
	s.analystReports = remove(s.analystReports, id, analystReportID)
	s.persist(ctx, KeyAnalystReports, s.analystReports)
	_, actorID := s.actor()
	s.mu.Unlock()

	s.notify(ctx, models.CollectionAnalystReports, models.ActionDeleted, id, actorID)
	s.logger.WithFields(logrus.Fields{
		"service":   "store",
		"method":    "DeleteAnalystReport",
		"report_id": id,
	}).Info("Analysis report deleted")
	return succeed("Analysis report deleted.")
}
