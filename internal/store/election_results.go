package store

import (
	"context"
	"slices"

	"github.com/shenikar/election_monitoring/internal/models"
	"github.com/sirupsen/logrus"
)

const msgResultFieldsRequired = "All election result fields are required."

func electionResultID(r models.ElectionResult) string { return r.ID }

func (s *Store) CreateElectionResult(ctx context.Context, in ElectionResultInput) (*models.ElectionResult, Result) {
	in.normalize()
	log := s.logger.WithFields(logrus.Fields{
		"service": "store",
		"method":  "CreateElectionResult",
		"booth":   in.BoothName,
	})

	votes, total, ok := s.validateResult(in)
	if !ok {
		log.Debug("Election result validation failed")
		return nil, fail(ErrValidation, msgResultFieldsRequired)
	}

	s.mu.Lock()
	item := models.ElectionResult{
		ID:           s.newID(),
		BoothName:    in.BoothName,
		Constituency: in.Constituency,
		Winner:       in.Winner,
		Party:        in.Party,
		Votes:        votes,
		TotalVotes:   total,
		Status:       in.Status,
		UpdatedAt:    s.now(),
	}
	s.electionResults = prepend(s.electionResults, item)
	s.persist(ctx, KeyElectionResults, s.electionResults)
	_, actorID := s.actor()
	s.mu.Unlock()

	s.notify(ctx, models.CollectionElectionResults, models.ActionCreated, item.ID, actorID)
	log.WithField("result_id", item.ID).Info("Election result added")
	return &item, succeed("Election result added.")
}

// UpdateElectionResult заново проверяет все поля, как при создании, и обновляет updatedAt
func (s *Store) UpdateElectionResult(ctx context.Context, id string, in ElectionResultInput) (*models.ElectionResult, Result) {
	in.normalize()
	log := s.logger.WithFields(logrus.Fields{
		"service":   "store",
		"method":    "UpdateElectionResult",
		"result_id": id,
	})

	votes, total, ok := s.validateResult(in)
	if !ok {
		log.Debug("Election result validation failed")
		return nil, fail(ErrValidation, msgResultFieldsRequired)
	}

	s.mu.Lock()
	var updated *models.ElectionResult
	items := slices.Clone(s.electionResults)
	for i := range items {
		if items[i].ID != id {
			continue
		}
		items[i].BoothName = in.BoothName
		items[i].Constituency = in.Constituency
		items[i].Winner = in.Winner
		items[i].Party = in.Party
		items[i].Votes = votes
		items[i].TotalVotes = total
		items[i].Status = in.Status
		items[i].UpdatedAt = s.now()
		item := items[i]
		updated = &item
	}
	s.electionResults = items
	s.persist(ctx, KeyElectionResults, s.electionResults)
	_, actorID := s.actor()
	s.mu.Unlock()

	s.notify(ctx, models.CollectionElectionResults, models.ActionUpdated, id, actorID)
	log.Info("Election result updated")
	return updated, succeed("Election result updated.")
}

func (s *Store) validateResult(in ElectionResultInput) (int64, int64, bool) {
	if err := s.validate.Struct(in); err != nil {
		return 0, 0, false
	}
	return in.counts()
}

func (s *Store) DeleteElectionResult(ctx context.Context, id string) Result {
	s.mu.Lock()
	s.electionResults = remove(s.electionResults, id, electionResultID)
	s.persist(ctx, KeyElectionResults, s.electionResults)
	_, actorID := s.actor()
	s.mu.Unlock()

	s.notify(ctx, models.CollectionElectionResults, models.ActionDeleted, id, actorID)
	s.logger.WithFields(logrus.Fields{
		"service":   "store",
		"method":    "DeleteElectionResult",
		"result_id": id,
	}).Info("Election result deleted")
	return succeed("Election result deleted.")
}
