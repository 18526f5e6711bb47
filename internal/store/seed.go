package store

import (
	"time"

	"github.com/shenikar/election_monitoring/internal/models"
)

// SeedElectionResults - результаты, которыми заполняется пустое хранилище
func SeedElectionResults() []models.ElectionResult {
	at := func(minute int) time.Time {
		return time.Date(2026, time.February, 20, 8, minute, 0, 0, time.UTC)
	}
	return []models.ElectionResult{
		{
			ID:           "res-1",
			Constituency: "North City",
			BoothName:    "Booth 12 - Community Hall",
			Winner:       "Aditi Sharma",
			Party:        "Progress Alliance",
			Votes:        1423,
			TotalVotes:   2980,
			Status:       models.ResultFinal,
			UpdatedAt:    at(30),
		},
		{
			ID:           "res-2",
			Constituency: "West Valley",
			BoothName:    "Booth 44 - Government School",
			Winner:       "Rohit Verma",
			Party:        "Civic Front",
			Votes:        1189,
			TotalVotes:   2510,
			Status:       models.ResultFinal,
			UpdatedAt:    at(35),
		},
		{
			ID:           "res-3",
			Constituency: "South Ridge",
			BoothName:    "Booth 8 - Primary School",
			Winner:       "Neha Iyer",
			Party:        "People First",
			Votes:        1335,
			TotalVotes:   2876,
			Status:       models.ResultInProgress,
			UpdatedAt:    at(40),
		},
	}
}
