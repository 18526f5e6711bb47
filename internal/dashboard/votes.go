package dashboard

import (
	"cmp"
	"slices"

	"github.com/shenikar/election_monitoring/internal/models"
)

const constituencyLimit = 8

type VoteSummary struct {
	TotalVotes       int64                  `json:"totalVotes"`
	CountedVotes     int64                  `json:"countedVotes"`
	CountingProgress float64                `json:"countingProgress"`
	FinalizedBooths  int                    `json:"finalizedBooths"`
	ActiveBooths     int                    `json:"activeBooths"`
	LeadingBooth     *models.ElectionResult `json:"leadingBooth,omitempty"`
}

// SummarizeVotes сводит результаты всех участков
func SummarizeVotes(results []models.ElectionResult) VoteSummary {
	var s VoteSummary
	for i, r := range results {
		s.TotalVotes += r.TotalVotes
		s.CountedVotes += r.Votes
		if r.Status == models.ResultFinal {
			s.FinalizedBooths++
		}
		if s.LeadingBooth == nil || r.Votes > s.LeadingBooth.Votes {
			s.LeadingBooth = &results[i]
		}
	}
	s.CountingProgress = percentage(s.CountedVotes, s.TotalVotes)
	s.ActiveBooths = max(len(results)-s.FinalizedBooths, 0)
	if s.LeadingBooth != nil {
		leading := *s.LeadingBooth
		s.LeadingBooth = &leading
	}
	return s
}

type ConstituencyBar struct {
	Label      string  `json:"label"`
	Votes      int64   `json:"votes"`
	TotalVotes int64   `json:"totalVotes"`
	Booths     int     `json:"booths"`
	Percentage float64 `json:"percentage"`
}

// ConstituencyBreakdown группирует участки по округу и возвращает до восьми
// округов с наибольшей долей подсчитанных голосов
func ConstituencyBreakdown(results []models.ElectionResult) []ConstituencyBar {
	index := make(map[string]int)
	bars := make([]ConstituencyBar, 0)
	for _, r := range results {
		key := cmp.Or(r.Constituency, "Unknown")
		i, ok := index[key]
		if !ok {
			i = len(bars)
			index[key] = i
			bars = append(bars, ConstituencyBar{Label: key})
		}
		bars[i].Votes += r.Votes
		bars[i].TotalVotes += r.TotalVotes
		bars[i].Booths++
	}
	for i := range bars {
		bars[i].Percentage = percentage(bars[i].Votes, bars[i].TotalVotes)
	}
	slices.SortStableFunc(bars, func(a, b ConstituencyBar) int {
		return cmp.Compare(b.Percentage, a.Percentage)
	})
	if len(bars) > constituencyLimit {
		bars = bars[:constituencyLimit]
	}
	return bars
}

type BoothBar struct {
	models.ElectionResult
	Percentage float64 `json:"percentage"`
}

// BoothBreakdown возвращает участки по убыванию доли голосов
func BoothBreakdown(results []models.ElectionResult) []BoothBar {
	bars := make([]BoothBar, 0, len(results))
	for _, r := range results {
		bars = append(bars, BoothBar{ElectionResult: r, Percentage: percentage(r.Votes, r.TotalVotes)})
	}
	slices.SortStableFunc(bars, func(a, b BoothBar) int {
		return cmp.Compare(b.Percentage, a.Percentage)
	})
	return bars
}

func percentage(part, total int64) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
