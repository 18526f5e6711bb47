package models

import "time"

type ResultStatus string

const (
	ResultInProgress ResultStatus = "in-progress"
	ResultFinal      ResultStatus = "final"
)

func (s ResultStatus) Valid() bool {
	return s == ResultInProgress || s == ResultFinal
}

// ElectionResult - итог подсчёта голосов на одном избирательном участке
type ElectionResult struct {
	ID           string       `json:"id"`
	BoothName    string       `json:"boothName"`
	Constituency string       `json:"constituency"`
	Winner       string       `json:"winner"`
	Party        string       `json:"party"`
	Votes        int64        `json:"votes"`
	TotalVotes   int64        `json:"totalVotes"`
	Status       ResultStatus `json:"status"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// Summary - количество записей в каждой коллекции
type Summary struct {
	Users           int `json:"users"`
	Incidents       int `json:"incidents"`
	FraudReports    int `json:"fraudReports"`
	AnalystReports  int `json:"analystReports"`
	ElectionResults int `json:"electionResults"`
}
