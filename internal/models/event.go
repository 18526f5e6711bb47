package models

import "time"

type Collection string

const (
	CollectionUsers           Collection = "users"
	CollectionSession         Collection = "session"
	CollectionIncidents       Collection = "incidents"
	CollectionFraudReports    Collection = "fraudReports"
	CollectionAnalystReports  Collection = "analystReports"
	CollectionElectionResults Collection = "electionResults"
)

type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
	ActionLogin   Action = "login"
	ActionLogout  Action = "logout"
)

// ChangeEvent описывает успешную мутацию хранилища
type ChangeEvent struct {
	Collection Collection `json:"collection"`
	Action     Action     `json:"action"`
	EntityID   string     `json:"entityId,omitempty"`
	ActorID    string     `json:"actorId,omitempty"`
	OccurredAt time.Time  `json:"occurredAt"`
}
