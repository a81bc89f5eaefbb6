package model

import "time"

// QueryEventType is the event-type header value for resolved query events.
const QueryEventType = "parking.query.resolved"

// QueryEvent is the analytics payload published after every resolved query.
// Consumers must tolerate unknown fields; producers bump SchemaVersion on
// breaking changes.
type QueryEvent struct {
	QueryID     string    `json:"query_id"`
	Query       string    `json:"query"`
	Location    string    `json:"location"`
	Date        time.Time `json:"date"`
	WindowStart time.Time `json:"window_start"`
	WindowEnd   time.Time `json:"window_end"`
	MatchCount  int       `json:"match_count"`
	Answer      string    `json:"answer"`
	ResolvedAt  time.Time `json:"resolved_at"`
}

// QueryEventSchemaVersion tracks the QueryEvent wire format.
const QueryEventSchemaVersion = "1"
