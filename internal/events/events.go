package events

import (
	"encoding/json"
	"time"
)

// Event is the wire form pushed to SSE subscribers.
type Event struct {
	Type      string          `json:"type"`
	At        time.Time       `json:"at"`
	RequestID string          `json:"request_id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// MatchSummary is the payload of a match.completed event.
type MatchSummary struct {
	Skills     []string `json:"skills"`
	Region     string   `json:"region,omitempty"`
	Mode       string   `json:"mode"`
	Aggregated int      `json:"aggregated"`
	Returned   int      `json:"returned"`
	Fallback   bool     `json:"fallback"`
}

// Make serializes an event for publication. Marshal failures degrade to an
// event without data rather than dropping the notification.
func Make(reqID, typ string, data any) string {
	var raw json.RawMessage
	if data != nil {
		if b, err := json.Marshal(data); err == nil {
			raw = b
		}
	}
	b, _ := json.Marshal(Event{
		Type:      typ,
		At:        time.Now().UTC(),
		RequestID: reqID,
		Data:      raw,
	})
	return string(b)
}
