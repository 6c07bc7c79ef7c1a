// file: websocket/messenger.go
package websocket

import (
	"encoding/json"

	"academy-admin/models"
)

// Actions understood on the live feed.
const (
	ActionCounts  = "counts"
	ActionRefresh = "refresh"
)

// CountsMessage is pushed to every admin page when lead totals change.
type CountsMessage struct {
	Action   string `json:"action"`
	Trials   int64  `json:"trials"`
	Contacts int64  `json:"contacts"`
}

// ClientMessage is what a page may send; only "refresh" is handled.
type ClientMessage struct {
	Action string `json:"action"`
}

func encodeCounts(counts models.DashboardCounts) ([]byte, error) {
	return json.Marshal(CountsMessage{
		Action:   ActionCounts,
		Trials:   counts.Trials,
		Contacts: counts.Contacts,
	})
}
