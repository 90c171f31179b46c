// Package queue defines message payloads exchanged over the message broker.
package queue

// Movie event actions.
const (
	MovieCreated = "created"
	MovieUpdated = "updated"
	MovieDeleted = "deleted"
)

// MovieEvent is published after a successful catalog mutation. It carries
// enough information for downstream consumers to log or notify without
// querying the primary database.
type MovieEvent struct {
	Action     string  `json:"action"`
	MovieID    string  `json:"movie_id"`
	MovieName  string  `json:"movie_name,omitempty"`
	Year       int     `json:"year,omitempty"`
	Rating     float64 `json:"rating,omitempty"`
	UserID     string  `json:"user_id"`
	OccurredAt string  `json:"occurred_at"`
}
