package domain

import "time"

// CardCollection is a named, ordered, persisted set of cards curated for
// reuse across sessions. Demo collections are seeded and read-only.
type CardCollection struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	OwnerUserID string       `json:"owner_user_id"`
	Demo        bool         `json:"demo"`
	Cards       []VisualCard `json:"cards"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// CollectionSlot is one position-ordered card within a collection. For a
// given collection the positions form a contiguous 0-based sequence; the
// ordered card list is the slots sorted by position. Reorders replace the
// whole slot set in one transaction.
type CollectionSlot struct {
	CollectionID string
	CardID       string
	Card         VisualCard
	Position     int
}
