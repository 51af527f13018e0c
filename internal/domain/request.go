package domain

import "time"

// GenerateCardsRequest asks for cards enriched from a free-text prompt.
// When SessionID is set the generated cards are also persisted against
// that session.
type GenerateCardsRequest struct {
	Prompt    string `json:"prompt"`
	SessionID string `json:"session_id,omitempty"`
}

// SaveCardsRequest persists an explicit card set against a session.
type SaveCardsRequest struct {
	SessionID string       `json:"session_id"`
	Cards     []VisualCard `json:"cards"`
}

// CollectionRequest is the multiplexed collections POST body. Action is
// one of "create" (default when empty), "updateOrder", "updateName".
type CollectionRequest struct {
	Action       string       `json:"action,omitempty"`
	Name         string       `json:"name,omitempty"`
	Cards        []VisualCard `json:"cards,omitempty"`
	OwnerUserID  string       `json:"owner_user_id,omitempty"`
	CollectionID string       `json:"collection_id,omitempty"`
}

// CreateSessionRequest starts a new conversation session.
type CreateSessionRequest struct {
	ParentID    string `json:"parent_id"`
	ChildID     string `json:"child_id"`
	OwnerUserID string `json:"owner_user_id"`
	Topic       string `json:"topic,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// UpdateSessionRequest applies a partial session update.
type UpdateSessionRequest struct {
	SessionID string         `json:"session_id"`
	Status    *SessionStatus `json:"status,omitempty"`
	Notes     *string        `json:"notes,omitempty"`
	Topic     *string        `json:"topic,omitempty"`
	EndedAt   *time.Time     `json:"ended_at,omitempty"`
}

// SpeechRequest appends one timeline entry for a spoken or selected turn.
type SpeechRequest struct {
	SessionID    string  `json:"session_id"`
	Speaker      Speaker `json:"speaker"`
	Transcript   string  `json:"transcript,omitempty"`
	RecordingURL string  `json:"recording_url,omitempty"`
	CardID       string  `json:"card_id,omitempty"`
}

// ImageSearchRequest queries the image search provider.
type ImageSearchRequest struct {
	Query string `json:"query"`
}
