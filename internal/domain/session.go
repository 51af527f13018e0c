package domain

import "time"

// ConversationSession is one parent-child conversation. Status transitions
// are monotonic except active<->paused; completed is terminal.
type ConversationSession struct {
	ID          string        `json:"id"`
	ParentID    string        `json:"parent_id"`
	ChildID     string        `json:"child_id"`
	OwnerUserID string        `json:"owner_user_id"`
	Topic       string        `json:"topic,omitempty"`
	Status      SessionStatus `json:"status"`
	Notes       string        `json:"notes,omitempty"`
	StartedAt   time.Time     `json:"started_at"`
	EndedAt     *time.Time    `json:"ended_at,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`

	// Aggregates populated by list queries.
	CardCount      int `json:"card_count"`
	UtteranceCount int `json:"utterance_count"`
}

// SessionUpdate is a partial update; nil fields are left untouched.
type SessionUpdate struct {
	Status  *SessionStatus `json:"status,omitempty"`
	Notes   *string        `json:"notes,omitempty"`
	Topic   *string        `json:"topic,omitempty"`
	EndedAt *time.Time     `json:"ended_at,omitempty"`
}

// SessionFilter narrows ListSessions results.
type SessionFilter struct {
	Status    SessionStatus
	ChildID   string
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
	Offset    int
}

// SessionStatistics aggregates counts across all sessions owned by one user.
type SessionStatistics struct {
	TotalSessions     int `json:"total_sessions"`
	ActiveSessions    int `json:"active_sessions"`
	CompletedSessions int `json:"completed_sessions"`
	TotalCards        int `json:"total_cards"`
	TotalUtterances   int `json:"total_utterances"`
}
