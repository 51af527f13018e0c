// Package domain defines the core domain models for the conversation backend.
package domain

// SessionStatus represents the lifecycle status of a conversation session.
type SessionStatus string

const (
	SessionStatusActive    SessionStatus = "active"
	SessionStatusPaused    SessionStatus = "paused"
	SessionStatusCompleted SessionStatus = "completed"
)

// Valid reports whether the status is one of the known lifecycle states.
func (s SessionStatus) Valid() bool {
	switch s {
	case SessionStatusActive, SessionStatusPaused, SessionStatusCompleted:
		return true
	}
	return false
}

// CardCategory classifies a visual card.
type CardCategory string

const (
	CardCategoryTopic    CardCategory = "topic"
	CardCategoryAction   CardCategory = "action"
	CardCategoryEmotion  CardCategory = "emotion"
	CardCategoryResponse CardCategory = "response"
)

// Speaker identifies the party attributed to a timeline entry. The
// conversation flow only produces "parent" and "child"; storage accepts
// any tag.
type Speaker string

const (
	SpeakerParent Speaker = "parent"
	SpeakerChild  Speaker = "child"
)
