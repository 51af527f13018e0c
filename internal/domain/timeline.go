package domain

import "time"

// TimelineEntry is one recorded turn: a card selection, a transcript, or
// both. Entries are append-only; display order is created_at ascending.
type TimelineEntry struct {
	ID           string      `json:"id"`
	SessionID    string      `json:"session_id"`
	Speaker      Speaker     `json:"speaker"`
	Card         *VisualCard `json:"card,omitempty"`
	Transcript   string      `json:"transcript,omitempty"`
	RecordingURL string      `json:"recording_url,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
}

// DisplayText is the text a timeline entry contributes to a chat bubble:
// the card title when a card was selected, otherwise the transcript.
func (e TimelineEntry) DisplayText() string {
	if e.Card != nil && e.Card.Title != "" {
		return e.Card.Title
	}
	return e.Transcript
}

// TimelineGroup is a run of adjacent same-speaker entries merged for
// display. Grouping is a presentation transform; storage rows stay distinct.
type TimelineGroup struct {
	Speaker   Speaker   `json:"speaker"`
	Messages  []string  `json:"messages"`
	CreatedAt time.Time `json:"created_at"`
}
