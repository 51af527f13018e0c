package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/visualgenius/server/internal/domain"
)

// GroupWindow is how close together two same-speaker entries must be to
// merge into one display group.
const GroupWindow = 5 * time.Second

// AppendEntry records one turn against a session. Entries are independent
// inserts ordered by timestamp, so concurrent appends from parent and child
// sides are both retained.
func (s *Service) AppendEntry(ctx context.Context, sessionID string, entry domain.TimelineEntry) (*domain.TimelineEntry, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("%w: session_id is required", domain.ErrValidation)
	}
	if entry.Speaker == "" {
		return nil, fmt.Errorf("%w: speaker is required", domain.ErrValidation)
	}
	if entry.Card == nil && entry.Transcript == "" && entry.RecordingURL == "" {
		return nil, fmt.Errorf("%w: a card reference, transcript, or recording is required", domain.ErrValidation)
	}

	session, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, fmt.Errorf("%w: session %s", domain.ErrNotFound, sessionID)
	}

	entry.SessionID = sessionID
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	if err := s.store.CreateEntry(ctx, &entry); err != nil {
		return nil, fmt.Errorf("append timeline entry: %w", err)
	}
	return &entry, nil
}

// GetTimeline returns a session's entries ascending by timestamp, each
// hydrated with its referenced card's current data.
func (s *Service) GetTimeline(ctx context.Context, sessionID string) ([]domain.TimelineEntry, error) {
	session, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, fmt.Errorf("%w: session %s", domain.ErrNotFound, sessionID)
	}
	return s.store.ListTimeline(ctx, sessionID)
}

// ClearTimeline removes all of a session's entries. This is the explicit
// clear-history action, distinct from stopping a conversation.
func (s *Service) ClearTimeline(ctx context.Context, sessionID string) error {
	session, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if session == nil {
		return fmt.Errorf("%w: session %s", domain.ErrNotFound, sessionID)
	}
	return s.store.ClearTimeline(ctx, sessionID)
}

// GroupTimeline merges adjacent same-speaker entries into chat-bubble
// groups. A new group starts when the speaker changes or the gap from the
// group's head timestamp reaches GroupWindow. Pure transform; stored rows
// stay distinct.
func GroupTimeline(entries []domain.TimelineEntry) []domain.TimelineGroup {
	groups := []domain.TimelineGroup{}
	for _, entry := range entries {
		if len(groups) > 0 {
			last := &groups[len(groups)-1]
			gap := entry.CreatedAt.Sub(last.CreatedAt)
			if gap < 0 {
				gap = -gap
			}
			if last.Speaker == entry.Speaker && gap < GroupWindow {
				last.Messages = append(last.Messages, entry.DisplayText())
				continue
			}
		}
		groups = append(groups, domain.TimelineGroup{
			Speaker:   entry.Speaker,
			Messages:  []string{entry.DisplayText()},
			CreatedAt: entry.CreatedAt,
		})
	}
	return groups
}
