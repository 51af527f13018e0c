package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/visualgenius/server/internal/domain"
	"github.com/visualgenius/server/internal/logger"
)

// CreateSession starts a new conversation session in the active state.
func (s *Service) CreateSession(ctx context.Context, req domain.CreateSessionRequest) (*domain.ConversationSession, error) {
	if req.ParentID == "" || req.ChildID == "" {
		return nil, fmt.Errorf("%w: parent_id and child_id are required", domain.ErrValidation)
	}
	if req.OwnerUserID == "" {
		return nil, fmt.Errorf("%w: owner_user_id is required", domain.ErrValidation)
	}

	now := time.Now()
	session := &domain.ConversationSession{
		ID:          uuid.New().String(),
		ParentID:    req.ParentID,
		ChildID:     req.ChildID,
		OwnerUserID: req.OwnerUserID,
		Topic:       req.Topic,
		Status:      domain.SessionStatusActive,
		Notes:       req.Notes,
		StartedAt:   now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	logger.Logger.Info().Str("session_id", session.ID).Msg("created conversation session")
	return session, nil
}

// GetSession retrieves a session by id.
func (s *Service) GetSession(ctx context.Context, sessionID string) (*domain.ConversationSession, error) {
	session, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, fmt.Errorf("%w: session %s", domain.ErrNotFound, sessionID)
	}
	return session, nil
}

// UpdateSession applies a partial update. Completing a session without an
// explicit ended_at stamps the current time; an explicit value wins.
func (s *Service) UpdateSession(ctx context.Context, sessionID string, update domain.SessionUpdate) (*domain.ConversationSession, error) {
	if update.Status != nil && !update.Status.Valid() {
		return nil, fmt.Errorf("%w: invalid status %q", domain.ErrValidation, *update.Status)
	}
	if update.Status != nil && *update.Status == domain.SessionStatusCompleted && update.EndedAt == nil {
		now := time.Now()
		update.EndedAt = &now
	}

	session, err := s.store.UpdateSession(ctx, sessionID, update)
	if err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}
	if session == nil {
		return nil, fmt.Errorf("%w: session %s", domain.ErrNotFound, sessionID)
	}
	return session, nil
}

// ListSessions returns a user's sessions, newest-started first, filtered by
// status, child identifier, and start-date range, with optional pagination.
func (s *Service) ListSessions(ctx context.Context, ownerUserID string, filter domain.SessionFilter) ([]domain.ConversationSession, error) {
	if ownerUserID == "" {
		return nil, fmt.Errorf("%w: owner_user_id is required", domain.ErrValidation)
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: invalid status %q", domain.ErrValidation, filter.Status)
	}
	return s.store.ListSessions(ctx, ownerUserID, filter)
}

// DeleteSession removes a session and cascades to its cards and timeline
// entries; they are meaningless without their owning session.
func (s *Service) DeleteSession(ctx context.Context, sessionID string) error {
	found, err := s.store.DeleteSession(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: session %s", domain.ErrNotFound, sessionID)
	}
	logger.Logger.Info().Str("session_id", sessionID).Msg("deleted conversation session")
	return nil
}

// GetStatistics aggregates session, card and utterance counts for a user.
func (s *Service) GetStatistics(ctx context.Context, ownerUserID string) (*domain.SessionStatistics, error) {
	if ownerUserID == "" {
		return nil, fmt.Errorf("%w: owner_user_id is required", domain.ErrValidation)
	}
	return s.store.GetStatistics(ctx, ownerUserID)
}
