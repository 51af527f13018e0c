package store

import (
	"context"

	"github.com/visualgenius/server/internal/domain"
)

// Store is the persistence interface for sessions, cards, collections and
// timeline entries. Lookups return (nil, nil) when the row does not exist;
// mutations report whether a row was touched.
type Store interface {
	// Sessions
	CreateSession(ctx context.Context, session *domain.ConversationSession) error
	GetSession(ctx context.Context, sessionID string) (*domain.ConversationSession, error)
	UpdateSession(ctx context.Context, sessionID string, update domain.SessionUpdate) (*domain.ConversationSession, error)
	ListSessions(ctx context.Context, ownerUserID string, filter domain.SessionFilter) ([]domain.ConversationSession, error)
	DeleteSession(ctx context.Context, sessionID string) (bool, error)
	GetStatistics(ctx context.Context, ownerUserID string) (*domain.SessionStatistics, error)

	// Cards
	SaveSessionCards(ctx context.Context, sessionID string, cards []domain.VisualCard) error
	FindCardsByTitles(ctx context.Context, titles []string) ([]domain.VisualCard, error)
	GetCard(ctx context.Context, cardID string) (*domain.VisualCard, error)

	// Collections
	CreateCollection(ctx context.Context, collection *domain.CardCollection) error
	ListCollections(ctx context.Context, ownerUserID string) ([]domain.CardCollection, error)
	GetCollection(ctx context.Context, collectionID string) (*domain.CardCollection, error)
	ReplaceCardOrder(ctx context.Context, collectionID string, cards []domain.VisualCard) (bool, error)
	RenameCollection(ctx context.Context, collectionID string, name string) (bool, error)
	DeleteCollection(ctx context.Context, collectionID string) (bool, error)

	// Timeline
	CreateEntry(ctx context.Context, entry *domain.TimelineEntry) error
	ListTimeline(ctx context.Context, sessionID string) ([]domain.TimelineEntry, error)
	ClearTimeline(ctx context.Context, sessionID string) error

	Close() error
}
