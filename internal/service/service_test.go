package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/visualgenius/server/internal/domain"
	store "github.com/visualgenius/server/internal/repository"
	"github.com/visualgenius/server/policy"
)

// stubIdeas returns a fixed idea set or a fixed error.
type stubIdeas struct {
	ideas []domain.CardIdea
	err   error
}

func (s *stubIdeas) GenerateCardIdeas(ctx context.Context, prompt string) ([]domain.CardIdea, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.ideas, nil
}

// stubImages counts calls and returns a fixed result set or a fixed error.
type stubImages struct {
	results []domain.ImageResult
	err     error
	calls   int
}

func (s *stubImages) SearchImages(ctx context.Context, query string) ([]domain.ImageResult, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.results, nil
}

func newTestService(t *testing.T, ideas *stubIdeas, images *stubImages) (*Service, store.Store) {
	t.Helper()
	st, err := store.NewSQLiteStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	engine, err := policy.NewEngine(context.Background(), policy.DefaultPolicy)
	require.NoError(t, err)

	if ideas == nil {
		ideas = &stubIdeas{}
	}
	if images == nil {
		images = &stubImages{}
	}
	return New(st, ideas, images, engine), st
}

func createTestSession(t *testing.T, svc *Service) *domain.ConversationSession {
	t.Helper()
	session, err := svc.CreateSession(context.Background(), domain.CreateSessionRequest{
		ParentID:    "p1",
		ChildID:     "c1",
		OwnerUserID: "u1",
		Topic:       "morning routine",
	})
	require.NoError(t, err)
	return session
}
