package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/visualgenius/server/internal/domain"
)

func breakfastIdeas() []domain.CardIdea {
	return []domain.CardIdea{
		{Title: "Eat Breakfast", Description: "Time to eat", Category: domain.CardCategoryAction},
		{Title: "Happy", Description: "Feeling good", Category: domain.CardCategoryEmotion},
	}
}

func TestGenerateCardsRejectsShortPrompt(t *testing.T) {
	svc, _ := newTestService(t, nil, nil)

	_, err := svc.GenerateCards(context.Background(), "  a ")
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestGenerateCardsMintsNewCards(t *testing.T) {
	images := &stubImages{results: []domain.ImageResult{
		{ID: "img-1", ThumbnailURL: "https://images.test/thumb", ContentURL: "https://images.test/full", Name: "Breakfast"},
	}}
	svc, _ := newTestService(t, &stubIdeas{ideas: breakfastIdeas()}, images)

	cards, err := svc.GenerateCards(context.Background(), "talk about breakfast")
	require.NoError(t, err)
	require.Len(t, cards, 2)
	require.Equal(t, 2, images.calls)

	require.NotEmpty(t, cards[0].ID)
	require.Equal(t, "Eat Breakfast", cards[0].Title)
	require.Equal(t, domain.CardCategoryAction, cards[0].Category)
	require.Equal(t, "https://images.test/full", cards[0].ImageURL)
	require.False(t, cards[0].CreatedAt.IsZero())
}

func TestGenerateCardsReusesPersistedCards(t *testing.T) {
	images := &stubImages{results: []domain.ImageResult{
		{ID: "img-1", ContentURL: "https://images.test/full"},
	}}
	svc, _ := newTestService(t, &stubIdeas{ideas: breakfastIdeas()}, images)
	ctx := context.Background()
	session := createTestSession(t, svc)

	first, err := svc.GenerateCards(ctx, "talk about breakfast")
	require.NoError(t, err)
	require.NoError(t, svc.SaveSessionCards(ctx, session.ID, first))

	second, err := svc.GenerateCards(ctx, "talk about breakfast again")
	require.NoError(t, err)
	require.Len(t, second, 2)

	// Persisted titles come back verbatim: same id, same image, and no
	// extra image searches beyond the first round.
	for i := range first {
		require.Equal(t, first[i].ID, second[i].ID)
		require.Equal(t, first[i].ImageURL, second[i].ImageURL)
	}
	require.Equal(t, 2, images.calls)
}

func TestGenerateCardsMatchesTitlesCaseInsensitively(t *testing.T) {
	svc, _ := newTestService(t, &stubIdeas{ideas: []domain.CardIdea{
		{Title: "EAT BREAKFAST", Category: domain.CardCategoryAction},
	}}, nil)
	ctx := context.Background()
	session := createTestSession(t, svc)

	first, err := svc.GenerateCards(ctx, "talk about breakfast")
	require.NoError(t, err)
	require.NoError(t, svc.SaveSessionCards(ctx, session.ID, first))

	second, err := svc.GenerateCards(ctx, "breakfast once more")
	require.NoError(t, err)
	require.Len(t, second, 1)
	require.Equal(t, first[0].ID, second[0].ID)
	require.Equal(t, "EAT BREAKFAST", second[0].Title)
}

func TestGenerateCardsSurvivesImageSearchFailure(t *testing.T) {
	images := &stubImages{err: errors.New("unsplash down")}
	svc, _ := newTestService(t, &stubIdeas{ideas: breakfastIdeas()}, images)

	cards, err := svc.GenerateCards(context.Background(), "talk about breakfast")
	require.NoError(t, err)
	require.Len(t, cards, 2)
	for _, card := range cards {
		require.Empty(t, card.ImageURL)
	}
}

func TestGenerateCardsPropagatesUpstreamFailure(t *testing.T) {
	svc, _ := newTestService(t, &stubIdeas{err: domain.ErrUpstreamUnavailable}, nil)

	_, err := svc.GenerateCards(context.Background(), "talk about breakfast")
	require.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}

func TestSaveSessionCardsUnknownSession(t *testing.T) {
	svc, _ := newTestService(t, nil, nil)

	err := svc.SaveSessionCards(context.Background(), "nope", []domain.VisualCard{{ID: "card-1", Title: "A", Category: domain.CardCategoryTopic}})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSearchImagesRequiresQuery(t *testing.T) {
	svc, _ := newTestService(t, nil, nil)

	_, err := svc.SearchImages(context.Background(), "   ")
	require.ErrorIs(t, err, domain.ErrValidation)
}
