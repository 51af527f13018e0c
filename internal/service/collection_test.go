package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/visualgenius/server/internal/domain"
	store "github.com/visualgenius/server/internal/repository"
)

func sampleCards(ids ...string) []domain.VisualCard {
	cards := make([]domain.VisualCard, 0, len(ids))
	for _, id := range ids {
		cards = append(cards, domain.VisualCard{ID: id, Title: "Card " + id, Category: domain.CardCategoryTopic})
	}
	return cards
}

func TestCollectionLifecycle(t *testing.T) {
	svc, _ := newTestService(t, nil, nil)
	ctx := context.Background()

	id, err := svc.CreateCollection(ctx, "School Day", sampleCards("a", "b", "c"), "u1")
	require.NoError(t, err)

	collection, err := svc.GetCollection(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "School Day", collection.Name)
	require.False(t, collection.Demo)
	require.Len(t, collection.Cards, 3)

	require.NoError(t, svc.ReplaceCardOrder(ctx, id, sampleCards("c", "a", "b")))
	collection, err = svc.GetCollection(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "c", collection.Cards[0].ID)
	require.Equal(t, "a", collection.Cards[1].ID)
	require.Equal(t, "b", collection.Cards[2].ID)

	require.NoError(t, svc.RenameCollection(ctx, id, "After School"))
	collection, err = svc.GetCollection(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "After School", collection.Name)

	require.NoError(t, svc.DeleteCollection(ctx, id))
	_, err = svc.GetCollection(ctx, id)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateCollectionValidation(t *testing.T) {
	svc, _ := newTestService(t, nil, nil)
	ctx := context.Background()

	_, err := svc.CreateCollection(ctx, "  ", sampleCards("a"), "u1")
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.CreateCollection(ctx, "Named", sampleCards("a"), "")
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestMutateUnknownCollection(t *testing.T) {
	svc, _ := newTestService(t, nil, nil)
	ctx := context.Background()

	require.ErrorIs(t, svc.ReplaceCardOrder(ctx, "missing", sampleCards("a")), domain.ErrNotFound)
	require.ErrorIs(t, svc.RenameCollection(ctx, "missing", "New"), domain.ErrNotFound)
	require.ErrorIs(t, svc.DeleteCollection(ctx, "missing"), domain.ErrNotFound)
}

func TestDemoCollectionsAreProtected(t *testing.T) {
	svc, st := newTestService(t, nil, nil)
	ctx := context.Background()

	demos, err := st.ListCollections(ctx, store.DemoOwnerUserID)
	require.NoError(t, err)
	require.NotEmpty(t, demos)
	demo := demos[0]

	require.ErrorIs(t, svc.DeleteCollection(ctx, demo.ID), domain.ErrForbidden)
	require.ErrorIs(t, svc.RenameCollection(ctx, demo.ID, "Renamed"), domain.ErrForbidden)
	require.ErrorIs(t, svc.ReplaceCardOrder(ctx, demo.ID, sampleCards("x")), domain.ErrForbidden)

	// The refused mutations leave the demo collection untouched.
	after, err := svc.GetCollection(ctx, demo.ID)
	require.NoError(t, err)
	require.Equal(t, demo.Name, after.Name)
	require.Len(t, after.Cards, len(demo.Cards))
}
