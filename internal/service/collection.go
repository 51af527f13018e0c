package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/visualgenius/server/internal/domain"
)

// CreateCollection stores a named, ordered card set and returns its id.
func (s *Service) CreateCollection(ctx context.Context, name string, cards []domain.VisualCard, ownerUserID string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("%w: collection name is required", domain.ErrValidation)
	}
	if ownerUserID == "" {
		return "", fmt.Errorf("%w: owner_user_id is required", domain.ErrValidation)
	}

	now := time.Now()
	collection := &domain.CardCollection{
		ID:          uuid.New().String(),
		Name:        name,
		OwnerUserID: ownerUserID,
		Cards:       cards,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.CreateCollection(ctx, collection); err != nil {
		return "", fmt.Errorf("create collection: %w", err)
	}
	return collection.ID, nil
}

// ListCollections returns a user's collections, newest first.
func (s *Service) ListCollections(ctx context.Context, ownerUserID string) ([]domain.CardCollection, error) {
	if ownerUserID == "" {
		return nil, fmt.Errorf("%w: owner_user_id is required", domain.ErrValidation)
	}
	return s.store.ListCollections(ctx, ownerUserID)
}

// GetCollection retrieves a collection with its ordered cards.
func (s *Service) GetCollection(ctx context.Context, collectionID string) (*domain.CardCollection, error) {
	collection, err := s.store.GetCollection(ctx, collectionID)
	if err != nil {
		return nil, err
	}
	if collection == nil {
		return nil, fmt.Errorf("%w: collection %s", domain.ErrNotFound, collectionID)
	}
	return collection, nil
}

// ReplaceCardOrder atomically replaces a collection's whole slot set with
// the supplied cards. The UI's drag-and-drop produces a full permutation
// each time, so reorder is one bulk replace, not incremental moves.
func (s *Service) ReplaceCardOrder(ctx context.Context, collectionID string, cards []domain.VisualCard) error {
	if err := s.authorizeMutation(ctx, collectionID, "updateOrder"); err != nil {
		return err
	}
	found, err := s.store.ReplaceCardOrder(ctx, collectionID, cards)
	if err != nil {
		return fmt.Errorf("replace card order: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: collection %s", domain.ErrNotFound, collectionID)
	}
	return nil
}

// RenameCollection updates the collection name.
func (s *Service) RenameCollection(ctx context.Context, collectionID string, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: collection name is required", domain.ErrValidation)
	}
	if err := s.authorizeMutation(ctx, collectionID, "updateName"); err != nil {
		return err
	}
	found, err := s.store.RenameCollection(ctx, collectionID, name)
	if err != nil {
		return fmt.Errorf("rename collection: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: collection %s", domain.ErrNotFound, collectionID)
	}
	return nil
}

// DeleteCollection removes a collection and its slots. Demo collections are
// refused with ErrForbidden and left unchanged.
func (s *Service) DeleteCollection(ctx context.Context, collectionID string) error {
	if err := s.authorizeMutation(ctx, collectionID, "delete"); err != nil {
		return err
	}
	found, err := s.store.DeleteCollection(ctx, collectionID)
	if err != nil {
		return fmt.Errorf("delete collection: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: collection %s", domain.ErrNotFound, collectionID)
	}
	return nil
}

// authorizeMutation consults the policy engine for a collection mutation.
// Unknown collections fall through to the store so NotFound wins over
// Forbidden.
func (s *Service) authorizeMutation(ctx context.Context, collectionID, action string) error {
	collection, err := s.store.GetCollection(ctx, collectionID)
	if err != nil {
		return err
	}
	if collection == nil {
		return fmt.Errorf("%w: collection %s", domain.ErrNotFound, collectionID)
	}

	decision, err := s.policyEngine.Evaluate(ctx, map[string]interface{}{
		"action": action,
		"collection": map[string]interface{}{
			"id":            collection.ID,
			"demo":          collection.Demo,
			"owner_user_id": collection.OwnerUserID,
		},
	})
	if err != nil {
		return fmt.Errorf("evaluate collection policy: %w", err)
	}
	if decision != "allow" {
		return fmt.Errorf("%w: %s of protected collection %s", domain.ErrForbidden, action, collectionID)
	}
	return nil
}
