package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/visualgenius/server/internal/domain"
	"github.com/visualgenius/server/internal/logger"
)

// GenerateCards turns a free-text prompt into ready-to-display cards.
//
// Ideas whose titles case-insensitively match previously persisted cards
// reuse those cards verbatim (same id, same image) instead of minting new
// ones. The dedup is a title heuristic: it keeps near-duplicate cards from
// accumulating for the same concept and skips redundant image-search calls.
// Remaining ideas get one image search each; a failed or empty search still
// yields a card, just without an image.
//
// No persistence happens here; SaveSessionCards is the explicit follow-up.
func (s *Service) GenerateCards(ctx context.Context, prompt string) ([]domain.VisualCard, error) {
	if len(strings.TrimSpace(prompt)) < 3 {
		return nil, fmt.Errorf("%w: prompt must be at least 3 characters", domain.ErrValidation)
	}

	ideas, err := s.ideas.GenerateCardIdeas(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate card ideas: %w", err)
	}

	titles := make([]string, 0, len(ideas))
	for _, idea := range ideas {
		titles = append(titles, idea.Title)
	}

	existing, err := s.store.FindCardsByTitles(ctx, titles)
	if err != nil {
		return nil, fmt.Errorf("look up existing cards: %w", err)
	}

	// Newest persisted card wins per title; FindCardsByTitles returns
	// newest first.
	byTitle := make(map[string]domain.VisualCard, len(existing))
	for _, card := range existing {
		key := strings.ToLower(card.Title)
		if _, ok := byTitle[key]; !ok {
			byTitle[key] = card
		}
	}

	cards := make([]domain.VisualCard, 0, len(ideas))
	for _, idea := range ideas {
		if reused, ok := byTitle[strings.ToLower(idea.Title)]; ok {
			cards = append(cards, reused)
			continue
		}

		var imageURL string
		results, err := s.images.SearchImages(ctx, idea.Title+" illustration for children")
		if err != nil {
			// Image search never aborts generation.
			logger.Logger.Warn().Err(err).Str("title", idea.Title).Msg("image search failed")
		} else if len(results) > 0 {
			imageURL = results[0].ContentURL
		}

		cards = append(cards, domain.VisualCard{
			ID:          uuid.New().String(),
			Title:       idea.Title,
			Description: idea.Description,
			ImageURL:    imageURL,
			Category:    idea.Category,
			CreatedAt:   time.Now(),
		})
	}

	return cards, nil
}

// SaveSessionCards persists cards against a session in one transaction.
func (s *Service) SaveSessionCards(ctx context.Context, sessionID string, cards []domain.VisualCard) error {
	if sessionID == "" {
		return fmt.Errorf("%w: session_id is required", domain.ErrValidation)
	}
	session, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if session == nil {
		return fmt.Errorf("%w: session %s", domain.ErrNotFound, sessionID)
	}
	return s.store.SaveSessionCards(ctx, sessionID, cards)
}

// SearchImages queries the image search provider. "No results" is a normal,
// non-fatal outcome.
func (s *Service) SearchImages(ctx context.Context, query string) ([]domain.ImageResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: query is required", domain.ErrValidation)
	}
	return s.images.SearchImages(ctx, query)
}
