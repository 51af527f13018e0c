// Package llm provides the card idea generator client.
package llm

import (
	"context"

	"github.com/visualgenius/server/internal/domain"
)

// IdeaGenerator defines the interface for the upstream card idea generator.
type IdeaGenerator interface {
	// GenerateCardIdeas asks the generator for card suggestions for a
	// free-text prompt.
	GenerateCardIdeas(ctx context.Context, prompt string) ([]domain.CardIdea, error)
}

// Ensure Client implements IdeaGenerator interface.
var _ IdeaGenerator = (*Client)(nil)
