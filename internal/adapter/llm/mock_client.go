package llm

import (
	"context"
	"strings"

	"github.com/visualgenius/server/internal/domain"
)

// MockClient is a mock implementation of IdeaGenerator for testing and
// offline development.
type MockClient struct{}

// NewMockClient creates a new mock idea generator.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Ensure MockClient implements IdeaGenerator interface.
var _ IdeaGenerator = (*MockClient)(nil)

// GenerateCardIdeas returns deterministic ideas derived from the prompt.
func (m *MockClient) GenerateCardIdeas(ctx context.Context, prompt string) ([]domain.CardIdea, error) {
	topic := strings.TrimSpace(prompt)
	if len(topic) > 40 {
		topic = topic[:40]
	}

	return []domain.CardIdea{
		{
			Title:       "Talk about " + topic,
			Description: "A card to open the conversation",
			Category:    domain.CardCategoryTopic,
		},
		{
			Title:       "Show me",
			Description: "Ask to be shown what is meant",
			Category:    domain.CardCategoryAction,
		},
		{
			Title:       "Happy",
			Description: "Express feeling happy about it",
			Category:    domain.CardCategoryEmotion,
		},
	}, nil
}
