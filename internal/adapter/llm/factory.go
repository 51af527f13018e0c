package llm

import (
	"os"
	"time"

	"github.com/visualgenius/server/internal/logger"
)

const (
	// EnvMode is the environment variable name for mode selection.
	EnvMode = "GENIUS_MODE"
	// ModeMock indicates mock mode should be used.
	ModeMock = "MOCK"
)

// NewIdeaGenerator creates an idea generator based on the GENIUS_MODE
// environment variable. If GENIUS_MODE=MOCK, returns a MockClient;
// otherwise returns a real Client.
func NewIdeaGenerator(baseURL, apiKey, model string, timeout time.Duration) IdeaGenerator {
	if os.Getenv(EnvMode) == ModeMock {
		logger.Logger.Info().Msg("GENIUS_MODE=MOCK detected, using mock idea generator")
		return NewMockClient()
	}

	return NewClient(baseURL, apiKey, model, timeout)
}
