// Package imagesearch provides the image search provider client.
//
// An unconfigured or failing provider yields an empty result list, never an
// error: a card without an image is still a valid card.
package imagesearch

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/visualgenius/server/internal/domain"
	"github.com/visualgenius/server/internal/logger"
)

// Searcher defines the interface for image search.
type Searcher interface {
	SearchImages(ctx context.Context, query string) ([]domain.ImageResult, error)
}

// Client searches the Unsplash photo API.
type Client struct {
	accessKey  string
	endpoint   string
	httpClient *http.Client
}

// Ensure Client implements Searcher interface.
var _ Searcher = (*Client)(nil)

const defaultEndpoint = "https://api.unsplash.com/search/photos"

// NewClient creates a new Unsplash client. An empty access key produces a
// client that always returns no results.
func NewClient(accessKey string, timeout time.Duration) *Client {
	return &Client{
		accessKey: accessKey,
		endpoint:  defaultEndpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type unsplashPhoto struct {
	ID   string `json:"id"`
	URLs struct {
		Regular string `json:"regular"`
		Small   string `json:"small"`
		Thumb   string `json:"thumb"`
	} `json:"urls"`
	AltDescription string `json:"alt_description"`
	Description    string `json:"description"`
	User           struct {
		Name string `json:"name"`
	} `json:"user"`
}

// SearchImages returns photo results for a query. Failures are logged and
// reported as an empty list.
func (c *Client) SearchImages(ctx context.Context, query string) ([]domain.ImageResult, error) {
	if c.accessKey == "" {
		logger.Logger.Warn().Msg("Unsplash access key not configured, image search disabled")
		return []domain.ImageResult{}, nil
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("per_page", "12")
	params.Set("orientation", "squarish")
	params.Set("content_filter", "high")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return []domain.ImageResult{}, nil
	}
	req.Header.Set("Authorization", "Client-ID "+c.accessKey)
	req.Header.Set("Accept-Version", "v1")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Logger.Warn().Err(err).Str("query", query).Msg("image search request failed")
		return []domain.ImageResult{}, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		logger.Logger.Warn().Int("status", resp.StatusCode).Str("body", string(body)).
			Msg("image search returned non-200")
		return []domain.ImageResult{}, nil
	}

	var payload struct {
		Results []unsplashPhoto `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		logger.Logger.Warn().Err(err).Msg("failed to decode image search response")
		return []domain.ImageResult{}, nil
	}

	results := make([]domain.ImageResult, 0, len(payload.Results))
	for _, photo := range payload.Results {
		if photo.URLs.Regular == "" {
			continue
		}
		name := photo.AltDescription
		if name == "" {
			name = photo.Description
		}
		if name == "" {
			name = "Photo by " + photo.User.Name
		}
		results = append(results, domain.ImageResult{
			ID:           photo.ID,
			ThumbnailURL: photo.URLs.Small,
			ContentURL:   photo.URLs.Regular,
			Name:         name,
		})
	}
	return results, nil
}
