package domain

import "time"

// VisualCard is a titled, optionally illustrated unit of communication
// content. Once shown in a turn it is treated as immutable; edits produce a
// new value bound to the same ID.
type VisualCard struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	ImageURL    string       `json:"imageUrl,omitempty"`
	Category    CardCategory `json:"category"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// CardIdea is one suggestion from the upstream idea generator.
type CardIdea struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Category    CardCategory `json:"category"`
}

// ImageResult is one hit from the image search provider.
type ImageResult struct {
	ID           string `json:"id"`
	ThumbnailURL string `json:"thumbnailUrl"`
	ContentURL   string `json:"contentUrl"`
	Name         string `json:"name"`
}
