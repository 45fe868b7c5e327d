package domain

import "time"

// Item is a single showcase project. All catalogs share this shape; fields a
// catalog's Schema does not use stay at their zero value.
type Item struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Author       string    `json:"author,omitempty"`
	Tag          Tag       `json:"sdg"`
	ViewCount    int64     `json:"views"`
	CreatedAt    time.Time `json:"created_at"`
	Rating       float64   `json:"rating"`
	ThumbnailURI string    `json:"thumbnail"`

	// Games only
	LikeCount  int64  `json:"likes,omitempty"`
	GitHubLink string `json:"github_link,omitempty"`
	HostedLink string `json:"hosted_link,omitempty"`
}

const (
	MinRating = 0.0
	MaxRating = 5.0
)
