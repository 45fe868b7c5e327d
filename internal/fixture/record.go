package fixture

import (
	"fmt"
	"strings"
	"time"

	"projects/showcase/internal/domain"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Record is the wire shape of one fixture item, shared by the YAML, JSON and
// HTML formats and by the database row scanner.
type Record struct {
	ID          int     `json:"id" yaml:"id"`
	Title       string  `json:"title" yaml:"title"`
	Description string  `json:"description" yaml:"description"`
	Author      string  `json:"author,omitempty" yaml:"author,omitempty"`
	SDG         string  `json:"sdg" yaml:"sdg"`
	Views       int64   `json:"views" yaml:"views"`
	CreatedAt   Date    `json:"created_at" yaml:"created_at"`
	Rating      float64 `json:"rating" yaml:"rating"`
	Thumbnail   string  `json:"thumbnail" yaml:"thumbnail"`
	Likes       int64   `json:"likes,omitempty" yaml:"likes,omitempty"`
	GitHubLink  string  `json:"github_link,omitempty" yaml:"github_link,omitempty"`
	HostedLink  string  `json:"hosted_link,omitempty" yaml:"hosted_link,omitempty"`
}

func (r Record) Item() domain.Item {
	return domain.Item{
		ID:           r.ID,
		Title:        r.Title,
		Description:  r.Description,
		Author:       r.Author,
		Tag:          domain.Tag(strings.TrimSpace(r.SDG)),
		ViewCount:    r.Views,
		CreatedAt:    r.CreatedAt.Time,
		Rating:       r.Rating,
		ThumbnailURI: r.Thumbnail,
		LikeCount:    r.Likes,
		GitHubLink:   r.GitHubLink,
		HostedLink:   r.HostedLink,
	}
}

func Items(records []Record) []domain.Item {
	items := make([]domain.Item, 0, len(records))
	for _, r := range records {
		items = append(items, r.Item())
	}
	return items
}

// Date accepts either a calendar date ("2024-03-15") or an RFC 3339
// timestamp. Calendar dates are taken as midnight UTC.
type Date struct {
	time.Time
}

var dateLayouts = []string{time.DateOnly, time.RFC3339, time.DateTime}

func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("created_at must be a string: %w", err)
	}
	t, err := ParseDate(s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time.Format(time.DateOnly))
}

func (d *Date) UnmarshalYAML(node *yaml.Node) error {
	t, err := ParseDate(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	d.Time = t
	return nil
}
