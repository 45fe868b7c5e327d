// Package display turns a catalog controller into the view-models painted
// by the rendering surface: ordered summary cards plus an optional detail.
package display

import (
	"fmt"

	"projects/showcase/internal/domain"
	"projects/showcase/internal/state"
)

const AllTagsLabel = "All SDGs"

type Option struct {
	Value    string
	Label    string
	Selected bool
}

type Card struct {
	ID          int
	Title       string
	Description string
	Author      string
	Tag         string
	Rating      string
	Views       int64
	// Likes is nil for catalogs without a like counter.
	Likes     *int64
	Thumbnail string
}

type Detail struct {
	Card
	TagCode    string
	CreatedAt  string
	GitHubLink string
	HostedLink string
}

type Model struct {
	Kind          domain.CatalogKind
	Title         string
	HasLikes      bool
	FilterOptions []Option
	SortOptions   []Option
	Cards         []Card
	// Detail is non-nil iff the overlay is open.
	Detail *Detail
}

func (m Model) OverlayOpen() bool {
	return m.Detail != nil
}

func Build(ctrl *state.Controller) Model {
	schema := ctrl.Catalog().Schema()
	sel := ctrl.Selection()

	m := Model{
		Kind:     schema.Kind,
		Title:    schema.Title,
		HasLikes: schema.HasLikes,
	}

	for _, tag := range ctrl.FilterOptions() {
		label := tag.String()
		if tag == domain.NoTag {
			label = AllTagsLabel
		}
		m.FilterOptions = append(m.FilterOptions, Option{
			Value:    tag.String(),
			Label:    label,
			Selected: tag == sel.CategoryFilter,
		})
	}

	for _, key := range ctrl.SortOptions() {
		m.SortOptions = append(m.SortOptions, Option{
			Value:    key.String(),
			Label:    key.Label(),
			Selected: key == sel.SortKey,
		})
	}

	view := ctrl.View()
	m.Cards = make([]Card, 0, len(view))
	for _, item := range view {
		m.Cards = append(m.Cards, NewCard(schema, item))
	}

	if item, ok := ctrl.SelectedItem(); ok {
		d := NewDetail(schema, item)
		m.Detail = &d
	}

	return m
}

func NewCard(schema domain.Schema, item domain.Item) Card {
	c := Card{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		Author:      item.Author,
		Tag:         item.Tag.String(),
		Rating:      fmt.Sprintf("%.1f", item.Rating),
		Views:       item.ViewCount,
		Thumbnail:   item.ThumbnailURI,
	}
	if schema.HasLikes {
		likes := item.LikeCount
		c.Likes = &likes
	}
	return c
}

func NewDetail(schema domain.Schema, item domain.Item) Detail {
	d := Detail{
		Card:      NewCard(schema, item),
		TagCode:   item.Tag.Code(),
		CreatedAt: item.CreatedAt.Format("Jan 2, 2006"),
	}
	if schema.HasLinks {
		d.GitHubLink = item.GitHubLink
		d.HostedLink = item.HostedLink
	}
	return d
}

// SelectedLabel returns the label of the selected option, or "" if none is.
func SelectedLabel(opts []Option) string {
	for _, o := range opts {
		if o.Selected {
			return o.Label
		}
	}
	return ""
}
