// Package catalog holds the per-category item store and the filter/sort
// pipeline that produces the display order.
package catalog

import (
	"math"

	"projects/showcase/internal/domain"
)

// Catalog is the ordered item collection for one showcase category. Item
// order is fixture insertion order; display order always comes from View.
// The only mutation is IncrementLike, and only when the schema has likes.
type Catalog struct {
	schema  domain.Schema
	items   []domain.Item
	index   map[int]int
	tags    []domain.Tag
	version uint64
}

// New copies items into a catalog for kind after checking the fixture
// invariants: unique ids, rating in range, a known SDG tag, non-negative
// counters and no likes on catalogs without them.
func New(kind domain.CatalogKind, items []domain.Item) (*Catalog, error) {
	schema, err := domain.SchemaFor(kind)
	if err != nil {
		return nil, err
	}

	c := &Catalog{
		schema: schema,
		items:  make([]domain.Item, 0, len(items)),
		index:  make(map[int]int, len(items)),
	}

	seenTags := make(map[domain.Tag]struct{})
	for _, item := range items {
		if err := c.validate(item); err != nil {
			return nil, err
		}

		c.index[item.ID] = len(c.items)
		c.items = append(c.items, item)

		if _, ok := seenTags[item.Tag]; !ok {
			seenTags[item.Tag] = struct{}{}
			c.tags = append(c.tags, item.Tag)
		}
	}

	return c, nil
}

func (c *Catalog) validate(item domain.Item) error {
	kind := c.schema.Kind
	if _, dup := c.index[item.ID]; dup {
		return domain.InvalidArgument("%s: duplicate item id %d", kind, item.ID)
	}
	if math.IsNaN(item.Rating) || item.Rating < domain.MinRating || item.Rating > domain.MaxRating {
		return domain.InvalidArgument("%s: item %d rating %.2f outside [%.0f,%.0f]",
			kind, item.ID, item.Rating, domain.MinRating, domain.MaxRating)
	}
	if !item.Tag.Valid() {
		return domain.InvalidArgument("%s: item %d has unknown SDG tag %q", kind, item.ID, item.Tag)
	}
	if item.ViewCount < 0 {
		return domain.InvalidArgument("%s: item %d has negative view count", kind, item.ID)
	}
	if item.LikeCount < 0 {
		return domain.InvalidArgument("%s: item %d has negative like count", kind, item.ID)
	}
	if !c.schema.HasLikes && item.LikeCount != 0 {
		return domain.InvalidArgument("%s: item %d has likes but the catalog does not", kind, item.ID)
	}
	return nil
}

func (c *Catalog) Kind() domain.CatalogKind {
	return c.schema.Kind
}

func (c *Catalog) Schema() domain.Schema {
	return c.schema
}

func (c *Catalog) Len() int {
	return len(c.items)
}

// Version changes every time an item is mutated.
func (c *Catalog) Version() uint64 {
	return c.version
}

// Items returns a copy of the catalog in insertion order.
func (c *Catalog) Items() []domain.Item {
	out := make([]domain.Item, len(c.items))
	copy(out, c.items)
	return out
}

// Tags returns the distinct tags present, in order of first appearance.
// These are the filter dropdown options.
func (c *Catalog) Tags() []domain.Tag {
	out := make([]domain.Tag, len(c.tags))
	copy(out, c.tags)
	return out
}

func (c *Catalog) Item(id int) (domain.Item, bool) {
	i, ok := c.index[id]
	if !ok {
		return domain.Item{}, false
	}
	return c.items[i], true
}

func (c *Catalog) Contains(id int) bool {
	_, ok := c.index[id]
	return ok
}

// IncrementLike adds exactly one like to the item and returns its updated
// copy. Repeated calls are not deduplicated.
func (c *Catalog) IncrementLike(id int) (domain.Item, error) {
	if !c.schema.HasLikes {
		return domain.Item{}, domain.InvalidArgument("%s catalog has no likes", c.schema.Kind)
	}

	i, ok := c.index[id]
	if !ok {
		return domain.Item{}, domain.InvalidArgument("%s: unknown item id %d", c.schema.Kind, id)
	}

	c.items[i].LikeCount++
	c.version++

	return c.items[i], nil
}

// View runs the pipeline over the catalog, additionally rejecting sort keys
// the schema does not support and tags outside the SDG enumeration.
func (c *Catalog) View(filter domain.Tag, key domain.SortKey) ([]domain.Item, error) {
	if err := c.CheckSortKey(key); err != nil {
		return nil, err
	}
	if err := CheckFilter(filter); err != nil {
		return nil, err
	}
	return ComputeView(c.items, filter, key)
}

func (c *Catalog) CheckSortKey(key domain.SortKey) error {
	if !key.Valid() {
		return domain.InvalidArgument("unknown sort key %q", key)
	}
	if !c.schema.Supports(key) {
		return domain.InvalidArgument("%s catalog cannot sort by %s", c.schema.Kind, key)
	}
	return nil
}

func CheckFilter(filter domain.Tag) error {
	if filter != domain.NoTag && !filter.Valid() {
		return domain.InvalidArgument("unknown SDG tag %q", filter)
	}
	return nil
}
