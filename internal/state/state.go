package state

import (
	"slices"

	"projects/showcase/internal/catalog"
	"projects/showcase/internal/domain"

	log "github.com/sirupsen/logrus"
)

// Selection is the user-controlled state of one catalog component.
type Selection struct {
	CategoryFilter domain.Tag
	SortKey        domain.SortKey
	// SelectedID is the item shown in the detail overlay; nil means closed.
	SelectedID *int
}

func (s Selection) OverlayOpen() bool {
	return s.SelectedID != nil
}

type viewKey struct {
	filter  domain.Tag
	sortKey domain.SortKey
	version uint64
}

// Controller owns the Selection for one catalog. Mutators take effect
// immediately; a rejected mutation leaves the previous state in place.
type Controller struct {
	catalog   *catalog.Catalog
	selection Selection

	memoKey  viewKey
	memoView []domain.Item
	memoOK   bool
}

func NewController(c *catalog.Catalog) *Controller {
	return &Controller{
		catalog: c,
		selection: Selection{
			CategoryFilter: domain.NoTag,
			SortKey:        domain.DefaultSortKey,
		},
	}
}

func (c *Controller) Catalog() *catalog.Catalog {
	return c.catalog
}

func (c *Controller) Selection() Selection {
	sel := c.selection
	if sel.SelectedID != nil {
		id := *sel.SelectedID
		sel.SelectedID = &id
	}
	return sel
}

// SetCategoryFilter replaces the filter; NoTag clears it.
func (c *Controller) SetCategoryFilter(tag domain.Tag) error {
	if err := catalog.CheckFilter(tag); err != nil {
		return err
	}
	c.selection.CategoryFilter = tag
	log.Debugf("%s: filter set to %q", c.catalog.Kind(), tag)
	return nil
}

func (c *Controller) SetSortKey(key domain.SortKey) error {
	if err := c.catalog.CheckSortKey(key); err != nil {
		return err
	}
	c.selection.SortKey = key
	log.Debugf("%s: sort key set to %s", c.catalog.Kind(), key)
	return nil
}

// SelectItem opens the overlay on item, or closes it when item is nil.
// The item must belong to this catalog.
func (c *Controller) SelectItem(item *domain.Item) error {
	if item == nil {
		c.selection.SelectedID = nil
		return nil
	}
	return c.SelectItemByID(item.ID)
}

func (c *Controller) SelectItemByID(id int) error {
	if !c.catalog.Contains(id) {
		return domain.InvalidArgument("%s: unknown item id %d", c.catalog.Kind(), id)
	}
	c.selection.SelectedID = &id
	return nil
}

func (c *Controller) CloseOverlay() {
	c.selection.SelectedID = nil
}

// SelectedItem returns the catalog's current copy of the selected item.
func (c *Controller) SelectedItem() (domain.Item, bool) {
	if c.selection.SelectedID == nil {
		return domain.Item{}, false
	}
	return c.catalog.Item(*c.selection.SelectedID)
}

// View returns the display order for the current selection. Results are
// memoized on filter, sort key and catalog version; callers get their own
// copy.
func (c *Controller) View() []domain.Item {
	key := viewKey{
		filter:  c.selection.CategoryFilter,
		sortKey: c.selection.SortKey,
		version: c.catalog.Version(),
	}

	if !c.memoOK || c.memoKey != key {
		view, err := c.catalog.View(key.filter, key.sortKey)
		if err != nil {
			// Mutators validate before storing, so the selection is always viewable.
			log.Errorf("❌ %s: recomputing view: %v", c.catalog.Kind(), err)
			return nil
		}
		c.memoKey, c.memoView, c.memoOK = key, view, true
	}

	out := make([]domain.Item, len(c.memoView))
	copy(out, c.memoView)
	return out
}

// Like increments the like counter of the item with the given id.
func (c *Controller) Like(id int) (domain.Item, error) {
	item, err := c.catalog.IncrementLike(id)
	if err != nil {
		return domain.Item{}, err
	}
	log.Debugf("%s: item %d now has %d likes", c.catalog.Kind(), id, item.LikeCount)
	return item, nil
}

// FilterOptions are the dropdown choices: NoTag followed by the tags present
// in the catalog. An active filter no item carries is listed last so it stays
// selectable.
func (c *Controller) FilterOptions() []domain.Tag {
	opts := append([]domain.Tag{domain.NoTag}, c.catalog.Tags()...)
	if !slices.Contains(opts, c.selection.CategoryFilter) {
		opts = append(opts, c.selection.CategoryFilter)
	}
	return opts
}

func (c *Controller) SortOptions() []domain.SortKey {
	return c.catalog.Schema().SortKeys
}

// CycleCategoryFilter moves the filter step positions through FilterOptions,
// wrapping around.
func (c *Controller) CycleCategoryFilter(step int) domain.Tag {
	opts := c.FilterOptions()
	next := opts[cycle(indexOf(opts, c.selection.CategoryFilter), step, len(opts))]
	c.selection.CategoryFilter = next
	return next
}

func (c *Controller) CycleSortKey(step int) domain.SortKey {
	opts := c.SortOptions()
	next := opts[cycle(indexOf(opts, c.selection.SortKey), step, len(opts))]
	c.selection.SortKey = next
	return next
}

func indexOf[T comparable](opts []T, v T) int {
	for i, o := range opts {
		if o == v {
			return i
		}
	}
	return 0
}

func cycle(i, step, n int) int {
	return ((i+step)%n + n) % n
}
