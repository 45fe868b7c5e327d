package catalog

import (
	"cmp"
	"slices"

	"projects/showcase/internal/domain"
)

// ComputeView filters items by tag (NoTag keeps everything) and stable-sorts
// the result in descending order of the key. Items with equal keys keep their
// input order. The input slice is never modified; the result is a new slice.
func ComputeView(items []domain.Item, filter domain.Tag, key domain.SortKey) ([]domain.Item, error) {
	less, err := comparator(key)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Item, 0, len(items))
	for _, item := range items {
		if filter != domain.NoTag && item.Tag != filter {
			continue
		}
		out = append(out, item)
	}

	slices.SortStableFunc(out, less)
	return out, nil
}

func comparator(key domain.SortKey) (func(a, b domain.Item) int, error) {
	switch key {
	case domain.SortTopRated:
		return func(a, b domain.Item) int { return cmp.Compare(b.Rating, a.Rating) }, nil
	case domain.SortNewest:
		return func(a, b domain.Item) int { return b.CreatedAt.Compare(a.CreatedAt) }, nil
	case domain.SortMostViewed:
		return func(a, b domain.Item) int { return cmp.Compare(b.ViewCount, a.ViewCount) }, nil
	case domain.SortMostLiked:
		return func(a, b domain.Item) int { return cmp.Compare(b.LikeCount, a.LikeCount) }, nil
	default:
		return nil, domain.InvalidArgument("unknown sort key %q", key)
	}
}
