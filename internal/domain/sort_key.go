package domain

type SortKey string

func (k SortKey) String() string {
	return string(k)
}

const (
	SortTopRated   SortKey = "top_rated"
	SortNewest     SortKey = "newest"
	SortMostViewed SortKey = "most_viewed"
	SortMostLiked  SortKey = "most_liked"
)

const DefaultSortKey = SortTopRated

var SortKeys = []SortKey{
	SortTopRated,
	SortNewest,
	SortMostViewed,
	SortMostLiked,
}

func (k SortKey) Valid() bool {
	switch k {
	case SortTopRated, SortNewest, SortMostViewed, SortMostLiked:
		return true
	default:
		return false
	}
}

func (k SortKey) Label() string {
	switch k {
	case SortTopRated:
		return "Top Rated"
	case SortNewest:
		return "Newest"
	case SortMostViewed:
		return "Most Viewed"
	case SortMostLiked:
		return "Most Liked"
	default:
		return "Unknown"
	}
}

func ParseSortKey(s string) (SortKey, error) {
	k := SortKey(s)
	if !k.Valid() {
		return "", InvalidArgument("unknown sort key %q", s)
	}
	return k, nil
}
