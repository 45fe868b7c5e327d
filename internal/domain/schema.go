package domain

import "slices"

// Schema describes which optional fields and sort keys a catalog kind
// supports. It replaces per-category component copies with one generic
// catalog parameterized by its schema.
type Schema struct {
	Kind     CatalogKind
	Title    string
	SortKeys []SortKey
	HasLikes bool
	HasLinks bool
}

var baseSortKeys = []SortKey{SortTopRated, SortNewest, SortMostViewed}

var schemas = map[CatalogKind]Schema{
	CatalogKindGames: {
		Kind:     CatalogKindGames,
		Title:    "🎮 Game Innovation Hub",
		SortKeys: SortKeys,
		HasLikes: true,
		HasLinks: true,
	},
	CatalogKindWebsites: {
		Kind:     CatalogKindWebsites,
		Title:    "🌐 Websites",
		SortKeys: baseSortKeys,
	},
	CatalogKindVideos: {
		Kind:     CatalogKindVideos,
		Title:    "🎬 Videos",
		SortKeys: baseSortKeys,
	},
	CatalogKindDocumentaries: {
		Kind:     CatalogKindDocumentaries,
		Title:    "📄 Documentaries",
		SortKeys: baseSortKeys,
	},
	CatalogKindDigitalArt: {
		Kind:     CatalogKindDigitalArt,
		Title:    "🎨 Digital Art",
		SortKeys: baseSortKeys,
	},
}

func SchemaFor(kind CatalogKind) (Schema, error) {
	s, ok := schemas[kind]
	if !ok {
		return Schema{}, InvalidArgument("unknown catalog kind %q", kind)
	}
	s.SortKeys = slices.Clone(s.SortKeys)
	return s, nil
}

func (s Schema) Supports(key SortKey) bool {
	return slices.Contains(s.SortKeys, key)
}
