package domain

import "fmt"

type CatalogKind string

func (k CatalogKind) String() string {
	return string(k)
}

const (
	CatalogKindGames         CatalogKind = "games"
	CatalogKindWebsites      CatalogKind = "websites"
	CatalogKindVideos        CatalogKind = "videos"
	CatalogKindDocumentaries CatalogKind = "documentaries"
	CatalogKindDigitalArt    CatalogKind = "digital_art"
)

// CatalogKinds lists every showcase category in page order.
var CatalogKinds = []CatalogKind{
	CatalogKindGames,
	CatalogKindWebsites,
	CatalogKindVideos,
	CatalogKindDocumentaries,
	CatalogKindDigitalArt,
}

func (k CatalogKind) GetCategoryName() string {
	switch k {
	case CatalogKindGames:
		return "Games"
	case CatalogKindWebsites:
		return "Websites"
	case CatalogKindVideos:
		return "Videos"
	case CatalogKindDocumentaries:
		return "Documentaries"
	case CatalogKindDigitalArt:
		return "Digital Art"
	default:
		return "Unknown"
	}
}

func (k CatalogKind) Valid() bool {
	for _, known := range CatalogKinds {
		if k == known {
			return true
		}
	}
	return false
}

// ParseCatalogKind accepts the kind identifier ("digital_art") as used in
// fixture file names, config and database rows.
func ParseCatalogKind(s string) (CatalogKind, error) {
	k := CatalogKind(s)
	if !k.Valid() {
		return "", InvalidArgument("unknown catalog kind %q", s)
	}
	return k, nil
}

func (k CatalogKind) MustSchema() Schema {
	s, err := SchemaFor(k)
	if err != nil {
		panic(fmt.Sprintf("no schema for catalog kind %q", k))
	}
	return s
}
