// Package locale holds the read-only source material (name
// dictionaries, address fragments, domain/URI pools) the mutation
// registry draws from. Data is grounded on
// original_source/src/mutator/locale/{en,mod}.rs; the `ru` tables are
// filled in afresh in the same shape since the upstream ru.rs source
// was not available to copy from.
package locale

import "strings"

// Name identifies a supported locale.
type Name string

const (
	EN Name = "en"
	RU Name = "ru"
)

// Parse resolves a locale flag value, defaulting to EN for anything
// unrecognised — mirroring the original implementation's
// infallible FromStr.
func Parse(s string) Name {
	switch strings.ToLower(s) {
	case "ru", "russian":
		return RU
	default:
		return EN
	}
}

// Catalog is the read-only word-list bundle for one locale.
//
// FirstNames/LastNames are used whenever they are non-empty (en);
// FirstNamesMale/Female and LastNamesMale/Female are used only when
// the matching flat list is empty (ru), matching the 50/50 gender
// draw the original implementation performs for ru names.
type Catalog struct {
	FirstNames       []string
	LastNames        []string
	FirstNamesMale   []string
	FirstNamesFemale []string
	LastNamesMale    []string
	LastNamesFemale  []string
	Patronymics      []string // ru only; empty elsewhere
	EmailDomains     []string
	StreetNames      []string
	StreetSuffixes   []string
	Cities           []string
	Regions          []string
	URISchemes       []string
	URIDomains       []string
}

var catalogs = map[Name]*Catalog{
	EN: &enCatalog,
	RU: &ruCatalog,
}

// Get returns the catalog for name, defaulting to EN.
func Get(name Name) *Catalog {
	if c, ok := catalogs[name]; ok {
		return c
	}
	return &enCatalog
}

// Override replaces the named word lists in place. Used by
// --locale-file (see internal/config) to apply a TOML overlay without
// disturbing lists the overlay doesn't mention.
func (c *Catalog) Override(o *Overlay) {
	if o == nil {
		return
	}
	if len(o.FirstNamesMale) > 0 {
		c.FirstNamesMale = o.FirstNamesMale
	}
	if len(o.FirstNamesFemale) > 0 {
		c.FirstNamesFemale = o.FirstNamesFemale
	}
	if len(o.LastNamesMale) > 0 {
		c.LastNamesMale = o.LastNamesMale
	}
	if len(o.LastNamesFemale) > 0 {
		c.LastNamesFemale = o.LastNamesFemale
	}
	if len(o.Patronymics) > 0 {
		c.Patronymics = o.Patronymics
	}
	if len(o.EmailDomains) > 0 {
		c.EmailDomains = o.EmailDomains
	}
	if len(o.StreetNames) > 0 {
		c.StreetNames = o.StreetNames
	}
	if len(o.StreetSuffixes) > 0 {
		c.StreetSuffixes = o.StreetSuffixes
	}
	if len(o.Cities) > 0 {
		c.Cities = o.Cities
	}
	if len(o.Regions) > 0 {
		c.Regions = o.Regions
	}
}

// Overlay is the shape a --locale-file TOML document decodes into.
type Overlay struct {
	FirstNamesMale   []string `toml:"first_names_male"`
	FirstNamesFemale []string `toml:"first_names_female"`
	LastNamesMale    []string `toml:"last_names_male"`
	LastNamesFemale  []string `toml:"last_names_female"`
	Patronymics      []string `toml:"patronymics"`
	EmailDomains     []string `toml:"email_domains"`
	StreetNames      []string `toml:"street_names"`
	StreetSuffixes   []string `toml:"street_suffixes"`
	Cities           []string `toml:"cities"`
	Regions          []string `toml:"regions"`
}

// OverlayFile is the top-level --locale-file document: one Overlay
// per locale name ("en", "ru", ...).
type OverlayFile map[string]Overlay
