package domain

import "strings"

// Suggestion is a single record returned by the search endpoint
type Suggestion struct {
	Name            string
	Formula         string
	ID              string
	MolecularWeight float64 // 0 when the endpoint does not report it
}

// Element is one entry of the static periodic table data
type Element struct {
	AtomicNumber   int      `yaml:"atomic_number"`
	Symbol         string   `yaml:"symbol"`
	Name           string   `yaml:"name"`
	Category       string   `yaml:"category"`
	AtomicMass     float64  `yaml:"atomic_mass"`
	Period         int      `yaml:"period"`
	Group          int      `yaml:"group"` // 0 for lanthanides and actinides
	Description    string   `yaml:"description,omitempty"`
	ElectronConfig string   `yaml:"electron_config,omitempty"`
	MeltingPoint   *float64 `yaml:"melting_point,omitempty"`
	BoilingPoint   *float64 `yaml:"boiling_point,omitempty"`
	Density        *float64 `yaml:"density,omitempty"`
	Discovered     string   `yaml:"discovered,omitempty"`
}

// IsLanthanide reports whether the element sits in the lanthanide row
func (e Element) IsLanthanide() bool {
	return e.AtomicNumber >= 57 && e.AtomicNumber <= 71
}

// IsActinide reports whether the element sits in the actinide row
func (e Element) IsActinide() bool {
	return e.AtomicNumber >= 89 && e.AtomicNumber <= 103
}

// Element categories used by the periodic table
const (
	CategoryAlkaliMetal         = "alkali-metal"
	CategoryAlkalineEarthMetal  = "alkaline-earth-metal"
	CategoryTransitionMetal     = "transition-metal"
	CategoryPostTransitionMetal = "post-transition-metal"
	CategoryMetalloid           = "metalloid"
	CategoryNonmetal            = "nonmetal"
	CategoryHalogen             = "halogen"
	CategoryNobleGas            = "noble-gas"
	CategoryLanthanide          = "lanthanide"
	CategoryActinide            = "actinide"
)

// FormatCategory turns a kebab-case category into display text,
// e.g. "alkali-metal" -> "Alkali Metal"
func FormatCategory(category string) string {
	if category == "" {
		return "Unknown"
	}
	words := strings.Split(category, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Theme is the persisted display preference
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Toggle returns the opposite theme
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// ParseTheme returns the theme for s, defaulting to light
func ParseTheme(s string) Theme {
	if Theme(strings.ToLower(strings.TrimSpace(s))) == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}
