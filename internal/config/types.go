package config

// ThemeFile is the on-disk form of a theme: a base theme plus overrides.
type ThemeFile struct {
	Name    string              `yaml:"name,omitempty" toml:"name" validate:"omitempty,max=64"`
	Extends string              `yaml:"extends,omitempty" toml:"extends" validate:"omitempty,oneof=default light dark"`
	Palette map[string]SlotFile `yaml:"palette" toml:"palette" validate:"omitempty,dive,keys,oneof=primary secondary surface success warning danger info neutral,endkeys"`
	Spacing SpacingFile         `yaml:"spacing" toml:"spacing"`
	Borders BordersFile         `yaml:"borders" toml:"borders"`
}

// SlotFile overrides the colours of one palette slot. Each colour is either a
// single hex colour used in both modes or a "light,dark" pair.
type SlotFile struct {
	Base     string `yaml:"base,omitempty" toml:"base" validate:"omitempty,hexcolor_pair"`
	OnBase   string `yaml:"on_base,omitempty" toml:"on_base" validate:"omitempty,hexcolor_pair"`
	Muted    string `yaml:"muted,omitempty" toml:"muted" validate:"omitempty,hexcolor_pair"`
	Contrast string `yaml:"contrast,omitempty" toml:"contrast" validate:"omitempty,hexcolor_pair"`
}

// SpacingFile replaces whole spacing scales.
type SpacingFile struct {
	Padding []int `yaml:"padding" toml:"padding" validate:"omitempty,len=9,dive,min=0,max=20"`
	Margin  []int `yaml:"margin" toml:"margin" validate:"omitempty,len=9,dive,min=0,max=20"`
}

// BordersFile selects the frame border drawn around cards.
type BordersFile struct {
	Default string `yaml:"default" toml:"default" validate:"omitempty,oneof=normal rounded thick double none"`
}

// CatalogFile describes a set of widget variants to render.
type CatalogFile struct {
	Version  string        `yaml:"version" toml:"version" validate:"required,semver"`
	Name     string        `yaml:"name" toml:"name" validate:"required"`
	Theme    ThemeFile     `yaml:"theme" toml:"theme"`
	Variants []VariantFile `yaml:"variants" toml:"variants" validate:"required,min=1,dive"`
}

// VariantFile is one widget configuration within a catalog.
type VariantFile struct {
	ID    string     `yaml:"id" toml:"id" validate:"required,variant_id"`
	Kind  string     `yaml:"kind" toml:"kind" validate:"required,oneof=button badge accordion chips select range pagination autocomplete stepper"`
	Label string     `yaml:"label" toml:"label"`
	Theme *ThemeFile `yaml:"theme" toml:"theme"`
	Props Props      `yaml:"props" toml:"props"`
}

// Props seeds the initial state of a variant's widget. Which fields apply
// depends on the kind.
type Props struct {
	Items      []Item   `yaml:"items" toml:"items" validate:"omitempty,dive"`
	Open       []string `yaml:"open" toml:"open"`
	Multi      bool     `yaml:"multi" toml:"multi"`
	Value      string   `yaml:"value" toml:"value"`
	Controlled bool     `yaml:"controlled" toml:"controlled"`
	Min        *int     `yaml:"min" toml:"min"`
	Max        *int     `yaml:"max" toml:"max"`
	Low        *int     `yaml:"low" toml:"low"`
	High       *int     `yaml:"high" toml:"high"`
	Current    int      `yaml:"current" toml:"current"`
	Total      int      `yaml:"total" toml:"total" validate:"min=0"`
	Query      string   `yaml:"query" toml:"query"`
	Limit      int      `yaml:"limit" toml:"limit" validate:"min=0"`
	Step       int      `yaml:"step" toml:"step" validate:"min=0"`
	Tone       string   `yaml:"tone" toml:"tone" validate:"omitempty,oneof=default primary secondary success warning error info"`
	Disabled   bool     `yaml:"disabled" toml:"disabled"`
}

// Item is a generic labelled entry: an accordion section, a chip, a select
// option or a stepper step.
type Item struct {
	ID    string `yaml:"id" toml:"id" validate:"required"`
	Label string `yaml:"label" toml:"label"`
	Body  string `yaml:"body" toml:"body"`
}
