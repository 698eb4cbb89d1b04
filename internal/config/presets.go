package config

import "sort"

// Preset is a named starting value.
type Preset struct {
	Name  string  `yaml:"name" json:"name"`
	Start float64 `yaml:"start" json:"start"`
	Note  string  `yaml:"note" json:"note"`
}

var Presets = map[string]Preset{
	"zero":     {Name: "zero", Start: 0, Note: "cos(0) = 1, then straight into the basin"},
	"one":      {Name: "one", Start: 1, Note: "one radian"},
	"negative": {Name: "negative", Start: -5, Note: "cosine is even, same orbit as 5"},
	"large":    {Name: "large", Start: 100, Note: "first step folds it back into [-1, 1]"},
	"huge":     {Name: "huge", Start: 1e8, Note: "exercises argument reduction"},
	"dottie":   {Name: "dottie", Start: 0.7390851332151607, Note: "already at the fixed point"},
}

func GetPreset(name string) *Preset {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return &p
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
