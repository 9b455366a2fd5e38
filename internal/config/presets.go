package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Veraticus/passgen/internal/common"
	"github.com/Veraticus/passgen/internal/model"
)

var presets = map[string]model.GenerationConfig{
	"wifi":   {Length: 16, IncludeSymbols: true, IncludeNumbers: true, ExcludeAmbiguous: true},
	"strong": {Length: 24, IncludeSymbols: true, IncludeNumbers: true},
	"pin":    {Length: 6, IncludeNumbers: true, NoLetters: true},
	"basic":  {Length: 12, IncludeNumbers: true, ExcludeAmbiguous: true},
	"max":    {Length: 32, IncludeSymbols: true, IncludeNumbers: true},
}

// LookupPreset returns the config registered under name.
func LookupPreset(name string) (model.GenerationConfig, error) {
	cfg, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return model.GenerationConfig{}, fmt.Errorf("%w: %q (choose from %s)",
			common.ErrInvalidPreset, name, strings.Join(PresetNames(), ", "))
	}
	return cfg, nil
}

// PresetNames returns the preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
