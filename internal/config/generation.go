package config

import (
	"fmt"
	"strings"

	"github.com/Veraticus/passgen/internal/common"
	"github.com/Veraticus/passgen/internal/model"
	"github.com/spf13/viper"
)

// Viper keys for batch generation settings.
const (
	KeyLength           = "length"
	KeyCount            = "count"
	KeySymbols          = "symbols"
	KeyNumbers          = "numbers"
	KeyExcludeAmbiguous = "exclude_ambiguous"
	KeyNoLetters        = "no_letters"
)

// BatchOptions is everything batch mode needs to generate and save passwords.
type BatchOptions struct {
	SavePath   string
	Preset     string
	Generation model.GenerationConfig
	Count      int
}

// LoadBatchOptions reads batch settings from Viper (flags, config file or
// PASSGEN_ env vars). preset and savePath come from explicit flags only and
// are never taken from the environment or a config file. A preset replaces
// length and the class switches.
func LoadBatchOptions(preset, savePath string) (BatchOptions, error) {
	opts := BatchOptions{
		Generation: model.GenerationConfig{
			Length:           viper.GetInt(KeyLength),
			IncludeSymbols:   viper.GetBool(KeySymbols),
			IncludeNumbers:   viper.GetBool(KeyNumbers),
			ExcludeAmbiguous: viper.GetBool(KeyExcludeAmbiguous),
			NoLetters:        viper.GetBool(KeyNoLetters),
		},
		Count:  viper.GetInt(KeyCount),
		Preset: strings.TrimSpace(preset),
	}

	if savePath != "" {
		opts.SavePath = ExpandPath(savePath)
	}

	if opts.Preset != "" {
		cfg, err := LookupPreset(opts.Preset)
		if err != nil {
			return BatchOptions{}, err
		}
		opts.Generation = cfg
	}

	if opts.Count < 1 {
		return BatchOptions{}, fmt.Errorf("%w: count must be at least 1, got %d", common.ErrInvalidConfig, opts.Count)
	}

	if err := opts.Generation.Validate(); err != nil {
		return BatchOptions{}, err
	}

	return opts, nil
}
