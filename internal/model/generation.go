// Package model defines the core domain models used throughout the application.
package model

import (
	"fmt"

	"github.com/Veraticus/passgen/internal/common"
	"github.com/go-playground/validator/v10"
)

// Length limits accepted by the generator.
const (
	MinLength     = 1
	MaxLength     = 128
	DefaultLength = 16
)

// GenerationConfig describes the password the generator should produce.
// Letters are part of every pool unless NoLetters is set.
type GenerationConfig struct {
	Length           int `validate:"min=1,max=128"`
	IncludeSymbols   bool
	IncludeNumbers   bool
	ExcludeAmbiguous bool
	NoLetters        bool
}

var validate = validator.New()

// Validate checks the config's field ranges. It does not check that the
// resulting character pool is non-empty; the generator does that.
func (c GenerationConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: length must be between %d and %d, got %d: %v",
			common.ErrInvalidConfig, MinLength, MaxLength, c.Length, err)
	}
	return nil
}

// Estimate is a strength estimate derived from a config before generating.
type Estimate struct {
	Rating   StrengthRating
	Entropy  float64
	PoolSize int
}
