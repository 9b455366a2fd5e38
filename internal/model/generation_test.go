package model

import (
	"errors"
	"testing"

	"github.com/Veraticus/passgen/internal/common"
	"github.com/stretchr/testify/assert"
)

func TestGenerationConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  GenerationConfig
		wantErr bool
	}{
		{name: "minimum length", config: GenerationConfig{Length: 1}},
		{name: "maximum length", config: GenerationConfig{Length: 128, IncludeSymbols: true}},
		{name: "default length", config: GenerationConfig{Length: DefaultLength, IncludeNumbers: true}},
		{name: "zero length", config: GenerationConfig{Length: 0}, wantErr: true},
		{name: "too long", config: GenerationConfig{Length: 129}, wantErr: true},
		{name: "negative", config: GenerationConfig{Length: -4}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, common.ErrInvalidConfig))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAnalysisReport_Present(t *testing.T) {
	report := AnalysisReport{HasLower: true, HasDigits: true}
	assert.Equal(t, []CharClass{ClassLower, ClassDigits}, report.Present())
	assert.Empty(t, AnalysisReport{}.Present())
	assert.Equal(t, "MEDIUM", RatingMedium.String())
}
