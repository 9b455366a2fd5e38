package cli

import (
	"strings"
	"testing"

	"github.com/Veraticus/passgen/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestFormatReport(t *testing.T) {
	report := model.AnalysisReport{
		Length:         8,
		HasLower:       true,
		AlphabetSize:   26,
		Entropy:        37.6,
		Rating:         model.RatingWeak,
		Missing:        []model.CharClass{model.ClassUpper, model.ClassDigits, model.ClassSymbols},
		Recommendation: "Too weak: use a longer password.",
	}

	out := FormatReport(report)

	assert.Contains(t, out, "Password Analysis")
	assert.Contains(t, out, "lowercase letters")
	assert.Contains(t, out, "uppercase letters, numbers, symbols")
	assert.Contains(t, out, "37.6 bits")
	assert.Contains(t, out, "WEAK")
	assert.Contains(t, out, "Too weak")
}

func TestFormatReport_NothingMissing(t *testing.T) {
	out := FormatReport(model.AnalysisReport{
		HasLower: true, HasUpper: true, HasDigits: true, HasSymbols: true,
		Rating: model.RatingStrong,
	})
	assert.Contains(t, out, "none")
	assert.Contains(t, out, "STRONG")
}

func TestFormatEstimate(t *testing.T) {
	out := FormatEstimate(model.Estimate{Rating: model.RatingMedium, Entropy: 69.4, PoolSize: 55})
	assert.Contains(t, out, "MEDIUM")
	assert.Contains(t, out, "69.4 bits from 55 characters")
}

func TestFormatPasswords(t *testing.T) {
	assert.Equal(t, "abc", strings.TrimSpace(stripStyles(FormatPasswords([]string{"abc"}))))

	out := FormatPasswords([]string{"one", "two", "three"})
	assert.Contains(t, out, "1.")
	assert.Contains(t, out, "3.")
	assert.Equal(t, 3, strings.Count(out, "\n")+1)
}

// stripStyles drops ANSI escape sequences so assertions do not depend on
// the terminal's color profile.
func stripStyles(s string) string {
	var sb strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'):
			inEscape = false
		case !inEscape:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
