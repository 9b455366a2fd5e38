// Package strength estimates password strength from character classes and length.
//
// The estimate is a coarse proxy: entropy is length * log2(alphabet size),
// where the alphabet size is inferred from which character classes appear.
package strength

import (
	"math"
	"regexp"
	"unicode/utf8"

	"github.com/Veraticus/passgen/internal/model"
)

// Entropy thresholds in bits.
const (
	MediumThreshold = 50.0
	StrongThreshold = 75.0
)

// Alphabet sizes credited per detected class.
const (
	letterAlphabet = 26
	digitAlphabet  = 10
	symbolAlphabet = 32
)

var (
	lowerPattern  = regexp.MustCompile(`[a-z]`)
	upperPattern  = regexp.MustCompile(`[A-Z]`)
	digitPattern  = regexp.MustCompile(`[0-9]`)
	symbolPattern = regexp.MustCompile(`[^A-Za-z0-9]`)
)

// Rate maps entropy bits to a rating. Both the pre-generation estimate and
// password analysis go through here.
func Rate(bits float64) model.StrengthRating {
	switch {
	case bits < MediumThreshold:
		return model.RatingWeak
	case bits < StrongThreshold:
		return model.RatingMedium
	default:
		return model.RatingStrong
	}
}

// Entropy returns length * log2(alphabetSize), or 0 for an empty alphabet.
func Entropy(length, alphabetSize int) float64 {
	if alphabetSize <= 0 || length <= 0 {
		return 0
	}
	return float64(length) * math.Log2(float64(alphabetSize))
}

// Analyze inspects a password it did not necessarily generate.
func Analyze(password string) model.AnalysisReport {
	report := model.AnalysisReport{
		Length:     utf8.RuneCountInString(password),
		HasLower:   lowerPattern.MatchString(password),
		HasUpper:   upperPattern.MatchString(password),
		HasDigits:  digitPattern.MatchString(password),
		HasSymbols: symbolPattern.MatchString(password),
	}

	report.AlphabetSize = alphabetSize(report)
	report.Entropy = Entropy(report.Length, report.AlphabetSize)
	report.Rating = Rate(report.Entropy)
	report.Missing = missingClasses(report)
	report.Recommendation = Recommend(report.Rating, report.Missing)

	return report
}

func alphabetSize(r model.AnalysisReport) int {
	size := 0
	if r.HasLower || r.HasUpper {
		size += letterAlphabet
	}
	if r.HasLower && r.HasUpper {
		size += letterAlphabet
	}
	if r.HasDigits {
		size += digitAlphabet
	}
	if r.HasSymbols {
		size += symbolAlphabet
	}
	return size
}

func missingClasses(r model.AnalysisReport) []model.CharClass {
	var missing []model.CharClass
	if !r.HasLower {
		missing = append(missing, model.ClassLower)
	}
	if !r.HasUpper {
		missing = append(missing, model.ClassUpper)
	}
	if !r.HasDigits {
		missing = append(missing, model.ClassDigits)
	}
	if !r.HasSymbols {
		missing = append(missing, model.ClassSymbols)
	}
	return missing
}
