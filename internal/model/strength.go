package model

// StrengthRating is the three-tier strength verdict.
type StrengthRating string

// Strength rating constants.
const (
	RatingWeak   StrengthRating = "WEAK"
	RatingMedium StrengthRating = "MEDIUM"
	RatingStrong StrengthRating = "STRONG"
)

func (r StrengthRating) String() string {
	return string(r)
}

// CharClass names a class of characters a password can contain.
type CharClass string

// Character classes, in reporting order.
const (
	ClassLower   CharClass = "lowercase letters"
	ClassUpper   CharClass = "uppercase letters"
	ClassDigits  CharClass = "numbers"
	ClassSymbols CharClass = "symbols"
)

// AnalysisReport is the result of analyzing an existing password.
type AnalysisReport struct {
	Rating         StrengthRating
	Recommendation string
	Missing        []CharClass
	Entropy        float64
	Length         int
	AlphabetSize   int
	HasLower       bool
	HasUpper       bool
	HasDigits      bool
	HasSymbols     bool
}

// Present lists the classes detected in the password.
func (r AnalysisReport) Present() []CharClass {
	var classes []CharClass
	if r.HasLower {
		classes = append(classes, ClassLower)
	}
	if r.HasUpper {
		classes = append(classes, ClassUpper)
	}
	if r.HasDigits {
		classes = append(classes, ClassDigits)
	}
	if r.HasSymbols {
		classes = append(classes, ClassSymbols)
	}
	return classes
}
