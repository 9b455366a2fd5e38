package strength

import (
	"strings"

	"github.com/Veraticus/passgen/internal/model"
)

// Recommend returns one line of advice for the given rating.
func Recommend(rating model.StrengthRating, missing []model.CharClass) string {
	switch rating {
	case model.RatingStrong:
		return "Strong password. Store it in a password manager."
	case model.RatingMedium:
		if len(missing) > 0 {
			return "Decent, but add " + joinClasses(missing) + " or a few more characters."
		}
		return "Decent. A few more characters would make it strong."
	default:
		if len(missing) > 0 {
			return "Too weak: use at least 12 characters and add " + joinClasses(missing) + "."
		}
		return "Too weak: use a longer password."
	}
}

func joinClasses(classes []model.CharClass) string {
	names := make([]string, len(classes))
	for i, c := range classes {
		names[i] = string(c)
	}
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}
