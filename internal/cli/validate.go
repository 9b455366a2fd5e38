package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Veraticus/passgen/internal/common"
)

// ParseYesNo interprets a yes/no answer. Empty input selects def.
// "1", "y" and "yes" mean yes; "2", "n" and "no" mean no.
func ParseYesNo(input string, def bool) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "":
		return def, nil
	case "1", "y", "yes":
		return true, nil
	case "2", "n", "no":
		return false, nil
	default:
		return false, fmt.Errorf("%w: answer 1 (yes) or 2 (no)", common.ErrInvalidInput)
	}
}

// ParseIntInRange parses a whole number between minVal and maxVal inclusive.
// Empty input selects def.
func ParseIntInRange(input string, minVal, maxVal, def int) (int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return def, nil
	}

	n, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", common.ErrInvalidInput, input)
	}
	if n < minVal || n > maxVal {
		return 0, fmt.Errorf("%w: choose a number between %d and %d", common.ErrInvalidInput, minVal, maxVal)
	}
	return n, nil
}
