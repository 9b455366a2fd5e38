package generator

import (
	"fmt"
	"strings"

	"github.com/Veraticus/passgen/internal/common"
	"github.com/Veraticus/passgen/internal/model"
)

// Character sets used to assemble a pool.
const (
	Letters     = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits      = "0123456789"
	Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
	Ambiguous   = "il1LoO0"
)

// Pool assembles the ordered character pool for cfg. It fails with
// common.ErrInvalidConfig when nothing is left to draw from.
func Pool(cfg model.GenerationConfig) (string, error) {
	var sb strings.Builder
	if !cfg.NoLetters {
		sb.WriteString(Letters)
	}
	if cfg.IncludeNumbers {
		sb.WriteString(Digits)
	}
	if cfg.IncludeSymbols {
		sb.WriteString(Punctuation)
	}

	pool := sb.String()
	if cfg.ExcludeAmbiguous {
		pool = withoutAmbiguous(pool)
	}

	if pool == "" {
		return "", fmt.Errorf("%w: character pool is empty", common.ErrInvalidConfig)
	}
	return pool, nil
}

func withoutAmbiguous(chars string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(Ambiguous, r) {
			return -1
		}
		return r
	}, chars)
}

// subset keeps the characters of pool that belong to class.
func subset(pool, class string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(class, r) {
			return r
		}
		return -1
	}, pool)
}
