// Package generator provides cryptographically secure password generation.
package generator

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/Veraticus/passgen/internal/common"
	"github.com/Veraticus/passgen/internal/model"
	"github.com/Veraticus/passgen/internal/strength"
)

// Generator draws passwords from a random source.
type Generator struct {
	random io.Reader
}

// New creates a generator backed by crypto/rand.
func New() *Generator {
	return &Generator{random: rand.Reader}
}

// NewWithReader creates a generator that reads randomness from r.
// Only tests should pass anything other than crypto/rand.Reader.
func NewWithReader(r io.Reader) *Generator {
	if r == nil {
		panic("random reader cannot be nil")
	}
	return &Generator{random: r}
}

// Generate creates a password using crypto/rand.
func Generate(cfg model.GenerationConfig) (string, error) {
	return New().Generate(cfg)
}

// Generate creates a password of exactly cfg.Length characters.
//
// When numbers or symbols are requested but the draw produced none, a
// character is overwritten with one from the missing class. Patches never
// remove the only digit or symbol, so both guarantees hold whenever the
// password is long enough to carry them. A one-character password with both
// classes requested ends up with a symbol.
func (g *Generator) Generate(cfg model.GenerationConfig) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	pool, err := Pool(cfg)
	if err != nil {
		return "", err
	}

	buf := make([]byte, cfg.Length)
	for i := range buf {
		c, err := g.pick(pool)
		if err != nil {
			return "", err
		}
		buf[i] = c
	}

	var required []string
	if cfg.IncludeNumbers {
		required = append(required, subset(pool, Digits))
	}
	if cfg.IncludeSymbols {
		required = append(required, subset(pool, Punctuation))
	}

	if err := g.ensureCoverage(buf, required); err != nil {
		return "", err
	}

	return string(buf), nil
}

// GenerateN creates count independent passwords.
func (g *Generator) GenerateN(cfg model.GenerationConfig, count int) ([]string, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: count must be at least 1, got %d", common.ErrInvalidConfig, count)
	}

	passwords := make([]string, 0, count)
	for i := 0; i < count; i++ {
		pw, err := g.Generate(cfg)
		if err != nil {
			return nil, err
		}
		passwords = append(passwords, pw)
	}
	return passwords, nil
}

// EstimateStrength rates cfg before anything is generated, from the pool
// size and the length.
func EstimateStrength(cfg model.GenerationConfig) (model.Estimate, error) {
	if err := cfg.Validate(); err != nil {
		return model.Estimate{}, err
	}
	pool, err := Pool(cfg)
	if err != nil {
		return model.Estimate{}, err
	}

	bits := strength.Entropy(cfg.Length, len(pool))
	return model.Estimate{
		PoolSize: len(pool),
		Entropy:  bits,
		Rating:   strength.Rate(bits),
	}, nil
}

func (g *Generator) ensureCoverage(buf []byte, required []string) error {
	for i, chars := range required {
		if chars == "" || containsAny(buf, chars) {
			continue
		}

		others := make([]string, 0, len(required)-1)
		others = append(others, required[:i]...)
		others = append(others, required[i+1:]...)

		c, err := g.pick(chars)
		if err != nil {
			return err
		}
		buf[patchPosition(buf, others)] = c
	}
	return nil
}

// patchPosition returns the last index that can be overwritten without
// removing the only member of another required class. If every position is
// such a member, the last index is returned.
func patchPosition(buf []byte, others []string) int {
	for i := len(buf) - 1; i >= 0; i-- {
		if !soleCarrier(buf, i, others) {
			return i
		}
	}
	return len(buf) - 1
}

func soleCarrier(buf []byte, i int, others []string) bool {
	for _, chars := range others {
		if strings.IndexByte(chars, buf[i]) < 0 {
			continue
		}
		if countAny(buf, chars) == 1 {
			return true
		}
	}
	return false
}

func (g *Generator) pick(chars string) (byte, error) {
	n, err := rand.Int(g.random, big.NewInt(int64(len(chars))))
	if err != nil {
		return 0, fmt.Errorf("failed to read random source: %w", err)
	}
	return chars[n.Int64()], nil
}

func containsAny(buf []byte, chars string) bool {
	return strings.ContainsAny(string(buf), chars)
}

func countAny(buf []byte, chars string) int {
	n := 0
	for _, c := range buf {
		if strings.IndexByte(chars, c) >= 0 {
			n++
		}
	}
	return n
}
