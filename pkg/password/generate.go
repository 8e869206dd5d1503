package password

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"strings"
)

// Generator draws passwords from a cryptographically secure source.
type Generator struct {
	rand io.Reader
}

// NewGenerator returns a Generator reading entropy from r. A nil reader
// selects crypto/rand.
func NewGenerator(r io.Reader) *Generator {
	if r == nil {
		r = rand.Reader
	}
	return &Generator{rand: r}
}

var defaultGenerator = NewGenerator(nil)

// Generate returns a password built with the default generator.
func Generate(p Policy) (string, error) {
	return defaultGenerator.Generate(p)
}

// GenerateN returns n passwords built with the default generator.
func GenerateN(p Policy, n int) ([]string, error) {
	return defaultGenerator.GenerateN(p, n)
}

// Generate returns a password of exactly p.Length characters, each drawn
// independently and uniformly from the policy alphabet. There is no
// guarantee that every enabled class appears in the result.
func (g *Generator) Generate(p Policy) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}

	alphabet := p.Alphabet()
	size := big.NewInt(int64(len(alphabet)))

	var sb strings.Builder
	sb.Grow(p.Length)

	for i := 0; i < p.Length; i++ {
		n, err := rand.Int(g.rand, size)
		if err != nil {
			return "", fmt.Errorf("failed to read random data: %w", err)
		}
		sb.WriteByte(alphabet[n.Int64()])
	}

	return sb.String(), nil
}

// GenerateN returns n passwords generated from the same policy.
func (g *Generator) GenerateN(p Policy, n int) ([]string, error) {
	if n < 1 {
		n = 1
	}

	passwords := make([]string, 0, n)
	for i := 0; i < n; i++ {
		pw, err := g.Generate(p)
		if err != nil {
			return nil, err
		}
		passwords = append(passwords, pw)
	}

	return passwords, nil
}
