package id

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/google/uuid"
)

// Generator hands out record IDs (UUID v4) drawn from a byte stream. Feeding it
// a seeded stream makes the IDs reproducible.
type Generator struct {
	r io.Reader
}

// NewGenerator returns a Generator reading from r, or from crypto/rand when r is nil.
func NewGenerator(r io.Reader) *Generator {
	if r == nil {
		r = rand.Reader
	}
	return &Generator{r: r}
}

// Next returns a fresh record ID like "0b6f7c1e-3c52-4a55-9a3e-2f1d2b6f8f11".
func (g *Generator) Next() (string, error) {
	u, err := uuid.NewRandomFromReader(g.r)
	if err != nil {
		return "", fmt.Errorf("generating record id: %w", err)
	}
	return u.String(), nil
}

// Valid reports whether s is a record ID in canonical lowercase form.
func Valid(s string) bool {
	u, err := uuid.Parse(s)
	if err != nil {
		return false
	}
	return u.String() == s
}
