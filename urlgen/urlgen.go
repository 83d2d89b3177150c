// Package urlgen generates random slugs for the slug shortener service.
package urlgen

import (
	"math/rand/v2"
	"strings"
)

// Charset defines the character set used for generating slugs.
const Charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// DefaultLength defines the length of generated slugs when none is configured.
const DefaultLength = 6

// Source supplies uniformly distributed integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// DefaultSource returns a Source backed by the process-wide math/rand/v2
// generator. It is safe for concurrent use.
func DefaultSource() Source {
	return globalSource{}
}

// Generator produces fixed-length slugs. A Generator is safe for concurrent
// use only if its Source is.
type Generator struct {
	src    Source
	length int
}

// New returns a Generator drawing from src. A nil src selects DefaultSource,
// a non-positive length selects DefaultLength.
func New(src Source, length int) *Generator {
	if src == nil {
		src = DefaultSource()
	}
	if length <= 0 {
		length = DefaultLength
	}
	return &Generator{src: src, length: length}
}

// Length returns the number of characters in every generated slug.
func (g *Generator) Length() int {
	return g.length
}

// Generate creates a new slug. Characters are drawn independently and with
// replacement, so the result is not guaranteed to be unique.
func (g *Generator) Generate() string {
	var sb strings.Builder
	sb.Grow(g.length)

	for i := 0; i < g.length; i++ {
		sb.WriteByte(Charset[g.src.IntN(len(Charset))])
	}
	return sb.String()
}

// Generate creates a slug of the given length from the default source.
func Generate(length int) string {
	return New(nil, length).Generate()
}

// Valid reports whether slug has the given length and only uses Charset.
func Valid(slug string, length int) bool {
	if len(slug) != length {
		return false
	}
	for i := 0; i < len(slug); i++ {
		if strings.IndexByte(Charset, slug[i]) < 0 {
			return false
		}
	}
	return true
}
