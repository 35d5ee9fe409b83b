// Package templates turns extracted story elements into candidate choice
// sentences. It is purely generative: it guarantees a completed sentence
// for every call but performs no validation or scoring — that separation
// lets the selector discard weak candidates and ask for fresh ones without
// re-deriving the story elements.
package templates

import (
	"math/rand"
	"strings"

	"github.com/Jzineldin/tale-forge-choices/internal/elements"
)

// Candidate is one generated option before selection.
type Candidate struct {
	Text        string
	ElementUsed string
	Score       int
}

// Generator produces candidates from genre/tone template pools. The random
// source is injected so tests can pin a seed; production wiring seeds from
// the clock.
type Generator struct {
	rng *rand.Rand
}

// New returns a generator seeded with the given value.
func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Roll returns a pseudo-random int in [0, n). Exposed so callers sharing
// the generator's seed (candidate counts, fallback picks) stay
// deterministic under a pinned seed.
func (g *Generator) Roll(n int) int {
	if n <= 1 {
		return 0
	}
	return g.rng.Intn(n)
}

// Next generates one candidate for the given elements and genre/tone.
// Elements already present in used are skipped to bias toward diversity;
// whichever element gets substituted is recorded and marked used. When a
// passage's own elements run out, the generic vocabulary completes the
// template, so Next never fails.
func (g *Generator) Next(els elements.Elements, genre, tone string, used map[string]bool) Candidate {
	pool := poolFor(genre, tone)
	tmpl := pool[g.rng.Intn(len(pool))]

	c := Candidate{Text: tmpl}
	c.Text = g.fill(c.Text, "[character]", els.Characters, genericCharacters, used, &c.ElementUsed)
	c.Text = g.fill(c.Text, "[object]", els.Objects, genericObjects, used, &c.ElementUsed)
	c.Text = g.fill(c.Text, "[location]", els.Locations, genericLocations, used, &c.ElementUsed)
	return c
}

// fill substitutes one placeholder, preferring the first unused extracted
// element, then the first unused generic, then any generic.
func (g *Generator) fill(text, placeholder string, extracted, generic []string, used map[string]bool, elementUsed *string) string {
	if !strings.Contains(text, placeholder) {
		return text
	}

	pick := firstUnused(extracted, used)
	if pick == "" {
		pick = firstUnused(generic, used)
	}
	if pick == "" {
		pick = generic[g.rng.Intn(len(generic))]
	}

	used[pick] = true
	if *elementUsed == "" {
		*elementUsed = pick
	}
	return strings.Replace(text, placeholder, pick, 1)
}

func firstUnused(list []string, used map[string]bool) string {
	for _, el := range list {
		if !used[el] {
			return el
		}
	}
	return ""
}
