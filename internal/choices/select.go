package choices

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Jzineldin/tale-forge-choices/internal/elements"
	"github.com/Jzineldin/tale-forge-choices/internal/templates"
)

// ChoiceCount is the contract: every selection returns exactly this many
// strings.
const ChoiceCount = 3

// FallbackPool is the guaranteed-safe generic pool. Entries are mutually
// distinct with no significant-token overlap, so the final backfill can
// never deadlock.
var FallbackPool = []string{
	"Look around carefully",
	"Continue forward cautiously",
	"Wait and observe",
	"Listen for any sound",
	"Take a quiet step closer",
}

// Selector runs the full pipeline stage: candidate generation, scoring,
// filtering, tiered fallback, and final dedup.
type Selector struct {
	gen *templates.Generator
}

func NewSelector(gen *templates.Generator) *Selector {
	return &Selector{gen: gen}
}

// Select derives elements and signals from text, generates a candidate
// pool, and returns exactly three valid, mutually-distinct choices. It
// never returns fewer than three and never panics, whatever the input.
func (s *Selector) Select(text, genre, tone string) []string {
	els := elements.Extract(text)

	used := make(map[string]bool)
	count := 6 + s.gen.Roll(3)
	candidates := make([]templates.Candidate, 0, count)
	for i := 0; i < count; i++ {
		candidates = append(candidates, s.gen.Next(els, genre, tone, used))
	}

	return SelectFrom(text, genre, els, candidates)
}

// SelectFrom scores and filters an existing candidate pool against the
// source text, topping up through the fallback tiers until exactly three
// choices remain.
func SelectFrom(text, genre string, els elements.Elements, candidates []templates.Candidate) []string {
	// Nothing extracted means nothing to ground a candidate in; degrade
	// straight to the guaranteed-safe pool instead of showing template
	// sentences stuffed with generic vocabulary.
	if els.Empty() {
		return dedupFinal(topUp(nil, els), els)
	}

	sig := deriveSignals(text, els.Locations)

	scored := make([]templates.Candidate, len(candidates))
	copy(scored, candidates)
	for i := range scored {
		scored[i].Score = score(scored[i].Text, sig)
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	var accepted []string
	for _, c := range scored {
		if len(accepted) == ChoiceCount {
			break
		}
		if rejected, _ := Reject(c.Text, els, genre); rejected {
			continue
		}
		if !temporallyAligned(c.Text, sig) {
			continue
		}
		if clashes(c.Text, accepted) {
			continue
		}
		accepted = append(accepted, c.Text)
	}

	accepted = topUp(accepted, els)
	return dedupFinal(accepted, els)
}

// topUp fills gaps through the tiered fallback: unused extracted elements
// first, then the latest location, then the generic pool.
func topUp(accepted []string, els elements.Elements) []string {
	if len(accepted) >= ChoiceCount {
		return accepted
	}

	// Tier 1: extracted elements not yet referenced by an accepted choice.
	for _, obj := range els.Objects {
		accepted = tryAdd(accepted, fmt.Sprintf("Explore the %s", obj))
	}
	for _, loc := range els.Locations {
		accepted = tryAdd(accepted, fmt.Sprintf("Explore the %s", loc))
	}
	for _, ch := range els.Characters {
		accepted = tryAdd(accepted, fmt.Sprintf("Approach %s carefully", ch))
	}
	if len(accepted) >= ChoiceCount {
		return accepted
	}

	// Tier 2: lean on any extracted location.
	for _, loc := range els.Locations {
		accepted = tryAdd(accepted, fmt.Sprintf("Investigate the %s", loc))
	}
	if len(accepted) >= ChoiceCount {
		return accepted
	}

	// Tier 3: the guaranteed generic pool.
	for _, generic := range FallbackPool {
		accepted = tryAdd(accepted, generic)
	}
	return accepted
}

func tryAdd(accepted []string, choice string) []string {
	if len(accepted) >= ChoiceCount {
		return accepted
	}
	// Fallback strings are built around extracted elements, and elements
	// can be arbitrarily long words. They obey the same length bounds as
	// everything else; lower tiers backfill what gets skipped here.
	if n := len(choice); n <= minChoiceLen || n >= maxChoiceLen {
		return accepted
	}
	if clashes(choice, accepted) {
		return accepted
	}
	return append(accepted, choice)
}

// dedupFinal drops character-identical duplicates and backfills from the
// generic pool. By construction duplicates should already be gone; this is
// the contract's last line of defence.
func dedupFinal(accepted []string, els elements.Elements) []string {
	seen := make(map[string]bool)
	out := make([]string, 0, ChoiceCount)
	for _, c := range accepted {
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
		if len(out) == ChoiceCount {
			break
		}
	}
	for _, generic := range FallbackPool {
		if len(out) == ChoiceCount {
			break
		}
		if !seen[generic] && !clashes(generic, out) {
			seen[generic] = true
			out = append(out, generic)
		}
	}
	return out
}

// clashes reports whether choice duplicates or over-overlaps (more than
// two shared significant tokens) any already-accepted choice.
func clashes(choice string, accepted []string) bool {
	for _, have := range accepted {
		if strings.EqualFold(have, choice) {
			return true
		}
		if sharedSignificant(have, choice) > 2 {
			return true
		}
	}
	return false
}

// BalancedSet is the set-level sanity check used by the integration layer
// on server-supplied choices: bounded pairwise overlap plus structural
// diversity (a character-oriented, an object-oriented, and a
// location-or-generic-action choice must all be present where the passage
// makes that possible). Failure triggers full regeneration rather than
// incremental patching.
func BalancedSet(set []string, els elements.Elements) bool {
	for i := 0; i < len(set); i++ {
		for j := i + 1; j < len(set); j++ {
			if strings.EqualFold(set[i], set[j]) {
				return false
			}
			if sharedSignificant(set[i], set[j]) > 2 {
				return false
			}
		}
	}

	refsAny := func(choice string, list []string) bool {
		for _, el := range list {
			for _, w := range tokenRe.FindAllString(strings.ToLower(choice), -1) {
				if w == strings.ToLower(el) {
					return true
				}
			}
		}
		return false
	}

	charOK := len(els.Characters) == 0
	objOK := len(els.Objects) == 0
	locOrGenericOK := false
	for _, c := range set {
		if refsAny(c, els.Characters) {
			charOK = true
		}
		if refsAny(c, els.Objects) {
			objOK = true
		}
		if refsAny(c, els.Locations) || !anchoredTo(c, els) {
			locOrGenericOK = true
		}
	}
	return charOK && objOK && locOrGenericOK
}
