// Package choices filters, scores, and selects the final three "what
// happens next" options from generated candidates. The selector is total:
// tiered fallbacks guarantee three distinct valid strings for any input,
// including empty text.
package choices

import (
	"strings"
	"unicode"

	"github.com/Jzineldin/tale-forge-choices/internal/elements"
)

const (
	minChoiceLen = 10
	maxChoiceLen = 60
)

// Reject applies the validity predicate to a single choice. It returns
// true with a short machine-readable reason when the choice must not be
// shown to a reader.
func Reject(choice string, els elements.Elements, genre string) (bool, string) {
	text := strings.TrimSpace(choice)
	if n := len(text); n <= minChoiceLen || n >= maxChoiceLen {
		return true, "length"
	}

	words := strings.Fields(text)
	if len(words) == 1 {
		return true, "single-verb"
	}

	anchored := anchoredTo(text, els)

	// Bare generic action: short phrase opened by a generic verb with no
	// story element binding it ("follow path", "look around now").
	if len(words) <= 3 && genericVerbs[strings.ToLower(words[0])] && !anchored {
		return true, "generic-action"
	}

	for i, w := range words {
		lw := strings.ToLower(strings.Trim(w, ".,!?'\""))
		if forbiddenGeneric[lw] && !anchored && !isProperName(w) {
			return true, "unanchored-generic-term"
		}
		if i > 0 && connectives[lw] {
			prev := strings.ToLower(strings.Trim(words[i-1], ".,!?'\""))
			if connectives[prev] && !articleNounPair(prev, lw) {
				return true, "nonsensical-adjacency"
			}
		}
	}

	last := strings.Trim(words[len(words)-1], ".,!?'\"")
	if connectives[strings.ToLower(last)] && !isProperName(last) {
		return true, "dangling-ending"
	}

	if strings.HasPrefix(genre, "fantasy") {
		lower := strings.ToLower(text)
		for _, trope := range fantasyTropes {
			if strings.Contains(lower, trope) {
				return true, "trope"
			}
		}
	}

	return false, ""
}

// anchoredTo reports whether at least one word of the choice appears in
// the extracted-elements vocabulary.
func anchoredTo(choice string, els elements.Elements) bool {
	for _, w := range tokenRe.FindAllString(choice, -1) {
		if els.Has(w) {
			return true
		}
	}
	return false
}

// articleNounPair permits the common legal adjacency "to the", "into the",
// "with a" — a preposition followed by an article reads fine; two
// prepositions or two articles do not.
func articleNounPair(prev, cur string) bool {
	isArticle := func(w string) bool { return w == "the" || w == "a" || w == "an" }
	return !isArticle(prev) && isArticle(cur)
}

func isProperName(w string) bool {
	r := []rune(w)
	return len(r) > 0 && unicode.IsUpper(r[0])
}

// NeedsRepair is the lighter per-choice check the integration layer runs
// on server-supplied choices: obviously broken surface forms only, not the
// full contextual predicate.
func NeedsRepair(choice string) bool {
	text := strings.TrimSpace(choice)
	if len(text) <= minChoiceLen {
		return true
	}

	words := strings.Fields(text)
	if len(words) == 1 {
		return true
	}
	if len(words) <= 2 && genericVerbs[strings.ToLower(words[0])] {
		return true
	}
	for i := 1; i < len(words); i++ {
		prev := strings.ToLower(strings.Trim(words[i-1], ".,!?'\""))
		cur := strings.ToLower(strings.Trim(words[i], ".,!?'\""))
		if connectives[prev] && connectives[cur] && !articleNounPair(prev, cur) {
			return true
		}
	}
	return false
}
