// Package elements extracts character, object, and location vocabulary
// from raw narrative text using lexical heuristics. It is the leaf of the
// choice pipeline: pure, deterministic, and total — malformed or empty
// input yields empty element sets, never an error.
package elements

import (
	"regexp"
	"strings"
)

// maxPerKind bounds each element list. Passages mention far more nouns
// than three choices can ever reference.
const maxPerKind = 5

// Elements is the extracted vocabulary of a single passage. Construct via
// Extract; treat as immutable once produced.
type Elements struct {
	Characters []string
	Objects    []string
	Locations  []string
	// All is the insertion-ordered union of the three lists, used for
	// membership tests during choice anchoring.
	All []string
}

// Has reports whether word matches any extracted element,
// case-insensitively.
func (e Elements) Has(word string) bool {
	w := strings.ToLower(word)
	for _, el := range e.All {
		if strings.ToLower(el) == w {
			return true
		}
	}
	return false
}

// Empty reports whether nothing at all was extracted.
func (e Elements) Empty() bool {
	return len(e.All) == 0
}

var properNounRe = regexp.MustCompile(`\b[A-Z][a-z]{2,}\b`)
var wordRe = regexp.MustCompile(`[A-Za-z']+`)

// Extract scans text and returns the story elements it mentions.
// Deterministic for a given input and vocabulary tables.
func Extract(text string) Elements {
	var e Elements
	if strings.TrimSpace(text) == "" {
		return e
	}

	e.Characters = extractCharacters(text)

	words := wordRe.FindAllString(text, -1)
	e.Objects = extractObjects(words)
	e.Locations = extractLocations(words)

	seen := make(map[string]bool)
	for _, list := range [][]string{e.Characters, e.Objects, e.Locations} {
		for _, el := range list {
			key := strings.ToLower(el)
			if seen[key] {
				continue
			}
			seen[key] = true
			e.All = append(e.All, el)
		}
	}
	return e
}

func extractCharacters(text string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, tok := range properNounRe.FindAllString(text, -1) {
		if honorifics[tok] || characterBlacklist[tok] {
			continue
		}
		if seen[tok] {
			continue
		}
		seen[tok] = true
		out = append(out, tok)
		if len(out) == maxPerKind {
			break
		}
	}
	return out
}

func extractObjects(words []string) []string {
	var out []string
	seen := make(map[string]bool)
	for i := 1; i < len(words); i++ {
		w := strings.ToLower(words[i])
		if !objectNouns[w] {
			continue
		}
		// "the key" or "an old key" — allow one adjective after the article.
		ok := articles[strings.ToLower(words[i-1])]
		if !ok && i >= 2 {
			ok = articles[strings.ToLower(words[i-2])]
		}
		if !ok {
			continue
		}
		if seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
		if len(out) == maxPerKind {
			break
		}
	}
	return out
}

func extractLocations(words []string) []string {
	var out []string
	seen := make(map[string]bool)
	for i := 1; i < len(words); i++ {
		w := strings.ToLower(words[i])
		if !placeNouns[w] {
			continue
		}
		prev := strings.ToLower(words[i-1])
		// "in the forest" or "near ruins" — article is optional.
		ok := locativePrepositions[prev]
		if !ok && articles[prev] && i >= 2 {
			ok = locativePrepositions[strings.ToLower(words[i-2])]
		}
		if !ok {
			continue
		}
		if seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
		if len(out) == maxPerKind {
			break
		}
	}
	return out
}
