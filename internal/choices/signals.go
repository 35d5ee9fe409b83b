package choices

import (
	"regexp"
	"strings"
)

// signals holds the narrative cues the scorer reads from the source text:
// which actions are still in motion, which already happened, where the
// story currently is, and its emotional register.
type signals struct {
	ongoing       []string // stems of present-progressive verbs
	completed     []string // stems of past-tense verbs
	lastLocation  string
	tension       bool
	traits        []string
	emotion       string
	timelineHeads map[string]bool // lexical head of each prior sentence
}

var sentenceRe = regexp.MustCompile(`[.!?]+`)
var tokenRe = regexp.MustCompile(`[A-Za-z']+`)

// deriveSignals is pure and deterministic; an empty passage yields an
// empty (but usable) signal set.
func deriveSignals(text string, locations []string) signals {
	sig := signals{timelineHeads: make(map[string]bool)}

	words := tokenRe.FindAllString(strings.ToLower(text), -1)
	for _, w := range words {
		switch {
		case strings.HasSuffix(w, "ing") && len(w) > 5:
			sig.ongoing = appendUnique(sig.ongoing, strings.TrimSuffix(w, "ing"))
		case strings.HasSuffix(w, "ed") && len(w) > 4:
			sig.completed = appendUnique(sig.completed, strings.TrimSuffix(w, "ed"))
		}
		if tensionWords[w] {
			sig.tension = true
		}
		if traitWords[w] {
			sig.traits = appendUnique(sig.traits, w)
		}
		if sig.emotion == "" {
			if emo, ok := emotionWords[w]; ok {
				sig.emotion = emo
			}
		}
	}

	if len(locations) > 0 {
		sig.lastLocation = locations[len(locations)-1]
	}

	for _, sentence := range sentenceRe.Split(text, -1) {
		if head := lexicalHead(sentence); head != "" {
			sig.timelineHeads[head] = true
		}
	}

	return sig
}

// lexicalHead returns the first significant (len>3, non-stopword) word of
// s, lowercased.
func lexicalHead(s string) string {
	for _, w := range tokenRe.FindAllString(strings.ToLower(s), -1) {
		if len(w) > 3 && !stopwords[w] {
			return w
		}
	}
	return ""
}

// significantTokens returns the lowercased tokens of s longer than three
// characters that are not stopwords.
func significantTokens(s string) []string {
	var out []string
	for _, w := range tokenRe.FindAllString(strings.ToLower(s), -1) {
		if len(w) > 3 && !stopwords[w] {
			out = append(out, w)
		}
	}
	return out
}

// sharedSignificant counts significant tokens present in both strings.
func sharedSignificant(a, b string) int {
	set := make(map[string]bool)
	for _, w := range significantTokens(a) {
		set[w] = true
	}
	n := 0
	counted := make(map[string]bool)
	for _, w := range significantTokens(b) {
		if set[w] && !counted[w] {
			counted[w] = true
			n++
		}
	}
	return n
}

func appendUnique(list []string, s string) []string {
	for _, have := range list {
		if have == s {
			return list
		}
	}
	return append(list, s)
}
