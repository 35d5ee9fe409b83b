package choices

import "strings"

// Scoring weights. Positive weights pull a candidate toward what the
// passage is doing right now; the anachronism penalty pushes away choices
// that re-litigate finished actions.
const (
	scoreOngoingAction  = 30
	scoreRecentLocation = 25
	scoreTension        = 20
	scoreTemporalAlign  = 20
	scoreTraitEcho      = 15
	scoreEmotionEcho    = 10
	scoreAnachronism    = -40
)

// score ranks an otherwise-acceptable candidate against the passage's
// narrative signals. Higher is better.
func score(candidate string, sig signals) int {
	lower := strings.ToLower(candidate)
	words := make(map[string]bool)
	for _, w := range tokenRe.FindAllString(lower, -1) {
		words[w] = true
	}

	total := 0

	for _, stem := range sig.ongoing {
		if containsStem(words, stem) {
			total += scoreOngoingAction
			break
		}
	}

	if sig.lastLocation != "" && words[strings.ToLower(sig.lastLocation)] {
		total += scoreRecentLocation
	}

	if sig.tension {
		for w := range words {
			if tensionWords[w] {
				total += scoreTension
				break
			}
		}
	}

	for _, stem := range sig.completed {
		if containsStem(words, stem) {
			total += scoreAnachronism
			break
		}
	}

	for _, trait := range sig.traits {
		if words[trait] {
			total += scoreTraitEcho
			break
		}
	}

	if sig.emotion != "" {
		for w, emo := range emotionWords {
			if emo == sig.emotion && words[w] {
				total += scoreEmotionEcho
				break
			}
		}
	}

	if temporallyAligned(candidate, sig) {
		total += scoreTemporalAlign
	}

	return total
}

// temporallyAligned reports whether the candidate's lexical head avoids
// re-using the head of any prior timeline sentence.
func temporallyAligned(candidate string, sig signals) bool {
	head := lexicalHead(candidate)
	if head == "" {
		return true
	}
	return !sig.timelineHeads[head]
}

// containsStem matches a verb stem against candidate words, tolerating the
// common inflections (walk/walks/walking/walked share the stem "walk").
func containsStem(words map[string]bool, stem string) bool {
	if len(stem) < 3 {
		return false
	}
	for w := range words {
		if strings.HasPrefix(w, stem) {
			return true
		}
	}
	return false
}
