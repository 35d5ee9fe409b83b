package engine

import (
	"regexp"
	"strings"
)

// Generation backends sometimes leak their own prompt scaffolding into the
// narrative body: trailing "What happens next?" hooks and whole "CHOICES:"
// sections. These must be stripped before extraction, since they would
// otherwise pollute the element sets.

var choicesSectionRe = regexp.MustCompile(`(?is)\n?\s*choices\s*:.*$`)
var nextPromptRe = regexp.MustCompile(`(?i)what\s+(?:happens\s+next|will\s+(?:you|he|she|they)\s+do(?:\s+next)?|should\s+\w+(?:\s+\w+)?\s+do(?:\s+next)?)\s*[?!.]*`)

// CleanNarrative normalizes raw backend text for the pipeline. Cosmetic
// only — it never invents content, it only removes leaked scaffolding.
func CleanNarrative(text string) string {
	out := choicesSectionRe.ReplaceAllString(text, "")
	out = nextPromptRe.ReplaceAllString(out, "")
	return strings.TrimSpace(out)
}
