package choices

import (
	"strings"
	"testing"

	"github.com/Jzineldin/tale-forge-choices/internal/elements"
	"github.com/Jzineldin/tale-forge-choices/internal/templates"
)

const richText = "Elena found an old key near the castle. The wizard Aldric watched her from the tower."

func newSelector(seed int64) *Selector {
	return NewSelector(templates.New(seed))
}

func TestSelect_AlwaysThree(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		genre string
		tone  string
	}{
		{"empty text", "", "fantasy", "epic"},
		{"whitespace", "   \n\t ", "fantasy", "dark"},
		{"non-english", "这是一个故事的开始", "nature", "magical"},
		{"no capitals", "the rain kept falling on the empty road.", "mystery", "spooky"},
		{"rich text", richText, "fantasy", "epic"},
		{"unknown genre", richText, "western", "gritty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for seed := int64(0); seed < 10; seed++ {
				got := newSelector(seed).Select(tt.text, tt.genre, tt.tone)
				if len(got) != ChoiceCount {
					t.Fatalf("seed %d: got %d choices, want %d: %v", seed, len(got), ChoiceCount, got)
				}
				for _, c := range got {
					if strings.TrimSpace(c) == "" {
						t.Fatalf("seed %d: empty choice in %v", seed, got)
					}
				}
			}
		})
	}
}

func TestSelect_NoDuplicates(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		got := newSelector(seed).Select(richText, "fantasy", "epic")
		seen := make(map[string]bool)
		for _, c := range got {
			if seen[c] {
				t.Fatalf("seed %d: duplicate choice %q in %v", seed, c, got)
			}
			seen[c] = true
		}
	}
}

func TestSelect_BoundedSimilarity(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		got := newSelector(seed).Select(richText, "fantasy", "epic")
		for i := 0; i < len(got); i++ {
			for j := i + 1; j < len(got); j++ {
				if n := sharedSignificant(got[i], got[j]); n > 2 {
					t.Fatalf("seed %d: %q and %q share %d significant tokens", seed, got[i], got[j], n)
				}
			}
		}
	}
}

func TestSelect_LengthBounds(t *testing.T) {
	// Extracted elements have no upper length bound, so names like these
	// must not ride a fallback template past the limit.
	longName := "Bartholomewconstantinoplealexandergrandersonworthington smiled."
	longEverything := "Bartholomewconstantinoplealexandergrandersonworthington carried " +
		"the Heirloomofuncountablegenerations into the Grandhallofathousandechoes."

	for seed := int64(0); seed < 20; seed++ {
		for _, text := range []string{richText, "", "the rain kept falling.", longName, longEverything} {
			for _, c := range newSelector(seed).Select(text, "fantasy", "epic") {
				if len(c) < 10 || len(c) > 60 {
					t.Fatalf("seed %d: choice %q has length %d", seed, c, len(c))
				}
			}
		}
	}
}

func TestSelect_LongNamesStillYieldThree(t *testing.T) {
	text := "Bartholomewconstantinoplealexandergrandersonworthington smiled."
	for seed := int64(0); seed < 20; seed++ {
		got := newSelector(seed).Select(text, "fantasy", "epic")
		if len(got) != ChoiceCount {
			t.Fatalf("seed %d: got %d choices, want %d: %v", seed, len(got), ChoiceCount, got)
		}
	}
}

func TestSelect_EmptyTextUsesGenericPool(t *testing.T) {
	got := newSelector(1).Select("", "fantasy", "epic")

	pool := make(map[string]bool)
	for _, p := range FallbackPool {
		pool[p] = true
	}
	for _, c := range got {
		if !pool[c] {
			t.Errorf("choice %q not from the generic fallback pool", c)
		}
	}
}

func TestSelect_TropeExclusion(t *testing.T) {
	text := "The chosen one read the ancient prophecy about the dark lord in the castle."
	for seed := int64(0); seed < 20; seed++ {
		for _, c := range newSelector(seed).Select(text, "fantasy", "dark") {
			lower := strings.ToLower(c)
			for _, trope := range fantasyTropes {
				if strings.Contains(lower, trope) {
					t.Fatalf("seed %d: choice %q contains trope %q", seed, c, trope)
				}
			}
		}
	}
}

func TestSelect_RichTextAvoidsGenericFallback(t *testing.T) {
	pool := make(map[string]bool)
	for _, p := range FallbackPool {
		pool[p] = true
	}
	for seed := int64(0); seed < 20; seed++ {
		for _, c := range newSelector(seed).Select(richText, "fantasy", "epic") {
			if pool[c] {
				t.Fatalf("seed %d: generic fallback %q used despite rich elements", seed, c)
			}
		}
	}
}

func TestSelectFrom_FiltersUnanchoredGenericTerm(t *testing.T) {
	els := elements.Extract(richText)
	candidates := []templates.Candidate{
		{Text: "Follow the winding way forward"}, // unanchored "way"
		{Text: "Ask Aldric about the key", ElementUsed: "Aldric"},
		{Text: "Carry the key into the tower", ElementUsed: "key"},
		{Text: "March bravely toward the castle", ElementUsed: "castle"},
	}

	got := SelectFrom(richText, "fantasy", els, candidates)

	if len(got) != ChoiceCount {
		t.Fatalf("got %d choices, want %d", len(got), ChoiceCount)
	}
	for _, c := range got {
		if c == "Follow the winding way forward" {
			t.Errorf("unanchored generic-term candidate survived selection: %v", got)
		}
	}
}

func TestSelectFrom_RanksByNarrativeSignals(t *testing.T) {
	// "tower" is the most recently mentioned location, so the tower-bound
	// candidate must outrank the castle-bound one.
	els := elements.Extract(richText)
	candidates := []templates.Candidate{
		{Text: "March bravely toward the castle"},
		{Text: "Carry the key into the tower"},
		{Text: "Ask Aldric what must be done next"},
	}

	got := SelectFrom(richText, "fantasy", els, candidates)

	if got[0] != "Carry the key into the tower" {
		t.Errorf("expected tower-bound choice ranked first, got %v", got)
	}
}

func TestSelectFrom_AnachronismPenalized(t *testing.T) {
	// "watched" is completed action in the passage; echoing it should rank
	// below a neutral candidate.
	els := elements.Extract(richText)
	candidates := []templates.Candidate{
		{Text: "Watch Aldric from a safe distance"},
		{Text: "Carry the key into the tower"},
		{Text: "March bravely toward the castle"},
	}

	got := SelectFrom(richText, "fantasy", els, candidates)

	if got[len(got)-1] != "Watch Aldric from a safe distance" && got[0] == "Watch Aldric from a safe distance" {
		t.Errorf("anachronistic choice ranked first: %v", got)
	}
}

func TestBalancedSet(t *testing.T) {
	els := elements.Extract(richText)

	tests := []struct {
		name string
		set  []string
		want bool
	}{
		{
			"balanced",
			[]string{"Ask Aldric what must be done next", "Carry the key onward", "March bravely toward the tower"},
			true,
		},
		{
			"excessive overlap",
			[]string{"March bravely toward the tall tower", "March bravely toward the tall castle", "Ask Aldric about the key"},
			false,
		},
		{
			"identical entries",
			[]string{"Ask Aldric about the key", "Ask Aldric about the key", "March bravely toward the tower"},
			false,
		},
		{
			"all character oriented",
			[]string{"Ask Aldric what must be done next", "Call for Elena to join the quest", "Whisper a warning to Aldric"},
			false,
		},
		{
			"generic action satisfies location slot",
			[]string{"Ask Aldric what happened here", "Carry the key onward", "Wait and observe"},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BalancedSet(tt.set, els); got != tt.want {
				t.Errorf("BalancedSet(%v) = %v, want %v", tt.set, got, tt.want)
			}
		})
	}
}
