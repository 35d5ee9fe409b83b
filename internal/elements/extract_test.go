package elements

import (
	"reflect"
	"testing"
)

func TestExtract_RichText(t *testing.T) {
	text := "Elena found an old key near the castle. The wizard Aldric watched her from the tower."

	e := Extract(text)

	wantChars := []string{"Elena", "Aldric"}
	for _, name := range wantChars {
		if !contains(e.Characters, name) {
			t.Errorf("expected character %q in %v", name, e.Characters)
		}
	}
	if !contains(e.Objects, "key") {
		t.Errorf("expected object key in %v", e.Objects)
	}
	for _, place := range []string{"castle", "tower"} {
		if !contains(e.Locations, place) {
			t.Errorf("expected location %q in %v", place, e.Locations)
		}
	}
}

func TestExtract_EmptyInputs(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty string", ""},
		{"whitespace only", "   \n\t  "},
		{"no elements", "it was quiet and nothing happened at all."},
		{"non-english", "这是一个没有英文的故事"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Extract(tt.text)
			if len(e.Characters) != 0 || len(e.Objects) != 0 || len(e.Locations) != 0 {
				t.Errorf("expected empty elements, got %+v", e)
			}
			if !e.Empty() {
				t.Error("expected Empty() to be true")
			}
		})
	}
}

func TestExtract_Idempotent(t *testing.T) {
	text := "Mira carried the lantern through the forest while Tomas waited by the bridge."

	first := Extract(text)
	second := Extract(text)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("extraction not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestExtract_HonorificsStripped(t *testing.T) {
	e := Extract("Princess Yara bowed to Lord Aldric near the gate.")

	if contains(e.Characters, "Princess") || contains(e.Characters, "Lord") {
		t.Errorf("honorifics should not be characters: %v", e.Characters)
	}
	if !contains(e.Characters, "Yara") {
		t.Errorf("expected Yara in %v", e.Characters)
	}
	if !contains(e.Characters, "Aldric") {
		t.Errorf("expected Aldric in %v", e.Characters)
	}
}

func TestExtract_BlacklistFiltered(t *testing.T) {
	e := Extract("Suddenly the wind howled. Meanwhile Elena ran. Then everything went dark.")

	for _, bad := range []string{"Suddenly", "Meanwhile", "Then"} {
		if contains(e.Characters, bad) {
			t.Errorf("blacklisted word %q accepted as character: %v", bad, e.Characters)
		}
	}
	if !contains(e.Characters, "Elena") {
		t.Errorf("expected Elena in %v", e.Characters)
	}
}

func TestExtract_CapsAtFive(t *testing.T) {
	text := "Anna met Bella, Carla, Dina, Erin, Fiona and Greta at the market."

	e := Extract(text)
	if len(e.Characters) != 5 {
		t.Errorf("expected 5 characters, got %d: %v", len(e.Characters), e.Characters)
	}
}

func TestExtract_DeduplicatesPreservingOrder(t *testing.T) {
	text := "Elena saw the key. Elena took the key into the cave. The key glowed in the cave."

	e := Extract(text)
	if got := countOf(e.Characters, "Elena"); got != 1 {
		t.Errorf("Elena appears %d times, want 1", got)
	}
	if got := countOf(e.Objects, "key"); got != 1 {
		t.Errorf("key appears %d times, want 1", got)
	}
	if len(e.Characters) > 0 && e.Characters[0] != "Elena" {
		t.Errorf("expected Elena first, got %v", e.Characters)
	}
}

func TestExtract_LocationNeedsPreposition(t *testing.T) {
	// "castle" as bare subject should not register as a location.
	e := Extract("A castle stood there. Elena walked in the forest.")

	if contains(e.Locations, "castle") {
		t.Errorf("castle without locative preposition should not match: %v", e.Locations)
	}
	if !contains(e.Locations, "forest") {
		t.Errorf("expected forest in %v", e.Locations)
	}
}

func TestHas_CaseInsensitive(t *testing.T) {
	e := Extract("Elena found the key in the cave.")

	for _, w := range []string{"elena", "Elena", "KEY", "cave"} {
		if !e.Has(w) {
			t.Errorf("Has(%q) = false, want true", w)
		}
	}
	if e.Has("dragon") {
		t.Error("Has(dragon) = true, want false")
	}
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}

func countOf(list []string, want string) int {
	n := 0
	for _, s := range list {
		if s == want {
			n++
		}
	}
	return n
}
