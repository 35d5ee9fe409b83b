package templates

// Sentence template pools keyed by "genre/tone". Placeholders [character],
// [object], and [location] are filled from extracted story elements;
// templates without placeholders are pure actions that are always usable.
//
// Template wording is tuned to pass the downstream validity predicate
// with typical element lengths; oversized substitutions are the
// selector's problem, not the generator's.
var pools = map[string][]string{
	"nature/magical": {
		"Follow the glowing light into the [location]",
		"Ask [character] about the strange sounds",
		"Pick up the [object] and hold it to the light",
		"Listen to what the wind is whispering",
		"Touch the shimmering [object] gently",
		"Walk deeper into the [location]",
	},
	"fantasy/epic": {
		"Ask [character] what must be done next",
		"Raise the [object] high and stand firm",
		"March bravely toward the [location]",
		"Call for [character] to join the quest",
		"Study the [object] for hidden markings",
		"Scout the [location] before moving on",
	},
	"fantasy/dark": {
		"Creep silently toward the [location]",
		"Whisper a warning to [character]",
		"Hide the [object] before anyone notices",
		"Peer into the shadows of the [location]",
		"Ask [character] what they are not saying",
		"Light a torch and press onward",
	},
	"fantasy/whimsical": {
		"Giggle and wave at [character]",
		"Balance the [object] on one finger",
		"Skip merrily toward the [location]",
		"Ask [character] for a silly riddle",
		"Shake the [object] and see what rattles",
		"Peek behind the [location] for surprises",
	},
	"adventure/exciting": {
		"Race [character] to the [location]",
		"Grab the [object] and start climbing",
		"Chart a course toward the [location]",
		"Signal [character] to follow quietly",
		"Swing across with the [object] in hand",
		"Climb up for a better view",
	},
	"mystery/spooky": {
		"Question [character] about what they saw",
		"Examine the [object] under the lamplight",
		"Search the [location] for anything odd",
		"Watch [character] from a safe distance",
		"Compare the [object] with what you remember",
		"Knock three times and wait",
	},
}

// defaultPool serves unrecognized genre/tone pairs.
var defaultPool = []string{
	"Ask [character] what happened here",
	"Take a closer look at the [object]",
	"Head carefully toward the [location]",
	"Look around carefully",
	"Call out and see who answers",
	"Talk to [character] about the [object]",
}

// Generic element vocabulary used when a passage's own elements are
// exhausted, so every template can always be completed.
var (
	genericCharacters = []string{"the stranger", "the old traveler", "the guardian"}
	genericObjects    = []string{"lantern", "amulet", "map"}
	genericLocations  = []string{"clearing", "ruins", "tower"}
)

// poolFor returns the template pool for a genre/tone pair, falling back to
// the default pool.
func poolFor(genre, tone string) []string {
	if p, ok := pools[genre+"/"+tone]; ok {
		return p
	}
	return defaultPool
}
