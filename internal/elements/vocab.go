package elements

// Vocabulary tables for the extractor. These are versioned configuration
// data: tests assert on their contents, so additions should be deliberate.

// honorifics are title prefixes stripped before a capitalized token is
// accepted as a character name ("Princess Yara" yields "Yara").
var honorifics = map[string]bool{
	"Princess": true, "Prince": true, "King": true, "Queen": true,
	"Lord": true, "Lady": true, "Sir": true, "Dame": true,
	"Doctor": true, "Dr": true, "Professor": true, "Captain": true,
	"Master": true, "Madam": true, "Mister": true, "Miss": true,
	"Mrs": true, "Mr": true,
}

// characterBlacklist holds capitalized words that pattern-match the
// character regex but are never character names: sentence starters,
// pronouns, numerals, directions, and common story nouns that leak into
// sentence-initial position.
var characterBlacklist = map[string]bool{
	// Sentence starters and connectives.
	"The": true, "Then": true, "There": true, "This": true, "That": true,
	"These": true, "Those": true, "They": true, "She": true, "Her": true,
	"His": true, "Him": true, "With": true, "From": true, "Into": true,
	"Over": true, "Under": true, "About": true, "Above": true, "Below": true,
	"While": true, "Where": true, "What": true, "Which": true, "Who": true,
	"When": true, "Why": true, "How": true, "And": true, "But": true,
	"Yet": true, "Now": true, "Not": true, "Here": true, "Once": true,
	"Upon": true, "After": true, "Before": true, "During": true,
	"Suddenly": true, "Meanwhile": true, "However": true, "Finally": true,
	"Later": true, "Soon": true, "Inside": true, "Outside": true,
	"Every": true, "Some": true, "Many": true, "Most": true, "Each": true,
	"Everyone": true, "Everything": true, "Nothing": true, "Something": true,
	"Someone": true, "Nobody": true, "Just": true, "Still": true,
	"Perhaps": true, "Maybe": true, "Together": true, "Beyond": true,
	// Time-of-day and calendar words.
	"Today": true, "Tomorrow": true, "Yesterday": true, "Tonight": true,
	"Morning": true, "Evening": true, "Night": true, "Noon": true,
	// Numerals.
	"One": true, "Two": true, "Three": true, "Four": true, "Five": true,
	"Six": true, "Seven": true, "Eight": true, "Nine": true, "Ten": true,
	"First": true, "Second": true, "Third": true,
	// Geography and setting words that read as proper nouns but are not
	// characters.
	"North": true, "South": true, "East": true, "West": true,
	"Earth": true, "Kingdom": true, "Realm": true, "Land": true,
	"Mountains": true, "Forest": true, "Castle": true, "Village": true,
}

// objectNouns is the curated vocabulary of story objects. A match counts
// only when preceded by an article, with at most one adjective between
// ("the key", "an old lantern").
var objectNouns = map[string]bool{
	"book": true, "key": true, "door": true, "sword": true, "map": true,
	"lantern": true, "letter": true, "box": true, "chest": true,
	"stone": true, "ring": true, "cloak": true, "wand": true,
	"mirror": true, "rope": true, "bottle": true, "crown": true,
	"shield": true, "staff": true, "amulet": true, "torch": true,
	"basket": true, "coin": true, "scroll": true, "bell": true,
	"feather": true, "flower": true, "seed": true, "crystal": true,
	"locket": true, "compass": true, "boat": true, "candle": true,
}

// placeNouns is the vocabulary of locations. A match counts only when
// preceded by a locative preposition and an optional article.
var placeNouns = map[string]bool{
	"forest": true, "castle": true, "cave": true, "tower": true,
	"village": true, "mountain": true, "river": true, "garden": true,
	"meadow": true, "bridge": true, "valley": true, "ocean": true,
	"island": true, "swamp": true, "desert": true, "temple": true,
	"ruins": true, "cottage": true, "clearing": true, "shore": true,
	"field": true, "hill": true, "lake": true, "woods": true,
	"beach": true, "harbor": true, "library": true, "kitchen": true,
	"cellar": true, "attic": true, "courtyard": true, "gate": true,
}

// locativePrepositions gate location matches.
var locativePrepositions = map[string]bool{
	"in": true, "at": true, "near": true, "behind": true, "beside": true,
	"under": true, "beneath": true, "above": true, "inside": true,
	"outside": true, "within": true, "toward": true, "towards": true,
	"past": true, "through": true, "by": true, "around": true,
	"into": true, "from": true,
}

var articles = map[string]bool{
	"the": true, "a": true, "an": true,
}
