package choices

// Static rule tables for the validity predicate and scorer. Kept together
// so completeness can be tested independently of the selection logic.

// stopwords are ignored when comparing choices for significant-token
// overlap and when picking a sentence's lexical head.
var stopwords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "but": true,
	"or": true, "to": true, "of": true, "in": true, "on": true,
	"at": true, "for": true, "with": true, "from": true, "into": true,
	"about": true, "over": true, "under": true, "then": true,
	"than": true, "that": true, "this": true, "these": true,
	"those": true, "there": true, "here": true, "what": true,
	"when": true, "where": true, "while": true, "very": true,
	"your": true, "their": true, "them": true, "they": true,
	"was": true, "were": true, "been": true, "being": true,
	"have": true, "has": true, "had": true, "will": true,
	"would": true, "could": true, "should": true, "more": true,
	"most": true, "some": true, "such": true, "toward": true,
}

// genericVerbs open the bare "verb" or "verb + generic noun" patterns the
// predicate rejects when nothing anchors them to the story.
var genericVerbs = map[string]bool{
	"go": true, "look": true, "follow": true, "take": true, "run": true,
	"walk": true, "open": true, "explore": true, "continue": true,
	"search": true, "investigate": true, "move": true, "try": true,
}

// forbiddenGeneric terms may only appear when the choice is anchored to an
// extracted element, or when they are part of a proper name ("the Guide").
var forbiddenGeneric = map[string]bool{
	"path": true, "way": true, "clue": true, "guide": true,
}

// connectives covers prepositions, articles, and conjunctions for the
// nonsensical-adjacency and dangling-ending checks.
var connectives = map[string]bool{
	"to": true, "with": true, "at": true, "in": true, "on": true,
	"of": true, "for": true, "from": true, "the": true, "a": true,
	"an": true, "and": true, "but": true, "or": true, "into": true,
	"by": true, "as": true,
}

// fantasyTropes are blacklisted phrases in fantasy-genre mode.
var fantasyTropes = []string{
	"chosen one",
	"ancient prophecy",
	"dark lord",
	"fulfill your destiny",
	"the prophecy foretold",
	"a hero must rise",
	"save the world",
	"destined to",
}

// tensionWords signal active danger in the passage; choices echoing them
// score higher while the tension is live.
var tensionWords = map[string]bool{
	"danger": true, "dangerous": true, "urgent": true, "hurry": true,
	"afraid": true, "fear": true, "threat": true, "storm": true,
	"chase": true, "chased": true, "scream": true, "warning": true,
	"trap": true, "trapped": true, "dark": true, "growl": true,
}

// traitWords are character personality markers worth echoing in a choice.
var traitWords = map[string]bool{
	"brave": true, "curious": true, "kind": true, "clever": true,
	"shy": true, "bold": true, "gentle": true, "wise": true,
	"sneaky": true, "loyal": true, "careful": true, "quick": true,
}

// emotionWords maps surface vocabulary to a detected narrative emotion.
var emotionWords = map[string]string{
	"happy": "joy", "laughed": "joy", "smiled": "joy", "joy": "joy",
	"afraid": "fear", "scared": "fear", "fear": "fear", "trembled": "fear",
	"sad": "sadness", "tears": "sadness", "cried": "sadness",
	"angry": "anger", "furious": "anger", "shouted": "anger",
	"wonder": "wonder", "amazed": "wonder", "marveled": "wonder",
	"sparkled": "wonder", "glowed": "wonder",
}
