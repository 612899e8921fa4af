package sentiment

// Keyword tables for the three severity axes. Matching is plain substring
// containment on the lower-cased message, so multi-word entries like
// "too much" are valid and short entries like "die" also hit inside longer
// words. The lists and the 0.2-per-hit step are tuning constants carried
// over from the original heuristic; changing them changes every score the
// API reports, so treat them as frozen.

var depressionKeywords = []string{
	"sad", "depressed", "hopeless", "worthless", "empty", "tired",
	"exhausted", "alone", "lonely", "crying", "suicidal", "die",
	"death", "unhappy", "miserable", "meaningless", "numb", "pain",
}

var anxietyKeywords = []string{
	"anxious", "worried", "nervous", "panic", "fear", "scared",
	"stress", "overthinking", "terror", "afraid", "dread", "uneasy",
	"apprehensive", "restless", "uncomfortable", "tense",
}

var stressKeywords = []string{
	"stress", "overwhelmed", "pressure", "burnout", "overworked",
	"deadline", "tension", "strain", "burden", "difficult",
	"challenging", "too much", "can't handle",
}

const (
	maxHits = 5 // 0.2 per distinct hit; the axis value saturates at 1.0

	severeHits   = 4 // axis value > 0.6
	moderateHits = 2 // axis value > 0.3
)
