package persona

// weightedSet is one category of domain keywords with its score weight.
type weightedSet struct {
	weight float64
	terms  []string
}

// Keyword categories per rule. Higher-weighted categories are the signals
// the persona actually plans around; lower weights are supporting
// vocabulary. All terms are lowercase; scoring lowercases its input.

var travelSets = []weightedSet{
	{3, []string{"itinerary", "plan", "schedule", "multi-day", "day trip", "route"}},
	{3, []string{"group", "friends", "college", "together", "travelers", "party of"}},
	{2, []string{"beach", "nightlife", "club", "bar", "adventure", "excursion", "tour", "activity", "sightseeing", "hike"}},
	{1, []string{"nice", "marseille", "cannes", "saint-tropez", "antibes", "avignon", "aix-en-provence", "coast", "riviera"}},
}

var hrSets = []weightedSet{
	{3, []string{"form", "fillable", "signature", "sign", "field", "checkbox"}},
	{3, []string{"onboarding", "compliance", "employee", "hr", "policy", "record"}},
	{2, []string{"create", "convert", "edit", "export", "fill", "send", "share", "manage"}},
	{1, []string{"acrobat", "pdf", "document", "file", "e-signature", "workflow"}},
}

var foodSets = []weightedSet{
	{3, []string{"vegetarian", "vegan", "gluten-free", "buffet", "dietary"}},
	{3, []string{"menu", "dinner", "lunch", "corporate", "gathering", "serve", "portion"}},
	{2, []string{"recipe", "ingredient", "dish", "side", "main course", "appetizer", "prepare"}},
	{1, []string{"falafel", "ratatouille", "lasagna", "salad", "hummus", "couscous", "sauce"}},
}

// Contextual cue words shared by the domain rules. Each hit adds a fixed
// bonus on top of the category scores.
var (
	tipCues      = []string{"tip", "advice", "trick", "recommend", "guide"}
	audienceCues = []string{"group", "groups", "everyone", "guests", "families", "crowd", "large"}
	locationCues = []string{"city", "cities", "region", "local", "village", "town"}
)

const (
	tipBonus      = 2
	audienceBonus = 2
	locationBonus = 1
	sequenceBonus = 5 // complete itineraries and day-by-day plans
)

func setsFor(kind RuleKind) []weightedSet {
	switch kind {
	case RuleTravel:
		return travelSets
	case RuleHR:
		return hrSets
	case RuleFood:
		return foodSets
	default:
		return nil
	}
}
