package restaurant

var foodTypes = map[string]struct{}{
	"restaurant":    {},
	"cafe":          {},
	"bakery":        {},
	"bar":           {},
	"meal_takeaway": {},
	"meal_delivery": {},
	"food":          {},
}

// excludedTypes wins over foodTypes: a gas station that also sells food is dropped.
var excludedTypes = map[string]struct{}{
	"gas_station":       {},
	"convenience_store": {},
	"grocery_store":     {},
	"supermarket":       {},
	"liquor_store":      {},
}

// IsFoodVenue reports whether a place's types pass the category pass.
func IsFoodVenue(placeTypes []string) bool {
	food := false
	for _, t := range placeTypes {
		if _, ok := excludedTypes[t]; ok {
			return false
		}
		if _, ok := foodTypes[t]; ok {
			food = true
		}
	}
	return food
}

// WithinPriceRange keeps anything at or below the selected maximum tier, and
// anything whose tier is unknown.
func WithinPriceRange(c Candidate, pr *PriceRange) bool {
	if pr == nil || c.PriceLevel == nil {
		return true
	}
	return *c.PriceLevel <= pr.Max
}

func FilterByCategory(candidates []Candidate) []Candidate {
	out := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if IsFoodVenue(c.Types) {
			out = append(out, c)
		}
	}
	return out
}

func FilterByPrice(candidates []Candidate, pr *PriceRange) []Candidate {
	out := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if WithinPriceRange(c, pr) {
			out = append(out, c)
		}
	}
	return out
}
