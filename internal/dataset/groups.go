package dataset

// Group names.
const (
	GroupOriginal = "Top 20 (Original)"
	GroupEurope   = "All Europe + Israel"
	GroupAll      = "All Countries"
)

// Group is a named country selection.
type Group struct {
	Name      string   `json:"name"`
	Countries []string `json:"countries"`
}

var originalCountries = []string{
	"Israel", "Sweden", "Denmark", "Norway", "Finland",
	"Germany", "Netherlands", "UK", "France", "Switzerland",
	"USA", "Canada",
	"Japan", "South Korea", "Australia", "New Zealand", "Singapore",
	"Uruguay", "Chile",
}

var europeCountries = []string{
	"Israel",
	// Nordics
	"Sweden", "Denmark", "Norway", "Finland", "Iceland",
	// Western Europe
	"Germany", "Netherlands", "UK", "France", "Switzerland",
	"Austria", "Belgium", "Ireland", "Luxembourg",
	// Southern Europe
	"Italy", "Spain", "Portugal", "Greece", "Cyprus", "Malta", "Croatia",
	// Central Europe
	"Slovenia", "Czech Republic", "Poland", "Hungary", "Slovakia",
	"Romania", "Bulgaria", "Estonia", "Latvia", "Lithuania",
	// Balkans & Eastern
	"Serbia", "Montenegro", "North Macedonia", "Albania",
	"Bosnia and Herzegovina", "Moldova", "Ukraine", "Turkey",
}

// Groups returns the country groups in display order.
func Groups() []Group {
	return []Group{
		{Name: GroupOriginal, Countries: append([]string(nil), originalCountries...)},
		{Name: GroupEurope, Countries: append([]string(nil), europeCountries...)},
		{Name: GroupAll, Countries: Names()},
	}
}

// LookupGroup returns the named group.
func LookupGroup(name string) (Group, bool) {
	for _, g := range Groups() {
		if g.Name == name {
			return g, true
		}
	}
	return Group{}, false
}
