package dataset

import "sort"

// Cell identifies one (country, sub-metric) value.
type Cell struct {
	Country string `json:"country"`
	Metric  string `json:"metric"`
}

// Estimates is an immutable set of cells whose values are regional
// estimates rather than figures from a published index.
type Estimates struct {
	cells map[Cell]struct{}
}

// NewEstimates builds the set once; later changes to cells are not seen.
func NewEstimates(cells []Cell) Estimates {
	m := make(map[Cell]struct{}, len(cells))
	for _, c := range cells {
		m[c] = struct{}{}
	}
	return Estimates{cells: m}
}

// Has reports whether a cell is estimated.
func (e Estimates) Has(country, metric string) bool {
	_, ok := e.cells[Cell{Country: country, Metric: metric}]
	return ok
}

// Len returns the number of estimated cells.
func (e Estimates) Len() int { return len(e.cells) }

// Cells returns estimated cells sorted by country then metric.
func (e Estimates) Cells() []Cell {
	out := make([]Cell, 0, len(e.cells))
	for c := range e.cells {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Country != out[j].Country {
			return out[i].Country < out[j].Country
		}
		return out[i].Metric < out[j].Metric
	})
	return out
}

// For returns the estimated metrics of one country.
func (e Estimates) For(country string) []string {
	var out []string
	for _, c := range e.Cells() {
		if c.Country == country {
			out = append(out, c.Metric)
		}
	}
	return out
}

// Countries with limited coverage in the major indexes.
var (
	mostlyEstimated    = []string{"Montenegro", "North Macedonia", "Albania", "Bosnia and Herzegovina", "Moldova"}
	partiallyEstimated = []string{"Cyprus", "Malta", "Croatia", "Serbia", "Ukraine"}
	softMetrics        = []string{GenderWageEquality, UniversityDensity, AdultEducation, HousingAffordability, PurchasingPower}
)

// EstimatedCells lists the estimated cells of the compiled-in dataset.
func EstimatedCells() []Cell {
	var cells []Cell
	mark := func(country string, metrics ...string) {
		for _, m := range metrics {
			cells = append(cells, Cell{Country: country, Metric: m})
		}
	}

	// Mostly-estimated countries: everything except the three indexes with
	// full coverage.
	for _, c := range mostlyEstimated {
		for _, m := range Subfactors {
			if m != DemocracyIndex && m != GDPPerCapitaPPP && m != CostOfLivingInv {
				mark(c, m)
			}
		}
	}
	for _, c := range partiallyEstimated {
		mark(c, softMetrics...)
	}
	for _, c := range []string{"Turkey", "Iceland"} {
		mark(c, UniversityDensity, AdultEducation)
	}
	for _, c := range []string{"Romania", "Bulgaria"} {
		mark(c, UniversityDensity, AdultEducation, HousingAffordability)
	}
	return cells
}

// DefaultEstimates returns the estimated-cell set of the compiled-in dataset.
func DefaultEstimates() Estimates {
	return NewEstimates(EstimatedCells())
}
