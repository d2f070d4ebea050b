// Package dataset is the compiled-in country dataset: sub-metric scores on a
// 0–100 scale, their grouping into the four decision factors, country groups
// and the cells that are regional estimates rather than published values.
package dataset

import (
	"math"

	"github.com/MikeSquared-Agency/Payoff/internal/analysis"
)

// Factor names.
const (
	FactorFreedom   = "Freedom & Personal Choice"
	FactorIncome    = "Income & Career Growth"
	FactorEducation = "Education Quality & Access"
	FactorCost      = "Cost of Living & Affordability"
)

// Sub-metric names, each scored 0–100 with higher meaning better.
const (
	HumanFreedomIndex    = "Human Freedom Index"
	DemocracyIndex       = "Democracy Index"
	PressFreedom         = "Press Freedom"
	HouseholdIncome      = "Household Income"
	GDPPerCapitaPPP      = "GDP per Capita PPP"
	GenderWageEquality   = "Gender Wage Equality"
	EaseOfBusiness       = "Ease of Business"
	PISAScores           = "PISA Scores"
	UniversityDensity    = "University Density"
	EducationSpending    = "Education Spending"
	AdultEducation       = "Adult Education"
	CostOfLivingInv      = "Cost of Living (inv)"
	HousingAffordability = "Housing Affordability"
	PurchasingPower      = "Purchasing Power"
)

// Subfactors is the sub-metric column order.
var Subfactors = []string{
	HumanFreedomIndex, DemocracyIndex, PressFreedom,
	HouseholdIncome, GDPPerCapitaPPP, GenderWageEquality, EaseOfBusiness,
	PISAScores, UniversityDensity, EducationSpending, AdultEducation,
	CostOfLivingInv, HousingAffordability, PurchasingPower,
}

// Composition maps each factor to the sub-metrics averaged into it.
var Composition = map[string][]string{
	FactorFreedom:   {HumanFreedomIndex, DemocracyIndex, PressFreedom},
	FactorIncome:    {HouseholdIncome, GDPPerCapitaPPP, GenderWageEquality, EaseOfBusiness},
	FactorEducation: {PISAScores, UniversityDensity, EducationSpending, AdultEducation},
	FactorCost:      {CostOfLivingInv, HousingAffordability, PurchasingPower},
}

// Factors returns the factor column order.
func Factors() []string {
	return []string{FactorFreedom, FactorIncome, FactorEducation, FactorCost}
}

// DefaultWeights returns the default factor weight distribution.
func DefaultWeights() analysis.Weights {
	return analysis.Weights{
		FactorFreedom:   0.35,
		FactorIncome:    0.30,
		FactorEducation: 0.20,
		FactorCost:      0.15,
	}
}

type country struct {
	name   string
	region string
	scores []float64
}

// Country is one country's sub-metric scores.
type Country struct {
	Name   string             `json:"country"`
	Region string             `json:"region"`
	Scores map[string]float64 `json:"scores"`
}

// Countries returns every country with its sub-metric scores, in load order.
func Countries() []Country {
	out := make([]Country, len(countries))
	for i, c := range countries {
		scores := make(map[string]float64, len(Subfactors))
		for j, name := range Subfactors {
			scores[name] = c.scores[j]
		}
		out[i] = Country{Name: c.name, Region: c.region, Scores: scores}
	}
	return out
}

// Names returns every country name in load order.
func Names() []string {
	out := make([]string, len(countries))
	for i, c := range countries {
		out[i] = c.name
	}
	return out
}

// FactorScores averages a country's sub-metrics into factor values, rounded
// half to even to one decimal. A factor with a missing sub-metric is
// left out, which the analysis layer reports as a schema error.
func FactorScores(scores map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(Composition))
	for factor, subs := range Composition {
		var sum float64
		complete := true
		for _, s := range subs {
			v, ok := scores[s]
			if !ok {
				complete = false
				break
			}
			sum += v
		}
		if complete {
			out[factor] = math.RoundToEven(sum/float64(len(subs))*10) / 10
		}
	}
	return out
}

// FactorTable aggregates countries into an analysis table keyed by country
// name and grouped by region.
func FactorTable(cs []Country) (*analysis.Table, error) {
	records := make([]analysis.Record, len(cs))
	for i, c := range cs {
		records[i] = analysis.Record{ID: c.Name, Group: c.Region, Scores: FactorScores(c.Scores)}
	}
	return analysis.NewTableFromRecords(Factors(), records)
}
