package analysis

import (
	"math"
	"sort"
)

// ParetoOptimal returns the IDs of entities that no other entity dominates,
// in table order. Entity j dominates i if j is >= i on every factor and
// strictly greater on at least one, so identical rows never dominate each
// other and both stay on the frontier.
// O(n^2 · k) dominance check; fine for tens to hundreds of entities.
func ParetoOptimal(t *Table) []string {
	out := make([]string, 0, len(t.rows))
	for i := range t.rows {
		dominated := false
		for j := range t.rows {
			if i == j {
				continue
			}
			if dominates(t.rows[j].Values, t.rows[i].Values) {
				dominated = true
				break
			}
		}
		if !dominated {
			out = append(out, t.rows[i].ID)
		}
	}
	return out
}

// dominates returns true if a dominates b.
func dominates(a, b []float64) bool {
	strict := false
	for k := range a {
		if a[k] < b[k] {
			return false
		}
		if a[k] > b[k] {
			strict = true
		}
	}
	return strict
}

// FrontierPoint is one entity kept on a two-factor frontier.
type FrontierPoint struct {
	ID string  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// Frontier is the upper-right staircase for two factors, ordered by X
// ascending. Y is non-increasing along that order.
type Frontier struct {
	XFactor string          `json:"x_factor"`
	YFactor string          `json:"y_factor"`
	Points  []FrontierPoint `json:"points"`
}

// Frontier2D sweeps entities from highest x to lowest, keeping each one
// whose y is at least the running maximum; equal y values are all kept so
// flat segments survive. Equal x values are visited highest y first.
// This is a projection for plotting and need not agree with ParetoOptimal.
func Frontier2D(t *Table, xFactor, yFactor string) (*Frontier, error) {
	xi, err := t.FactorIndex(xFactor)
	if err != nil {
		return nil, err
	}
	yi, err := t.FactorIndex(yFactor)
	if err != nil {
		return nil, err
	}

	type point struct {
		FrontierPoint
		seq int
	}
	pts := make([]point, len(t.rows))
	for i, r := range t.rows {
		pts[i] = point{FrontierPoint{ID: r.ID, X: r.Values[xi], Y: r.Values[yi]}, r.Seq}
	}
	sort.SliceStable(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X > pts[j].X
		}
		if pts[i].Y != pts[j].Y {
			return pts[i].Y > pts[j].Y
		}
		return pts[i].seq < pts[j].seq
	})

	kept := make([]point, 0, len(pts))
	maxY := math.Inf(-1)
	for _, p := range pts {
		if p.Y >= maxY {
			kept = append(kept, p)
			maxY = p.Y
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].X != kept[j].X {
			return kept[i].X < kept[j].X
		}
		return kept[i].seq < kept[j].seq
	})
	f := &Frontier{XFactor: xFactor, YFactor: yFactor, Points: make([]FrontierPoint, len(kept))}
	for i, p := range kept {
		f.Points[i] = p.FrontierPoint
	}
	return f, nil
}
