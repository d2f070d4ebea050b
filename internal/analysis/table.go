package analysis

import "fmt"

// Entity is one row of a factor table. Seq is the entity's position in the
// table it was first loaded into and survives filtering and sorting, so
// tie-breaks that prefer "earlier" rows never depend on incidental order.
type Entity struct {
	ID     string    `json:"id"`
	Group  string    `json:"group"`
	Seq    int       `json:"seq"`
	Values []float64 `json:"values"`
}

// Record is the loose input shape: named factor scores per entity.
type Record struct {
	ID     string
	Group  string
	Scores map[string]float64
}

// Table is an immutable entities × factors matrix. Every row carries one
// value per factor, aligned with Factors.
type Table struct {
	factors []string
	index   map[string]int
	rows    []Entity
}

// NewTable validates rows against factors and returns a table. Seq values
// are taken from the row position.
func NewTable(factors []string, rows []Entity) (*Table, error) {
	t, err := newTable(factors, len(rows))
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(rows))
	for i, r := range rows {
		if _, dup := seen[r.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate entity %q", ErrSchema, r.ID)
		}
		seen[r.ID] = struct{}{}
		if len(r.Values) != len(factors) {
			return nil, fmt.Errorf("%w: entity %q has %d values, want %d", ErrSchema, r.ID, len(r.Values), len(factors))
		}
		values := make([]float64, len(r.Values))
		copy(values, r.Values)
		t.rows = append(t.rows, Entity{ID: r.ID, Group: r.Group, Seq: i, Values: values})
	}
	return t, nil
}

// NewTableFromRecords builds a table from named scores. Every record must
// carry a score for every factor; extra scores are ignored.
func NewTableFromRecords(factors []string, records []Record) (*Table, error) {
	rows := make([]Entity, 0, len(records))
	for _, rec := range records {
		values := make([]float64, len(factors))
		for i, f := range factors {
			v, ok := rec.Scores[f]
			if !ok {
				return nil, fmt.Errorf("%w: entity %q missing factor %q", ErrSchema, rec.ID, f)
			}
			values[i] = v
		}
		rows = append(rows, Entity{ID: rec.ID, Group: rec.Group, Values: values})
	}
	return NewTable(factors, rows)
}

func newTable(factors []string, capacity int) (*Table, error) {
	if len(factors) == 0 {
		return nil, fmt.Errorf("%w: no factor columns", ErrSchema)
	}
	index := make(map[string]int, len(factors))
	for i, f := range factors {
		if f == "" {
			return nil, fmt.Errorf("%w: empty factor name", ErrSchema)
		}
		if _, dup := index[f]; dup {
			return nil, fmt.Errorf("%w: duplicate factor %q", ErrSchema, f)
		}
		index[f] = i
	}
	fs := make([]string, len(factors))
	copy(fs, factors)
	return &Table{factors: fs, index: index, rows: make([]Entity, 0, capacity)}, nil
}

// Factors returns a copy of the factor column names.
func (t *Table) Factors() []string {
	out := make([]string, len(t.factors))
	copy(out, t.factors)
	return out
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Rows returns a copy of the rows.
func (t *Table) Rows() []Entity {
	out := make([]Entity, len(t.rows))
	for i, r := range t.rows {
		out[i] = r.clone()
	}
	return out
}

// FactorIndex returns the column position of a factor.
func (t *Table) FactorIndex(name string) (int, error) {
	i, ok := t.index[name]
	if !ok {
		return 0, fmt.Errorf("%w: unknown factor %q", ErrSchema, name)
	}
	return i, nil
}

// Value returns an entity's score for a factor.
func (t *Table) Value(id, factor string) (float64, bool) {
	col, ok := t.index[factor]
	if !ok {
		return 0, false
	}
	for _, r := range t.rows {
		if r.ID == id {
			return r.Values[col], true
		}
	}
	return 0, false
}

// Select returns a new table holding only the listed entities, in table
// order. Seq values are kept from the receiver. Unknown IDs are an error.
func (t *Table) Select(ids []string) (*Table, error) {
	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	out := &Table{factors: t.factors, index: t.index, rows: make([]Entity, 0, len(ids))}
	for _, r := range t.rows {
		if _, ok := want[r.ID]; ok {
			out.rows = append(out.rows, r.clone())
			delete(want, r.ID)
		}
	}
	for _, id := range ids {
		if _, missing := want[id]; missing {
			return nil, fmt.Errorf("%w: unknown entity %q", ErrSchema, id)
		}
	}
	return out, nil
}

func (e Entity) clone() Entity {
	values := make([]float64, len(e.Values))
	copy(values, e.Values)
	e.Values = values
	return e
}
