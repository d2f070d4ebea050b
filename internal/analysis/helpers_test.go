package analysis

import "testing"

func mustTable(t *testing.T, factors []string, rows ...Entity) *Table {
	t.Helper()
	tbl, err := NewTable(factors, rows)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	return tbl
}

func row(id string, values ...float64) Entity {
	return Entity{ID: id, Values: values}
}

// triple is the A/B/C regression table: two extremes and a balanced middle.
func triple(t *testing.T) *Table {
	return mustTable(t, []string{"F1", "F2"},
		row("A", 100, 0),
		row("B", 0, 100),
		row("C", 50, 50),
	)
}

func ids(rows []ScoredEntity) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.ID
	}
	return out
}
