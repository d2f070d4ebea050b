package analysis

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTableRejectsBadSchema(t *testing.T) {
	tests := []struct {
		name    string
		factors []string
		rows    []Entity
	}{
		{"no factors", nil, []Entity{row("A")}},
		{"duplicate factor", []string{"F1", "F1"}, nil},
		{"duplicate entity", []string{"F1"}, []Entity{row("A", 1), row("A", 2)}},
		{"short row", []string{"F1", "F2"}, []Entity{row("A", 1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTable(tt.factors, tt.rows)
			if !errors.Is(err, ErrSchema) {
				t.Errorf("expected ErrSchema, got %v", err)
			}
		})
	}
}

func TestNewTableFromRecords(t *testing.T) {
	tbl, err := NewTableFromRecords([]string{"F1", "F2"}, []Record{
		{ID: "A", Group: "north", Scores: map[string]float64{"F1": 1, "F2": 2, "extra": 9}},
		{ID: "B", Group: "south", Scores: map[string]float64{"F1": 3, "F2": 4}},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.Len())

	v, ok := tbl.Value("B", "F2")
	assert.True(t, ok)
	assert.Equal(t, 4.0, v)

	_, ok = tbl.Value("B", "extra")
	assert.False(t, ok)
}

func TestNewTableFromRecordsMissingFactor(t *testing.T) {
	_, err := NewTableFromRecords([]string{"F1", "F2"}, []Record{
		{ID: "A", Scores: map[string]float64{"F1": 1}},
	})
	assert.ErrorIs(t, err, ErrSchema)
}

func TestNewTableCopiesInput(t *testing.T) {
	values := []float64{1, 2}
	tbl := mustTable(t, []string{"F1", "F2"}, Entity{ID: "A", Values: values})
	values[0] = 99

	v, _ := tbl.Value("A", "F1")
	assert.Equal(t, 1.0, v)

	rows := tbl.Rows()
	rows[0].Values[1] = 99
	v, _ = tbl.Value("A", "F2")
	assert.Equal(t, 2.0, v)
}

func TestSelectKeepsSequence(t *testing.T) {
	tbl := mustTable(t, []string{"F1"}, row("A", 1), row("B", 2), row("C", 3))

	sub, err := tbl.Select([]string{"C", "A"})
	require.NoError(t, err)

	rows := sub.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "A", rows[0].ID)
	assert.Equal(t, 0, rows[0].Seq)
	assert.Equal(t, "C", rows[1].ID)
	assert.Equal(t, 2, rows[1].Seq)

	_, err = tbl.Select([]string{"Z"})
	assert.ErrorIs(t, err, ErrSchema)
}
