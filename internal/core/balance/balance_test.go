package balance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cards(heights ...int) Column {
	col := make(Column, len(heights))
	for i, h := range heights {
		col[i] = Card{Height: h, Measured: true}
	}
	return col
}

func sum(xs []int) int {
	n := 0
	for _, x := range xs {
		n += x
	}
	return n
}

func TestColumnHeight(t *testing.T) {
	tests := []struct {
		name         string
		col          Column
		gap          int
		wantTotal    int
		wantMeasured int
	}{
		{name: "empty", col: nil, gap: 16, wantTotal: 0, wantMeasured: 0},
		{name: "single_card_has_no_gap", col: cards(120), gap: 16, wantTotal: 120, wantMeasured: 1},
		{name: "gaps_between_cards", col: cards(100, 100, 100), gap: 16, wantTotal: 332, wantMeasured: 3},
		{
			name:         "unmeasured_cards_excluded",
			col:          Column{{Height: 100, Measured: true}, {Height: 999}, {Height: 50, Measured: true}},
			gap:          10,
			wantTotal:    160,
			wantMeasured: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, measured := ColumnHeight(tt.col, tt.gap)
			assert.Equal(t, tt.wantTotal, total)
			assert.Equal(t, tt.wantMeasured, measured)
		})
	}
}

func TestDistribute(t *testing.T) {
	tests := []struct {
		name    string
		deficit int
		n       int
		want    []int
	}{
		{name: "even_split", deficit: 50, n: 2, want: []int{25, 25}},
		{name: "remainder_goes_first", deficit: 11, n: 3, want: []int{4, 4, 3}},
		{name: "smaller_than_count", deficit: 2, n: 5, want: []int{1, 1, 0, 0, 0}},
		{name: "zero_deficit", deficit: 0, n: 3, want: []int{0, 0, 0}},
		{name: "no_cards", deficit: 10, n: 0, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Distribute(tt.deficit, tt.n))
		})
	}
}

func TestDistribute_NoRoundingLoss(t *testing.T) {
	for deficit := 0; deficit <= 97; deficit++ {
		for n := 1; n <= 7; n++ {
			parts := Distribute(deficit, n)
			require.Len(t, parts, n)
			assert.Equal(t, deficit, sum(parts), "deficit=%d n=%d", deficit, n)
			for i := 1; i < n; i++ {
				assert.GreaterOrEqual(t, parts[i-1], parts[i], "earlier cards never get less")
				assert.LessOrEqual(t, parts[0]-parts[i], 1)
			}
		}
	}
}

// Column sums 300, 250, 100 and an empty fourth column with a gap of 16
func TestBalance_Scenario(t *testing.T) {
	columns := []Column{
		cards(150, 150),
		cards(125, 125),
		cards(100),
		nil,
	}

	paddings := Balance(columns, 16)
	require.Len(t, paddings, 4)

	assert.Equal(t, []int{0, 0}, paddings[0], "tallest column is not padded")
	assert.Equal(t, []int{25, 25}, paddings[1])
	assert.Equal(t, []int{216}, paddings[2])
	assert.Empty(t, paddings[3])

	// Every padded column now matches the tallest
	target, _ := ColumnHeight(columns[0], 16)
	for i := 0; i < 3; i++ {
		total, _ := ColumnHeight(columns[i], 16)
		assert.Equal(t, target, total+sum(paddings[i]), "column %d", i)
	}
}

func TestBalance_SumEqualsDeficit(t *testing.T) {
	columns := []Column{
		cards(31, 47, 12),
		cards(9),
		cards(80, 3, 3, 3, 3),
		cards(200),
	}
	gap := 3

	paddings := Balance(columns, gap)

	maxHeight := 0
	for _, col := range columns {
		total, _ := ColumnHeight(col, gap)
		if total > maxHeight {
			maxHeight = total
		}
	}
	for i, col := range columns {
		total, _ := ColumnHeight(col, gap)
		assert.Equal(t, maxHeight-total, sum(paddings[i]), "column %d", i)
	}
	assert.Equal(t, []int{0}, paddings[3])
}

func TestBalance_TiesAtMaximum(t *testing.T) {
	paddings := Balance([]Column{cards(100), cards(50, 34), cards(10)}, 16)
	assert.Equal(t, []int{0}, paddings[0])
	assert.Equal(t, []int{0, 0}, paddings[1])
	assert.Equal(t, []int{90}, paddings[2])
}

func TestBalance_FewerThanTwoColumns(t *testing.T) {
	tests := []struct {
		name    string
		columns []Column
	}{
		{name: "no_columns", columns: nil},
		{name: "all_empty", columns: []Column{nil, {}, nil, {}}},
		{name: "one_non_empty", columns: []Column{nil, cards(10, 400), nil, nil}},
		{name: "other_column_unmeasured", columns: []Column{cards(300), {{Height: 10}}, nil, nil}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paddings := Balance(tt.columns, 16)
			require.Len(t, paddings, len(tt.columns))
			for i, col := range paddings {
				assert.Len(t, col, len(tt.columns[i]))
				assert.Equal(t, 0, sum(col))
			}
		})
	}
}

func TestBalance_UnmeasuredCardsGetZero(t *testing.T) {
	columns := []Column{
		cards(200),
		{{Height: 40, Measured: true}, {Height: 0, Measured: false}, {Height: 40, Measured: true}},
	}

	paddings := Balance(columns, 10)
	// 200 - (40+40+10) = 110 spread over the two measured cards
	assert.Equal(t, []int{55, 0, 55}, paddings[1])
}

func TestBalancer_RecomputesOnlyOnChange(t *testing.T) {
	b := NewBalancer(16)
	assert.Equal(t, 16, b.Gap())

	keys := [][]string{{"a", "b"}, {"c"}}
	columns := []Column{cards(100, 100), cards(50)}

	first := b.Apply(keys, columns)
	assert.Equal(t, [][]int{{0, 0}, {166}}, first)
	assert.Equal(t, 1, b.Passes())

	// Redraw with the same data: no new pass
	second := b.Apply(keys, columns)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, b.Passes())

	// Mutating a returned layout does not corrupt the cache
	second[1][0] = 999
	assert.Equal(t, 166, b.Apply(keys, columns)[1][0])

	// Same heights, different plans
	b.Apply([][]string{{"a", "x"}, {"c"}}, columns)
	assert.Equal(t, 2, b.Passes())

	// Same plans, different natural heights
	b.Apply([][]string{{"a", "x"}, {"c"}}, []Column{cards(100, 90), cards(50)})
	assert.Equal(t, 3, b.Passes())

	b.Invalidate()
	b.Apply([][]string{{"a", "x"}, {"c"}}, []Column{cards(100, 90), cards(50)})
	assert.Equal(t, 4, b.Passes())
}

func TestBalancer_NegativeGap(t *testing.T) {
	assert.Equal(t, 0, NewBalancer(-4).Gap())
}
