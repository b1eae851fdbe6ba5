// Package balance equalizes the total height of side-by-side columns of
// variable-height cards by adding bottom padding to the shorter columns.
//
// Heights are abstract units (terminal lines in this program). Callers pass
// natural, unpadded heights; padding from a previous pass must never be fed
// back in, or it compounds.
package balance

// Card is the natural size of one card. Cards that could not be measured
// are left out of the column's height and receive no padding.
type Card struct {
	Height   int
	Measured bool
}

// Column is the cards of one column in display order
type Column []Card

// ColumnHeight returns the total height of a column and how many of its cards
// were measured: the measured heights plus one gap between each pair.
func ColumnHeight(col Column, gap int) (total int, measured int) {
	for _, c := range col {
		if !c.Measured {
			continue
		}
		total += c.Height
		measured++
	}
	if measured > 1 {
		total += (measured - 1) * gap
	}
	return total, measured
}

// Distribute splits deficit over n cards. Every card gets deficit/n and the
// first deficit%n cards get one more, so the parts always sum to deficit.
func Distribute(deficit, n int) []int {
	if n <= 0 {
		return nil
	}
	parts := make([]int, n)
	if deficit <= 0 {
		return parts
	}
	each, remainder := deficit/n, deficit%n
	for i := range parts {
		parts[i] = each
		if i < remainder {
			parts[i]++
		}
	}
	return parts
}

// Balance returns the extra bottom padding of every card, shaped like columns.
//
// With fewer than two non-empty columns nothing is padded. Otherwise every
// column is padded up to the tallest one, which itself gets zero.
func Balance(columns []Column, gap int) [][]int {
	paddings := make([][]int, len(columns))
	totals := make([]int, len(columns))
	counts := make([]int, len(columns))

	nonEmpty := 0
	maxHeight := 0
	for i, col := range columns {
		paddings[i] = make([]int, len(col))
		totals[i], counts[i] = ColumnHeight(col, gap)
		if counts[i] == 0 {
			continue
		}
		nonEmpty++
		if totals[i] > maxHeight {
			maxHeight = totals[i]
		}
	}
	if nonEmpty < 2 {
		return paddings
	}

	for i, col := range columns {
		if counts[i] == 0 {
			continue
		}
		deficit := maxHeight - totals[i]
		if deficit <= 0 {
			continue
		}
		parts := Distribute(deficit, counts[i])
		k := 0
		for j, c := range col {
			if !c.Measured {
				continue
			}
			paddings[i][j] = parts[k]
			k++
		}
	}
	return paddings
}
