package lipgloss

// Share of the flexible width given to the first column when the two
// flexible columns do not both fit.
const firstColumnShare = 0.3

// PlanColumns splits the width left over by the fixed columns between two
// flexible columns, A and B.
//
// Each of numColumns columns costs 3 cells of border and padding, plus 1 for
// the closing border. When both columns fit at their natural width they are
// returned unchanged. Otherwise A gets 30% of the available width, or less
// if it needs less, and B gets the rest.
func PlanColumns(terminalWidth, fixedWidth, numColumns, naturalA, naturalB int) (int, int) {
	padding := numColumns*3 + 1
	available := terminalWidth - fixedWidth - padding

	if naturalA+naturalB <= available {
		return naturalA, naturalB
	}

	a := min(int(float64(available)*firstColumnShare), naturalA)
	b := available - a
	return max(a, 1), max(b, 1)
}
