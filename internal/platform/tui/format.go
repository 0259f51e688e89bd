package tui

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-clicker/internal/game"
)

// FormatFloat renders a score value. Values above 1e4 or below 1e-2 use
// scientific notation with three decimals, everything else fixed point.
func FormatFloat(f float64) string {
	if f > 1e4 || f < 1e-2 {
		return strconv.FormatFloat(f, 'E', 3, 64)
	}
	return strconv.FormatFloat(f, 'f', 3, 64)
}

// highlightSymbol marks the selected shop row. Unselected rows get the same
// width of blanks so the list never shifts.
const highlightSymbol = ">>"

// shopLine renders one upgrade row, including the highlight column.
func shopLine(u game.Upgrade, selected bool) string {
	prefix := "  "
	if selected {
		prefix = highlightSymbol
	}
	return fmt.Sprintf("%s +%s; level: %.2f; costs: %.2f", prefix, u.Kind, u.Level, u.Cost)
}
