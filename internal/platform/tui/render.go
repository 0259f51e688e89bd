package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-clicker/internal/core"
	"github.com/vovakirdan/tui-clicker/internal/game"
)

// Layout constants
const (
	layoutRows   = 12 // rows at the top of the viewport used by the game
	layoutMargin = 1
	scoreRowPct  = 50 // share of the inner area taken by the score row
)

// scoreCellWidths are the maximum widths of the score row cells.
// The fourth cell is reserved and stays empty.
var scoreCellWidths = []int{20, 20, 20, 10}

var scoreCellTitles = []string{"Score", "Idle increase", "Active increase"}

const shopTitle = "Enter"

// styles maps core.Style to lipgloss styles.
var styles = map[core.Style]lipgloss.Style{
	core.StyleDefault:   lipgloss.NewStyle(),
	core.StyleBorder:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.StyleTitle:     lipgloss.NewStyle().Bold(true),
	core.StyleValue:     lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.StyleHighlight: lipgloss.NewStyle().Italic(true),
}

// roundedBox takes the box outline from lipgloss' rounded border.
var roundedBox = glyphsFromBorder(lipgloss.RoundedBorder())

func glyphsFromBorder(b lipgloss.Border) core.BoxGlyphs {
	first := func(s string) rune {
		for _, r := range s {
			return r
		}
		return ' '
	}
	return core.BoxGlyphs{
		TopLeft:     first(b.TopLeft),
		TopRight:    first(b.TopRight),
		BottomLeft:  first(b.BottomLeft),
		BottomRight: first(b.BottomRight),
		Horizontal:  first(b.Top),
		Vertical:    first(b.Left),
	}
}

// layout holds the rectangles of one terminal size.
type layout struct {
	width, height int
	area          core.Rect
	scoreCells    []core.Rect
	shop          core.Rect
}

// computeLayout splits the top rows of a width x height viewport into the
// score row and the shop row.
func computeLayout(width, height int) layout {
	area := core.NewRect(0, 0, width, core.Min(layoutRows, height))
	scoreRow, shopRow := area.Inset(layoutMargin).SplitVertical(scoreRowPct)

	return layout{
		width:      width,
		height:     height,
		area:       area,
		scoreCells: scoreRow.Inset(layoutMargin).SplitMax(scoreCellWidths...),
		shop:       shopRow,
	}
}

// Renderer projects game snapshots onto terminal frames.
// Apart from the layout cached per terminal size it keeps no state between
// frames.
type Renderer struct {
	keys    KeyMap
	help    help.Model
	screen  *core.Screen
	layout  *layout
	layouts int // number of layout computations, for tests
}

// NewRenderer creates a renderer whose help footer lists keys.
func NewRenderer(keys KeyMap) *Renderer {
	return &Renderer{
		keys:   keys,
		help:   help.New(),
		screen: core.NewScreen(0, 0),
	}
}

// Render draws a snapshot for a width x height terminal.
func (r *Renderer) Render(snap game.Snapshot, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	l := r.draw(snap, width, height)
	out := RenderScreen(r.screen)

	// Help footer goes below the game rows when there is room
	if height > l.area.H {
		r.help.Width = width
		out += "\n" + r.help.View(r.keys)
	}
	return out
}

// layoutFor returns the cached layout, recomputing it when either terminal
// dimension changed.
func (r *Renderer) layoutFor(width, height int) *layout {
	if r.layout == nil || r.layout.width != width || r.layout.height != height {
		l := computeLayout(width, height)
		r.layout = &l
		r.layouts++
	}
	return r.layout
}

// draw fills the screen buffer with one frame.
func (r *Renderer) draw(snap game.Snapshot, width, height int) *layout {
	l := r.layoutFor(width, height)
	r.screen.Resize(width, l.area.H)
	r.screen.Clear()

	values := []float64{snap.Score, snap.IdleIncrease, snap.ActiveIncrease}
	for i, title := range scoreCellTitles {
		r.panel(l.scoreCells[i], title, FormatFloat(values[i]))
	}

	r.screen.DrawBox(l.shop, roundedBox, shopTitle, core.StyleBorder, core.StyleTitle)
	inner := l.shop.Inset(1)
	for i, u := range snap.Shop {
		if i >= inner.H {
			break
		}
		selected := snap.Selection.Is(i)
		style := core.StyleDefault
		if selected {
			style = core.StyleHighlight
		}
		r.screen.DrawText(inner.X, inner.Y+i, inner.W, shopLine(u, selected), style)
	}
	return l
}

// panel draws a titled box with a single line of content.
func (r *Renderer) panel(rect core.Rect, title, value string) {
	r.screen.DrawBox(rect, roundedBox, title, core.StyleBorder, core.StyleTitle)
	inner := rect.Inset(1)
	if inner.Empty() {
		return
	}
	r.screen.DrawText(inner.X, inner.Y, inner.W, value, core.StyleValue)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same style for efficiency
		x := 0
		for x < s.Width() {
			startStyle := s.GetCell(x, y).Style

			// Collect consecutive cells with same style
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Style != startStyle {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			// Apply style to the run
			style, ok := styles[startStyle]
			if !ok {
				style = styles[core.StyleDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
