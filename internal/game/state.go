package game

// Selection is the highlighted shop row, or no row at all.
// The zero value is unset.
type Selection struct {
	index int
	set   bool
}

// NoSelection is the unset selection.
var NoSelection = Selection{}

// SelectAt returns a selection pointing at row i.
func SelectAt(i int) Selection {
	return Selection{index: i, set: true}
}

// Index returns the selected row and whether a row is selected.
func (s Selection) Index() (int, bool) {
	return s.index, s.set
}

// Is reports whether row i is the selected one.
func (s Selection) Is(i int) bool {
	return s.set && s.index == i
}

// up moves the selection one row towards the top without wrapping.
// An unset selection jumps to the last row.
func (s Selection) up() Selection {
	if !s.set {
		return SelectAt(ShopSize - 1)
	}
	if s.index > 0 {
		return SelectAt(s.index - 1)
	}
	return s
}

// down moves the selection one row towards the bottom without wrapping.
// An unset selection jumps to the first row.
func (s Selection) down() Selection {
	if !s.set {
		return SelectAt(0)
	}
	if s.index < ShopSize-1 {
		return SelectAt(s.index + 1)
	}
	return s
}

// State is the authoritative game state. It is owned by Game and only ever
// handed out by value.
type State struct {
	Score          float64
	ActiveIncrease float64 // added per click
	IdleIncrease   float64 // added per tick
	Shop           Shop
	Selection      Selection
}
