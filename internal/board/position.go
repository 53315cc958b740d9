package board

// PositionFor returns the insertion index for a dragged item given the
// pointer's vertical coordinate and the vertical midpoints of the other items
// in the destination column. The item goes before the closest midpoint that
// lies below the pointer; when no midpoint is below the pointer the result is
// len(midpoints), meaning append.
//
// midpoints need not be sorted. A pointer exactly on a midpoint counts as
// past it. On equal distances the earlier midpoint wins.
func PositionFor(pointerY float64, midpoints []float64) int {
	index := len(midpoints)
	found := false
	var closest float64

	for i, mid := range midpoints {
		offset := pointerY - mid
		if offset < 0 && (!found || offset > closest) {
			closest = offset
			index = i
			found = true
		}
	}
	return index
}

// Sibling is the rendered geometry of one card in a column
type Sibling struct {
	TaskID int
	Top    float64
	Height float64
}

// Midpoint is the vertical center of the card
func (s Sibling) Midpoint() float64 {
	return s.Top + s.Height/2
}

// insertBefore returns the task the dragged card should be placed before,
// or 0 to append. The dragged task itself is ignored.
func insertBefore(draggedID int, pointerY float64, siblings []Sibling) int {
	others := make([]Sibling, 0, len(siblings))
	for _, s := range siblings {
		if s.TaskID != draggedID {
			others = append(others, s)
		}
	}

	mids := make([]float64, len(others))
	for i, s := range others {
		mids[i] = s.Midpoint()
	}

	i := PositionFor(pointerY, mids)
	if i >= len(others) {
		return 0
	}
	return others[i].TaskID
}
