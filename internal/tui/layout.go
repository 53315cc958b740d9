package tui

import (
	"github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/models"
)

// boardLayout records where the last View drew each column and card, in
// terminal cells
type boardLayout struct {
	columns []columnLayout
}

type columnLayout struct {
	status models.Status
	left   int // first cell, inclusive
	right  int // last cell, exclusive
	cards  []board.Sibling
}

// columnAt returns the column under x, or nil
func (l *boardLayout) columnAt(x int) *columnLayout {
	for i := range l.columns {
		if x >= l.columns[i].left && x < l.columns[i].right {
			return &l.columns[i]
		}
	}
	return nil
}

// cardAt returns the column index, card index and task under (x, y)
func (l *boardLayout) cardAt(x, y int) (column, index, taskID int, ok bool) {
	for ci, col := range l.columns {
		if x < col.left || x >= col.right {
			continue
		}
		for i, card := range col.cards {
			top := int(card.Top)
			if y >= top && y < top+int(card.Height) {
				return ci, i, card.TaskID, true
			}
		}
	}
	return 0, 0, 0, false
}
