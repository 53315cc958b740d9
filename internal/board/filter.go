package board

import (
	"strings"

	"github.com/thenoetrevino/tablero/internal/models"
)

// FilterAll selects every status or every label
const FilterAll = "all"

// Filter selects the visible tasks. Empty or "all" fields do not filter.
type Filter struct {
	Status string `json:"status,omitempty"`
	Label  string `json:"label,omitempty"`
}

// IsActive reports whether the filter hides anything
func (f Filter) IsActive() bool {
	n, err := f.normalize()
	return err == nil && (n.status != "" || n.label != "")
}

type normalizedFilter struct {
	status models.Status
	label  string
}

func (f Filter) normalize() (normalizedFilter, error) {
	var n normalizedFilter

	status := strings.TrimSpace(f.Status)
	if status != "" && !strings.EqualFold(status, FilterAll) {
		s, err := models.ParseStatus(status)
		if err != nil {
			return n, err
		}
		n.status = s
	}

	label := strings.TrimSpace(f.Label)
	if label != "" && !strings.EqualFold(label, FilterAll) {
		n.label = label
	}
	return n, nil
}
