package timeline

import "fmt"

// Selection is either "none" or the position of the selected record.
// The zero value is "none".
type Selection struct {
	pos   int
	valid bool
}

// NoSelection returns the empty selection.
func NoSelection() Selection { return Selection{} }

// At returns a selection of position pos.
func At(pos int) Selection { return Selection{pos: pos, valid: true} }

// Position returns the selected position and whether there is one.
func (s Selection) Position() (int, bool) { return s.pos, s.valid }

// IsNone reports whether nothing is selected.
func (s Selection) IsNone() bool { return !s.valid }

func (s Selection) String() string {
	if !s.valid {
		return "none"
	}
	return fmt.Sprintf("at(%d)", s.pos)
}
