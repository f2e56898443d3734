// Package selection tracks the highlighted queue entry.
package selection

import "errors"

// ErrNoSelection is returned when committing with nothing selected.
var ErrNoSelection = errors.New("no track selected")

// Switcher starts playback at a queue position.
type Switcher interface {
	IssueSwitch(index int) error
}

// Selection is a cursor over a queue of bound entries. The zero value is
// unset with an empty bound.
type Selection struct {
	selected int
	set      bool
	bound    int
}

// New returns an unset selection over n entries.
func New(n int) Selection {
	return Selection{bound: max(n, 0)}
}

// Index returns the selected position.
func (s *Selection) Index() (int, bool) {
	return s.selected, s.set
}

// Bound returns the number of selectable entries.
func (s *Selection) Bound() int { return s.bound }

// Next moves down, wrapping to the top. An unset selection starts at 0.
func (s *Selection) Next() {
	if s.bound == 0 {
		return
	}
	if !s.set {
		s.selected, s.set = 0, true
		return
	}
	s.selected = (s.selected + 1) % s.bound
}

// Previous moves up, wrapping to the bottom. An unset selection starts at 0.
func (s *Selection) Previous() {
	if s.bound == 0 {
		return
	}
	if !s.set {
		s.selected, s.set = 0, true
		return
	}
	s.selected = (s.selected + s.bound - 1) % s.bound
}

// Rebind changes the bound, clamping the selection to the last entry or
// clearing it when the queue is empty.
func (s *Selection) Rebind(n int) {
	s.bound = max(n, 0)
	if s.bound == 0 {
		s.selected, s.set = 0, false
		return
	}
	if s.set && s.selected >= s.bound {
		s.selected = s.bound - 1
	}
}

// Set selects i. It reports false and changes nothing when i is out of bounds.
func (s *Selection) Set(i int) bool {
	if i < 0 || i >= s.bound {
		return false
	}
	s.selected, s.set = i, true
	return true
}

// Commit switches playback to the selected entry.
func (s *Selection) Commit(sw Switcher) error {
	if !s.set {
		return ErrNoSelection
	}
	return sw.IssueSwitch(s.selected)
}
