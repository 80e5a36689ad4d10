package geom

import "github.com/samber/lo"

// Store is the insertion-ordered list of lines owned by the engine.
// It only ever holds authoritative coordinates, never projected ones.
type Store struct {
	lines []Line
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Add appends a line. Length checks are the caller's job.
func (s *Store) Add(l Line) {
	s.lines = append(s.lines, l)
}

// AddAll appends lines in order.
func (s *Store) AddAll(lines []Line) {
	s.lines = append(s.lines, lines...)
}

// Remove deletes the first stored line equal to l within Tolerance and
// reports whether one was found.
func (s *Store) Remove(l Line) bool {
	_, idx, ok := lo.FindIndexOf(s.lines, func(m Line) bool {
		return m.Equal(l, Tolerance)
	})
	if !ok {
		return false
	}
	// Full slice expression so callers holding Lines() never see the shift.
	s.lines = append(s.lines[:idx:idx], s.lines[idx+1:]...)
	return true
}

// Clear removes every line.
func (s *Store) Clear() {
	s.lines = nil
}

// Len returns the number of stored lines.
func (s *Store) Len() int {
	return len(s.lines)
}

// Lines returns the stored lines. The slice must be treated as read-only;
// use Snapshot for a copy that may be modified.
func (s *Store) Lines() []Line {
	return s.lines
}

// Snapshot returns a deep copy of the stored lines.
func (s *Store) Snapshot() []Line {
	return lo.Map(s.lines, func(l Line, _ int) Line {
		return l.Clone()
	})
}

// Replace swaps the stored lines for lines in a single step.
func (s *Store) Replace(lines []Line) {
	s.lines = lines
}

// Clone returns an independent copy of the store.
func (s *Store) Clone() *Store {
	return &Store{lines: s.Snapshot()}
}
