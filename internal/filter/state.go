package filter

import "slices"

// State is the complete filter configuration of one browsing session.
// The engine only reads it.
type State struct {
	Quick    []QuickOption `json:"quick,omitempty"`
	Advanced Advanced      `json:"advanced"`
}

// IsSelected reports whether a quick option is selected.
func (s State) IsSelected(o QuickOption) bool {
	return slices.Contains(s.Quick, o)
}

// Toggle selects an unselected quick option or deselects a selected one.
func (s *State) Toggle(o QuickOption) {
	if i := slices.Index(s.Quick, o); i >= 0 {
		s.Quick = slices.Delete(s.Quick, i, i+1)
		return
	}
	s.Quick = append(s.Quick, o)
}

// Select adds a quick option if it is not already selected.
func (s *State) Select(o QuickOption) {
	if !s.IsSelected(o) {
		s.Quick = append(s.Quick, o)
	}
}

// ActiveCount is the badge count: quick selections plus active advanced
// fields.
func (s State) ActiveCount() int {
	return len(s.Quick) + s.Advanced.ActiveCount()
}

// Reset clears quick and advanced filters.
func (s *State) Reset() {
	*s = State{}
}
