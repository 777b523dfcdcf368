package answer

import (
	"strconv"
	"strings"

	"github.com/Mohamad-Mousa/readiness/internal/catalog"
)

// Evidence is client-side metadata for a file attached to a question.
// Evidence is held for the host UI only and is never part of a
// submission payload.
type Evidence struct {
	Name string
	Size int64
	Path string
}

// Store holds the current answer for every question of the loaded
// sections, keyed by question id. Mutations go through the typed setters,
// which validate against the owning question's kind; a setter aimed at a
// question of the wrong kind (or an unknown id) is a no-op, mirroring UI
// controls that only render for their own kind.
//
// The store carries no derived state: progress recomputation after a
// mutation is the caller's responsibility.
type Store struct {
	questions map[string]catalog.Question
	values    map[string]Value
	evidence  map[string][]Evidence
}

// NewStore creates a store scoped to the given questions. Every key the
// store will ever hold corresponds to one of them.
func NewStore(questions []catalog.Question) *Store {
	qs := make(map[string]catalog.Question, len(questions))
	for _, q := range questions {
		qs[q.ID] = q
	}
	return &Store{
		questions: qs,
		values:    make(map[string]Value, len(questions)),
		evidence:  make(map[string][]Evidence),
	}
}

// Value returns the current answer for a question. Unanswered questions
// yield the kind's absent value.
func (s *Store) Value(questionID string) Value {
	if v, ok := s.values[questionID]; ok {
		return v
	}
	q, ok := s.questions[questionID]
	if !ok {
		return Value{}
	}
	return Absent(q.Kind)
}

// Answered reports whether the question currently has a valid answer.
func (s *Store) Answered(questionID string) bool {
	return IsAnswered(s.Value(questionID))
}

// SetText sets the answer of a text question.
func (s *Store) SetText(questionID, value string) {
	if s.kindOf(questionID) != catalog.KindText {
		return
	}
	s.values[questionID] = OfString(catalog.KindText, value)
}

// SetRadio sets the answer of a radio question.
func (s *Store) SetRadio(questionID, value string) {
	if s.kindOf(questionID) != catalog.KindRadio {
		return
	}
	s.values[questionID] = OfString(catalog.KindRadio, value)
}

// ToggleCheckboxOption adds the option if absent and removes it if
// present. No-op when the question is not a checkbox.
func (s *Store) ToggleCheckboxOption(questionID, option string) {
	if s.kindOf(questionID) != catalog.KindCheckbox {
		return
	}
	current := s.Value(questionID).Options()
	next := make([]string, 0, len(current)+1)
	removed := false
	for _, o := range current {
		if o == option {
			removed = true
			continue
		}
		next = append(next, o)
	}
	if !removed {
		next = append(next, option)
	}
	s.values[questionID] = OfOptions(next)
}

// SetNumber sets the answer of a number question from raw user input.
// Empty input clears the answer. Input that does not parse as a number
// leaves the previous value untouched — a silent reject, so a stray
// keystroke cannot wipe an existing answer.
func (s *Store) SetNumber(questionID, rawInput string) {
	if s.kindOf(questionID) != catalog.KindNumber {
		return
	}
	trimmed := strings.TrimSpace(rawInput)
	if trimmed == "" {
		s.values[questionID] = Absent(catalog.KindNumber)
		return
	}
	n, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return
	}
	s.values[questionID] = OfNumber(n)
}

// Set stores an already-canonical value. Used by reconciliation; the
// value's kind must match the question's.
func (s *Store) Set(questionID string, v Value) {
	q, ok := s.questions[questionID]
	if !ok || q.Kind != v.Kind() {
		return
	}
	s.values[questionID] = v
}

// AttachEvidence records file metadata against a question.
func (s *Store) AttachEvidence(questionID string, files ...Evidence) {
	if _, ok := s.questions[questionID]; !ok {
		return
	}
	s.evidence[questionID] = append(s.evidence[questionID], files...)
}

// RemoveEvidence drops the i-th attached file. Out-of-range indices are
// ignored.
func (s *Store) RemoveEvidence(questionID string, i int) {
	files := s.evidence[questionID]
	if i < 0 || i >= len(files) {
		return
	}
	s.evidence[questionID] = append(files[:i], files[i+1:]...)
}

// EvidenceFor returns the files attached to a question.
func (s *Store) EvidenceFor(questionID string) []Evidence {
	return s.evidence[questionID]
}

// kindOf returns the kind of a known question, or the empty kind for
// unknown ids so every setter comparison fails.
func (s *Store) kindOf(questionID string) catalog.Kind {
	return s.questions[questionID].Kind
}
