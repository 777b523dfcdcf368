package assessment

import (
	"github.com/Mohamad-Mousa/readiness/internal/answer"
	"github.com/Mohamad-Mousa/readiness/internal/catalog"
)

// Session is one assessment-editing session: the loaded sections, the
// answer store, the cursor, and the derived progress figures. A session
// is single-threaded — all mutations happen synchronously in response to
// discrete host events — and owns no connections, so teardown is just
// dropping the value.
//
// The question catalog and (when resuming) the saved record arrive from
// independent fetches: AttachSections and ApplyRecord may be called in
// either order and converge on the same state.
type Session struct {
	Meta Meta

	sections   []catalog.Domain
	store      *answer.Store
	cursor     Cursor
	reconciler Reconciler

	domainPct  []float64
	overallPct float64
	dirty      bool
}

// NewSession starts an empty session for the given domain.
func NewSession(domainID string) *Session {
	return &Session{
		Meta:  Meta{DomainID: domainID},
		store: answer.NewStore(nil),
	}
}

// AttachSections installs the loaded question catalog. Any answers that
// arrived before the catalog are applied now.
func (s *Session) AttachSections(sections []catalog.Domain) {
	s.sections = sections
	var all []catalog.Question
	for i := range sections {
		all = append(all, sections[i].Questions...)
	}
	s.store = answer.NewStore(all)
	s.cursor = Cursor{}
	s.reconciler.Resolve(s.sections, s.store)
	s.recompute()
}

// ApplyRecord merges a previously-saved assessment into the session:
// metadata immediately, answers through the reconciler (deferred until
// the catalog is attached, when it has not yet arrived).
func (s *Session) ApplyRecord(rec *Record) {
	s.Meta.ID = rec.ID
	s.Meta.Title = rec.Title
	s.Meta.Description = rec.Description
	s.Meta.FullName = rec.FullName
	if rec.DomainID != "" {
		s.Meta.DomainID = rec.DomainID
	}

	s.reconciler.Offer(rec.Questions)
	if len(s.sections) > 0 {
		s.reconciler.Resolve(s.sections, s.store)
		s.recompute()
	}
}

// Sections returns the loaded domains (empty until the catalog arrives).
func (s *Session) Sections() []catalog.Domain { return s.sections }

// Store exposes the answer store for read access by the host.
func (s *Session) Store() *answer.Store { return s.store }

// CurrentDomain returns the domain under the cursor, or nil before the
// catalog has loaded.
func (s *Session) CurrentDomain() *catalog.Domain {
	if s.cursor.DomainIndex >= len(s.sections) {
		return nil
	}
	return &s.sections[s.cursor.DomainIndex]
}

// CurrentQuestion returns the question under the cursor, or false when
// no question is available.
func (s *Session) CurrentQuestion() (catalog.Question, bool) {
	d := s.CurrentDomain()
	if d == nil || s.cursor.QuestionIndex >= len(d.Questions) {
		return catalog.Question{}, false
	}
	return d.Questions[s.cursor.QuestionIndex], true
}

// Cursor returns the current position.
func (s *Session) Cursor() Cursor { return s.cursor }

// Next moves to the following question.
func (s *Session) Next() {
	s.cursor.Next(s.sections)
	s.recompute()
}

// Previous moves to the preceding question.
func (s *Session) Previous() {
	s.cursor.Previous(s.sections)
	s.recompute()
}

// JumpToDomain selects a domain, starting at its first question.
func (s *Session) JumpToDomain(i int) {
	s.cursor.JumpToDomain(s.sections, i)
	s.recompute()
}

// SetText records a text answer for the question.
func (s *Session) SetText(questionID, value string) {
	s.store.SetText(questionID, value)
	s.answerChanged()
}

// SetRadio records a radio selection.
func (s *Session) SetRadio(questionID, value string) {
	s.store.SetRadio(questionID, value)
	s.answerChanged()
}

// ToggleCheckboxOption flips one checkbox option.
func (s *Session) ToggleCheckboxOption(questionID, option string) {
	s.store.ToggleCheckboxOption(questionID, option)
	s.answerChanged()
}

// SetNumber records a numeric answer from raw input.
func (s *Session) SetNumber(questionID, rawInput string) {
	s.store.SetNumber(questionID, rawInput)
	s.answerChanged()
}

// AttachEvidence records file metadata against a question. Evidence
// never enters a submission payload.
func (s *Session) AttachEvidence(questionID string, files ...answer.Evidence) {
	s.store.AttachEvidence(questionID, files...)
	s.dirty = true
}

// RemoveEvidence drops one attached file.
func (s *Session) RemoveEvidence(questionID string, i int) {
	s.store.RemoveEvidence(questionID, i)
	s.dirty = true
}

// DomainProgress returns the cached percentage for one section.
func (s *Session) DomainProgress(i int) float64 {
	if i < 0 || i >= len(s.domainPct) {
		return 0
	}
	return s.domainPct[i]
}

// OverallProgress returns the cached mean across sections.
func (s *Session) OverallProgress() float64 { return s.overallPct }

// CanComplete reports whether the current domain's required questions
// are all answered.
func (s *Session) CanComplete() bool {
	d := s.CurrentDomain()
	return d != nil && CanCompleteDomain(d, s.store)
}

// Dirty reports whether there are unsaved changes.
func (s *Session) Dirty() bool { return s.dirty }

// MarkSaved clears the dirty flag and records the persisted id.
func (s *Session) MarkSaved(id string) {
	s.Meta.ID = id
	s.dirty = false
}

// MarkDirty flags unsaved changes (metadata edits happen outside the
// store, so the host reports them here).
func (s *Session) MarkDirty() { s.dirty = true }

// DraftPayload builds the partial-save payload for the current domain.
func (s *Session) DraftPayload() (*Payload, error) {
	d := s.CurrentDomain()
	if d == nil {
		return nil, missingField("domain")
	}
	return DraftPayload(s.Meta, d, s.store)
}

// CompletePayload builds the completion payload for the current domain,
// rejecting locally when validation fails.
func (s *Session) CompletePayload() (*Payload, error) {
	d := s.CurrentDomain()
	if d == nil {
		return nil, missingField("domain")
	}
	return CompletePayload(s.Meta, d, s.store)
}

func (s *Session) answerChanged() {
	s.dirty = true
	s.recompute()
}

// recompute refreshes the derived progress figures. Cheap and
// idempotent; runs after every mutation and cursor move.
func (s *Session) recompute() {
	if len(s.domainPct) != len(s.sections) {
		s.domainPct = make([]float64, len(s.sections))
	}
	for i := range s.sections {
		s.domainPct[i] = DomainProgress(&s.sections[i], s.store)
	}
	s.overallPct = OverallProgress(s.sections, s.store)
}
