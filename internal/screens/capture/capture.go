package capture

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/Mohamad-Mousa/readiness/internal/assessment"
	"github.com/Mohamad-Mousa/readiness/internal/catalog"
	"github.com/Mohamad-Mousa/readiness/internal/router"
	"github.com/Mohamad-Mousa/readiness/internal/screen"
	"github.com/Mohamad-Mousa/readiness/internal/store"
	"github.com/Mohamad-Mousa/readiness/internal/ui/components"
)

// QuestionSource is the external catalog boundary: it loads the
// question definitions for one domain.
type QuestionSource interface {
	DomainQuestions(ctx context.Context, domainID string) (*catalog.Domain, error)
}

type mode int

const (
	modeLoading mode = iota
	modeQuestion
	modeDetails // editing title / full name / description
	modeConfirmQuit
)

// detail field indices for the details form.
const (
	detailTitle = iota
	detailFullName
	detailDescription
	detailCount
)

// Screen drives one assessment-editing session. Its Init issues the
// catalog fetch and, when resuming, the record fetch as one batch; the
// session engine merges the two results in whichever order they land.
// All fetches and submissions run under one context that is cancelled
// when the screen is torn down.
type Screen struct {
	session *assessment.Session
	src     QuestionSource
	repo    store.AssessmentRepo

	ctx    context.Context
	cancel context.CancelFunc

	domainID string
	resumeID string

	mode    mode
	saving  bool
	warning string
	errMsg  string
	status  string

	input   components.AnswerInput
	choice  components.ChoiceList
	checks  components.CheckList
	details [detailCount]components.AnswerInput
	focus   int
}

var _ screen.Screen = (*Screen)(nil)

// New creates a capture screen for the given domain. A non-empty
// resumeID loads that saved assessment alongside the questions.
func New(src QuestionSource, repo store.AssessmentRepo, domainID, resumeID string) *Screen {
	ctx, cancel := context.WithCancel(context.Background())
	return &Screen{
		session:  assessment.NewSession(domainID),
		src:      src,
		repo:     repo,
		ctx:      ctx,
		cancel:   cancel,
		domainID: domainID,
		resumeID: resumeID,
		mode:     modeLoading,
	}
}

// Init starts the catalog fetch and, when resuming, the record fetch.
func (s *Screen) Init() tea.Cmd {
	cmds := []tea.Cmd{s.loadQuestionsCmd()}
	if s.resumeID != "" {
		cmds = append(cmds, s.loadRecordCmd())
	}
	return tea.Batch(cmds...)
}

// Title implements screen.Screen.
func (s *Screen) Title() string {
	if d := s.session.CurrentDomain(); d != nil && d.Title != "" {
		return d.Title
	}
	return "Assessment"
}

// Status puts the overall progress in the header.
func (s *Screen) Status() string {
	return progressLabel(s.session.OverallProgress())
}

func (s *Screen) loadQuestionsCmd() tea.Cmd {
	return func() tea.Msg {
		d, err := s.src.DomainQuestions(s.ctx, s.domainID)
		return questionsLoadedMsg{Domain: d, Err: err}
	}
}

func (s *Screen) loadRecordCmd() tea.Cmd {
	return func() tea.Msg {
		rec, err := s.repo.Get(s.ctx, s.resumeID)
		return recordLoadedMsg{Record: rec, Err: err}
	}
}

func (s *Screen) submitCmd(p *assessment.Payload, completed bool) tea.Cmd {
	return func() tea.Msg {
		id, err := s.repo.Submit(s.ctx, p)
		return savedMsg{ID: id, Completed: completed, Err: err}
	}
}

// Update implements screen.Screen.
func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsLoadedMsg:
		if msg.Err != nil {
			// Catalog failure degrades to an empty section; the user can
			// still enter metadata and leave.
			s.warning = "Could not load questions for this domain."
			s.session.AttachSections([]catalog.Domain{{ID: s.domainID}})
		} else {
			s.session.AttachSections([]catalog.Domain{*msg.Domain})
		}
		if s.mode == modeLoading {
			s.mode = modeQuestion
		}
		s.syncComponents()
		return s, nil

	case recordLoadedMsg:
		if msg.Err != nil {
			s.errMsg = "Unable to load the saved assessment: " + msg.Err.Error()
			return s, nil
		}
		s.session.ApplyRecord(msg.Record)
		s.syncComponents()
		return s, nil

	case savedMsg:
		s.saving = false
		if msg.Err != nil {
			s.errMsg = "Save failed: " + msg.Err.Error()
			return s, nil
		}
		s.session.MarkSaved(msg.ID)
		if msg.Completed {
			s.teardown()
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		s.status = "Progress saved as draft."
		return s, nil
	}

	switch s.mode {
	case modeQuestion:
		return s.updateQuestion(msg)
	case modeDetails:
		return s.updateDetails(msg)
	case modeConfirmQuit:
		return s.updateConfirmQuit(msg)
	default:
		return s, nil
	}
}

func (s *Screen) updateQuestion(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		s.status = ""
		switch kmsg.String() {
		case "tab":
			s.session.Next()
			s.syncComponents()
			return s, nil
		case "shift+tab":
			s.session.Previous()
			s.syncComponents()
			return s, nil
		case "ctrl+s":
			return s.saveDraft()
		case "ctrl+d":
			return s.complete()
		case "ctrl+e":
			s.enterDetails()
			return s, nil
		case "esc":
			if s.session.Dirty() {
				s.mode = modeConfirmQuit
				return s, nil
			}
			s.teardown()
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}

	q, ok := s.session.CurrentQuestion()
	if !ok {
		return s, nil
	}

	var cmd tea.Cmd
	switch q.Kind {
	case catalog.KindRadio:
		s.choice, cmd = s.choice.Update(msg)
		if v := s.choice.Value(); v != "" && v != s.session.Store().Value(q.ID).String() {
			s.session.SetRadio(q.ID, v)
		}
	case catalog.KindCheckbox:
		s.checks, cmd = s.checks.Update(msg)
		if s.checks.Toggled != "" {
			s.session.ToggleCheckboxOption(q.ID, s.checks.Toggled)
		}
	case catalog.KindNumber:
		s.input, cmd = s.input.Update(msg)
		s.session.SetNumber(q.ID, s.input.Value())
	default:
		s.input, cmd = s.input.Update(msg)
		s.session.SetText(q.ID, s.input.Value())
	}
	return s, cmd
}

func (s *Screen) updateDetails(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab":
			return s, s.focusDetail((s.focus + 1) % detailCount)
		case "shift+tab":
			return s, s.focusDetail((s.focus + detailCount - 1) % detailCount)
		case "esc", "enter":
			s.mode = modeQuestion
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.details[s.focus], cmd = s.details[s.focus].Update(msg)

	meta := &s.session.Meta
	before := [detailCount]string{meta.Title, meta.FullName, meta.Description}
	meta.Title = s.details[detailTitle].Value()
	meta.FullName = s.details[detailFullName].Value()
	meta.Description = s.details[detailDescription].Value()
	if before != [detailCount]string{meta.Title, meta.FullName, meta.Description} {
		s.session.MarkDirty()
	}
	return s, cmd
}

func (s *Screen) updateConfirmQuit(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "y":
		s.teardown()
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "n", "esc":
		s.mode = modeQuestion
	}
	return s, nil
}

func (s *Screen) saveDraft() (screen.Screen, tea.Cmd) {
	s.errMsg = ""
	p, err := s.session.DraftPayload()
	if err != nil {
		s.showValidationError(err)
		return s, nil
	}
	s.saving = true
	return s, s.submitCmd(p, false)
}

func (s *Screen) complete() (screen.Screen, tea.Cmd) {
	s.errMsg = ""
	p, err := s.session.CompletePayload()
	if err != nil {
		s.showValidationError(err)
		return s, nil
	}
	s.saving = true
	return s, s.submitCmd(p, true)
}

// showValidationError surfaces a local rejection. Missing metadata
// opens the details form directly; an unmet question jumps the cursor
// to it.
func (s *Screen) showValidationError(err error) {
	s.errMsg = err.Error()
	ve, ok := err.(*assessment.ValidationError)
	if !ok {
		return
	}
	switch {
	case ve.Field != "":
		s.enterDetails()
	case ve.QuestionID != "":
		s.jumpToQuestion(ve.QuestionID)
	}
}

func (s *Screen) jumpToQuestion(questionID string) {
	d := s.session.CurrentDomain()
	if d == nil {
		return
	}
	for i, q := range d.Questions {
		if q.ID == questionID {
			for s.session.Cursor().QuestionIndex > i {
				s.session.Previous()
			}
			for s.session.Cursor().QuestionIndex < i {
				s.session.Next()
			}
			s.syncComponents()
			return
		}
	}
}

func (s *Screen) enterDetails() {
	meta := s.session.Meta
	s.details[detailTitle] = components.NewAnswerInput("Assessment name", meta.Title, false)
	s.details[detailFullName] = components.NewAnswerInput("Your full name", meta.FullName, false)
	s.details[detailDescription] = components.NewAnswerInput("Description", meta.Description, false)
	s.details[detailFullName].Model.Blur()
	s.details[detailDescription].Model.Blur()
	s.focus = detailTitle
	s.mode = modeDetails
}

func (s *Screen) focusDetail(i int) tea.Cmd {
	s.details[s.focus].Model.Blur()
	s.focus = i
	return s.details[s.focus].Model.Focus()
}

// syncComponents rebuilds the active answer component for the question
// under the cursor, seeded with the stored answer.
func (s *Screen) syncComponents() {
	q, ok := s.session.CurrentQuestion()
	if !ok {
		return
	}
	v := s.session.Store().Value(q.ID)

	switch q.Kind {
	case catalog.KindRadio:
		s.choice = components.NewChoiceList(q.AllowedAnswers, v.String())
	case catalog.KindCheckbox:
		s.checks = components.NewCheckList(q.AllowedAnswers, v.Options())
	case catalog.KindNumber:
		val := ""
		if n, ok := v.Number(); ok {
			val = formatNumber(n)
		}
		s.input = components.NewAnswerInput("Enter a number", val, true)
	default:
		s.input = components.NewAnswerInput("Type your answer", v.String(), false)
	}
}

func (s *Screen) teardown() {
	s.cancel()
}
