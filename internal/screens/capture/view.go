package capture

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/Mohamad-Mousa/readiness/internal/catalog"
	"github.com/Mohamad-Mousa/readiness/internal/ui/components"
	"github.com/Mohamad-Mousa/readiness/internal/ui/layout"
	"github.com/Mohamad-Mousa/readiness/internal/ui/theme"
)

// View implements screen.Screen.
func (s *Screen) View(width, height int) string {
	switch s.mode {
	case modeLoading:
		return theme.Hint.Render("\n  Loading questions...")
	case modeDetails:
		return s.viewDetails(width)
	case modeConfirmQuit:
		return s.viewConfirmQuit(width)
	default:
		return s.viewQuestion(width)
	}
}

func (s *Screen) viewQuestion(width int) string {
	var b strings.Builder

	d := s.session.CurrentDomain()
	cur := s.session.Cursor()

	bar := components.ProgressBar{
		Label:   "Domain",
		Percent: s.session.DomainProgress(cur.DomainIndex),
		Width:   width - 8,
	}
	b.WriteString("\n  " + bar.View() + "\n\n")

	q, ok := s.session.CurrentQuestion()
	if !ok {
		if s.warning != "" {
			b.WriteString("  " + theme.Warning.Render(s.warning) + "\n\n")
		}
		b.WriteString("  " + theme.Hint.Render("No questions in this domain. Press ctrl+e to edit details, ctrl+s to save.") + "\n")
		b.WriteString(s.viewNotices())
		return b.String()
	}

	position := fmt.Sprintf("Question %d of %d", cur.QuestionIndex+1, len(d.Questions))
	b.WriteString("  " + theme.Subtitle.Render(position) + "\n\n")

	text := q.Text
	b.WriteString("  " + theme.Body.Bold(true).Render(text))
	if q.Required {
		b.WriteString(" " + theme.RequiredMark.Render("*"))
	}
	b.WriteString("\n")
	if hint := rangeHint(q); hint != "" {
		b.WriteString("  " + theme.Hint.Render(hint) + "\n")
	}
	b.WriteString("\n")

	switch q.Kind {
	case catalog.KindRadio:
		b.WriteString(indent(s.choice.View(), 2))
	case catalog.KindCheckbox:
		b.WriteString(indent(s.checks.View(), 2))
	default:
		b.WriteString("  " + s.input.View() + "\n")
	}

	if files := s.session.Store().EvidenceFor(q.ID); len(files) > 0 {
		b.WriteString("\n  " + theme.Subtitle.Render(fmt.Sprintf("%d file(s) attached", len(files))) + "\n")
	}

	b.WriteString(s.viewNotices())
	return b.String()
}

func (s *Screen) viewDetails(width int) string {
	labels := [detailCount]string{"Title", "Full name", "Description"}

	var b strings.Builder
	b.WriteString("\n  " + theme.Title.Render("Assessment Details") + "\n\n")
	for i := range s.details {
		label := labels[i]
		if i == s.focus {
			label = theme.Selected.Render("▸ " + label)
		} else {
			label = theme.Subtitle.Render("  " + label)
		}
		b.WriteString("  " + label + "\n")
		b.WriteString("  " + s.details[i].View() + "\n\n")
	}
	b.WriteString(s.viewNotices())
	return b.String()
}

func (s *Screen) viewConfirmQuit(width int) string {
	card := theme.Card.Render(
		theme.Body.Render("Discard unsaved changes?") + "\n\n" +
			theme.Hint.Render("y: discard and leave   n: keep editing"),
	)
	return "\n" + lipgloss.NewStyle().MarginLeft(2).Render(card)
}

func (s *Screen) viewNotices() string {
	var b strings.Builder
	if s.saving {
		b.WriteString("\n  " + theme.Hint.Render("Saving...") + "\n")
	}
	if s.status != "" {
		b.WriteString("\n  " + theme.Answered.Render(s.status) + "\n")
	}
	if s.errMsg != "" {
		b.WriteString("\n  " + lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg) + "\n")
	}
	if s.warning != "" && s.mode == modeQuestion {
		b.WriteString("\n  " + theme.Warning.Render(s.warning) + "\n")
	}
	return b.String()
}

// KeyHints implements screen.KeyHintProvider.
func (s *Screen) KeyHints() []layout.KeyHint {
	switch s.mode {
	case modeDetails:
		return []layout.KeyHint{
			{Key: "tab", Description: "next field"},
			{Key: "enter/esc", Description: "back to questions"},
		}
	case modeConfirmQuit:
		return []layout.KeyHint{
			{Key: "y", Description: "discard"},
			{Key: "n", Description: "keep editing"},
		}
	default:
		return []layout.KeyHint{
			{Key: "tab", Description: "next"},
			{Key: "shift+tab", Description: "prev"},
			{Key: "ctrl+e", Description: "details"},
			{Key: "ctrl+s", Description: "save draft"},
			{Key: "ctrl+d", Description: "complete"},
			{Key: "esc", Description: "back"},
		}
	}
}

func rangeHint(q catalog.Question) string {
	if q.Kind != catalog.KindNumber {
		return ""
	}
	switch {
	case q.Min != nil && q.Max != nil:
		return fmt.Sprintf("Between %s and %s", formatNumber(*q.Min), formatNumber(*q.Max))
	case q.Min != nil:
		return "At least " + formatNumber(*q.Min)
	case q.Max != nil:
		return "At most " + formatNumber(*q.Max)
	}
	return ""
}

func progressLabel(pct float64) string {
	return fmt.Sprintf("%d%% complete", int(pct))
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n") + "\n"
}
