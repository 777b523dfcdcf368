package catalog

import (
	"context"
	"fmt"
)

// Kind is the question kind, which determines the canonical answer shape
// and the validity rule for that answer.
type Kind string

const (
	KindText     Kind = "text"
	KindRadio    Kind = "radio"
	KindCheckbox Kind = "checkbox"
	KindNumber   Kind = "number"
)

// ParseKind maps a wire kind string to a Kind. Unknown or empty values
// resolve to KindText, mirroring how the backend treats untyped questions.
func ParseKind(s string) Kind {
	switch Kind(s) {
	case KindRadio, KindCheckbox, KindNumber:
		return Kind(s)
	default:
		return KindText
	}
}

// Question is an immutable description of one thing that can be asked.
// Instances are owned by the catalog; the engine references them and
// never mutates them.
type Question struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Kind     Kind   `json:"type"`
	Required bool   `json:"required"`

	// AllowedAnswers is the ordered option list for radio and checkbox
	// questions. Empty for other kinds.
	AllowedAnswers []string `json:"answers,omitempty"`

	// Min and Max bound number questions. Advisory metadata only; the
	// engine never rejects out-of-range values.
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// Domain is a thematic grouping of questions within one assessment.
type Domain struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Icon        string     `json:"icon,omitempty"`
	Questions   []Question `json:"questions"`
}

// Question returns the question with the given id, or false if the
// domain does not contain it.
func (d *Domain) Question(id string) (Question, bool) {
	for _, q := range d.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// Catalog is the full set of assessable domains.
type Catalog struct {
	Domains []Domain `json:"domains"`
}

// DomainQuestions implements the external-catalog boundary used by the
// capture flow. A file-backed catalog answers immediately; the context
// is there for sources that go over the network.
func (c *Catalog) DomainQuestions(_ context.Context, domainID string) (*Domain, error) {
	return c.Domain(domainID)
}

// Domain returns the domain with the given id.
func (c *Catalog) Domain(id string) (*Domain, error) {
	for i := range c.Domains {
		if c.Domains[i].ID == id {
			return &c.Domains[i], nil
		}
	}
	return nil, fmt.Errorf("domain %q not in catalog", id)
}
