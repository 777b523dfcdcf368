package assessment

import (
	"github.com/Mohamad-Mousa/readiness/internal/answer"
	"github.com/Mohamad-Mousa/readiness/internal/catalog"
)

// Meta is the top-level metadata entered alongside the answers.
type Meta struct {
	ID          string // empty until the first successful save
	Title       string
	Description string
	FullName    string
	DomainID    string
}

// Payload is the submission shape handed to the persistence layer.
type Payload struct {
	ID          string           `json:"_id,omitempty"`
	DomainID    string           `json:"domain"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	FullName    string           `json:"fullName,omitempty"`
	Status      Status           `json:"status"`
	Questions   []QuestionAnswer `json:"questions"`
}

// DraftPayload builds a partial-save payload for the active domain. A
// draft needs its domain and a title, nothing more; only answered
// questions are included, so a user can save mid-flow with required
// questions still open.
func DraftPayload(meta Meta, domain *catalog.Domain, store *answer.Store) (*Payload, error) {
	switch {
	case meta.DomainID == "":
		return nil, missingField("domain")
	case meta.Title == "":
		return nil, missingField("title")
	}

	pairs := make([]QuestionAnswer, 0, len(domain.Questions))
	for _, q := range domain.Questions {
		v := store.Value(q.ID)
		if !answer.IsAnswered(v) {
			continue
		}
		pairs = append(pairs, QuestionAnswer{QuestionID: q.ID, Answer: answer.ToWire(v)})
	}

	return &Payload{
		ID:          meta.ID,
		DomainID:    meta.DomainID,
		Title:       meta.Title,
		Description: meta.Description,
		FullName:    meta.FullName,
		Status:      StatusDraft,
		Questions:   pairs,
	}, nil
}

// CompletePayload builds a completion payload for the active domain. All
// metadata fields must be present and every required question answered;
// otherwise a ValidationError identifies what is missing and no payload
// is produced. Every question is included — unanswered optional ones
// serialize to their kind's empty wire form.
func CompletePayload(meta Meta, domain *catalog.Domain, store *answer.Store) (*Payload, error) {
	switch {
	case meta.DomainID == "":
		return nil, missingField("domain")
	case meta.Title == "":
		return nil, missingField("title")
	case meta.Description == "":
		return nil, missingField("description")
	case meta.FullName == "":
		return nil, missingField("fullName")
	}

	if unmet := firstUnmetQuestion(domain, store); unmet != "" {
		return nil, &ValidationError{
			QuestionID: unmet,
			Reason:     "required question is unanswered",
		}
	}

	pairs := make([]QuestionAnswer, 0, len(domain.Questions))
	for _, q := range domain.Questions {
		pairs = append(pairs, QuestionAnswer{
			QuestionID: q.ID,
			Answer:     answer.ToWire(store.Value(q.ID)),
		})
	}

	return &Payload{
		ID:          meta.ID,
		DomainID:    meta.DomainID,
		Title:       meta.Title,
		Description: meta.Description,
		FullName:    meta.FullName,
		Status:      StatusCompleted,
		Questions:   pairs,
	}, nil
}
