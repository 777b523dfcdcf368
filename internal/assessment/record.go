package assessment

import (
	"encoding/json"
	"time"
)

// Status of a persisted assessment.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusCompleted Status = "completed"
)

// QuestionAnswer is one persisted (question, answer) pair. Answer is the
// raw wire value; it stays loosely typed until the reconciler pushes it
// through the codec against the question's declared kind.
type QuestionAnswer struct {
	QuestionID string
	Answer     any
}

// wireQuestion covers both persisted shapes of the "question" field: a
// bare id string in legacy rows, an embedded object carrying its own _id
// in current ones.
type wireQuestion struct {
	ID string
}

func (w *wireQuestion) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		w.ID = id
		return nil
	}
	var obj struct {
		ID string `json:"_id"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		// Unexpected shape. Leave the id empty; the reconciler skips
		// pairs it cannot resolve.
		return nil
	}
	w.ID = obj.ID
	return nil
}

// UnmarshalJSON accepts both the legacy and the current pair shape and
// resolves them into the same id space.
func (qa *QuestionAnswer) UnmarshalJSON(data []byte) error {
	var wire struct {
		Question wireQuestion `json:"question"`
		Answer   any          `json:"answer"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	qa.QuestionID = wire.Question.ID
	qa.Answer = wire.Answer
	return nil
}

// MarshalJSON always emits the current shape: question as a bare id.
func (qa QuestionAnswer) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Question string `json:"question"`
		Answer   any    `json:"answer"`
	}{Question: qa.QuestionID, Answer: qa.Answer})
}

// Record is the persisted form of an assessment, owned by the
// persistence layer. The engine reads records when resuming and produces
// Payloads (see serialize.go) when saving; it never deletes them.
type Record struct {
	ID          string
	Title       string
	Description string
	FullName    string
	DomainID    string
	Status      Status
	Questions   []QuestionAnswer
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Summary is the listing projection of a Record.
type Summary struct {
	ID        string
	Title     string
	DomainID  string
	Status    Status
	UpdatedAt time.Time
}
