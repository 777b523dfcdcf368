package assessment

import "fmt"

// ValidationError reports a submission rejected locally, before any
// external call. Exactly one of Field and QuestionID is set: Field names
// the missing top-level metadata field, QuestionID the first unmet
// required question.
type ValidationError struct {
	Field      string
	QuestionID string
	Reason     string
}

func (e *ValidationError) Error() string {
	switch {
	case e.Field != "":
		return fmt.Sprintf("%s: %s", e.Field, e.Reason)
	case e.QuestionID != "":
		return fmt.Sprintf("question %s: %s", e.QuestionID, e.Reason)
	default:
		return e.Reason
	}
}

func missingField(field string) *ValidationError {
	return &ValidationError{Field: field, Reason: "is required"}
}
