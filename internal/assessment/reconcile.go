package assessment

import (
	"github.com/Mohamad-Mousa/readiness/internal/answer"
	"github.com/Mohamad-Mousa/readiness/internal/catalog"
)

// Reconciler merges a previously-persisted assessment's raw answer pairs
// into an answer store. The pairs and the question catalog arrive from
// independent fetches in unspecified order, so the reconciler holds
// pairs that arrive first and applies them once the catalog is in; the
// final store contents are identical either way.
type Reconciler struct {
	pending []QuestionAnswer
}

// Offer hands raw pairs to the reconciler. If pairs were already
// pending they are replaced; the backend sends the full set each time.
func (r *Reconciler) Offer(pairs []QuestionAnswer) {
	r.pending = pairs
}

// Pending reports whether raw pairs are waiting for a catalog.
func (r *Reconciler) Pending() bool {
	return r.pending != nil
}

// Resolve applies the pending pairs to the store against the loaded
// sections and clears them. Each raw answer is normalized through the
// codec for its question's kind; pairs whose id matches no loaded
// question are dropped, and questions without a pair stay unanswered.
// Returns false when nothing was pending.
func (r *Reconciler) Resolve(sections []catalog.Domain, store *answer.Store) bool {
	if r.pending == nil {
		return false
	}

	byID := make(map[string]any, len(r.pending))
	for _, pair := range r.pending {
		if pair.QuestionID != "" {
			byID[pair.QuestionID] = pair.Answer
		}
	}

	for i := range sections {
		for _, q := range sections[i].Questions {
			raw, ok := byID[q.ID]
			if !ok {
				continue
			}
			store.Set(q.ID, answer.NormalizeIncoming(q.Kind, raw))
		}
	}

	r.pending = nil
	return true
}
