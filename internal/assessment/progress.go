package assessment

import (
	"github.com/Mohamad-Mousa/readiness/internal/answer"
	"github.com/Mohamad-Mousa/readiness/internal/catalog"
)

// Progress is computed, never stored: every function here is a pure
// function of (domain, store).

// DomainProgress returns the completion percentage for one domain.
// A question counts as satisfied when it is optional, or when it is
// required and answered — progress measures "nothing required left", not
// "everything filled in". A domain with no questions reports 0.
func DomainProgress(domain *catalog.Domain, store *answer.Store) float64 {
	if len(domain.Questions) == 0 {
		return 0
	}
	satisfied := 0
	for _, q := range domain.Questions {
		if !q.Required || store.Answered(q.ID) {
			satisfied++
		}
	}
	return float64(satisfied) / float64(len(domain.Questions)) * 100
}

// CanCompleteDomain reports whether every required question in the
// domain has a valid answer.
func CanCompleteDomain(domain *catalog.Domain, store *answer.Store) bool {
	return firstUnmetQuestion(domain, store) == ""
}

// firstUnmetQuestion returns the id of the first required question
// without a valid answer, or "" when none remain.
func firstUnmetQuestion(domain *catalog.Domain, store *answer.Store) string {
	for _, q := range domain.Questions {
		if q.Required && !store.Answered(q.ID) {
			return q.ID
		}
	}
	return ""
}

// IsDomainComplete reports whether the domain is fully satisfied. Both
// conditions are equivalent given the progress formula; both are checked
// to preserve the persisted-contract semantics.
func IsDomainComplete(domain *catalog.Domain, store *answer.Store) bool {
	return DomainProgress(domain, store) == 100 && CanCompleteDomain(domain, store)
}

// OverallProgress returns the arithmetic mean of the per-domain
// percentages, or 0 when no sections are loaded.
func OverallProgress(sections []catalog.Domain, store *answer.Store) float64 {
	if len(sections) == 0 {
		return 0
	}
	total := 0.0
	for i := range sections {
		total += DomainProgress(&sections[i], store)
	}
	return total / float64(len(sections))
}
