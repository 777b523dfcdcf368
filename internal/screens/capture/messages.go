package capture

import (
	"github.com/Mohamad-Mousa/readiness/internal/assessment"
	"github.com/Mohamad-Mousa/readiness/internal/catalog"
)

// questionsLoadedMsg is sent when the domain's question catalog fetch
// finishes.
type questionsLoadedMsg struct {
	Domain *catalog.Domain
	Err    error
}

// recordLoadedMsg is sent when the saved-assessment fetch finishes
// (resume only). It races questionsLoadedMsg: the two fetches are
// issued together and may land in either order.
type recordLoadedMsg struct {
	Record *assessment.Record
	Err    error
}

// savedMsg is sent when a draft or complete submission finishes.
type savedMsg struct {
	ID        string
	Completed bool
	Err       error
}
