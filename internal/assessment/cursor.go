package assessment

import "github.com/Mohamad-Mousa/readiness/internal/catalog"

// Cursor is the current (domain, question) position within the loaded
// sections, both zero-based. Moves cross domain boundaries and become
// no-ops at the terminal positions.
type Cursor struct {
	DomainIndex   int
	QuestionIndex int
}

// Next advances to the following question, crossing into the next
// domain's first question at a boundary. No-op at the last question of
// the last domain.
func (c *Cursor) Next(sections []catalog.Domain) {
	if c.DomainIndex >= len(sections) {
		return
	}
	if c.QuestionIndex < len(sections[c.DomainIndex].Questions)-1 {
		c.QuestionIndex++
		return
	}
	if c.DomainIndex < len(sections)-1 {
		c.DomainIndex++
		c.QuestionIndex = 0
	}
}

// Previous moves back one question, crossing into the previous domain's
// last question at a boundary. No-op at the very first question.
func (c *Cursor) Previous(sections []catalog.Domain) {
	if c.QuestionIndex > 0 {
		c.QuestionIndex--
		return
	}
	if c.DomainIndex > 0 {
		c.DomainIndex--
		if n := len(sections[c.DomainIndex].Questions); n > 0 {
			c.QuestionIndex = n - 1
		} else {
			c.QuestionIndex = 0
		}
	}
}

// JumpToDomain selects a domain and resets to its first question.
// Out-of-range indices are ignored.
func (c *Cursor) JumpToDomain(sections []catalog.Domain, i int) {
	if i < 0 || i >= len(sections) {
		return
	}
	c.DomainIndex = i
	c.QuestionIndex = 0
}
