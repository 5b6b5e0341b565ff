// Package store holds the read-only lookup collaborators: the FAQ table, the
// product catalog, and the order ledger. All three are loaded once at startup
// and never written afterwards, so they are safe for concurrent readers
// without locking.
package store

import "strings"

// FaqEntry pairs a canonical customer question with its pre-authored answer.
type FaqEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FAQ is the question-to-answer table. Questions are compared case-normalized.
type FAQ struct {
	entries map[string]string
}

// NewFAQ builds an FAQ table from the given entries.
func NewFAQ(entries []FaqEntry) *FAQ {
	m := make(map[string]string, len(entries))
	for _, e := range entries {
		m[normalizeQuestion(e.Question)] = e.Answer
	}
	return &FAQ{entries: m}
}

// Answer returns the stored answer for an exactly matching question,
// ignoring case and surrounding whitespace.
func (f *FAQ) Answer(query string) (string, bool) {
	a, ok := f.entries[normalizeQuestion(query)]
	return a, ok
}

// Has reports whether the query exactly matches a known question.
func (f *FAQ) Has(query string) bool {
	_, ok := f.Answer(query)
	return ok
}

func normalizeQuestion(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// DefaultFAQ returns the built-in FAQ dataset.
func DefaultFAQ() *FAQ {
	return NewFAQ([]FaqEntry{
		{
			Question: "How much is shipping?",
			Answer:   "Shipping is a flat rate of $5 nationwide, tax included.",
		},
		{
			Question: "What are your opening hours?",
			Answer:   "We are open weekdays from 9am to 6pm.",
		},
		{
			Question: "What payment methods do you accept?",
			Answer:   "We accept credit cards, bank transfer, and cash on delivery.",
		},
	})
}
