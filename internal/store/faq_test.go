package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFAQAnswer_ExactMatch(t *testing.T) {
	faq := DefaultFAQ()

	answer, ok := faq.Answer("How much is shipping?")
	require.True(t, ok)
	assert.Equal(t, "Shipping is a flat rate of $5 nationwide, tax included.", answer)
}

func TestFAQAnswer_CaseAndWhitespaceInsensitive(t *testing.T) {
	faq := NewFAQ([]FaqEntry{
		{Question: "What are your opening hours?", Answer: "Weekdays 9 to 6."},
	})

	for _, q := range []string{
		"what are your opening hours?",
		"WHAT ARE YOUR OPENING HOURS?",
		"  What are your opening hours?  ",
	} {
		answer, ok := faq.Answer(q)
		assert.True(t, ok, "query %q", q)
		assert.Equal(t, "Weekdays 9 to 6.", answer)
	}
}

func TestFAQAnswer_Miss(t *testing.T) {
	faq := DefaultFAQ()

	_, ok := faq.Answer("Do you ship to the moon?")
	assert.False(t, ok)
	assert.False(t, faq.Has("Do you ship to the moon?"))
}
