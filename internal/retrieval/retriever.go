// Package retrieval implements the keyword retriever feeding the RAG path.
// Matching is case-insensitive substring overlap on product names and
// keywords; there is no stemming, fuzzy distance, or relevance score beyond
// match/no-match.
package retrieval

import (
	"fmt"
	"strings"

	"github.com/shopassist-poc/server/internal/store"
)

// Retriever finds catalog records relevant to a product query.
type Retriever struct {
	catalog *store.Catalog
}

// NewRetriever builds a retriever over the given catalog.
func NewRetriever(catalog *store.Catalog) *Retriever {
	return &Retriever{catalog: catalog}
}

// Retrieve returns every catalog record whose name or keywords appear in the
// query, in catalog order. An empty result is a valid outcome; the caller
// falls back to an unaugmented generative call with an explicit no-context
// note so the model does not fabricate product facts.
func (r *Retriever) Retrieve(query string) []store.Product {
	queryLower := strings.ToLower(query)

	var matched []store.Product
	for _, p := range r.catalog.Products() {
		if p.MatchesQuery(queryLower) {
			matched = append(matched, p)
		}
	}
	return matched
}

// ContextBlock renders up to topN retrieved records as the factual context
// handed to the generative service. topN <= 0 means no cap.
func ContextBlock(products []store.Product, topN int) string {
	if topN > 0 && len(products) > topN {
		products = products[:topN]
	}

	blocks := make([]string, 0, len(products))
	for _, p := range products {
		blocks = append(blocks, fmt.Sprintf(
			"Product: %s\nPrice: $%.2f\nDescription: %s",
			p.Name, p.Price, p.Description,
		))
	}
	return strings.Join(blocks, "\n\n---\n\n")
}
