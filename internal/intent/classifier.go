// Package intent maps raw query text to one of the four resolution
// strategies. Classification is an ordered list of predicate rules evaluated
// top to bottom; the first matching rule wins and there is no scoring across
// categories.
package intent

import (
	"regexp"
	"strings"

	"github.com/shopassist-poc/server/internal/store"
)

// Intent is the resolved category of a user query.
type Intent string

const (
	FAQ         Intent = "faq"
	ProductInfo Intent = "product_info"
	OrderStatus Intent = "order_status"
	General     Intent = "general_chat"
)

// String returns the string representation of the intent.
func (i Intent) String() string {
	return string(i)
}

var (
	// Order-domain vocabulary. "shipping" alone is deliberately absent so FAQ
	// variants like "shipping cost" do not land on the order path.
	orderKeywordRE = regexp.MustCompile(`(?i)\b(order|orders|delivery|deliver|shipment|shipped|tracking|arrive|arrived|arriving)\b`)

	// Labelled identifier, e.g. "order number: ORD123" or "id ORD-99".
	orderLabelledIDRE = regexp.MustCompile(`(?i)\b(?:order(?:\s+(?:number|no\.?|id))?|id)\b[\s:#]+([A-Za-z0-9-]{3,})\b`)

	// Bare identifier-shaped token, e.g. ORD123, XYZ789, 1234567.
	orderTokenRE = regexp.MustCompile(`(?i)\b(ORD[0-9-]+|[A-Z]{3}[0-9]{3,}|[0-9]{5,})\b`)

	// Generic product-domain vocabulary for catalog-adjacent questions that
	// name no specific product.
	productKeywordRE = regexp.MustCompile(`(?i)\b(product|products|price|cost|stock|buy|purchase|catalog)\b`)
)

// rule pairs a named predicate with the intent it resolves to. Rules are kept
// as data so new ones can be added without touching the evaluation loop.
type rule struct {
	name   string
	intent Intent
	match  func(query, queryLower string) bool
}

// Classifier resolves intents against the FAQ table and product catalog.
type Classifier struct {
	rules []rule
}

// NewClassifier builds the fixed-precedence rule list. FAQ exact matches win
// over everything since those answers are pre-authored; order signals beat
// product signals so an order ID mentioning a product does not get
// misrouted.
func NewClassifier(faq *store.FAQ, catalog *store.Catalog) *Classifier {
	return &Classifier{rules: []rule{
		{
			name:   "faq_exact",
			intent: FAQ,
			match: func(query, _ string) bool {
				return faq.Has(query)
			},
		},
		{
			name:   "order_keyword",
			intent: OrderStatus,
			match: func(query, _ string) bool {
				return orderKeywordRE.MatchString(query)
			},
		},
		{
			name:   "order_labelled_id",
			intent: OrderStatus,
			match: func(query, _ string) bool {
				return orderLabelledIDRE.MatchString(query)
			},
		},
		{
			name:   "order_id_token",
			intent: OrderStatus,
			match: func(query, _ string) bool {
				return orderTokenRE.MatchString(query)
			},
		},
		{
			name:   "catalog_mention",
			intent: ProductInfo,
			match: func(_, queryLower string) bool {
				_, ok := catalog.Match(queryLower)
				return ok
			},
		},
		{
			name:   "product_keyword",
			intent: ProductInfo,
			match: func(query, _ string) bool {
				return productKeywordRE.MatchString(query)
			},
		},
	}}
}

// Classify resolves the intent for a query. It is total: any query yields an
// intent, falling through to General when no rule matches. The caller
// validates non-empty input before invoking classification.
func (c *Classifier) Classify(query string) Intent {
	queryLower := strings.ToLower(query)
	for _, r := range c.rules {
		if r.match(query, queryLower) {
			return r.intent
		}
	}
	return General
}
