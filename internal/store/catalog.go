package store

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

//go:embed data/products.json
var defaultProductsJSON []byte

// Product is one catalog record. The catalog preserves source order, which is
// the order the retriever reports matches in.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Keywords    []string `json:"keywords,omitempty"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
}

// Catalog is the read-only product catalog.
type Catalog struct {
	products []Product
}

// NewCatalog builds a catalog from the given records, preserving order.
func NewCatalog(products []Product) *Catalog {
	cp := make([]Product, len(products))
	copy(cp, products)
	return &Catalog{products: cp}
}

// NewCatalogFromJSON decodes a catalog from its JSON source.
func NewCatalogFromJSON(data []byte) (*Catalog, error) {
	var products []Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("decode product catalog: %w", err)
	}
	return NewCatalog(products), nil
}

// LoadCatalog reads the catalog from the JSON file at path. An empty path
// yields the embedded default dataset.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return NewCatalogFromJSON(defaultProductsJSON)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read product catalog %s: %w", path, err)
	}
	return NewCatalogFromJSON(data)
}

// DefaultCatalog returns the embedded product dataset.
func DefaultCatalog() *Catalog {
	c, err := NewCatalogFromJSON(defaultProductsJSON)
	if err != nil {
		// The embedded dataset is validated by tests; a decode failure here
		// is a build defect.
		panic(err)
	}
	return c
}

// Products returns all records in catalog order.
func (c *Catalog) Products() []Product {
	return c.products
}

// Len returns the number of catalog records.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Match returns the first product whose name or any keyword appears in the
// query, compared case-insensitively.
func (c *Catalog) Match(query string) (Product, bool) {
	q := strings.ToLower(query)
	for _, p := range c.products {
		if p.MatchesQuery(q) {
			return p, true
		}
	}
	return Product{}, false
}

// MatchesQuery reports whether the lowercased query mentions this product by
// name or by one of its keywords.
func (p Product) MatchesQuery(queryLower string) bool {
	if name := strings.ToLower(p.Name); name != "" && strings.Contains(queryLower, name) {
		return true
	}
	for _, kw := range p.Keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(queryLower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
