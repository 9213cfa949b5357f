package product

import (
	"iter"
	"strings"
)

// DefaultHeadroom is how many registration slots a freshly loaded catalog
// keeps free beyond its loaded records.
const DefaultHeadroom = 10

// Catalog is a bounded, insertion-ordered collection of products. Capacity
// is fixed at construction: loaders size it as loaded count plus headroom.
type Catalog struct {
	products []Product
	capacity int
}

// NewCatalog creates an empty catalog with the given capacity.
func NewCatalog(capacity int) *Catalog {
	return &Catalog{
		products: make([]Product, 0, capacity),
		capacity: capacity,
	}
}

// Len returns the number of registered products.
func (c *Catalog) Len() int { return len(c.products) }

// Capacity returns the fixed registration bound.
func (c *Catalog) Capacity() int { return c.capacity }

// Register appends the product when there is a free slot. It returns false
// when the catalog is full; the caller must check.
func (c *Catalog) Register(p Product) bool {
	if len(c.products) >= c.capacity {
		return false
	}
	c.products = append(c.products, p)
	return true
}

// All iterates the registered products in slot order.
func (c *Catalog) All() iter.Seq2[int, Product] {
	return func(yield func(int, Product) bool) {
		for i, p := range c.products {
			if !yield(i, p) {
				return
			}
		}
	}
}

// FindByText lazily yields (slot index, product) pairs whose display text
// contains the given text. The match is case-sensitive; an empty sequence
// means not found.
func (c *Catalog) FindByText(text string) iter.Seq2[int, Product] {
	return func(yield func(int, Product) bool) {
		for i, p := range c.products {
			if strings.Contains(p.DisplayText(), text) {
				if !yield(i, p) {
					return
				}
			}
		}
	}
}

// FindExact returns the first product whose description equals name.
func (c *Catalog) FindExact(name string) (Product, bool) {
	for _, p := range c.products {
		if p.Description() == name {
			return p, true
		}
	}
	return nil, false
}

// Resolver maps a product name from an order record to a catalog product.
type Resolver func(name string) (Product, bool)

// ResolutionPolicy selects how order records resolve product names against
// the catalog.
type ResolutionPolicy string

const (
	// ResolveDisplaySubstring matches the first product whose display text
	// contains the name. This reproduces the original lookup and can match
	// on price fragments as well as names.
	ResolveDisplaySubstring ResolutionPolicy = "substring"
	// ResolveExactName matches the product description exactly.
	ResolveExactName ResolutionPolicy = "exact"
)

// Valid reports whether the policy is one of the supported strategies.
func (p ResolutionPolicy) Valid() bool {
	return p == ResolveDisplaySubstring || p == ResolveExactName
}

// Resolver returns the lookup function for the given policy.
func (c *Catalog) Resolver(policy ResolutionPolicy) Resolver {
	if policy == ResolveExactName {
		return c.FindExact
	}
	return func(name string) (Product, bool) {
		for _, p := range c.FindByText(name) {
			return p, true
		}
		return nil, false
	}
}
