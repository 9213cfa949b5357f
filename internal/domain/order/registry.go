package order

import (
	"iter"
	"time"
)

// Registry is the insertion-ordered collection of loaded orders.
type Registry struct {
	orders []*Order
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Len returns the number of orders held.
func (r *Registry) Len() int { return len(r.orders) }

// Add appends an order.
func (r *Registry) Add(o *Order) {
	r.orders = append(r.orders, o)
}

// All iterates the orders in insertion order.
func (r *Registry) All() iter.Seq[*Order] {
	return func(yield func(*Order) bool) {
		for _, o := range r.orders {
			if !yield(o) {
				return
			}
		}
	}
}

// FindByDate lazily yields the orders placed exactly on the given date.
// An empty sequence means no orders on that date.
func (r *Registry) FindByDate(date time.Time) iter.Seq[*Order] {
	return func(yield func(*Order) bool) {
		for _, o := range r.orders {
			if o.date.Equal(date) {
				if !yield(o) {
					return
				}
			}
		}
	}
}
