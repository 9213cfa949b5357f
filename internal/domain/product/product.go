// Package product holds the catalog item variants and the catalog itself.
package product

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date pattern used in records and display text.
const DateLayout = "02/01/2006"

// Kind discriminates product variants in the record format.
type Kind int

const (
	// KindNonPerishable is the default product variant (record kind 1).
	KindNonPerishable Kind = 1
	// KindPerishable is the variant carrying an expiry date (record kind 2).
	KindPerishable Kind = 2
)

// ErrMalformedRecord is returned when a product record line cannot be parsed.
var ErrMalformedRecord = errors.New("malformed product record")

// Product is a catalog item. Sale price is always derived from cost and
// margin, never stored.
type Product interface {
	Description() string
	SalePrice() decimal.Decimal
	// DisplayText returns the human-readable block for listings.
	DisplayText() string
	// Record returns the canonical serialization line, the inverse of ParseRecord.
	Record() string
	// Equal reports field-wise equality, including the variant.
	Equal(other Product) bool
}

// NonPerishable is a product without an expiry date.
type NonPerishable struct {
	description  string
	costPrice    decimal.Decimal
	profitMargin decimal.Decimal
}

// NewNonPerishable creates a non-perishable product. Inputs are not
// validated; malformed values surface at parse time, not here.
func NewNonPerishable(description string, costPrice, profitMargin decimal.Decimal) NonPerishable {
	return NonPerishable{
		description:  description,
		costPrice:    costPrice,
		profitMargin: profitMargin,
	}
}

// Description returns the product label.
func (p NonPerishable) Description() string { return p.description }

// CostPrice returns the acquisition price.
func (p NonPerishable) CostPrice() decimal.Decimal { return p.costPrice }

// ProfitMargin returns the margin fraction (0.2 = 20%).
func (p NonPerishable) ProfitMargin() decimal.Decimal { return p.profitMargin }

// SalePrice returns costPrice * (1 + profitMargin).
func (p NonPerishable) SalePrice() decimal.Decimal {
	return p.costPrice.Mul(decimal.NewFromInt(1).Add(p.profitMargin))
}

// DisplayText returns the single display line, e.g. "NOME: Iogurte: R$ 8.00".
func (p NonPerishable) DisplayText() string {
	return fmt.Sprintf("NOME: %s: R$ %s", p.description, p.SalePrice().StringFixed(2))
}

// Record returns "1;description;costPrice;profitMargin". Cost and margin
// are written at full precision; only display text rounds.
func (p NonPerishable) Record() string {
	return fmt.Sprintf("%d;%s;%s;%s",
		KindNonPerishable, p.description, p.costPrice, p.profitMargin)
}

// Equal reports field-wise equality with another product of the same variant.
func (p NonPerishable) Equal(other Product) bool {
	o, ok := other.(NonPerishable)
	if !ok {
		return false
	}
	return p.description == o.description &&
		p.costPrice.Equal(o.costPrice) &&
		p.profitMargin.Equal(o.profitMargin)
}

// Perishable is a product with an expiry date.
type Perishable struct {
	NonPerishable
	expiryDate time.Time
}

// NewPerishable creates a perishable product with the given expiry date.
func NewPerishable(description string, costPrice, profitMargin decimal.Decimal, expiryDate time.Time) Perishable {
	return Perishable{
		NonPerishable: NewNonPerishable(description, costPrice, profitMargin),
		expiryDate:    expiryDate,
	}
}

// ExpiryDate returns the product's expiry date.
func (p Perishable) ExpiryDate() time.Time { return p.expiryDate }

// DisplayText appends the expiry line to the base display line.
func (p Perishable) DisplayText() string {
	return p.NonPerishable.DisplayText() +
		fmt.Sprintf("\nVálido até: %s", p.expiryDate.Format(DateLayout))
}

// Record returns "2;description;costPrice;profitMargin;dd/MM/yyyy".
func (p Perishable) Record() string {
	return fmt.Sprintf("%d;%s;%s;%s;%s",
		KindPerishable, p.description, p.costPrice, p.profitMargin,
		p.expiryDate.Format(DateLayout))
}

// Equal reports field-wise equality including the expiry date.
func (p Perishable) Equal(other Product) bool {
	o, ok := other.(Perishable)
	if !ok {
		return false
	}
	return p.NonPerishable.Equal(o.NonPerishable) && p.expiryDate.Equal(o.expiryDate)
}

// ParseRecord parses a serialized product line, the inverse of Record. The
// first field selects the variant: exactly "2" means perishable, anything
// else non-perishable. Wrong field counts and malformed numbers or dates
// fail with ErrMalformedRecord.
func ParseRecord(line string) (Product, error) {
	fields := strings.Split(line, ";")
	if len(fields) < 4 {
		return nil, errors.Wrapf(ErrMalformedRecord, "want at least 4 fields, got %d", len(fields))
	}

	perishable := fields[0] == "2"
	want := 4
	if perishable {
		want = 5
	}
	if len(fields) != want {
		return nil, errors.Wrapf(ErrMalformedRecord, "want %d fields, got %d", want, len(fields))
	}

	costPrice, err := decimal.NewFromString(fields[2])
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedRecord, "cost price %q", fields[2])
	}
	profitMargin, err := decimal.NewFromString(fields[3])
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedRecord, "profit margin %q", fields[3])
	}

	if !perishable {
		return NewNonPerishable(fields[1], costPrice, profitMargin), nil
	}

	expiry, err := time.Parse(DateLayout, fields[4])
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedRecord, "expiry date %q", fields[4])
	}
	return NewPerishable(fields[1], costPrice, profitMargin, expiry), nil
}
