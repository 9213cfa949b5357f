// Package order holds customer orders and the in-memory order registry.
package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coisinhas/comercio/internal/domain/product"
)

// MaxItems is the fixed bound on products per order.
const MaxItems = 10

// PaymentMethod enumerates the supported payment forms, by record code.
type PaymentMethod int

const (
	// PaymentCash triggers the order-total discount (record code 1).
	PaymentCash PaymentMethod = 1
	// PaymentInstallments pays full price in installments (record code 2).
	PaymentInstallments PaymentMethod = 2
)

// cashDiscount is the fraction taken off cash-paid orders.
var cashDiscount = decimal.NewFromFloat(0.15)

// ErrMalformedRecord is returned when an order record line cannot be parsed.
var ErrMalformedRecord = errors.New("malformed order record")

// Order aggregates catalog product references with a date and a payment
// method. Items are non-owning references; products belong to the catalog.
type Order struct {
	// ID identifies the order in logs. It is never serialized and does not
	// participate in equality.
	ID      string
	date    time.Time
	payment PaymentMethod
	items   []product.Product
}

// New creates an empty order for the given date and payment method.
func New(date time.Time, payment PaymentMethod) *Order {
	return &Order{
		ID:      uuid.NewString(),
		date:    date,
		payment: payment,
	}
}

// Date returns the order date.
func (o *Order) Date() time.Time { return o.date }

// Payment returns the order's payment method.
func (o *Order) Payment() PaymentMethod { return o.payment }

// Items returns the order's products in insertion order.
func (o *Order) Items() []product.Product { return o.items }

// AddItem appends a product while the order holds fewer than MaxItems.
// It returns false when the order is full; the caller must check.
func (o *Order) AddItem(p product.Product) bool {
	if len(o.items) >= MaxItems {
		return false
	}
	o.items = append(o.items, p)
	return true
}

// FinalValue sums the sale prices of all items and applies the cash
// discount when the order is paid in cash.
func (o *Order) FinalValue() decimal.Decimal {
	total := decimal.Zero
	for _, p := range o.items {
		total = total.Add(p.SalePrice())
	}
	if o.payment == PaymentCash {
		total = total.Mul(decimal.NewFromInt(1).Sub(cashDiscount))
	}
	return total
}

// DisplayText returns the multi-line order block: date, item count, each
// item's display text, then the payment summary with the final value
// rounded to two decimals.
func (o *Order) DisplayText() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Data do pedido: %s\n", o.date.Format(product.DateLayout))
	fmt.Fprintf(&sb, "Pedido com %d produtos.\n", len(o.items))
	sb.WriteString("Produtos no pedido:\n")
	for _, p := range o.items {
		sb.WriteString(p.DisplayText())
		sb.WriteByte('\n')
	}
	if o.payment == PaymentCash {
		fmt.Fprintf(&sb, "Pedido pago à vista. Percentual de desconto: %s%%\n",
			cashDiscount.Mul(decimal.NewFromInt(100)).StringFixed(2))
	} else {
		sb.WriteString("Pedido pago parcelado.\n")
	}
	fmt.Fprintf(&sb, "Valor total do pedido: R$ %s", o.FinalValue().StringFixed(2))
	return sb.String()
}

// Record returns the serialization line:
// "dd/MM/yyyy;paymentMethod;name1;name2;...".
func (o *Order) Record() string {
	fields := make([]string, 0, len(o.items)+2)
	fields = append(fields, o.date.Format(product.DateLayout), fmt.Sprintf("%d", o.payment))
	for _, p := range o.items {
		fields = append(fields, p.Description())
	}
	return strings.Join(fields, ";")
}

// Equal reports whether both orders have the same date, payment method,
// item count, and item sequence. IDs are ignored.
func (o *Order) Equal(other *Order) bool {
	if other == nil {
		return false
	}
	if !o.date.Equal(other.date) || o.payment != other.payment || len(o.items) != len(other.items) {
		return false
	}
	for i, p := range o.items {
		if !p.Equal(other.items[i]) {
			return false
		}
	}
	return true
}

// ParseRecord parses a serialized order line. Field 0 is the date, field 1
// the payment method code, and every remaining field a product name passed
// to resolve. Names that resolve to nothing are skipped silently: order
// records merge leniently against the catalog rather than enforcing
// referential integrity.
func ParseRecord(line string, resolve product.Resolver) (*Order, error) {
	fields := strings.Split(line, ";")
	if len(fields) < 2 {
		return nil, errors.Wrapf(ErrMalformedRecord, "want at least 2 fields, got %d", len(fields))
	}

	date, err := time.Parse(product.DateLayout, fields[0])
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedRecord, "order date %q", fields[0])
	}

	var payment PaymentMethod
	switch fields[1] {
	case "1":
		payment = PaymentCash
	case "2":
		payment = PaymentInstallments
	default:
		return nil, errors.Wrapf(ErrMalformedRecord, "payment method %q", fields[1])
	}

	o := New(date, payment)
	for _, name := range fields[2:] {
		if p, ok := resolve(name); ok {
			o.AddItem(p)
		}
	}
	return o, nil
}
