package textfile

import (
	"context"
	"os"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/coisinhas/comercio/internal/domain/order"
	"github.com/coisinhas/comercio/internal/domain/product"
	"github.com/coisinhas/comercio/pkg/recordio"
)

// OrderStore loads and saves the order registry file. Order records
// reference catalog products by name, so loading needs a resolver built
// from an already populated catalog.
type OrderStore struct {
	path      string
	maxOrders int
}

// NewOrderStore creates a store for the given file path, loading at most
// maxOrders records.
func NewOrderStore(path string, maxOrders int) *OrderStore {
	return &OrderStore{path: path, maxOrders: maxOrders}
}

// Load reads the orders file, resolving each record's product names through
// resolve. Missing or unreadable files yield an empty registry; a record
// that cannot be parsed aborts the whole load.
func (s *OrderStore) Load(ctx context.Context, resolve product.Resolver) (*order.Registry, error) {
	lg := zctx.From(ctx)

	f, err := os.Open(s.path)
	if err != nil {
		lg.Warn("Orders file unavailable, starting empty",
			zap.String("path", s.path), zap.Error(err))
		return order.NewRegistry(), nil
	}
	defer f.Close()

	records, err := recordio.ReadRecords(f, s.maxOrders)
	if err != nil {
		lg.Warn("Orders file unreadable, starting empty",
			zap.String("path", s.path), zap.Error(err))
		return order.NewRegistry(), nil
	}

	registry := order.NewRegistry()
	for i, rec := range records {
		o, err := order.ParseRecord(rec, resolve)
		if err != nil {
			return nil, errors.Wrapf(err, "record %d", i+1)
		}
		registry.Add(o)
		lg.Debug("Order loaded",
			zap.String("order_id", o.ID),
			zap.Time("order_date", o.Date()),
			zap.Int("items", len(o.Items())))
	}

	lg.Info("Orders loaded",
		zap.String("path", s.path), zap.Int("orders", registry.Len()))
	return registry, nil
}

// Save rewrites the orders file with the count header and each order's
// record. The interactive flow never calls it; it exists for symmetry with
// the catalog store and for data tooling.
func (s *OrderStore) Save(ctx context.Context, registry *order.Registry) error {
	records := make([]string, 0, registry.Len())
	for o := range registry.All() {
		records = append(records, o.Record())
	}

	f, err := os.Create(s.path)
	if err != nil {
		return errors.Wrapf(err, "create %s", s.path)
	}
	defer f.Close()

	if err := recordio.WriteRecords(f, records); err != nil {
		return errors.Wrapf(err, "write %s", s.path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "close %s", s.path)
	}

	zctx.From(ctx).Info("Orders saved",
		zap.String("path", s.path), zap.Int("orders", len(records)))
	return nil
}
