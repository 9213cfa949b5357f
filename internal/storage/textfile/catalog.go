// Package textfile persists the catalog and order registries to flat
// delimited text files.
package textfile

import (
	"context"
	"os"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/coisinhas/comercio/internal/domain/product"
	"github.com/coisinhas/comercio/pkg/recordio"
)

// CatalogStore loads and saves the product catalog file.
type CatalogStore struct {
	path     string
	headroom int
}

// NewCatalogStore creates a store for the given file path. headroom bounds
// how many records a load reads and how many free slots the loaded catalog
// keeps for new registrations.
func NewCatalogStore(path string, headroom int) *CatalogStore {
	return &CatalogStore{path: path, headroom: headroom}
}

// Load reads the catalog file. A file that cannot be opened is not an
// error: it yields an empty catalog with headroom capacity, the valid
// start state when no data exists yet. A record that cannot be parsed
// aborts the whole load.
func (s *CatalogStore) Load(ctx context.Context) (*product.Catalog, error) {
	lg := zctx.From(ctx)

	f, err := os.Open(s.path)
	if err != nil {
		lg.Warn("Catalog file unavailable, starting empty",
			zap.String("path", s.path), zap.Error(err))
		return product.NewCatalog(s.headroom), nil
	}
	defer f.Close()

	records, err := recordio.ReadRecords(f, s.headroom)
	if err != nil {
		lg.Warn("Catalog file unreadable, starting empty",
			zap.String("path", s.path), zap.Error(err))
		return product.NewCatalog(s.headroom), nil
	}

	catalog := product.NewCatalog(len(records) + s.headroom)
	for i, rec := range records {
		p, err := product.ParseRecord(rec)
		if err != nil {
			return nil, errors.Wrapf(err, "record %d", i+1)
		}
		catalog.Register(p)
	}

	lg.Info("Catalog loaded",
		zap.String("path", s.path),
		zap.Int("products", catalog.Len()),
		zap.Int("capacity", catalog.Capacity()))
	return catalog, nil
}

// Save rewrites the catalog file with the count header and each product's
// record in slot order.
func (s *CatalogStore) Save(ctx context.Context, catalog *product.Catalog) error {
	records := make([]string, 0, catalog.Len())
	for _, p := range catalog.All() {
		records = append(records, p.Record())
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

	zctx.From(ctx).Info("Catalog saved",
		zap.String("path", s.path), zap.Int("products", len(records)))
	return nil
}
