package textfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coisinhas/comercio/internal/domain/product"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestCatalogStoreLoadMissingFile(t *testing.T) {
	store := NewCatalogStore(filepath.Join(t.TempDir(), "nope.csv"), 10)

	catalog, err := store.Load(context.Background())
	require.NoError(t, err, "missing file is a valid empty start state")
	assert.Equal(t, 0, catalog.Len())
	assert.Equal(t, 10, catalog.Capacity())
}

func TestCatalogStoreLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dadosProdutos.csv")
	writeFile(t, path, "2\n1;Guardanapos;2.50;0.1\n2;Iogurte;5.00;0.6;29/08/2025\n")

	store := NewCatalogStore(path, 10)
	catalog, err := store.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, catalog.Len())
	assert.Equal(t, 12, catalog.Capacity(), "capacity is loaded count plus headroom")

	p, ok := catalog.FindExact("Iogurte")
	require.True(t, ok)
	assert.Equal(t, "NOME: Iogurte: R$ 8.00\nVálido até: 29/08/2025", p.DisplayText())
}

func TestCatalogStoreLoadHonorsHeadroomCap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dadosProdutos.csv")
	writeFile(t, path, "3\n1;A;1.00;0.1\n1;B;1.00;0.1\n1;C;1.00;0.1\n")

	store := NewCatalogStore(path, 2)
	catalog, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, catalog.Len(), "load reads min(count, headroom) records")
	assert.Equal(t, 4, catalog.Capacity())
}

func TestCatalogStoreLoadMalformedRecordAborts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dadosProdutos.csv")
	writeFile(t, path, "2\n1;Guardanapos;2.50;0.1\n1;Iogurte;caro;0.6\n")

	store := NewCatalogStore(path, 10)
	_, err := store.Load(context.Background())
	require.Error(t, err, "one bad record aborts the whole load")
	assert.True(t, errors.Is(err, product.ErrMalformedRecord), "got %v", err)
}

func TestCatalogStoreLoadBadHeaderStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dadosProdutos.csv")
	writeFile(t, path, "não é um número\n")

	store := NewCatalogStore(path, 10)
	catalog, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, catalog.Len())
}

func TestCatalogStoreSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dadosProdutos.csv")
	ctx := context.Background()

	cost := decimal.RequireFromString("5.00")
	margin := decimal.RequireFromString("0.6")

	catalog := product.NewCatalog(10)
	require.True(t, catalog.Register(product.NewNonPerishable("Guardanapos", decimal.RequireFromString("2.50"), decimal.RequireFromString("0.1"))))
	require.True(t, catalog.Register(product.NewNonPerishable("Iogurte", cost, margin)))

	store := NewCatalogStore(path, 10)
	require.NoError(t, store.Save(ctx, catalog))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "2\n1;Guardanapos;2.5;0.1\n1;Iogurte;5;0.6\n", string(raw))

	reloaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, reloaded.Len())
	for i, p := range catalog.All() {
		got, ok := reloaded.FindExact(p.Description())
		require.True(t, ok, "slot %d", i)
		assert.True(t, got.Equal(p), "slot %d", i)
	}
}

func TestCatalogStoreSaveFailure(t *testing.T) {
	catalog := product.NewCatalog(1)
	store := NewCatalogStore(filepath.Join(t.TempDir(), "no-such-dir", "dados.csv"), 10)
	assert.Error(t, store.Save(context.Background(), catalog))
}
