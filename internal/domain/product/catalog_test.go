package product

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProduct(t *testing.T, description string) Product {
	t.Helper()
	return NewNonPerishable(description, d(t, "5.00"), d(t, "0.6"))
}

func TestCatalogRegisterCapacity(t *testing.T) {
	catalog := NewCatalog(2)

	assert.True(t, catalog.Register(testProduct(t, "Iogurte")))
	assert.True(t, catalog.Register(testProduct(t, "Guardanapos")))
	assert.False(t, catalog.Register(testProduct(t, "Leite")), "register must fail at capacity")
	assert.Equal(t, 2, catalog.Len())
	assert.Equal(t, 2, catalog.Capacity())

	// Still rejected on retry, count stays put.
	assert.False(t, catalog.Register(testProduct(t, "Leite")))
	assert.Equal(t, 2, catalog.Len())
}

func TestCatalogFindByText(t *testing.T) {
	catalog := NewCatalog(10)
	require.True(t, catalog.Register(testProduct(t, "Iogurte")))
	require.True(t, catalog.Register(testProduct(t, "Iogurte grego")))
	require.True(t, catalog.Register(testProduct(t, "Guardanapos")))

	var indexes []int
	for i, p := range catalog.FindByText("Iogurte") {
		indexes = append(indexes, i)
		assert.Contains(t, p.DisplayText(), "Iogurte")
	}
	assert.Equal(t, []int{0, 1}, indexes)

	// Case-sensitive, and the match runs over the display text, so price
	// fragments match too.
	assert.Empty(t, collectFound(catalog, "iogurte"))
	assert.Len(t, collectFound(catalog, "R$ 8.00"), 3)
	assert.Empty(t, collectFound(catalog, "Leite"), "empty sequence signals not found")
}

func collectFound(c *Catalog, text string) []Product {
	var out []Product
	for _, p := range c.FindByText(text) {
		out = append(out, p)
	}
	return out
}

func TestCatalogFindExact(t *testing.T) {
	catalog := NewCatalog(10)
	require.True(t, catalog.Register(testProduct(t, "Iogurte")))
	require.True(t, catalog.Register(testProduct(t, "Iogurte grego")))

	p, ok := catalog.FindExact("Iogurte")
	require.True(t, ok)
	assert.Equal(t, "Iogurte", p.Description())

	_, ok = catalog.FindExact("Iogur")
	assert.False(t, ok)
}

func TestCatalogResolverPolicies(t *testing.T) {
	catalog := NewCatalog(10)
	require.True(t, catalog.Register(testProduct(t, "Iogurte grego")))

	substring := catalog.Resolver(ResolveDisplaySubstring)
	p, ok := substring("Iogurte")
	require.True(t, ok)
	assert.Equal(t, "Iogurte grego", p.Description())

	exact := catalog.Resolver(ResolveExactName)
	_, ok = exact("Iogurte")
	assert.False(t, ok, "exact policy must not match partial names")
	p, ok = exact("Iogurte grego")
	require.True(t, ok)
	assert.Equal(t, "Iogurte grego", p.Description())
}

func TestResolutionPolicyValid(t *testing.T) {
	assert.True(t, ResolveDisplaySubstring.Valid())
	assert.True(t, ResolveExactName.Valid())
	assert.False(t, ResolutionPolicy("fuzzy").Valid())
}

func TestCatalogZeroCapacity(t *testing.T) {
	catalog := NewCatalog(0)
	assert.False(t, catalog.Register(NewNonPerishable("Iogurte", decimal.Zero, decimal.Zero)))
	assert.Equal(t, 0, catalog.Len())
}
