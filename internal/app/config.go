package app

import (
	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"

	"github.com/coisinhas/comercio/internal/domain/product"
)

// Config holds the complete application configuration, loadable from
// environment variables (COMERCIO_ prefix), flags, or YAML config files.
type Config struct {
	ProductsFile string `default:"dadosProdutos.csv" usage:"Product catalog data file" flag:"products-file"`
	OrdersFile   string `default:"dadosPedidos.csv"  usage:"Orders data file" flag:"orders-file"`
	Headroom     int    `default:"10" usage:"Free catalog slots kept beyond loaded products"`
	MaxOrders    int    `default:"10" usage:"Maximum orders loaded from the orders file" flag:"max-orders"`
	Resolution   string `default:"substring" usage:"Product name resolution policy for order records: substring or exact"`
}

// LoadConfig loads configuration from environment variables, flags, and
// YAML config files.
func LoadConfig() (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "COMERCIO",
		Files:     []string{"config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}

	if !product.ResolutionPolicy(cfg.Resolution).Valid() {
		return nil, errors.Errorf("unknown resolution policy %q: want substring or exact", cfg.Resolution)
	}
	if cfg.Headroom < 0 || cfg.MaxOrders < 0 {
		return nil, errors.New("headroom and max-orders must not be negative")
	}

	return &cfg, nil
}

// Policy returns the configured product name resolution policy.
func (c *Config) Policy() product.ResolutionPolicy {
	return product.ResolutionPolicy(c.Resolution)
}
