// Package app wires configuration, storage, and the interactive menu into
// one session.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/coisinhas/comercio/internal/cli"
	"github.com/coisinhas/comercio/internal/storage/textfile"
)

// Run loads both registries, drives the interactive session, and saves the
// catalog on exit. It is the single wiring point for the application.
// The catalog must be loaded before the orders: order records resolve
// product names against it.
func Run(ctx context.Context, lg *zap.Logger, cfg *Config) error {
	return run(ctx, lg, cfg, os.Stdin, os.Stdout)
}

func run(ctx context.Context, lg *zap.Logger, cfg *Config, in io.Reader, out io.Writer) error {
	lg = lg.With(zap.String("session", uuid.NewString()))
	ctx = zctx.Base(ctx, lg)

	lg.Info("Initializing",
		zap.String("products_file", cfg.ProductsFile),
		zap.String("orders_file", cfg.OrdersFile),
		zap.String("resolution", cfg.Resolution))

	catalogStore := textfile.NewCatalogStore(cfg.ProductsFile, cfg.Headroom)
	orderStore := textfile.NewOrderStore(cfg.OrdersFile, cfg.MaxOrders)

	catalog, err := catalogStore.Load(ctx)
	if err != nil {
		return errors.Wrap(err, "load catalog")
	}

	resolve := catalog.Resolver(cfg.Policy())
	orders, err := orderStore.Load(ctx, resolve)
	if err != nil {
		return errors.Wrap(err, "load orders")
	}

	menu := cli.New(in, out, catalog, orders)
	if err := menu.Run(ctx); err != nil {
		return errors.Wrap(err, "menu session")
	}

	// Only the catalog is written back; orders are read-only in this flow.
	if err := catalogStore.Save(ctx, catalog); err != nil {
		fmt.Fprintf(out, "Problemas no arquivo %s. Tente novamente.\n", cfg.ProductsFile)
		lg.Error("Catalog save failed", zap.Error(err))
		return nil
	}
	fmt.Fprintf(out, "Arquivo %s salvo com sucesso.\n", cfg.ProductsFile)
	return nil
}
