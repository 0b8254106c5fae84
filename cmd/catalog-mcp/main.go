package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"foodcatalog/internal/catalog"
	"foodcatalog/internal/catalogdb"
	"foodcatalog/internal/config"
	"foodcatalog/internal/mcpserver"
)

var version = "dev"

func main() {
	var configPath string
	var catalogPath string

	flag.StringVar(&configPath, "config", "", "config file (YAML)")
	flag.StringVar(&catalogPath, "catalog", "", "catalog file replacing the embedded sample data")
	flag.Parse()

	if err := run(configPath, catalogPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, catalogPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if catalogPath != "" {
		cfg = cfg.WithCatalogFile(catalogPath)
	}

	cat, err := catalog.LoadOrDefault(cfg.CatalogFile)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, err := catalogdb.Open(ctx, cat)
	if err != nil {
		return fmt.Errorf("indexing catalog: %w", err)
	}
	defer repo.Close()

	srv := mcpserver.NewServer(mcpserver.Config{
		ServerName:    "foodcatalog",
		ServerVersion: version,
	}, cat, repo)

	return srv.Start(ctx)
}
