package main

import (
	"flag"
	"fmt"
	"os"

	"foodcatalog/internal/browse"
	"foodcatalog/internal/catalog"
	"foodcatalog/internal/config"
	"foodcatalog/internal/output"
	"foodcatalog/ui/console"
	"foodcatalog/ui/tui"
	"foodcatalog/ui/tui/styles"
)

var version = "dev"

func main() {
	configPath := flag.String("config", "", "path to a config file (yaml, toml or json)")
	catalogPath := flag.String("catalog", "", "path to a catalog yaml file (default: built-in catalog)")
	printMode := flag.Bool("print", false, "print the catalog and every item's details, then exit")
	logFile := flag.String("log", "", "write debug logs to this file")
	noMouse := flag.Bool("no-mouse", false, "disable mouse support")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("foodcatalog", version)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if *catalogPath != "" {
		cfg = cfg.WithCatalogFile(*catalogPath)
	}
	if *logFile != "" {
		cfg = cfg.WithLogFile(*logFile)
	}
	if *noMouse {
		cfg = cfg.WithMouse(false)
	}

	cat, err := catalog.LoadOrDefault(cfg.CatalogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Catalog error: %v\n", err)
		os.Exit(1)
	}

	if *printMode {
		printAll(cat, cfg)
		return
	}

	styles.SetPalette(cat.Palette())
	if err := tui.Start(browse.New(cat), cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// printAll walks every category and opens every item the way the TUI would.
func printAll(cat *catalog.Catalog, cfg config.Config) {
	f := output.Formatting{CurrencySymbol: cfg.CurrencySymbol, DeliveryUnit: cfg.DeliveryUnit}
	state := browse.New(cat)

	for i := 0; i < cat.Len(); i++ {
		state.SelectCategory(i)
		console.PrintCatalog(os.Stdout, output.BuildCatalogView(state))

		for _, it := range state.VisibleItems() {
			p, err := state.OpenDetails(it)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Skipping %q: %v\n", it.Name, err)
				continue
			}
			console.PrintDetails(os.Stdout, output.BuildDetailsView(p, f))
		}
	}
}
