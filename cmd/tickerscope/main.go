package main

import (
	"log"
	"os"

	"TickerScope/internal/cli"
	"TickerScope/internal/collector"
	"TickerScope/internal/config"
	"TickerScope/internal/model"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.SetOutput(os.Stderr)

	if err := config.LoadEnv(); err != nil {
		log.Printf("[WARN] %v", err)
	}

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	app := &cli.App{
		Source:    newSource(cfg),
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		TableRows: cfg.Report.TableRows,
	}
	log.Printf("[INFO] data source: %s", app.Source.Name())
	os.Exit(app.Run(os.Args[1:]))
}

func newSource(cfg *config.Config) collector.MarketDataSource {
	switch cfg.DataSource.Name {
	case "rest":
		return collector.NewRESTSource(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	case "mock":
		return &collector.MockSource{Price: 100, Info: &model.CompanyInfo{LongName: "Mock Corporation"}}
	default:
		return collector.NewYahooSource(cfg.Proxy, cfg.DataSource.UserAgent, cfg.DataSource.SymbolMap)
	}
}
