package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/dheighten/laundryapi/internal/api"
	"github.com/dheighten/laundryapi/internal/config"
	"github.com/dheighten/laundryapi/internal/repository"
	"github.com/dheighten/laundryapi/internal/rules"
	"github.com/dheighten/laundryapi/internal/service"
	"github.com/dheighten/laundryapi/internal/whatsapp"
	"github.com/dheighten/laundryapi/pkg/money"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Load the catalog once; it is immutable for the process lifetime
	cat, err := repository.LoadCatalog(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal("Failed to load catalog", zap.Error(err))
	}
	logger.Info("Catalog loaded",
		zap.String("source", cfg.Catalog.Source),
		zap.Int("items", cat.Len()),
	)

	// Optional promotional adjustment rules
	var ruleEngine *rules.Engine
	if cfg.Catalog.RulesPath != "" {
		pack, err := rules.LoadPack(cfg.Catalog.RulesPath)
		if err != nil {
			logger.Fatal("Failed to load rules", zap.Error(err))
		}
		ruleEngine = rules.NewEngine(pack, logger)
		logger.Info("Adjustment rules loaded", zap.Int("rules", len(pack.Rules)))
	}

	// Wire services
	formatter := money.NewFormatter(cfg.Pricing.CurrencySymbol, cfg.Pricing.Locale)
	templates := whatsapp.NewTemplates(cfg.Business.Name, formatter)
	links := whatsapp.NewLinkBuilder(cfg.Business.WhatsAppNumber)

	svcs := &api.Services{
		Catalog: cat,
		Quote:   service.NewQuoteService(cat, templates, links, ruleEngine, formatter, cfg.Pricing.ExpressMarkupPercent, logger),
		Inquiry: service.NewInquiryService(templates, links, logger),
	}

	router := api.NewRouter(cfg, svcs, logger)

	logger.Info("Starting server", zap.String("port", cfg.Port), zap.String("environment", cfg.Environment))
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Server stopped", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
