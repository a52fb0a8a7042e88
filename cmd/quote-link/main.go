package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/dheighten/laundryapi/internal/config"
	"github.com/dheighten/laundryapi/internal/repository"
	"github.com/dheighten/laundryapi/internal/rules"
	"github.com/dheighten/laundryapi/internal/service"
	"github.com/dheighten/laundryapi/internal/whatsapp"
	"github.com/dheighten/laundryapi/pkg/money"
)

func main() {
	express := flag.Bool("express", false, "apply the express surcharge")
	name := flag.String("name", "", "customer name")
	phone := flag.String("phone", "", "customer phone")
	address := flag.String("address", "", "pickup address")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 {
		usage()
		os.Exit(1)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	cat, err := repository.LoadCatalog(context.Background(), cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load catalog: %v\n", err)
		os.Exit(1)
	}

	var ruleEngine *rules.Engine
	if cfg.Catalog.RulesPath != "" {
		pack, err := rules.LoadPack(cfg.Catalog.RulesPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load rules: %v\n", err)
			os.Exit(1)
		}
		ruleEngine = rules.NewEngine(pack, logger)
	}

	req := service.QuoteRequest{
		IsExpress: *express,
		Customer: service.CustomerInfo{
			Name:    *name,
			Phone:   *phone,
			Address: *address,
		},
	}
	for _, arg := range flag.Args() {
		itemID, qtyStr, ok := strings.Cut(arg, "=")
		if !ok {
			fmt.Fprintf(os.Stderr, "Invalid selection %q, expected item=quantity\n", arg)
			os.Exit(1)
		}
		qty, err := strconv.Atoi(qtyStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid quantity in %q: %v\n", arg, err)
			os.Exit(1)
		}
		req.Lines = append(req.Lines, service.QuoteLineRequest{ItemID: itemID, Quantity: qty})
	}

	formatter := money.NewFormatter(cfg.Pricing.CurrencySymbol, cfg.Pricing.Locale)
	templates := whatsapp.NewTemplates(cfg.Business.Name, formatter)
	links := whatsapp.NewLinkBuilder(cfg.Business.WhatsAppNumber)
	quotes := service.NewQuoteService(cat, templates, links, ruleEngine, formatter, cfg.Pricing.ExpressMarkupPercent, logger)

	quote, err := quotes.ComputeQuote(req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to compute quote: %v\n", err)
		os.Exit(1)
	}

	_, link, err := quotes.QuoteMessage(quote)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build link: %v\n", err)
		os.Exit(1)
	}

	for _, line := range quote.Lines {
		fmt.Printf("%-30s x%-3d %s\n", line.Name, line.Quantity, formatter.Format(line.LineTotal))
	}
	fmt.Printf("\nSubtotal: %s\n", formatter.Format(quote.Subtotal))
	if quote.ExpressMarkup != nil {
		fmt.Printf("Express markup: %s\n", formatter.Format(*quote.ExpressMarkup))
	}
	if quote.Discount != nil {
		fmt.Printf("Discount (%s): -%s\n", quote.AppliedRuleID, formatter.Format(*quote.Discount))
	}
	fmt.Printf("Total: %s\n\n", quote.FormattedTotal)
	fmt.Println(link)
}

func usage() {
	fmt.Println("Usage: go run cmd/quote-link/main.go [flags] item=quantity [item=quantity...]")
	fmt.Println("Example: go run cmd/quote-link/main.go -express -name \"Aisha\" coloured-top=5 white-shirt=2")
	flag.PrintDefaults()
}
