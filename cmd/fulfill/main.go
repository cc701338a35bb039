// Package main provides the fulfill command: it reads a batch of fulfillment
// requests and creates them through the Shopify Admin API, continuing past
// per-order failures.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/zerzus666/ticketforge-app-sub001/internal/config"
	"github.com/zerzus666/ticketforge-app-sub001/internal/logger"
	"github.com/zerzus666/ticketforge-app-sub001/internal/shopify"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to YAML configuration")
	batchPath := flag.String("batch", "", "Path to JSON file with fulfillment batch items")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger(cfg.Logging.Level)

	if *batchPath == "" {
		log.Error("Please provide a batch file with -batch")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := cfg.ValidateShopify(); err != nil {
		log.Error(fmt.Sprintf("❌ Shopify configuration invalid: %v", err))
		os.Exit(1)
	}

	token, err := cfg.Shopify.AccessToken()
	if err != nil {
		log.Error(fmt.Sprintf("❌ %v", err))
		os.Exit(1)
	}

	items, err := loadBatch(*batchPath)
	if err != nil {
		log.Error(fmt.Sprintf("❌ Failed to load batch: %v", err))
		os.Exit(1)
	}

	log.Info("🚀 Starting bulk fulfillment")
	log.Info(fmt.Sprintf("🎯 Shop: %s (%d orders)", cfg.Shopify.Shop, len(items)))

	client := shopify.NewClient(
		cfg.Shopify.Shop,
		cfg.Shopify.APIVersion,
		token,
		time.Duration(cfg.Shopify.TimeoutSec)*time.Second,
		cfg.Shopify.MaxAttempts,
		log,
	)

	startTime := time.Now()
	results := client.BulkFulfill(context.Background(), items, cfg.Shopify.MaxConcurrent)

	succeeded := 0
	failed := 0

	for _, r := range results {
		if r.Error == "" {
			succeeded++
		} else {
			failed++
		}
	}

	log.Info("✨ Bulk fulfillment complete!")
	fmt.Println("\n------------------------------------------------")
	fmt.Println("📊 Fulfillment Report")
	fmt.Println("------------------------------------------------")
	fmt.Printf("Orders processed: %d\n", len(results))
	fmt.Printf("Succeeded:        %d\n", succeeded)
	fmt.Printf("Failed:           %d\n", failed)
	fmt.Printf("Total duration:   %v\n", time.Since(startTime))

	if failed > 0 {
		fmt.Printf("⚠️  Failures:\n")

		for _, r := range results {
			if r.Error != "" {
				fmt.Printf("  - order %d: %s\n", r.OrderID, r.Error)
			}
		}
	}

	fmt.Println("------------------------------------------------")
}

func loadBatch(path string) ([]shopify.BulkItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var items []shopify.BulkItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	return items, nil
}
