// Package main provides the dedup command: it imports an event catalog,
// validates it, collapses duplicates, and writes the unique catalog plus a
// markdown report.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/zerzus666/ticketforge-app-sub001/internal/config"
	"github.com/zerzus666/ticketforge-app-sub001/internal/dedup"
	"github.com/zerzus666/ticketforge-app-sub001/internal/importer"
	"github.com/zerzus666/ticketforge-app-sub001/internal/logger"
	"github.com/zerzus666/ticketforge-app-sub001/internal/models"
	"github.com/zerzus666/ticketforge-app-sub001/internal/report"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to YAML configuration")
	inputPath := flag.String("input", "", "Input catalog path (overrides config)")
	format := flag.String("format", "", "Input format: json or csv (overrides config)")
	outputPath := flag.String("output", "", "Output catalog path (overrides config)")
	skipInvalid := flag.Bool("skip-invalid", false, "Drop events that fail validation instead of keeping them")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if *inputPath != "" {
		cfg.Input.Path = *inputPath
	}

	if *format != "" {
		cfg.Input.Format = *format
	}

	if *outputPath != "" {
		cfg.Output.Path = *outputPath
	}

	log := logger.NewLogger(cfg.Logging.Level)

	log.Info("🚀 Starting catalog deduplication")
	log.Info(fmt.Sprintf("📂 Source: %s (%s)", cfg.Input.Path, cfg.Input.Format))

	startTime := time.Now()

	// Phase 1: Import
	imp := importer.NewImporter(log)

	events, rowErrors, err := imp.Load(cfg.Input.Path, cfg.Input.Format)
	if err != nil {
		log.Error(fmt.Sprintf("❌ Import failed: %v", err))
		os.Exit(1)
	}

	log.Info(fmt.Sprintf("✅ Imported %d events in %v", len(events), time.Since(startTime)))

	for _, rowErr := range rowErrors {
		log.Warn(fmt.Sprintf("⚠️  Skipped row: %v", rowErr))
	}

	// Phase 2: Validate
	validator := dedup.NewValidator()
	now := time.Now()
	invalid := 0

	var valid []*models.Event

	for _, event := range events {
		result := validator.Validate(event, now)
		if result.IsValid {
			valid = append(valid, event)
			continue
		}

		invalid++

		log.Warn(fmt.Sprintf("⚠️  Invalid event %q: %v", event.Title, result.Errors))

		if !*skipInvalid {
			valid = append(valid, event)
		}
	}

	if *skipInvalid {
		log.Info(fmt.Sprintf("✅ Validation done: %d valid, %d dropped", len(valid), invalid))
	} else {
		log.Info(fmt.Sprintf("✅ Validation done: %d events flagged, all kept", invalid))
	}

	// Phase 3: Deduplicate
	detector := dedup.NewDetector(log)
	unique, stats := detector.DetectWithStats(valid)

	// Phase 4: Write outputs
	if err := writeCatalog(cfg.Output.Path, unique, cfg.Output.PrettyPrint); err != nil {
		log.Error(fmt.Sprintf("❌ Failed to write catalog: %v", err))
		os.Exit(1)
	}

	if cfg.Output.ReportPath != "" {
		if err := report.WriteFile(cfg.Output.ReportPath, stats, unique); err != nil {
			log.Error(fmt.Sprintf("❌ Failed to write report: %v", err))
			os.Exit(1)
		}

		log.Info(fmt.Sprintf("📝 Report written to %s", cfg.Output.ReportPath))
	}

	log.Info("✨ Deduplication complete!")
	fmt.Println("\n------------------------------------------------")
	fmt.Println("📊 Summary Report")
	fmt.Println("------------------------------------------------")
	fmt.Printf("Input events:   %d\n", stats.Input)
	fmt.Printf("Unique events:  %d\n", stats.Unique)
	fmt.Printf("Duplicates:     %d\n", stats.Duplicates)
	fmt.Printf("Replaced:       %d\n", stats.Replaced)
	fmt.Printf("Invalid events: %d\n", invalid)
	fmt.Printf("Total duration: %v\n", time.Since(startTime))
	fmt.Println("------------------------------------------------")
}

func writeCatalog(path string, events []*models.Event, pretty bool) error {
	catalog := models.Catalog{
		Events:  events,
		Summary: models.BuildSummary(events),
	}

	var (
		data []byte
		err  error
	)

	if pretty {
		data, err = json.MarshalIndent(catalog, "", "  ")
	} else {
		data, err = json.Marshal(catalog)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}
