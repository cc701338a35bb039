// Package importer loads event catalogs from JSON and CSV exports.
package importer

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/zerzus666/ticketforge-app-sub001/internal/logger"
	"github.com/zerzus666/ticketforge-app-sub001/internal/models"
)

// ErrUnsupportedFormat is returned for input formats other than json or csv.
var ErrUnsupportedFormat = errors.New("unsupported input format")

// Importer reads event records from exported files. Events arriving without
// an ID are assigned one; everything else is passed through untouched so the
// dedup engine sees the records as stored.
type Importer struct {
	logger *logger.Logger
}

// NewImporter creates a new importer instance.
func NewImporter(log *logger.Logger) *Importer {
	return &Importer{logger: log}
}

// Load reads events from path in the given format ("json" or "csv").
// Row-level problems are returned as a separate error list; the batch is
// never aborted for a bad row.
func (i *Importer) Load(path, format string) ([]*models.Event, []error, error) {
	switch format {
	case "json":
		events, err := i.LoadJSON(path)
		return events, nil, err
	case "csv":
		return i.LoadCSV(path)
	default:
		return nil, nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// LoadJSON reads a catalog envelope ({"events": [...]}) or a bare event
// array from a JSON file.
func (i *Importer) LoadJSON(path string) ([]*models.Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var catalog models.Catalog
	if err := json.Unmarshal(data, &catalog); err == nil && catalog.Events != nil {
		i.assignIDs(catalog.Events)
		return catalog.Events, nil
	}

	var events []*models.Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	i.assignIDs(events)

	return events, nil
}

func (i *Importer) assignIDs(events []*models.Event) {
	for _, e := range events {
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
	}
}
