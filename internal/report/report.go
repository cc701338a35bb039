// Package report renders deduplication results as a markdown document.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/zerzus666/ticketforge-app-sub001/internal/dedup"
	"github.com/zerzus666/ticketforge-app-sub001/internal/models"
	"github.com/zerzus666/ticketforge-app-sub001/pkg/utils"
)

const maxTitleWidth = 40

// Write renders a markdown report of a deduplication pass: a summary block,
// the kept events, and the duplicate matches that were collapsed.
func Write(w io.Writer, stats dedup.Stats, events []*models.Event) error {
	var b strings.Builder

	b.WriteString("# Deduplication Report\n\n")

	b.WriteString("## Summary\n\n")
	fmt.Fprintf(&b, "- Input events: %d\n", stats.Input)
	fmt.Fprintf(&b, "- Unique events: %d\n", stats.Unique)
	fmt.Fprintf(&b, "- Duplicates collapsed: %d\n", stats.Duplicates)
	fmt.Fprintf(&b, "- Records replaced by a more complete duplicate: %d\n", stats.Replaced)
	b.WriteString("\n")

	b.WriteString("## Kept Events\n\n")

	if len(events) == 0 {
		b.WriteString("No events.\n\n")
	} else {
		rows := make([][]string, 0, len(events))
		for _, e := range events {
			rows = append(rows, []string{
				utils.Truncate(e.Title, maxTitleWidth),
				e.Date,
				e.Time,
				utils.Truncate(e.Venue.Name, maxTitleWidth),
				fmt.Sprintf("%d", dedup.Completeness(e)),
			})
		}

		writeTable(&b, []string{"Title", "Date", "Time", "Venue", "Completeness"}, rows)
	}

	b.WriteString("## Duplicate Matches\n\n")

	if len(stats.Matches) == 0 {
		b.WriteString("No duplicates found.\n")
	} else {
		rows := make([][]string, 0, len(stats.Matches))
		for _, m := range stats.Matches {
			rows = append(rows, []string{
				utils.Truncate(m.Candidate.Title, maxTitleWidth),
				utils.Truncate(m.Existing.Title, maxTitleWidth),
				fmt.Sprintf("%.1f", m.Score),
				strings.Join(m.Reasons, ", "),
			})
		}

		writeTable(&b, []string{"Candidate", "Matched", "Score", "Reasons"}, rows)
	}

	_, err := io.WriteString(w, b.String())

	return err
}

// WriteFile renders the report to a file.
func WriteFile(path string, stats dedup.Stats, events []*models.Event) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	if err := Write(f, stats, events); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}

// writeTable emits a markdown table with columns padded to equal display
// width so the raw text stays readable.
func writeTable(b *strings.Builder, headers []string, rows [][]string) {
	widths := make([]int, len(headers))

	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}

	for _, row := range rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			if w := runewidth.StringWidth(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	// Separator cells need at least "---".
	for i := range widths {
		if widths[i] < 3 {
			widths[i] = 3
		}
	}

	writeRow := func(cells []string) {
		b.WriteString("|")

		for i, width := range widths {
			content := ""
			if i < len(cells) {
				content = cells[i]
			}

			padding := width - runewidth.StringWidth(content)

			b.WriteString(" ")
			b.WriteString(content)

			if padding > 0 {
				b.WriteString(strings.Repeat(" ", padding))
			}

			b.WriteString(" |")
		}

		b.WriteString("\n")
	}

	writeRow(headers)

	b.WriteString("|")

	for _, width := range widths {
		b.WriteString(" ")
		b.WriteString(strings.Repeat("-", width))
		b.WriteString(" |")
	}

	b.WriteString("\n")

	for _, row := range rows {
		writeRow(row)
	}

	b.WriteString("\n")
}
