package pipeline

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Export formats
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// ExportOptions controls what ends up in an export
type ExportOptions struct {
	Format      string
	WinnersOnly bool // skip countries without a title
}

// Export writes the win table to w and returns the number of rows written
func Export(w io.Writer, wins WinCounts, opts ExportOptions) (int, error) {
	switch strings.ToLower(opts.Format) {
	case "", FormatCSV:
		return exportToCSV(w, wins, opts.WinnersOnly)
	case FormatJSON:
		return exportToJSON(w, wins, opts.WinnersOnly)
	default:
		return 0, fmt.Errorf("unknown export format: %s", opts.Format)
	}
}

// exportToCSV writes a country,wins table
func exportToCSV(w io.Writer, wins WinCounts, winnersOnly bool) (int, error) {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"country", "wins"}); err != nil {
		return 0, fmt.Errorf("failed to write header: %w", err)
	}

	recordCount := 0
	for _, row := range wins.Rows() {
		if winnersOnly && row.Wins == 0 {
			continue
		}
		if err := writer.Write([]string{row.Country, strconv.Itoa(row.Wins)}); err != nil {
			return recordCount, fmt.Errorf("failed to write row: %w", err)
		}
		recordCount++
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return recordCount, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return recordCount, nil
}

// exportToJSON writes the table with a small header block
func exportToJSON(w io.Writer, wins WinCounts, winnersOnly bool) (int, error) {
	rows := wins.Rows()
	if winnersOnly {
		rows = wins.Winners()
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	exportData := map[string]interface{}{
		"export_info": map[string]interface{}{
			"record_count": len(rows),
			"total_wins":   wins.Total(),
			"export_type":  "win_counts",
		},
		"data": rows,
	}

	if err := encoder.Encode(exportData); err != nil {
		return 0, fmt.Errorf("failed to encode JSON: %w", err)
	}
	return len(rows), nil
}
