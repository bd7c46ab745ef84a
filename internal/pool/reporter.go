package pool

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/yourusername/bowl-pool/internal/models"
)

// GenerateConsoleReport formats a run summary for terminal output.
func GenerateConsoleReport(summary Summary) string {
	var builder strings.Builder
	builder.WriteString("Scenario Report\n")
	builder.WriteString("================\n")
	builder.WriteString(fmt.Sprintf("Run ID: %s\n", summary.RunID))
	builder.WriteString(fmt.Sprintf("Scenarios: %d (%d undecided bowls)\n", summary.Scenarios, summary.UndecidedBowls))
	builder.WriteString(fmt.Sprintf("Bettors: %d\n", summary.Bettors))
	builder.WriteString(fmt.Sprintf("Data Quality Warnings: %d\n", summary.Warnings))
	builder.WriteString(fmt.Sprintf("Duration: %s\n", summary.Duration))

	bettors := make([]string, 0, len(summary.ScenariosWon))
	for bettor := range summary.ScenariosWon {
		bettors = append(bettors, bettor)
	}
	sort.Slice(bettors, func(i, j int) bool {
		if summary.WinLikelihood[bettors[i]] != summary.WinLikelihood[bettors[j]] {
			return summary.WinLikelihood[bettors[i]] > summary.WinLikelihood[bettors[j]]
		}
		return bettors[i] < bettors[j]
	})

	for _, bettor := range bettors {
		likelihood := 0.0
		if summary.TotalProbability > 0 {
			likelihood = summary.WinLikelihood[bettor] / summary.TotalProbability
		}
		builder.WriteString(fmt.Sprintf("  %s: wins %d/%d scenarios, win likelihood %.2f%%\n",
			bettor, summary.ScenariosWon[bettor], summary.Scenarios, likelihood*100))
	}
	return builder.String()
}

// ResultWriter streams ScenarioResults as delimited rows. The column order
// is stable (scenario index, winners, winning score, probability, then one
// column per bowl in registry order) so rows can be pasted straight into a
// spreadsheet keyed by scenario index.
type ResultWriter struct {
	writer *csv.Writer
	bowls  []string
}

// NewTSVWriter creates a tab-delimited result writer for sheet pastes.
func NewTSVWriter(w io.Writer, registry *Registry) *ResultWriter {
	writer := csv.NewWriter(w)
	writer.Comma = '\t'
	return &ResultWriter{writer: writer, bowls: registry.BowlNames()}
}

// NewCSVWriter creates a comma-delimited result writer.
func NewCSVWriter(w io.Writer, registry *Registry) *ResultWriter {
	return &ResultWriter{writer: csv.NewWriter(w), bowls: registry.BowlNames()}
}

// WriteHeader writes the column header row.
func (r *ResultWriter) WriteHeader() error {
	header := append([]string{"scenario", "winners", "winning_score", "probability"}, r.bowls...)
	return r.writer.Write(header)
}

// Write appends one scenario result row. Rows must be written in canonical
// enumeration order; the engine guarantees that order on emission.
func (r *ResultWriter) Write(result models.ScenarioResult) error {
	row := make([]string, 0, 4+len(r.bowls))
	row = append(row,
		strconv.FormatUint(result.Index, 10),
		strings.Join(result.PoolWinners, ", "),
		result.WinningScore().String(),
		strconv.FormatFloat(result.Probability, 'f', -1, 64),
	)
	for _, bowl := range r.bowls {
		row = append(row, result.Assignment[bowl])
	}
	return r.writer.Write(row)
}

// Flush flushes buffered rows and reports any write error.
func (r *ResultWriter) Flush() error {
	r.writer.Flush()
	return r.writer.Error()
}

// ExportSummaryCSV writes the per-bettor aggregate summary for spreadsheets.
func ExportSummaryCSV(summary Summary, outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}

	bettors := make([]string, 0, len(summary.ScenariosWon))
	for bettor := range summary.ScenariosWon {
		bettors = append(bettors, bettor)
	}
	sort.Strings(bettors)

	var builder strings.Builder
	builder.WriteString("bettor,scenarios_won,win_likelihood\n")
	for _, bettor := range bettors {
		builder.WriteString(fmt.Sprintf("%s,%d,%.6f\n",
			bettor, summary.ScenariosWon[bettor], summary.WinLikelihood[bettor]))
	}
	return os.WriteFile(outputPath, []byte(builder.String()), 0o644)
}
