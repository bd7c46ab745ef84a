package datasource

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/yourusername/bowl-pool/internal/models"
)

// readRecords reads raw CSV rows, tolerating ragged row lengths. Sheet
// exports frequently pad or truncate trailing cells.
func readRecords(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	return reader.ReadAll()
}

// columnIndex maps normalized header names to their column positions.
// Headers are lowercased and spaces collapsed to underscores, so
// "Team A" and "team_a" address the same column.
func columnIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
		if key == "" {
			continue
		}
		if _, exists := index[key]; !exists {
			index[key] = i
		}
	}
	return index
}

func cell(row []string, index map[string]int, names ...string) string {
	for _, name := range names {
		if i, ok := index[name]; ok && i < len(row) {
			return strings.TrimSpace(row[i])
		}
	}
	return ""
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// parseFlag accepts the truthy spellings spreadsheet exports produce
func parseFlag(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "t", "yes", "y", "1":
		return true
	}
	return false
}

// parseBowls converts raw CSV rows into bowl records, preserving input
// order. Row numbers are 1-based and count the header row.
func parseBowls(records [][]string, source string) ([]models.Bowl, error) {
	if len(records) == 0 {
		return nil, NewSourceError(source, ErrCodeMalformedRecord, "bowl file is empty", nil)
	}

	index := columnIndex(records[0])
	if _, ok := index["bowl"]; !ok {
		if _, ok := index["name"]; !ok {
			return nil, NewSourceError(source, ErrCodeMissingColumn, "bowl file has no bowl column", nil)
		}
	}

	var bowls []models.Bowl
	for i, row := range records[1:] {
		if isBlankRow(row) {
			continue
		}
		bowls = append(bowls, models.Bowl{
			Name:    cell(row, index, "bowl", "name"),
			TeamA:   cell(row, index, "team_a", "home"),
			TeamB:   cell(row, index, "team_b", "away"),
			Decided: parseFlag(cell(row, index, "decided", "final")),
			Winner:  cell(row, index, "winner"),
			Row:     i + 2,
		})
	}
	return bowls, nil
}

// parseTeamFactors converts raw CSV rows into team factor records. Blank
// multiplier or probability cells stay unset so the engine's defaults apply.
func parseTeamFactors(records [][]string, source string) ([]models.TeamFactor, error) {
	if len(records) == 0 {
		return nil, nil
	}

	index := columnIndex(records[0])
	if _, ok := index["team"]; !ok {
		return nil, NewSourceError(source, ErrCodeMissingColumn, "factor file has no team column", nil)
	}

	var factors []models.TeamFactor
	for i, row := range records[1:] {
		if isBlankRow(row) {
			continue
		}

		factor := models.TeamFactor{
			Team: cell(row, index, "team"),
			Row:  i + 2,
		}

		if raw := cell(row, index, "multiplier"); raw != "" {
			mult, err := decimal.NewFromString(raw)
			if err != nil {
				return nil, NewSourceError(source, ErrCodeMalformedRecord,
					fmt.Sprintf("row %d: invalid multiplier %q", factor.Row, raw), err)
			}
			factor.Multiplier = &mult
		}

		if raw := cell(row, index, "probability", "prob"); raw != "" {
			prob, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, NewSourceError(source, ErrCodeMalformedRecord,
					fmt.Sprintf("row %d: invalid probability %q", factor.Row, raw), err)
			}
			factor.Probability = &prob
		}

		factors = append(factors, factor)
	}
	return factors, nil
}

// parsePicks converts raw CSV rows into pick records, preserving input
// order. Duplicate and out-of-range picks survive parsing; the pick index
// downgrades them to data quality warnings.
func parsePicks(records [][]string, source string) ([]models.Pick, error) {
	if len(records) == 0 {
		return nil, NewSourceError(source, ErrCodeMalformedRecord, "pick file is empty", nil)
	}

	index := columnIndex(records[0])
	for _, required := range []string{"bettor", "bowl", "team", "points"} {
		if _, ok := index[required]; !ok {
			return nil, NewSourceError(source, ErrCodeMissingColumn,
				fmt.Sprintf("pick file has no %s column", required), nil)
		}
	}

	var picks []models.Pick
	for i, row := range records[1:] {
		if isBlankRow(row) {
			continue
		}

		raw := cell(row, index, "points")
		points, err := strconv.Atoi(raw)
		if err != nil {
			return nil, NewSourceError(source, ErrCodeMalformedRecord,
				fmt.Sprintf("row %d: invalid points %q", i+2, raw), err)
		}

		picks = append(picks, models.Pick{
			Bettor: cell(row, index, "bettor"),
			Bowl:   cell(row, index, "bowl"),
			Team:   cell(row, index, "team"),
			Points: points,
			Row:    i + 2,
		})
	}
	return picks, nil
}
