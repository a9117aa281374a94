package csvreport

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/renato0307/mergebench/internal/domain"
	"github.com/renato0307/mergebench/internal/logging"
)

// Write stores rows under the schema's header. Rows are sorted by their
// encoded cells and every cell is right-justified to the width of the
// widest cell in its column plus one.
func Write[T any](path string, rows []T, schema Schema[T]) error {
	logging.Logger.Debug("Writing CSV", "path", path, "rows", len(rows))

	body := make([][]string, 0, len(rows))
	for _, row := range rows {
		body = append(body, schema.encode(row))
	}
	slices.SortStableFunc(body, slices.Compare[[]string])

	table := append([][]string{schema.Header()}, body...)
	for _, row := range table {
		for i, cell := range row {
			row[i] = quote(cell)
		}
	}
	justify(table)

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	// csv.Writer would quote the padded cells, so lines are joined here
	var sb strings.Builder
	for _, row := range table {
		sb.WriteString(strings.Join(row, ","))
		sb.WriteByte('\n')
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Read loads rows written under the same schema. A different header fails
// with domain.ErrHeaderMismatch.
func Read[T any](path string, schema Schema[T]) ([]T, error) {
	logging.Logger.Debug("Reading CSV", "path", path)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %s is empty", domain.ErrHeaderMismatch, path)
		}
		return nil, fmt.Errorf("failed to read header of %s: %w", path, err)
	}

	expected := schema.Header()
	if !slices.Equal(header, expected) {
		return nil, fmt.Errorf("%w: expected %v, got %v", domain.ErrHeaderMismatch, expected, header)
	}

	var rows []T
	for line := 2; ; line++ {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		row, err := schema.decode(record)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, line, err)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// quote wraps a cell in double quotes when it contains a separator, a
// quote or a line break. Leading blanks are quoted too, since Read strips
// the justification padding.
func quote(cell string) string {
	leadingBlank := strings.HasPrefix(cell, " ") || strings.HasPrefix(cell, "\t")
	if !leadingBlank && !strings.ContainsAny(cell, ",\"\r\n") {
		return cell
	}
	return `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
}

func justify(table [][]string) {
	if len(table) == 0 {
		return
	}

	widths := make([]int, len(table[0]))
	for _, row := range table {
		for i, cell := range row {
			widths[i] = max(widths[i], utf8.RuneCountInString(cell))
		}
	}

	for _, row := range table {
		for i, cell := range row {
			pad := widths[i] + 1 - utf8.RuneCountInString(cell)
			row[i] = strings.Repeat(" ", pad) + cell
		}
	}
}
