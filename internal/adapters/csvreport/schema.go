package csvreport

import (
	"fmt"
	"strconv"
	"time"

	"github.com/renato0307/mergebench/internal/domain"
)

// Column maps one field of T to one CSV column
type Column[T any] struct {
	Decode func(row *T, cell string) error
	Encode func(row T) string
	Name   string
}

// Schema is the fixed, ordered column layout of an entity
type Schema[T any] struct {
	Columns []Column[T]
}

// Header returns the column names in order
func (s Schema[T]) Header() []string {
	header := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		header[i] = c.Name
	}
	return header
}

func (s Schema[T]) encode(row T) []string {
	cells := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		cells[i] = c.Encode(row)
	}
	return cells
}

func (s Schema[T]) decode(cells []string) (T, error) {
	var row T
	if len(cells) != len(s.Columns) {
		return row, fmt.Errorf("expected %d cells, got %d", len(s.Columns), len(cells))
	}
	for i, c := range s.Columns {
		if err := c.Decode(&row, cells[i]); err != nil {
			return row, fmt.Errorf("failed to decode column %s: %w", c.Name, err)
		}
	}
	return row, nil
}

// StringColumn is a column holding a string field
func StringColumn[T any](name string, get func(T) string, set func(*T, string)) Column[T] {
	return Column[T]{
		Name:   name,
		Encode: get,
		Decode: func(row *T, cell string) error {
			set(row, cell)
			return nil
		},
	}
}

// IntColumn is a column holding an int field
func IntColumn[T any](name string, get func(T) int, set func(*T, int)) Column[T] {
	return Column[T]{
		Name:   name,
		Encode: func(row T) string { return strconv.Itoa(get(row)) },
		Decode: func(row *T, cell string) error {
			v, err := strconv.Atoi(cell)
			if err != nil {
				return &domain.InvalidValueError{Field: name, Value: cell}
			}
			set(row, v)
			return nil
		},
	}
}

// Int64Column is a column holding an int64 field
func Int64Column[T any](name string, get func(T) int64, set func(*T, int64)) Column[T] {
	return Column[T]{
		Name:   name,
		Encode: func(row T) string { return strconv.FormatInt(get(row), 10) },
		Decode: func(row *T, cell string) error {
			v, err := strconv.ParseInt(cell, 10, 64)
			if err != nil {
				return &domain.InvalidValueError{Field: name, Value: cell}
			}
			set(row, v)
			return nil
		},
	}
}

// FloatColumn is a column holding a float64 field, written with the
// shortest representation that round-trips
func FloatColumn[T any](name string, get func(T) float64, set func(*T, float64)) Column[T] {
	return Column[T]{
		Name:   name,
		Encode: func(row T) string { return strconv.FormatFloat(get(row), 'g', -1, 64) },
		Decode: func(row *T, cell string) error {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return &domain.InvalidValueError{Field: name, Value: cell}
			}
			set(row, v)
			return nil
		},
	}
}

// BoolColumn is a column holding a bool field, written as True/False
func BoolColumn[T any](name string, get func(T) bool, set func(*T, bool)) Column[T] {
	return Column[T]{
		Name: name,
		Encode: func(row T) string {
			if get(row) {
				return "True"
			}
			return "False"
		},
		Decode: func(row *T, cell string) error {
			v, err := strconv.ParseBool(cell)
			if err != nil {
				return &domain.InvalidValueError{Field: name, Value: cell}
			}
			set(row, v)
			return nil
		},
	}
}

// DurationColumn is a column holding a time.Duration field
func DurationColumn[T any](name string, get func(T) time.Duration, set func(*T, time.Duration)) Column[T] {
	return Column[T]{
		Name:   name,
		Encode: func(row T) string { return get(row).String() },
		Decode: func(row *T, cell string) error {
			v, err := time.ParseDuration(cell)
			if err != nil {
				return &domain.InvalidValueError{Field: name, Value: cell}
			}
			set(row, v)
			return nil
		},
	}
}

// OutcomeColumn is a column holding a domain.MergeOutcome field
func OutcomeColumn[T any](name string, get func(T) domain.MergeOutcome, set func(*T, domain.MergeOutcome)) Column[T] {
	return Column[T]{
		Name:   name,
		Encode: func(row T) string { return string(get(row)) },
		Decode: func(row *T, cell string) error {
			v, err := domain.ParseMergeOutcome(cell)
			if err != nil {
				return err
			}
			set(row, v)
			return nil
		},
	}
}
