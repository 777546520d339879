// Larder - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package corpus

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	// DuckDB driver - reads CSV, Parquet and JSON recipe files in-process
	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/tomtom215/larder/internal/recommend"
)

// Supported source formats.
const (
	FormatAuto    = "auto"
	FormatCSV     = "csv"
	FormatTSV     = "tsv"
	FormatParquet = "parquet"
	FormatJSON    = "json"
)

// Column names expected in the source file, in Recipe field order.
const (
	ColumnName             = "recipe_name"
	ColumnIngredients      = "ingredients_list"
	ColumnDescription      = "Description"
	ColumnProcedure        = "Procedure"
	ColumnRegion           = "Region"
	ColumnNutritionalValue = "nutritional_value"
	ColumnImageURL         = "image_url"
)

// RequiredColumns lists the columns a recipe file must have.
var RequiredColumns = []string{
	ColumnName,
	ColumnIngredients,
	ColumnDescription,
	ColumnProcedure,
	ColumnRegion,
	ColumnNutritionalValue,
	ColumnImageURL,
}

var (
	// ErrMissingColumn is returned when a required column is absent.
	ErrMissingColumn = errors.New("missing required column")

	// ErrUnsupportedFormat is returned for an unknown format or extension.
	ErrUnsupportedFormat = errors.New("unsupported corpus format")
)

// sourceView is the temporary view the source file is exposed through.
const sourceView = "recipe_source"

// Reader reads recipe files through an in-memory DuckDB connection.
type Reader struct {
	db *sql.DB
}

// NewReader opens an in-memory DuckDB connection.
func NewReader() (*Reader, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}

	// The source view and settings are per connection.
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Row order is the corpus identity, so DuckDB must not reorder rows.
	if _, err := db.ExecContext(ctx, "SET preserve_insertion_order = true"); err != nil {
		db.Close() //nolint:errcheck // best-effort cleanup on error path
		return nil, fmt.Errorf("configure duckdb: %w", err)
	}

	return &Reader{db: db}, nil
}

// Close closes the DuckDB connection.
func (r *Reader) Close() error {
	return r.db.Close()
}

// ResolveFormat returns the concrete format for path. FormatAuto and the
// empty string select a format from the file extension.
func ResolveFormat(path, format string) (string, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	switch format {
	case FormatCSV, FormatTSV, FormatParquet, FormatJSON:
		return format, nil
	case FormatAuto, "":
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".tsv", ".tab":
		return FormatTSV, nil
	case ".parquet", ".pq":
		return FormatParquet, nil
	case ".json", ".jsonl", ".ndjson":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: cannot infer format from %q", ErrUnsupportedFormat, filepath.Base(path))
	}
}

// sourceQuery returns the table function reading path in the given format.
func sourceQuery(path, format string) string {
	quoted := "'" + strings.ReplaceAll(path, "'", "''") + "'"
	switch format {
	case FormatTSV:
		return fmt.Sprintf("read_csv(%s, header = true, all_varchar = true, delim = '\\t')", quoted)
	case FormatParquet:
		return fmt.Sprintf("read_parquet(%s)", quoted)
	case FormatJSON:
		return fmt.Sprintf("read_json_auto(%s)", quoted)
	default:
		return fmt.Sprintf("read_csv(%s, header = true, all_varchar = true)", quoted)
	}
}

// attach exposes the file at path as sourceView.
func (r *Reader) attach(ctx context.Context, path, format string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("stat corpus file: %w", err)
	}

	stmt := fmt.Sprintf("CREATE OR REPLACE TEMP VIEW %s AS SELECT * FROM %s", sourceView, sourceQuery(path, format))
	if _, err := r.db.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("read %s file: %w", format, err)
	}
	return nil
}

func (r *Reader) columns(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT * FROM "+sourceView+" LIMIT 0")
	if err != nil {
		return nil, fmt.Errorf("describe source: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("describe source: %w", err)
	}
	return cols, nil
}

// verifyColumns maps each required column to the name used in the file.
// Matching is case-insensitive, as DuckDB identifiers are.
func verifyColumns(have []string) (map[string]string, error) {
	resolved := make(map[string]string, len(RequiredColumns))
	var missing []string
	for _, want := range RequiredColumns {
		found := false
		for _, col := range have {
			if strings.EqualFold(col, want) {
				resolved[want] = col
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, want)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return resolved, nil
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// ReadAll reads every recipe in file order. NULL values become empty strings.
func (r *Reader) ReadAll(ctx context.Context, path, format string) ([]recommend.Recipe, error) {
	format, err := ResolveFormat(path, format)
	if err != nil {
		return nil, err
	}
	if err := r.attach(ctx, path, format); err != nil {
		return nil, err
	}

	have, err := r.columns(ctx)
	if err != nil {
		return nil, err
	}
	resolved, err := verifyColumns(have)
	if err != nil {
		return nil, err
	}

	selects := make([]string, len(RequiredColumns))
	for i, col := range RequiredColumns {
		selects[i] = fmt.Sprintf("COALESCE(CAST(%s AS VARCHAR), '')", quoteIdent(resolved[col]))
	}
	query := "SELECT " + strings.Join(selects, ", ") + " FROM " + sourceView

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query recipes: %w", err)
	}
	defer rows.Close()

	recipes := make([]recommend.Recipe, 0)
	for rows.Next() {
		var rec recommend.Recipe
		if err := rows.Scan(
			&rec.Name,
			&rec.IngredientsText,
			&rec.Description,
			&rec.Procedure,
			&rec.Region,
			&rec.NutritionalValue,
			&rec.ImageURL,
		); err != nil {
			return nil, fmt.Errorf("scan recipe %d: %w", len(recipes), err)
		}
		recipes = append(recipes, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recipes: %w", err)
	}

	return recipes, nil
}

// Load reads the recipe file at path with a short-lived Reader.
func Load(ctx context.Context, path, format string) ([]recommend.Recipe, error) {
	r, err := NewReader()
	if err != nil {
		return nil, err
	}
	defer r.Close() //nolint:errcheck // read-only connection, close errors not actionable

	return r.ReadAll(ctx, path, format)
}
