package store

import (
	"context"
	"fmt"

	"github.com/philipgiuliani/sfgarden/internal/schemadoc"
)

// The Store implements schemadoc.Catalog by reading information_schema.
// The three queries are read-only and safe to run on every process
// start; schemadoc caches the rendered result.

// Columns returns column metadata for the given tables in declaration order.
func (s *Store) Columns(ctx context.Context, tables []string) ([]schemadoc.Column, error) {
	query := `
		SELECT table_name, column_name, data_type, is_nullable, COALESCE(column_default, '')
		FROM information_schema.columns
		WHERE table_schema = 'public' AND table_name = ANY($1)
		ORDER BY table_name, ordinal_position`

	rows, err := s.db.QueryContext(ctx, query, tables)
	if err != nil {
		return nil, fmt.Errorf("catalog query error: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var columns []schemadoc.Column
	for rows.Next() {
		var col schemadoc.Column
		var nullable string
		if err := rows.Scan(&col.Table, &col.Name, &col.DataType, &nullable, &col.Default); err != nil {
			return nil, fmt.Errorf("catalog query error: %w", err)
		}
		col.Nullable = nullable == "YES"
		columns = append(columns, col)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("catalog query error: %w", err)
	}
	return columns, nil
}

// ForeignKeys returns single-column foreign-key constraints for the
// given tables.
func (s *Store) ForeignKeys(ctx context.Context, tables []string) ([]schemadoc.ForeignKey, error) {
	query := `
		SELECT tc.table_name, kcu.column_name, ccu.table_name, ccu.column_name
		FROM information_schema.table_constraints tc
		JOIN information_schema.key_column_usage kcu
		  ON kcu.constraint_name = tc.constraint_name AND kcu.table_schema = tc.table_schema
		JOIN information_schema.constraint_column_usage ccu
		  ON ccu.constraint_name = tc.constraint_name AND ccu.table_schema = tc.table_schema
		WHERE tc.table_schema = 'public'
		  AND tc.constraint_type = 'FOREIGN KEY'
		  AND tc.table_name = ANY($1)`

	rows, err := s.db.QueryContext(ctx, query, tables)
	if err != nil {
		return nil, fmt.Errorf("catalog query error: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var fks []schemadoc.ForeignKey
	for rows.Next() {
		var fk schemadoc.ForeignKey
		if err := rows.Scan(&fk.Table, &fk.Column, &fk.RefTable, &fk.RefColumn); err != nil {
			return nil, fmt.Errorf("catalog query error: %w", err)
		}
		fks = append(fks, fk)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("catalog query error: %w", err)
	}
	return fks, nil
}

// Checks returns per-column check constraints for the given tables.
// The implicit "column IS NOT NULL" checks Postgres synthesizes for
// NOT NULL columns are filtered out — nullability is reported separately.
func (s *Store) Checks(ctx context.Context, tables []string) ([]schemadoc.Check, error) {
	query := `
		SELECT tc.table_name, ccu.column_name, cc.check_clause
		FROM information_schema.table_constraints tc
		JOIN information_schema.check_constraints cc
		  ON cc.constraint_name = tc.constraint_name AND cc.constraint_schema = tc.table_schema
		JOIN information_schema.constraint_column_usage ccu
		  ON ccu.constraint_name = tc.constraint_name AND ccu.table_schema = tc.table_schema
		WHERE tc.table_schema = 'public'
		  AND tc.constraint_type = 'CHECK'
		  AND tc.table_name = ANY($1)
		  AND cc.check_clause NOT ILIKE '%IS NOT NULL%'`

	rows, err := s.db.QueryContext(ctx, query, tables)
	if err != nil {
		return nil, fmt.Errorf("catalog query error: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var checks []schemadoc.Check
	for rows.Next() {
		var chk schemadoc.Check
		if err := rows.Scan(&chk.Table, &chk.Column, &chk.Definition); err != nil {
			return nil, fmt.Errorf("catalog query error: %w", err)
		}
		checks = append(checks, chk)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("catalog query error: %w", err)
	}
	return checks, nil
}
