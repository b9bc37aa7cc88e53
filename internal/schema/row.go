package schema

import (
	"database/sql"
	"errors"
	"fmt"
)

// Row gives typed access to one result row by column name.
// A missing column and a NULL value both read as nil.
type Row interface {
	Get(column string, kind Kind) (any, error)
}

// MapRow is a Row backed by a column-name map.
type MapRow map[string]any

func (r MapRow) Get(column string, kind Kind) (any, error) {
	v, err := Coerce(r[column], kind)
	if err != nil {
		var ce *CoercionError
		if errors.As(err, &ce) {
			ce.Column = column
		}
		return nil, err
	}
	return v, nil
}

// ScanRow reads the current row of rows into a MapRow keyed by result column name.
func ScanRow(rows *sql.Rows) (MapRow, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}
	values := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}
	if err := rows.Scan(ptrs...); err != nil {
		return nil, fmt.Errorf("scan row: %w", err)
	}
	row := make(MapRow, len(cols))
	for i, c := range cols {
		row[c] = values[i]
	}
	return row, nil
}

// ScanRows drains rows into MapRows. rows is closed on return.
func ScanRows(rows *sql.Rows) ([]MapRow, error) {
	defer rows.Close()
	var out []MapRow
	for rows.Next() {
		row, err := ScanRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return out, nil
}
