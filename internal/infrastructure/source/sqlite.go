package source

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/tesso57/substats/internal/domain/subset"
	_ "modernc.org/sqlite"
)

func (l *Loader) loadSQLite(ctx context.Context, path string) (*subset.Items, error) {
	// sql.Open would create a missing database file.
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = db.Close() }()

	query := fmt.Sprintf("SELECT * FROM %s ORDER BY rowid", quoteIdent(l.Options.Table))
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	groupIdx := -1
	for i, c := range columns {
		if c == l.Options.GroupColumn {
			groupIdx = i
			break
		}
	}
	if groupIdx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingGroupColumn, l.Options.GroupColumn)
	}

	groups := newGrouper()
	values := make([]any, len(columns))
	ptrs := make([]any, len(columns))
	for i := range values {
		ptrs[i] = &values[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		var group string
		if v := values[groupIdx]; v != nil {
			group = fmt.Sprint(sqlValue(v))
		}
		rec := make(subset.Record, len(columns)-1)
		for i, name := range columns {
			if i == groupIdx {
				continue
			}
			rec[name] = sqlValue(values[i])
		}
		groups.add(group, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return l.finish(groups), nil
}

func sqlValue(v any) any {
	switch t := v.(type) {
	case []byte:
		return string(t)
	case int64:
		return float64(t)
	default:
		return t
	}
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
