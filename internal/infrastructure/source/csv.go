package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/tesso57/substats/internal/domain/subset"
)

func (l *Loader) loadCSV(path string) (*subset.Items, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return l.decodeCSV(f)
}

func (l *Loader) decodeCSV(r io.Reader) (*subset.Items, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	return l.groupTable(reader.Read)
}

// groupTable partitions the rows returned by next, the first being the
// header, by the group column. next reports io.EOF after the last row.
func (l *Loader) groupTable(next func() ([]string, error)) (*subset.Items, error) {
	header, err := next()
	if err == io.EOF {
		return subset.NewItems(), nil
	}
	if err != nil {
		return nil, err
	}
	header = slices.Clone(header)
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	groupIdx := slices.Index(header, l.Options.GroupColumn)
	if groupIdx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingGroupColumn, l.Options.GroupColumn)
	}

	groups := newGrouper()
	for {
		row, err := next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		var group string
		if groupIdx < len(row) {
			group = row[groupIdx]
		}
		rec := make(subset.Record, len(header)-1)
		for i, name := range header {
			if i == groupIdx {
				continue
			}
			var cell string
			if i < len(row) {
				cell = row[i]
			}
			rec[name] = parseCell(cell)
		}
		groups.add(group, rec)
	}
	return l.finish(groups), nil
}

func parseCell(cell string) any {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil
	}
	if f, err := strconv.ParseFloat(cell, 64); err == nil {
		return f
	}
	return cell
}

// grouper partitions rows by key in first-appearance order. Rows with a
// blank key are counted and dropped.
type grouper struct {
	order   []string
	rows    map[string]subset.Records
	skipped int
}

func newGrouper() *grouper {
	return &grouper{rows: make(map[string]subset.Records)}
}

func (g *grouper) add(key string, rec subset.Record) {
	key = strings.TrimSpace(key)
	if key == "" {
		g.skipped++
		return
	}
	if _, ok := g.rows[key]; !ok {
		g.order = append(g.order, key)
	}
	g.rows[key] = append(g.rows[key], rec)
}

func (g *grouper) items() *subset.Items {
	items := subset.NewItems()
	for _, key := range g.order {
		items.Set(key, g.rows[key])
	}
	return items
}

func (l *Loader) finish(g *grouper) *subset.Items {
	if g.skipped > 0 {
		l.log.WithField("rows", g.skipped).Warn("rows without a subset were skipped")
	}
	return g.items()
}
