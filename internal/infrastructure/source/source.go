// Package source loads subset mappings from data files.
package source

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/tesso57/substats/internal/application/settings"
	"github.com/tesso57/substats/internal/domain/subset"
	"github.com/tesso57/substats/internal/infrastructure/logging"
)

var (
	// ErrUnsupportedFormat is returned for extensions no reader handles.
	ErrUnsupportedFormat = errors.New("the extension is not allowed")
	// ErrMalformed is returned when a file does not describe a subset mapping.
	ErrMalformed = errors.New("malformed subset source")
	// ErrMissingGroupColumn is returned when tabular data lacks the group column.
	ErrMissingGroupColumn = errors.New("group column not found")
)

// Reader loads a subset mapping from path.
type Reader func(ctx context.Context, path string) (*subset.Items, error)

// Loader picks a reader by file extension.
type Loader struct {
	Options settings.SourceOptions
	// Fallback handles extensions the loader does not know. Optional.
	Fallback Reader

	log *logrus.Entry
}

// NewLoader constructs a Loader.
func NewLoader(opts settings.SourceOptions) *Loader {
	if opts.GroupColumn == "" {
		opts.GroupColumn = "subset"
	}
	if opts.Table == "" {
		opts.Table = "records"
	}
	return &Loader{Options: opts, log: logging.New("source")}
}

// Load reads the subset mapping stored at path.
func (l *Loader) Load(ctx context.Context, path string) (*subset.Items, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("source path is empty")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if l.log == nil {
		l.log = logging.New("source")
	}

	var (
		items *subset.Items
		err   error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json", ".yaml", ".yml":
		items, err = l.loadDocument(path)
	case ".csv":
		items, err = l.loadCSV(path)
	case ".xlsx", ".xlsm":
		items, err = l.loadSpreadsheet(path)
	case ".db", ".sqlite", ".sqlite3":
		items, err = l.loadSQLite(ctx, path)
	default:
		if l.Fallback == nil {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
		}
		items, err = l.Fallback(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("fallback reader failed: %w", err)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	l.log.WithFields(logrus.Fields{"path": path, "subsets": items.Len()}).Info("source loaded")
	return items, nil
}
