package source

import (
	"io"

	"github.com/tesso57/substats/internal/domain/subset"
	"github.com/xuri/excelize/v2"
)

// loadSpreadsheet groups the rows of the first worksheet like a CSV file.
func (l *Loader) loadSpreadsheet(path string) (*subset.Items, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return subset.NewItems(), nil
	}
	rows, err := f.Rows(sheets[0])
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	return l.groupTable(func() ([]string, error) {
		if !rows.Next() {
			if err := rows.Error(); err != nil {
				return nil, err
			}
			return nil, io.EOF
		}
		return rows.Columns()
	})
}
