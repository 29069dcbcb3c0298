// pkg/csvio/csvio.go
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/avdata/registry-enrich/pkg/model"
)

// ErrNoNNumberColumn marks a header without the registration number column.
var ErrNoNNumberColumn = errors.New(`header has no "N-NUMBER" column`)

// ErrEmptyFile marks a file without even a header row.
var ErrEmptyFile = errors.New("file is empty")

// Load reads a CSV file into a table. The first record is the header and
// must contain the N-NUMBER column. Short records are padded with empty
// cells; records longer than the header are rejected. All failures come back
// as *model.InputError.
func Load(path string) (*model.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &model.InputError{Path: path, Err: err}
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = ErrEmptyFile
		}
		return nil, &model.InputError{Path: path, Err: err}
	}

	hasNNumber := false
	for _, column := range header {
		if column == model.ColumnNNumber {
			hasNNumber = true
			break
		}
	}
	if !hasNNumber {
		return nil, &model.InputError{Path: path, Err: ErrNoNNumberColumn}
	}

	table := model.NewTable(header)
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &model.InputError{Path: path, Err: err}
		}
		line++

		if len(record) > len(header) {
			return nil, &model.InputError{
				Path: path,
				Err:  fmt.Errorf("record on line %d has %d fields, header has %d", line, len(record), len(header)),
			}
		}

		row := make(model.Row, len(header))
		for i, value := range record {
			row[header[i]] = value
		}
		table.Append(row)
	}

	return table, nil
}

// Write serializes the table back to path. The file is written to a
// temporary sibling first and renamed into place so an interrupted write
// never truncates the original. Failures come back as *model.OutputError.
func Write(table *model.Table, path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return &model.OutputError{Path: path, Err: err}
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck

	writer := csv.NewWriter(tmp)
	if err := writer.Write(table.Columns()); err != nil {
		tmp.Close()
		return &model.OutputError{Path: path, Err: err}
	}
	for i := range table.Rows {
		if err := writer.Write(table.Record(i)); err != nil {
			tmp.Close()
			return &model.OutputError{Path: path, Err: err}
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		tmp.Close()
		return &model.OutputError{Path: path, Err: err}
	}

	if err := tmp.Close(); err != nil {
		return &model.OutputError{Path: path, Err: err}
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return &model.OutputError{Path: path, Err: err}
	}

	return nil
}
