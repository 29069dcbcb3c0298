// pkg/convert/convert.go
package convert

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/avdata/registry-enrich/pkg/model"
)

// sheetName is the single worksheet the workbook carries.
const sheetName = "Sheet1"

// CSVToXLSX writes an XLSX copy of the CSV at csvPath into the same
// directory, swapping the extension. Cell values are carried over verbatim
// as text, header included; there is no aircraft-specific logic here. It
// returns the path of the workbook it wrote.
func CSVToXLSX(csvPath string) (string, error) {
	f, err := os.Open(csvPath)
	if err != nil {
		return "", &model.InputError{Path: csvPath, Err: err}
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return "", &model.InputError{Path: csvPath, Err: err}
	}

	xlsxPath := DerivedPath(csvPath)

	workbook := excelize.NewFile()
	defer workbook.Close() //nolint:errcheck

	stream, err := workbook.NewStreamWriter(sheetName)
	if err != nil {
		return "", &model.OutputError{Path: xlsxPath, Err: err}
	}

	for i, record := range records {
		cells := make([]interface{}, len(record))
		for j, value := range record {
			cells[j] = value
		}
		anchor, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return "", &model.OutputError{Path: xlsxPath, Err: err}
		}
		if err := stream.SetRow(anchor, cells); err != nil {
			return "", &model.OutputError{Path: xlsxPath, Err: err}
		}
	}

	if err := stream.Flush(); err != nil {
		return "", &model.OutputError{Path: xlsxPath, Err: err}
	}
	if err := workbook.SaveAs(xlsxPath); err != nil {
		return "", &model.OutputError{Path: xlsxPath, Err: err}
	}

	return xlsxPath, nil
}

// DerivedPath returns the workbook path for a CSV path: same directory, same
// base name, .xlsx extension.
func DerivedPath(csvPath string) string {
	base := filepath.Base(csvPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(filepath.Dir(csvPath), stem+".xlsx")
}
