// pkg/registry/parse.go
package registry

import (
	"errors"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// tableSelector matches the label/value tables of an aircraft inquiry page.
const tableSelector = "table.devkit-table"

var (
	// ErrNoRecord marks a page without any record tables.
	ErrNoRecord = errors.New("page has no record tables")
	// ErrNoFields marks a page whose tables carried none of the expected fields.
	ErrNoFields = errors.New("record tables carried none of the expected fields")
)

// ParsePage extracts the field schema from one registry response page.
//
// A result page leads with the aircraft description, registered owner and
// airworthiness tables; anything past the third is deregistration history
// and the like. Pages with at most two tables only hold usable data in the
// first. Table rows pair label and value cells, two pairs per row; when a
// label repeats, the last occurrence wins.
func ParsePage(r io.Reader) (Fields, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	tables := doc.Find(tableSelector)
	if tables.Length() == 0 {
		return nil, ErrNoRecord
	}

	limit := 3
	if tables.Length() <= 2 {
		limit = 1
	}

	labels := make(map[string]string)
	tables.EachWithBreak(func(i int, table *goquery.Selection) bool {
		if i >= limit {
			return false
		}
		table.Find("tr").Each(func(_ int, row *goquery.Selection) {
			cells := row.Find("td, th")
			for j := 0; j+1 < cells.Length(); j += 2 {
				label := normalizeLabel(cells.Eq(j).Text())
				if label == "" {
					continue
				}
				labels[label] = normalizeValue(cells.Eq(j + 1).Text())
			}
		})
		return true
	})

	fields := make(Fields, len(FieldColumns))
	found := 0
	for _, column := range FieldColumns {
		value := labels[column]
		if value != "" {
			found++
		}
		fields[column] = value
	}
	if found == 0 {
		return nil, ErrNoFields
	}

	return fields, nil
}

// normalizeLabel collapses whitespace and upper-cases a label cell so it can
// be matched against FieldColumns.
func normalizeLabel(s string) string {
	return strings.ToUpper(normalizeValue(s))
}

// normalizeValue collapses runs of whitespace, including the non-breaking
// spaces the registry pads its cells with.
func normalizeValue(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
