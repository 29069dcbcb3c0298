package registry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const resultPage = `<!DOCTYPE html>
<html><body>
<table class="devkit-table">
 <tr><td>Serial Number</td><td>172S9999</td><td>Status</td><td>Valid</td></tr>
 <tr><td>Manufacturer Name</td><td>CESSNA</td><td>Certificate Issue Date</td><td>04/02/2015</td></tr>
 <tr><td>Model</td><td>172S</td><td>Expiration Date</td><td>04/30/2029</td></tr>
 <tr><td>Type Aircraft</td><td>Fixed Wing Single-Engine</td><td>Type Engine</td><td>Reciprocating</td></tr>
 <tr><td>Pending Number Change</td><td>None</td><td>Dealer</td><td>No</td></tr>
 <tr><td>Date Change Authorized</td><td>&nbsp;</td><td>Mode S Code</td><td>52017000</td></tr>
</table>
<table class="devkit-table">
 <tr><td>Name</td><td>AERO HOLDINGS LLC</td><td>Type Registration</td><td>LLC</td></tr>
 <tr><td>Street</td><td>100 MAIN ST</td><td>County</td><td>KING</td></tr>
</table>
<table class="devkit-table">
 <tr><td>Engine Manufacturer</td><td>LYCOMING</td><td>Engine Model</td><td>IO-360-L2A</td></tr>
</table>
<table class="devkit-table">
 <tr><td>Engine Manufacturer</td><td>FROM DEREGISTERED RECORD</td><td>Engine Model</td><td>IGNORED</td></tr>
</table>
</body></html>`

func TestParsePageExtractsFields(t *testing.T) {
	fields, err := ParsePage(strings.NewReader(resultPage))
	require.NoError(t, err)

	assert.Equal(t, "Valid", fields[FieldStatus])
	assert.Equal(t, "CESSNA", fields["MANUFACTURER NAME"])
	assert.Equal(t, "172S", fields["MODEL"])
	assert.Equal(t, "Fixed Wing Single-Engine", fields["TYPE AIRCRAFT"])
	assert.Equal(t, "Reciprocating", fields["TYPE ENGINE"])
	assert.Equal(t, "None", fields["PENDING NUMBER CHANGE"])
	assert.Equal(t, "", fields["DATE CHANGE AUTHORIZED"])
	assert.Equal(t, "LLC", fields["TYPE REGISTRATION"])
	assert.Equal(t, "KING", fields["COUNTY"])
	assert.Equal(t, "LYCOMING", fields["ENGINE MANUFACTURER"])
	assert.Equal(t, "IO-360-L2A", fields["ENGINE MODEL"])

	// Every schema column is present even when the page omits it.
	assert.Len(t, fields, len(FieldColumns))
}

func TestParsePageIgnoresTablesPastTheThird(t *testing.T) {
	fields, err := ParsePage(strings.NewReader(resultPage))
	require.NoError(t, err)

	assert.NotEqual(t, "FROM DEREGISTERED RECORD", fields["ENGINE MANUFACTURER"])
}

func TestParsePageTwoTablesUsesOnlyFirst(t *testing.T) {
	page := `<html><body>
<table class="devkit-table">
 <tr><td>Status</td><td>Deregistered</td></tr>
</table>
<table class="devkit-table">
 <tr><td>County</td><td>PIERCE</td></tr>
</table>
</body></html>`

	fields, err := ParsePage(strings.NewReader(page))
	require.NoError(t, err)

	assert.Equal(t, "Deregistered", fields[FieldStatus])
	assert.Equal(t, "", fields["COUNTY"])
}

func TestParsePageNormalizesLabels(t *testing.T) {
	page := `<html><body>
<table class="devkit-table">
 <tr><td>  manufacturer
   name </td><td> PIPER </td></tr>
 <tr><td>Engine&nbsp;Manufacturer</td><td>CONTINENTAL&nbsp;&nbsp;MOTORS</td></tr>
</table>
</body></html>`

	fields, err := ParsePage(strings.NewReader(page))
	require.NoError(t, err)

	assert.Equal(t, "PIPER", fields["MANUFACTURER NAME"])
	assert.Equal(t, "CONTINENTAL MOTORS", fields["ENGINE MANUFACTURER"])
}

func TestParsePageLastValueWinsOnRepeatedLabel(t *testing.T) {
	page := `<html><body>
<table class="devkit-table">
 <tr><td>Status</td><td>Assigned</td></tr>
</table>
<table class="devkit-table">
 <tr><td>Model</td><td>PA-28</td></tr>
</table>
<table class="devkit-table">
 <tr><td>Status</td><td>Reserved</td></tr>
</table>
</body></html>`

	fields, err := ParsePage(strings.NewReader(page))
	require.NoError(t, err)

	assert.Equal(t, "Reserved", fields[FieldStatus])
}

func TestParsePageNoTables(t *testing.T) {
	page := `<html><body><p>No aircraft was found with that N-Number.</p></body></html>`

	fields, err := ParsePage(strings.NewReader(page))
	assert.Nil(t, fields)
	assert.ErrorIs(t, err, ErrNoRecord)
}

func TestParsePageNoExpectedFields(t *testing.T) {
	page := `<html><body>
<table class="devkit-table">
 <tr><td>Reservation Date</td><td>01/01/2024</td></tr>
</table>
</body></html>`

	fields, err := ParsePage(strings.NewReader(page))
	assert.Nil(t, fields)
	assert.ErrorIs(t, err, ErrNoFields)
}
