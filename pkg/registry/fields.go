// pkg/registry/fields.go
package registry

// FieldStatus marks a row as fetched. Resume scans for the first row where
// it is still empty, so a failed lookup is retried on the next run.
const FieldStatus = "STATUS"

// FieldColumns lists the columns extracted from a registry response page, in
// the order they are appended to the output file. Values the page does not
// carry come back as empty strings.
var FieldColumns = []string{
	FieldStatus,
	"MANUFACTURER NAME",
	"MODEL",
	"TYPE AIRCRAFT",
	"TYPE ENGINE",
	"PENDING NUMBER CHANGE",
	"DATE CHANGE AUTHORIZED",
	"TYPE REGISTRATION",
	"COUNTY",
	"ENGINE MANUFACTURER",
	"ENGINE MODEL",
}

// Fields maps extracted column names to their page values. Every key of
// FieldColumns is present, possibly empty.
type Fields map[string]string
