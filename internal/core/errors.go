package core

import "fmt"

// SchemaError reports a malformed or missing field in the input file,
// carrying enough context to show the user what was wrong where.
type SchemaError struct {
	Field string
	Value any
}

func (e *SchemaError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("schema error: missing or invalid field %q", e.Field)
	}
	return fmt.Sprintf("schema error: field %q has invalid value %v", e.Field, e.Value)
}

// VersionError reports an unsupported ledger file format version.
type VersionError struct {
	Got string
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("unsupported ledger format version %q", e.Got)
}

// InvalidArgumentError reports an out-of-range or unparseable operation
// parameter, detected before any computation starts.
type InvalidArgumentError struct {
	Name  string
	Value any
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: %v", e.Name, e.Value)
}
