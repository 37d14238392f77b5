package tools

import "fmt"

// ValidationError reports a missing or malformed tool argument. It is raised
// before any call to the mortgage API.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Field, e.Reason)
}

// UnknownToolError reports a tools/call for a name outside the catalog.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return "Unknown tool: " + e.Name
}
