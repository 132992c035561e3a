package model

import "fmt"

// ValidationKind classifies why a canonical constructor rejected its input.
type ValidationKind string

const (
	EmptyRequiredField ValidationKind = "empty required field"
	InvalidCharacter   ValidationKind = "invalid character"
	InvalidURI         ValidationKind = "invalid URI"
)

// ValidationError is returned by the checked constructors when a value
// violates a canonical-model invariant. It is never produced while
// converting to or from a versioned representation — parsed payloads are
// rebuilt through the unchecked paths.
type ValidationError struct {
	Kind  ValidationKind
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (%q)", e.Field, e.Kind, e.Value)
}
