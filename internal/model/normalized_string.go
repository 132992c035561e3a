// Package model defines the canonical, version-independent BOM document
// model. Every supported schema version converts through these types; they
// enforce the field invariants once so the version projections never have
// to re-validate.
package model

import (
	"strings"
	"unicode"
)

// NormalizedString is free text with no control characters and no
// surrounding whitespace. The checked constructors enforce this; a plain
// type conversion is the unchecked path reserved for rebuilding a model
// from an already-serialized payload.
type NormalizedString string

// NewNormalizedString trims s and validates it for use in an optional
// field. The empty string is allowed.
func NewNormalizedString(field, s string) (NormalizedString, error) {
	s = strings.TrimSpace(s)
	for _, r := range s {
		if unicode.IsControl(r) {
			return "", &ValidationError{Kind: InvalidCharacter, Field: field, Value: s}
		}
	}
	return NormalizedString(s), nil
}

// NewRequiredString is NewNormalizedString for required fields: the value
// must be non-empty after trimming.
func NewRequiredString(field, s string) (NormalizedString, error) {
	ns, err := NewNormalizedString(field, s)
	if err != nil {
		return "", err
	}
	if ns == "" {
		return "", &ValidationError{Kind: EmptyRequiredField, Field: field, Value: s}
	}
	return ns, nil
}

func (n NormalizedString) String() string { return string(n) }
