package model

import "net/url"

// URI is an opaque validated URI string. Beyond being parseable it is not
// interpreted; endpoints, license URLs and external references all use it.
type URI string

// NewURI validates s as a URI. The empty string is rejected — an absent
// URI is a nil pointer, never an empty value.
func NewURI(field, s string) (URI, error) {
	if s == "" {
		return "", &ValidationError{Kind: EmptyRequiredField, Field: field, Value: s}
	}
	if _, err := url.Parse(s); err != nil {
		return "", &ValidationError{Kind: InvalidURI, Field: field, Value: s}
	}
	return URI(s), nil
}

func (u URI) String() string { return string(u) }
