package model

// Properties is an ordered collection of Property records.
type Properties []Property

// Property is an arbitrary name/value annotation. Names are taken verbatim;
// producers namespace them by convention.
type Property struct {
	Name  string
	Value NormalizedString
}
