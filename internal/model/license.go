package model

// Licenses is an ordered collection of license declarations.
type Licenses []LicenseChoice

// LicenseChoice is either a single license or an SPDX license expression.
// Exactly one of the two fields is set.
type LicenseChoice struct {
	License    *License
	Expression *NormalizedString
}

// License identifies one license, either by SPDX identifier or, when no
// identifier applies, by name.
type License struct {
	ID   *string // SPDX license ID, e.g. "Apache-2.0"
	Name *NormalizedString
	URL  *URI
}
