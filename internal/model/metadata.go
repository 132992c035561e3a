package model

import "time"

// Metadata describes the document itself: when it was produced, by which
// tools and authors, and optionally the component the BOM describes.
type Metadata struct {
	Timestamp  *time.Time
	Tools      *Tools
	Authors    *Contacts
	Component  *Component // the subject of the BOM
	Supplier   *OrganizationalEntity
	Licenses   *Licenses
	Properties *Properties
}

// Tools is an ordered collection of Tool records.
type Tools []Tool

// Tool identifies one tool that produced or contributed to the BOM.
type Tool struct {
	Vendor  *NormalizedString
	Name    *NormalizedString
	Version *NormalizedString
	Hashes  *Hashes
}
