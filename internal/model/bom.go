package model

import "github.com/google/uuid"

// Bom is the root of a canonical document. It is assembled once, stays
// immutable for the duration of any conversion, and carries no
// version-specific detail — every supported schema version projects from
// and to this one type.
type Bom struct {
	SerialNumber *string // urn:uuid form, unique per document instance
	Version      int     // document revision, starts at 1
	Metadata     *Metadata
	Components   *Components
	Services     *Services
	Dependencies *Dependencies
}

// NewBom returns an empty document with a fresh serial number and
// revision 1.
func NewBom() *Bom {
	serial := NewSerialNumber()
	return &Bom{
		SerialNumber: &serial,
		Version:      1,
	}
}

// NewSerialNumber returns a fresh urn:uuid serial for a document.
func NewSerialNumber() string {
	return "urn:uuid:" + uuid.NewString()
}
