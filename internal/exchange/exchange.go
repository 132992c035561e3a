// Package exchange is the single entry point for moving a canonical BOM
// document to or from the wire: the caller picks a schema version and a
// format, the projection and codec are selected here. Adding a schema
// version means adding a case per function and nothing else.
package exchange

import (
	"fmt"
	"io"

	"github.com/StinkyLord/sbom-exchange/internal/model"
	"github.com/StinkyLord/sbom-exchange/internal/specs/v13"
	"github.com/StinkyLord/sbom-exchange/internal/specs/v14"
)

// SpecVersion selects the target external schema version.
type SpecVersion string

const (
	V1_3 SpecVersion = "1.3"
	V1_4 SpecVersion = "1.4"
)

// Format selects the physical encoding.
type Format string

const (
	FormatXML  Format = "xml"
	FormatJSON Format = "json"
)

// ParseSpecVersion maps a user-supplied version string.
func ParseSpecVersion(s string) (SpecVersion, error) {
	switch SpecVersion(s) {
	case V1_3:
		return V1_3, nil
	case V1_4:
		return V1_4, nil
	}
	return "", fmt.Errorf("unsupported spec version %q (supported: 1.3, 1.4)", s)
}

// ParseFormat maps a user-supplied format string.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatXML:
		return FormatXML, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unsupported format %q (supported: xml, json)", s)
}

// Write projects bom into the chosen version and serializes it to w in the
// chosen format. The projection is created for this call and discarded.
func Write(w io.Writer, bom *model.Bom, version SpecVersion, format Format) error {
	switch version {
	case V1_3:
		doc := v13.FromModel(bom)
		switch format {
		case FormatXML:
			return doc.WriteXML(w)
		case FormatJSON:
			return doc.WriteJSON(w)
		}
	case V1_4:
		doc := v14.FromModel(bom)
		switch format {
		case FormatXML:
			return doc.WriteXML(w)
		case FormatJSON:
			return doc.WriteJSON(w)
		}
	}
	return fmt.Errorf("unsupported version/format combination %q/%q", version, format)
}

// Read parses a document of the given version and format from r and
// rebuilds the canonical model.
func Read(r io.Reader, version SpecVersion, format Format) (*model.Bom, error) {
	switch version {
	case V1_3:
		switch format {
		case FormatXML:
			doc, err := v13.ReadXML(r)
			if err != nil {
				return nil, err
			}
			return doc.ToModel(), nil
		case FormatJSON:
			doc, err := v13.ReadJSON(r)
			if err != nil {
				return nil, err
			}
			return doc.ToModel(), nil
		}
	case V1_4:
		switch format {
		case FormatXML:
			doc, err := v14.ReadXML(r)
			if err != nil {
				return nil, err
			}
			return doc.ToModel(), nil
		case FormatJSON:
			doc, err := v14.ReadJSON(r)
			if err != nil {
				return nil, err
			}
			return doc.ToModel(), nil
		}
	}
	return nil, fmt.Errorf("unsupported version/format combination %q/%q", version, format)
}
