package v13

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"github.com/StinkyLord/sbom-exchange/internal/model"
	"github.com/StinkyLord/sbom-exchange/internal/xmlio"
)

const (
	// SpecVersion is the schema version this package projects to.
	SpecVersion = "1.3"

	xmlNamespace = "http://cyclonedx.org/schema/bom/1.3"
	bomFormat    = "CycloneDX"

	bomTag           = "bom"
	xmlnsAttr        = "xmlns"
	serialNumberAttr = "serialNumber"
	bomVersionAttr   = "version"
)

// Bom is the CycloneDX 1.3 projection of a document. Instances are created
// fresh per call by FromModel or one of the Read functions and hold no
// state beyond that call.
type Bom struct {
	BOMFormat    string        `json:"bomFormat"`
	SpecVersion  string        `json:"specVersion"`
	SerialNumber *string       `json:"serialNumber,omitempty"`
	Version      int           `json:"version"`
	Metadata     *metadata     `json:"metadata,omitempty"`
	Components   *components   `json:"components,omitempty"`
	Services     *services     `json:"services,omitempty"`
	Dependencies *dependencies `json:"dependencies,omitempty"`
}

// FromModel projects a canonical document into its 1.3 shape. The
// conversion is total: fields this version lacks are dropped, required
// fields with no canonical source take their documented defaults.
func FromModel(mb *model.Bom) *Bom {
	b := &Bom{
		BOMFormat:    bomFormat,
		SpecVersion:  SpecVersion,
		SerialNumber: mb.SerialNumber,
		Version:      mb.Version,
	}
	if b.Version == 0 {
		b.Version = 1
	}
	if mb.Metadata != nil {
		md := metadataFromModel(*mb.Metadata)
		b.Metadata = &md
	}
	if mb.Components != nil {
		cs := componentsFromModel(*mb.Components)
		b.Components = &cs
	}
	if mb.Services != nil {
		ss := servicesFromModel(*mb.Services)
		b.Services = &ss
	}
	if mb.Dependencies != nil {
		ds := dependenciesFromModel(*mb.Dependencies)
		b.Dependencies = &ds
	}
	return b
}

// ToModel rebuilds the canonical document. Values are taken as already
// validated — payloads either originated from a valid document or from an
// external producer whose structural errors surfaced at parse time.
func (b *Bom) ToModel() *model.Bom {
	mb := &model.Bom{
		SerialNumber: b.SerialNumber,
		Version:      b.Version,
	}
	if mb.Version == 0 {
		mb.Version = 1
	}
	if b.Metadata != nil {
		md := b.Metadata.toModel()
		mb.Metadata = &md
	}
	if b.Components != nil {
		cs := b.Components.toModel()
		mb.Components = &cs
	}
	if b.Services != nil {
		ss := b.Services.toModel()
		mb.Services = &ss
	}
	if b.Dependencies != nil {
		ds := b.Dependencies.toModel()
		mb.Dependencies = &ds
	}
	return mb
}

// WriteJSON serializes the projection as indented JSON. Optional fields
// that are absent produce no key at all.
func (b *Bom) WriteJSON(w io.Writer) error {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal CycloneDX %s JSON: %w", SpecVersion, err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write CycloneDX %s JSON: %w", SpecVersion, err)
	}
	return nil
}

// ReadJSON parses a 1.3 JSON document. Unknown keys are ignored.
func ReadJSON(r io.Reader) (*Bom, error) {
	var b Bom
	if err := json.NewDecoder(r).Decode(&b); err != nil {
		return nil, fmt.Errorf("failed to parse CycloneDX %s JSON: %w", SpecVersion, err)
	}
	return &b, nil
}

// WriteXML serializes the projection as markup, element for element in the
// order the published schema fixes. Any sink failure aborts the call and
// surfaces as a *xmlio.WriteError naming the element being written.
func (b *Bom) WriteXML(out io.Writer) error {
	w := xmlio.NewWriter(out)
	if err := w.Declaration(); err != nil {
		return err
	}
	attrs := []xml.Attr{xmlio.Attr(xmlnsAttr, xmlNamespace)}
	if b.SerialNumber != nil {
		attrs = append(attrs, xmlio.Attr(serialNumberAttr, *b.SerialNumber))
	}
	attrs = append(attrs, xmlio.Attr(bomVersionAttr, strconv.Itoa(b.Version)))
	if err := w.Start(bomTag, attrs...); err != nil {
		return err
	}
	if b.Metadata != nil {
		if err := b.Metadata.writeXML(w); err != nil {
			return err
		}
	}
	if b.Components != nil {
		if err := b.Components.writeXML(w); err != nil {
			return err
		}
	}
	if b.Services != nil {
		if err := b.Services.writeXML(w); err != nil {
			return err
		}
	}
	if b.Dependencies != nil {
		if err := b.Dependencies.writeXML(w); err != nil {
			return err
		}
	}
	if err := w.End(bomTag); err != nil {
		return err
	}
	return w.Flush()
}

// ReadXML parses a 1.3 markup document. Unknown elements and attributes
// are skipped; only structurally malformed input fails, with a
// *xmlio.ParseError.
func ReadXML(in io.Reader) (*Bom, error) {
	r := xmlio.NewReader(in)
	root, err := r.Root(bomTag)
	if err != nil {
		return nil, err
	}
	b := &Bom{BOMFormat: bomFormat, SpecVersion: SpecVersion, Version: 1}
	if v, ok := xmlio.AttrValue(root, serialNumberAttr); ok {
		b.SerialNumber = &v
	}
	if v, ok := xmlio.AttrValue(root, bomVersionAttr); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, &xmlio.ParseError{Element: bomTag, Err: fmt.Errorf("invalid version attribute %q", v)}
		}
		b.Version = n
	}
	for {
		tok, err := r.Token(bomTag)
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case metadataTag:
				md, err := decodeMetadata(r, t)
				if err != nil {
					return nil, err
				}
				b.Metadata = &md
			case componentsTag:
				cs, err := decodeComponents(r, t)
				if err != nil {
					return nil, err
				}
				b.Components = &cs
			case servicesTag:
				ss, err := decodeServices(r, t)
				if err != nil {
					return nil, err
				}
				b.Services = &ss
			case dependenciesTag:
				ds, err := decodeDependencies(r, t)
				if err != nil {
					return nil, err
				}
				b.Dependencies = &ds
			default:
				if err := r.Skip(t); err != nil {
					return nil, err
				}
			}
		case xml.EndElement:
			return b, nil
		}
	}
}
