package v13

import (
	"encoding/xml"
	"time"

	"github.com/StinkyLord/sbom-exchange/internal/model"
	"github.com/StinkyLord/sbom-exchange/internal/xmlio"
)

const (
	metadataTag  = "metadata"
	timestampTag = "timestamp"
	toolsTag     = "tools"
	toolTag      = "tool"
	vendorTag    = "vendor"
	authorsTag   = "authors"
	authorTag    = "author"
	supplierTag  = "supplier"
)

type metadata struct {
	Timestamp  *string               `json:"timestamp,omitempty"`
	Tools      *tools                `json:"tools,omitempty"`
	Authors    *contacts             `json:"authors,omitempty"`
	Component  *component            `json:"component,omitempty"`
	Supplier   *organizationalEntity `json:"supplier,omitempty"`
	Licenses   *licenses             `json:"licenses,omitempty"`
	Properties *properties           `json:"properties,omitempty"`
}

func metadataFromModel(m model.Metadata) metadata {
	md := metadata{}
	if m.Timestamp != nil {
		ts := m.Timestamp.UTC().Format(time.RFC3339)
		md.Timestamp = &ts
	}
	if m.Tools != nil {
		ts := toolsFromModel(*m.Tools)
		md.Tools = &ts
	}
	if m.Authors != nil {
		as := contactsFromModel(*m.Authors)
		md.Authors = &as
	}
	if m.Component != nil {
		c := componentFromModel(*m.Component)
		md.Component = &c
	}
	if m.Supplier != nil {
		s := organizationalEntityFromModel(*m.Supplier)
		md.Supplier = &s
	}
	if m.Licenses != nil {
		ls := licensesFromModel(*m.Licenses)
		md.Licenses = &ls
	}
	if m.Properties != nil {
		ps := propertiesFromModel(*m.Properties)
		md.Properties = &ps
	}
	return md
}

func (md metadata) toModel() model.Metadata {
	m := model.Metadata{}
	if md.Timestamp != nil {
		// An unparseable timestamp is dropped rather than failing the
		// whole conversion; it can only arrive from a foreign producer.
		if t, err := time.Parse(time.RFC3339, *md.Timestamp); err == nil {
			m.Timestamp = &t
		}
	}
	if md.Tools != nil {
		ts := md.Tools.toModel()
		m.Tools = &ts
	}
	if md.Authors != nil {
		as := md.Authors.toModel()
		m.Authors = &as
	}
	if md.Component != nil {
		c := md.Component.toModel()
		m.Component = &c
	}
	if md.Supplier != nil {
		s := md.Supplier.toModel()
		m.Supplier = &s
	}
	if md.Licenses != nil {
		ls := md.Licenses.toModel()
		m.Licenses = &ls
	}
	if md.Properties != nil {
		ps := md.Properties.toModel()
		m.Properties = &ps
	}
	return m
}

func (md metadata) writeXML(w *xmlio.Writer) error {
	if err := w.Start(metadataTag); err != nil {
		return err
	}
	if md.Timestamp != nil {
		if err := w.SimpleTag(timestampTag, *md.Timestamp); err != nil {
			return err
		}
	}
	if md.Tools != nil {
		if err := md.Tools.writeXML(w); err != nil {
			return err
		}
	}
	if md.Authors != nil {
		if err := w.Start(authorsTag); err != nil {
			return err
		}
		for _, a := range *md.Authors {
			if err := a.writeXML(w, authorTag); err != nil {
				return err
			}
		}
		if err := w.End(authorsTag); err != nil {
			return err
		}
	}
	if md.Component != nil {
		if err := md.Component.writeXML(w); err != nil {
			return err
		}
	}
	if md.Supplier != nil {
		if err := md.Supplier.writeXML(w, supplierTag); err != nil {
			return err
		}
	}
	if md.Licenses != nil {
		if err := md.Licenses.writeXML(w); err != nil {
			return err
		}
	}
	if md.Properties != nil {
		if err := md.Properties.writeXML(w); err != nil {
			return err
		}
	}
	return w.End(metadataTag)
}

func decodeMetadata(r *xmlio.Reader, start xml.StartElement) (metadata, error) {
	var md metadata
	for {
		tok, err := r.Token(start.Name.Local)
		if err != nil {
			return md, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case timestampTag:
				v, err := r.Text(t)
				if err != nil {
					return md, err
				}
				md.Timestamp = &v
			case toolsTag:
				ts, err := decodeTools(r, t)
				if err != nil {
					return md, err
				}
				md.Tools = &ts
			case authorsTag:
				as, err := decodeAuthors(r, t)
				if err != nil {
					return md, err
				}
				md.Authors = &as
			case componentTag:
				c, err := decodeComponent(r, t)
				if err != nil {
					return md, err
				}
				md.Component = &c
			case supplierTag:
				s, err := decodeOrganizationalEntity(r, t)
				if err != nil {
					return md, err
				}
				md.Supplier = &s
			case licensesTag:
				ls, err := decodeLicenses(r, t)
				if err != nil {
					return md, err
				}
				md.Licenses = &ls
			case propertiesTag:
				ps, err := decodeProperties(r, t)
				if err != nil {
					return md, err
				}
				md.Properties = &ps
			default:
				if err := r.Skip(t); err != nil {
					return md, err
				}
			}
		case xml.EndElement:
			return md, nil
		}
	}
}

func decodeAuthors(r *xmlio.Reader, start xml.StartElement) (contacts, error) {
	as := contacts{}
	for {
		tok, err := r.Token(start.Name.Local)
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != authorTag {
				if err := r.Skip(t); err != nil {
					return nil, err
				}
				continue
			}
			a, err := decodeContact(r, t)
			if err != nil {
				return nil, err
			}
			as = append(as, a)
		case xml.EndElement:
			return as, nil
		}
	}
}

type tools []tool

type tool struct {
	Vendor  *string `json:"vendor,omitempty"`
	Name    *string `json:"name,omitempty"`
	Version *string `json:"version,omitempty"`
	Hashes  *hashes `json:"hashes,omitempty"`
}

func toolsFromModel(mt model.Tools) tools {
	ts := make(tools, 0, len(mt))
	for _, t := range mt {
		tl := tool{
			Vendor:  fromNormalized(t.Vendor),
			Name:    fromNormalized(t.Name),
			Version: fromNormalized(t.Version),
		}
		if t.Hashes != nil {
			hs := hashesFromModel(*t.Hashes)
			tl.Hashes = &hs
		}
		ts = append(ts, tl)
	}
	return ts
}

func (ts tools) toModel() model.Tools {
	mt := make(model.Tools, 0, len(ts))
	for _, t := range ts {
		tl := model.Tool{
			Vendor:  toNormalized(t.Vendor),
			Name:    toNormalized(t.Name),
			Version: toNormalized(t.Version),
		}
		if t.Hashes != nil {
			hs := t.Hashes.toModel()
			tl.Hashes = &hs
		}
		mt = append(mt, tl)
	}
	return mt
}

func (ts tools) writeXML(w *xmlio.Writer) error {
	if err := w.Start(toolsTag); err != nil {
		return err
	}
	for _, t := range ts {
		if err := w.Start(toolTag); err != nil {
			return err
		}
		if t.Vendor != nil {
			if err := w.SimpleTag(vendorTag, *t.Vendor); err != nil {
				return err
			}
		}
		if t.Name != nil {
			if err := w.SimpleTag(nameTag, *t.Name); err != nil {
				return err
			}
		}
		if t.Version != nil {
			if err := w.SimpleTag(versionTag, *t.Version); err != nil {
				return err
			}
		}
		if t.Hashes != nil {
			if err := t.Hashes.writeXML(w); err != nil {
				return err
			}
		}
		if err := w.End(toolTag); err != nil {
			return err
		}
	}
	return w.End(toolsTag)
}

func decodeTools(r *xmlio.Reader, start xml.StartElement) (tools, error) {
	ts := tools{}
	for {
		tok, err := r.Token(start.Name.Local)
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != toolTag {
				if err := r.Skip(t); err != nil {
					return nil, err
				}
				continue
			}
			tl, err := decodeTool(r, t)
			if err != nil {
				return nil, err
			}
			ts = append(ts, tl)
		case xml.EndElement:
			return ts, nil
		}
	}
}

func decodeTool(r *xmlio.Reader, start xml.StartElement) (tool, error) {
	var tl tool
	for {
		tok, err := r.Token(start.Name.Local)
		if err != nil {
			return tl, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case vendorTag:
				v, err := r.Text(t)
				if err != nil {
					return tl, err
				}
				tl.Vendor = &v
			case nameTag:
				v, err := r.Text(t)
				if err != nil {
					return tl, err
				}
				tl.Name = &v
			case versionTag:
				v, err := r.Text(t)
				if err != nil {
					return tl, err
				}
				tl.Version = &v
			case hashesTag:
				hs, err := decodeHashes(r, t)
				if err != nil {
					return tl, err
				}
				tl.Hashes = &hs
			default:
				if err := r.Skip(t); err != nil {
					return tl, err
				}
			}
		case xml.EndElement:
			return tl, nil
		}
	}
}
