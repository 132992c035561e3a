package v13

import (
	"encoding/xml"

	"github.com/StinkyLord/sbom-exchange/internal/model"
	"github.com/StinkyLord/sbom-exchange/internal/xmlio"
)

const (
	componentsTag     = "components"
	componentTag      = "component"
	componentTypeAttr = "type"
	scopeTag          = "scope"
	purlTag           = "purl"
)

type components []component

// component requires a version element in 1.3; a canonical component
// without one serializes as an empty version rather than failing.
type component struct {
	Type               string              `json:"type"`
	BomRef             *string             `json:"bom-ref,omitempty"`
	Group              *string             `json:"group,omitempty"`
	Name               string              `json:"name"`
	Version            string              `json:"version"`
	Description        *string             `json:"description,omitempty"`
	Scope              *string             `json:"scope,omitempty"`
	Hashes             *hashes             `json:"hashes,omitempty"`
	Licenses           *licenses           `json:"licenses,omitempty"`
	PackageURL         *string             `json:"purl,omitempty"`
	ExternalReferences *externalReferences `json:"externalReferences,omitempty"`
	Properties         *properties         `json:"properties,omitempty"`
	Components         *components         `json:"components,omitempty"`
}

func componentsFromModel(mc model.Components) components {
	cs := make(components, 0, len(mc))
	for _, c := range mc {
		cs = append(cs, componentFromModel(c))
	}
	return cs
}

func (cs components) toModel() model.Components {
	mc := make(model.Components, 0, len(cs))
	for _, c := range cs {
		mc = append(mc, c.toModel())
	}
	return mc
}

func componentFromModel(m model.Component) component {
	c := component{
		Type:        m.Type.String(),
		BomRef:      m.BomRef,
		Group:       fromNormalized(m.Group),
		Name:        m.Name.String(),
		Description: fromNormalized(m.Description),
		PackageURL:  m.PackageURL,
	}
	if m.Version != nil {
		c.Version = m.Version.String()
	}
	if m.Scope != nil {
		s := m.Scope.String()
		c.Scope = &s
	}
	if m.Hashes != nil {
		hs := hashesFromModel(*m.Hashes)
		c.Hashes = &hs
	}
	if m.Licenses != nil {
		ls := licensesFromModel(*m.Licenses)
		c.Licenses = &ls
	}
	if m.ExternalReferences != nil {
		rs := externalReferencesFromModel(*m.ExternalReferences)
		c.ExternalReferences = &rs
	}
	if m.Properties != nil {
		ps := propertiesFromModel(*m.Properties)
		c.Properties = &ps
	}
	if m.Components != nil {
		nested := componentsFromModel(*m.Components)
		c.Components = &nested
	}
	return c
}

func (c component) toModel() model.Component {
	m := model.Component{
		Type:        model.ComponentTypeFromString(c.Type),
		BomRef:      c.BomRef,
		Group:       toNormalized(c.Group),
		Name:        model.NormalizedString(c.Name),
		Description: toNormalized(c.Description),
		PackageURL:  c.PackageURL,
	}
	// The empty version is 1.3's stand-in for "no version"; map it back to
	// absent so defaulting round-trips cleanly.
	if c.Version != "" {
		v := model.NormalizedString(c.Version)
		m.Version = &v
	}
	if c.Scope != nil {
		s := model.ScopeFromString(*c.Scope)
		m.Scope = &s
	}
	if c.Hashes != nil {
		hs := c.Hashes.toModel()
		m.Hashes = &hs
	}
	if c.Licenses != nil {
		ls := c.Licenses.toModel()
		m.Licenses = &ls
	}
	if c.ExternalReferences != nil {
		rs := c.ExternalReferences.toModel()
		m.ExternalReferences = &rs
	}
	if c.Properties != nil {
		ps := c.Properties.toModel()
		m.Properties = &ps
	}
	if c.Components != nil {
		nested := c.Components.toModel()
		m.Components = &nested
	}
	return m
}

func (cs components) writeXML(w *xmlio.Writer) error {
	if err := w.Start(componentsTag); err != nil {
		return err
	}
	for i := range cs {
		if err := cs[i].writeXML(w); err != nil {
			return err
		}
	}
	return w.End(componentsTag)
}

func (c component) writeXML(w *xmlio.Writer) error {
	attrs := []xml.Attr{xmlio.Attr(componentTypeAttr, c.Type)}
	if c.BomRef != nil {
		attrs = append(attrs, xmlio.Attr(bomRefAttr, *c.BomRef))
	}
	if err := w.Start(componentTag, attrs...); err != nil {
		return err
	}
	if c.Group != nil {
		if err := w.SimpleTag(groupTag, *c.Group); err != nil {
			return err
		}
	}
	if err := w.SimpleTag(nameTag, c.Name); err != nil {
		return err
	}
	if err := w.SimpleTag(versionTag, c.Version); err != nil {
		return err
	}
	if c.Description != nil {
		if err := w.SimpleTag(descriptionTag, *c.Description); err != nil {
			return err
		}
	}
	if c.Scope != nil {
		if err := w.SimpleTag(scopeTag, *c.Scope); err != nil {
			return err
		}
	}
	if c.Hashes != nil {
		if err := c.Hashes.writeXML(w); err != nil {
			return err
		}
	}
	if c.Licenses != nil {
		if err := c.Licenses.writeXML(w); err != nil {
			return err
		}
	}
	if c.PackageURL != nil {
		if err := w.SimpleTag(purlTag, *c.PackageURL); err != nil {
			return err
		}
	}
	if c.ExternalReferences != nil {
		if err := c.ExternalReferences.writeXML(w); err != nil {
			return err
		}
	}
	if c.Properties != nil {
		if err := c.Properties.writeXML(w); err != nil {
			return err
		}
	}
	if c.Components != nil {
		if err := c.Components.writeXML(w); err != nil {
			return err
		}
	}
	return w.End(componentTag)
}

func decodeComponents(r *xmlio.Reader, start xml.StartElement) (components, error) {
	cs := components{}
	for {
		tok, err := r.Token(start.Name.Local)
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != componentTag {
				if err := r.Skip(t); err != nil {
					return nil, err
				}
				continue
			}
			c, err := decodeComponent(r, t)
			if err != nil {
				return nil, err
			}
			cs = append(cs, c)
		case xml.EndElement:
			return cs, nil
		}
	}
}

func decodeComponent(r *xmlio.Reader, start xml.StartElement) (component, error) {
	var c component
	c.Type, _ = xmlio.AttrValue(start, componentTypeAttr)
	if v, ok := xmlio.AttrValue(start, bomRefAttr); ok {
		c.BomRef = &v
	}
	for {
		tok, err := r.Token(start.Name.Local)
		if err != nil {
			return c, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case groupTag:
				v, err := r.Text(t)
				if err != nil {
					return c, err
				}
				c.Group = &v
			case nameTag:
				v, err := r.Text(t)
				if err != nil {
					return c, err
				}
				c.Name = v
			case versionTag:
				v, err := r.Text(t)
				if err != nil {
					return c, err
				}
				c.Version = v
			case descriptionTag:
				v, err := r.Text(t)
				if err != nil {
					return c, err
				}
				c.Description = &v
			case scopeTag:
				v, err := r.Text(t)
				if err != nil {
					return c, err
				}
				c.Scope = &v
			case hashesTag:
				hs, err := decodeHashes(r, t)
				if err != nil {
					return c, err
				}
				c.Hashes = &hs
			case licensesTag:
				ls, err := decodeLicenses(r, t)
				if err != nil {
					return c, err
				}
				c.Licenses = &ls
			case purlTag:
				v, err := r.Text(t)
				if err != nil {
					return c, err
				}
				c.PackageURL = &v
			case externalReferencesTag:
				rs, err := decodeExternalReferences(r, t)
				if err != nil {
					return c, err
				}
				c.ExternalReferences = &rs
			case propertiesTag:
				ps, err := decodeProperties(r, t)
				if err != nil {
					return c, err
				}
				c.Properties = &ps
			case componentsTag:
				nested, err := decodeComponents(r, t)
				if err != nil {
					return c, err
				}
				c.Components = &nested
			default:
				if err := r.Skip(t); err != nil {
					return c, err
				}
			}
		case xml.EndElement:
			return c, nil
		}
	}
}
