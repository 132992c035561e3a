package v14

import (
	"encoding/xml"

	"github.com/StinkyLord/sbom-exchange/internal/model"
	"github.com/StinkyLord/sbom-exchange/internal/xmlio"
)

const (
	propertiesTag    = "properties"
	propertyTag      = "property"
	propertyNameAttr = "name"
)

type properties []property

type property struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func propertiesFromModel(mp model.Properties) properties {
	ps := make(properties, 0, len(mp))
	for _, p := range mp {
		ps = append(ps, property{Name: p.Name, Value: p.Value.String()})
	}
	return ps
}

func (ps properties) toModel() model.Properties {
	mp := make(model.Properties, 0, len(ps))
	for _, p := range ps {
		mp = append(mp, model.Property{
			Name:  p.Name,
			Value: model.NormalizedString(p.Value),
		})
	}
	return mp
}

func (ps properties) writeXML(w *xmlio.Writer) error {
	if err := w.Start(propertiesTag); err != nil {
		return err
	}
	for _, p := range ps {
		if err := w.SimpleTag(propertyTag, p.Value, xmlio.Attr(propertyNameAttr, p.Name)); err != nil {
			return err
		}
	}
	return w.End(propertiesTag)
}

func decodeProperties(r *xmlio.Reader, start xml.StartElement) (properties, error) {
	ps := properties{}
	for {
		tok, err := r.Token(start.Name.Local)
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != propertyTag {
				if err := r.Skip(t); err != nil {
					return nil, err
				}
				continue
			}
			name, _ := xmlio.AttrValue(t, propertyNameAttr)
			value, err := r.Text(t)
			if err != nil {
				return nil, err
			}
			ps = append(ps, property{Name: name, Value: value})
		case xml.EndElement:
			return ps, nil
		}
	}
}
