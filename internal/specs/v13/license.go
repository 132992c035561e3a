package v13

import (
	"encoding/xml"

	"github.com/StinkyLord/sbom-exchange/internal/model"
	"github.com/StinkyLord/sbom-exchange/internal/xmlio"
)

const (
	licensesTag   = "licenses"
	licenseTag    = "license"
	expressionTag = "expression"
	licenseIDTag  = "id"
	licenseURLTag = "url"
)

type licenses []licenseChoice

// licenseChoice is either a license or an SPDX expression; exactly one
// field is set, matching the schema's choice group.
type licenseChoice struct {
	License    *license `json:"license,omitempty"`
	Expression *string  `json:"expression,omitempty"`
}

type license struct {
	ID   *string `json:"id,omitempty"`
	Name *string `json:"name,omitempty"`
	URL  *string `json:"url,omitempty"`
}

func licensesFromModel(ml model.Licenses) licenses {
	ls := make(licenses, 0, len(ml))
	for _, c := range ml {
		choice := licenseChoice{Expression: fromNormalized(c.Expression)}
		if c.License != nil {
			l := license{ID: c.License.ID, Name: fromNormalized(c.License.Name)}
			if c.License.URL != nil {
				u := c.License.URL.String()
				l.URL = &u
			}
			choice.License = &l
		}
		ls = append(ls, choice)
	}
	return ls
}

func (ls licenses) toModel() model.Licenses {
	ml := make(model.Licenses, 0, len(ls))
	for _, c := range ls {
		choice := model.LicenseChoice{Expression: toNormalized(c.Expression)}
		if c.License != nil {
			l := model.License{ID: c.License.ID, Name: toNormalized(c.License.Name)}
			if c.License.URL != nil {
				u := model.URI(*c.License.URL)
				l.URL = &u
			}
			choice.License = &l
		}
		ml = append(ml, choice)
	}
	return ml
}

func (ls licenses) writeXML(w *xmlio.Writer) error {
	if err := w.Start(licensesTag); err != nil {
		return err
	}
	for _, c := range ls {
		if c.License != nil {
			if err := c.License.writeXML(w); err != nil {
				return err
			}
			continue
		}
		if c.Expression != nil {
			if err := w.SimpleTag(expressionTag, *c.Expression); err != nil {
				return err
			}
		}
	}
	return w.End(licensesTag)
}

func (l *license) writeXML(w *xmlio.Writer) error {
	if err := w.Start(licenseTag); err != nil {
		return err
	}
	// id and name are mutually exclusive in the schema; id wins when both
	// are somehow present.
	if l.ID != nil {
		if err := w.SimpleTag(licenseIDTag, *l.ID); err != nil {
			return err
		}
	} else if l.Name != nil {
		if err := w.SimpleTag(orgNameTag, *l.Name); err != nil {
			return err
		}
	}
	if l.URL != nil {
		if err := w.SimpleTag(licenseURLTag, *l.URL); err != nil {
			return err
		}
	}
	return w.End(licenseTag)
}

func decodeLicenses(r *xmlio.Reader, start xml.StartElement) (licenses, error) {
	ls := licenses{}
	for {
		tok, err := r.Token(start.Name.Local)
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case licenseTag:
				l, err := decodeLicense(r, t)
				if err != nil {
					return nil, err
				}
				ls = append(ls, licenseChoice{License: &l})
			case expressionTag:
				v, err := r.Text(t)
				if err != nil {
					return nil, err
				}
				ls = append(ls, licenseChoice{Expression: &v})
			default:
				if err := r.Skip(t); err != nil {
					return nil, err
				}
			}
		case xml.EndElement:
			return ls, nil
		}
	}
}

func decodeLicense(r *xmlio.Reader, start xml.StartElement) (license, error) {
	var l license
	for {
		tok, err := r.Token(start.Name.Local)
		if err != nil {
			return l, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case licenseIDTag:
				v, err := r.Text(t)
				if err != nil {
					return l, err
				}
				l.ID = &v
			case orgNameTag:
				v, err := r.Text(t)
				if err != nil {
					return l, err
				}
				l.Name = &v
			case licenseURLTag:
				v, err := r.Text(t)
				if err != nil {
					return l, err
				}
				l.URL = &v
			default:
				if err := r.Skip(t); err != nil {
					return l, err
				}
			}
		case xml.EndElement:
			return l, nil
		}
	}
}
