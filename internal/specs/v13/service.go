package v13

import (
	"encoding/xml"
	"strconv"

	"github.com/StinkyLord/sbom-exchange/internal/model"
	"github.com/StinkyLord/sbom-exchange/internal/xmlio"
)

const (
	servicesTag       = "services"
	serviceTag        = "service"
	bomRefAttr        = "bom-ref"
	providerTag       = "provider"
	groupTag          = "group"
	nameTag           = "name"
	versionTag        = "version"
	descriptionTag    = "description"
	endpointsTag      = "endpoints"
	endpointTag       = "endpoint"
	authenticatedTag  = "authenticated"
	xTrustBoundaryTag = "x-trust-boundary"
	dataTag           = "data"
	classificationTag = "classification"
	flowAttr          = "flow"
)

type services []service

type service struct {
	BomRef             *string               `json:"bom-ref,omitempty"`
	Provider           *organizationalEntity `json:"provider,omitempty"`
	Group              *string               `json:"group,omitempty"`
	Name               string                `json:"name"`
	Version            *string               `json:"version,omitempty"`
	Description        *string               `json:"description,omitempty"`
	Endpoints          *[]string             `json:"endpoints,omitempty"`
	Authenticated      *bool                 `json:"authenticated,omitempty"`
	XTrustBoundary     *bool                 `json:"x-trust-boundary,omitempty"`
	Data               *[]dataClassification `json:"data,omitempty"`
	Licenses           *licenses             `json:"licenses,omitempty"`
	ExternalReferences *externalReferences   `json:"externalReferences,omitempty"`
	Properties         *properties           `json:"properties,omitempty"`
	Services           *services             `json:"services,omitempty"`
}

func servicesFromModel(ms model.Services) services {
	ss := make(services, 0, len(ms))
	for _, s := range ms {
		ss = append(ss, serviceFromModel(s))
	}
	return ss
}

func (ss services) toModel() model.Services {
	ms := make(model.Services, 0, len(ss))
	for _, s := range ss {
		ms = append(ms, s.toModel())
	}
	return ms
}

func serviceFromModel(m model.Service) service {
	s := service{
		BomRef:         m.BomRef,
		Group:          fromNormalized(m.Group),
		Name:           m.Name.String(),
		Version:        fromNormalized(m.Version),
		Description:    fromNormalized(m.Description),
		Authenticated:  m.Authenticated,
		XTrustBoundary: m.XTrustBoundary,
	}
	if m.Provider != nil {
		p := organizationalEntityFromModel(*m.Provider)
		s.Provider = &p
	}
	if m.Endpoints != nil {
		eps := make([]string, 0, len(*m.Endpoints))
		for _, e := range *m.Endpoints {
			eps = append(eps, e.String())
		}
		s.Endpoints = &eps
	}
	if m.Data != nil {
		data := make([]dataClassification, 0, len(*m.Data))
		for _, d := range *m.Data {
			data = append(data, dataClassificationFromModel(d))
		}
		s.Data = &data
	}
	if m.Licenses != nil {
		ls := licensesFromModel(*m.Licenses)
		s.Licenses = &ls
	}
	if m.ExternalReferences != nil {
		rs := externalReferencesFromModel(*m.ExternalReferences)
		s.ExternalReferences = &rs
	}
	if m.Properties != nil {
		ps := propertiesFromModel(*m.Properties)
		s.Properties = &ps
	}
	if m.Services != nil {
		nested := servicesFromModel(*m.Services)
		s.Services = &nested
	}
	return s
}

func (s service) toModel() model.Service {
	m := model.Service{
		BomRef:         s.BomRef,
		Group:          toNormalized(s.Group),
		Name:           model.NormalizedString(s.Name),
		Version:        toNormalized(s.Version),
		Description:    toNormalized(s.Description),
		Authenticated:  s.Authenticated,
		XTrustBoundary: s.XTrustBoundary,
	}
	if s.Provider != nil {
		p := s.Provider.toModel()
		m.Provider = &p
	}
	if s.Endpoints != nil {
		eps := make([]model.URI, 0, len(*s.Endpoints))
		for _, e := range *s.Endpoints {
			eps = append(eps, model.URI(e))
		}
		m.Endpoints = &eps
	}
	if s.Data != nil {
		data := make([]model.DataClassification, 0, len(*s.Data))
		for _, d := range *s.Data {
			data = append(data, d.toModel())
		}
		m.Data = &data
	}
	if s.Licenses != nil {
		ls := s.Licenses.toModel()
		m.Licenses = &ls
	}
	if s.ExternalReferences != nil {
		rs := s.ExternalReferences.toModel()
		m.ExternalReferences = &rs
	}
	if s.Properties != nil {
		ps := s.Properties.toModel()
		m.Properties = &ps
	}
	if s.Services != nil {
		nested := s.Services.toModel()
		m.Services = &nested
	}
	return m
}

func (ss services) writeXML(w *xmlio.Writer) error {
	if err := w.Start(servicesTag); err != nil {
		return err
	}
	for i := range ss {
		if err := ss[i].writeXML(w); err != nil {
			return err
		}
	}
	return w.End(servicesTag)
}

// writeXML emits the service element in the fixed order the schema
// mandates. bom-ref rides on the start tag; each optional field that is
// absent produces zero bytes; present-but-empty collections still emit
// their wrapper tags.
func (s service) writeXML(w *xmlio.Writer) error {
	var attrs []xml.Attr
	if s.BomRef != nil {
		attrs = append(attrs, xmlio.Attr(bomRefAttr, *s.BomRef))
	}
	if err := w.Start(serviceTag, attrs...); err != nil {
		return err
	}
	if s.Provider != nil {
		if err := s.Provider.writeXML(w, providerTag); err != nil {
			return err
		}
	}
	if s.Group != nil {
		if err := w.SimpleTag(groupTag, *s.Group); err != nil {
			return err
		}
	}
	if err := w.SimpleTag(nameTag, s.Name); err != nil {
		return err
	}
	if s.Version != nil {
		if err := w.SimpleTag(versionTag, *s.Version); err != nil {
			return err
		}
	}
	if s.Description != nil {
		if err := w.SimpleTag(descriptionTag, *s.Description); err != nil {
			return err
		}
	}
	if s.Endpoints != nil {
		if err := w.Start(endpointsTag); err != nil {
			return err
		}
		for _, e := range *s.Endpoints {
			if err := w.SimpleTag(endpointTag, e); err != nil {
				return err
			}
		}
		if err := w.End(endpointsTag); err != nil {
			return err
		}
	}
	if s.Authenticated != nil {
		if err := w.SimpleTag(authenticatedTag, strconv.FormatBool(*s.Authenticated)); err != nil {
			return err
		}
	}
	if s.XTrustBoundary != nil {
		if err := w.SimpleTag(xTrustBoundaryTag, strconv.FormatBool(*s.XTrustBoundary)); err != nil {
			return err
		}
	}
	if s.Data != nil {
		if err := w.Start(dataTag); err != nil {
			return err
		}
		for _, d := range *s.Data {
			if err := d.writeXML(w); err != nil {
				return err
			}
		}
		if err := w.End(dataTag); err != nil {
			return err
		}
	}
	if s.Licenses != nil {
		if err := s.Licenses.writeXML(w); err != nil {
			return err
		}
	}
	if s.ExternalReferences != nil {
		if err := s.ExternalReferences.writeXML(w); err != nil {
			return err
		}
	}
	if s.Properties != nil {
		if err := s.Properties.writeXML(w); err != nil {
			return err
		}
	}
	if s.Services != nil {
		if err := s.Services.writeXML(w); err != nil {
			return err
		}
	}
	return w.End(serviceTag)
}

func decodeServices(r *xmlio.Reader, start xml.StartElement) (services, error) {
	ss := services{}
	for {
		tok, err := r.Token(start.Name.Local)
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != serviceTag {
				if err := r.Skip(t); err != nil {
					return nil, err
				}
				continue
			}
			s, err := decodeService(r, t)
			if err != nil {
				return nil, err
			}
			ss = append(ss, s)
		case xml.EndElement:
			return ss, nil
		}
	}
}

func decodeService(r *xmlio.Reader, start xml.StartElement) (service, error) {
	var s service
	if v, ok := xmlio.AttrValue(start, bomRefAttr); ok {
		s.BomRef = &v
	}
	for {
		tok, err := r.Token(start.Name.Local)
		if err != nil {
			return s, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case providerTag:
				p, err := decodeOrganizationalEntity(r, t)
				if err != nil {
					return s, err
				}
				s.Provider = &p
			case groupTag:
				v, err := r.Text(t)
				if err != nil {
					return s, err
				}
				s.Group = &v
			case nameTag:
				v, err := r.Text(t)
				if err != nil {
					return s, err
				}
				s.Name = v
			case versionTag:
				v, err := r.Text(t)
				if err != nil {
					return s, err
				}
				s.Version = &v
			case descriptionTag:
				v, err := r.Text(t)
				if err != nil {
					return s, err
				}
				s.Description = &v
			case endpointsTag:
				eps, err := decodeEndpoints(r, t)
				if err != nil {
					return s, err
				}
				s.Endpoints = &eps
			case authenticatedTag:
				b, err := decodeBool(r, t)
				if err != nil {
					return s, err
				}
				s.Authenticated = b
			case xTrustBoundaryTag:
				b, err := decodeBool(r, t)
				if err != nil {
					return s, err
				}
				s.XTrustBoundary = b
			case dataTag:
				data, err := decodeData(r, t)
				if err != nil {
					return s, err
				}
				s.Data = &data
			case licensesTag:
				ls, err := decodeLicenses(r, t)
				if err != nil {
					return s, err
				}
				s.Licenses = &ls
			case externalReferencesTag:
				rs, err := decodeExternalReferences(r, t)
				if err != nil {
					return s, err
				}
				s.ExternalReferences = &rs
			case propertiesTag:
				ps, err := decodeProperties(r, t)
				if err != nil {
					return s, err
				}
				s.Properties = &ps
			case servicesTag:
				nested, err := decodeServices(r, t)
				if err != nil {
					return s, err
				}
				s.Services = &nested
			default:
				if err := r.Skip(t); err != nil {
					return s, err
				}
			}
		case xml.EndElement:
			return s, nil
		}
	}
}

func decodeEndpoints(r *xmlio.Reader, start xml.StartElement) ([]string, error) {
	eps := []string{}
	for {
		tok, err := r.Token(start.Name.Local)
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != endpointTag {
				if err := r.Skip(t); err != nil {
					return nil, err
				}
				continue
			}
			v, err := r.Text(t)
			if err != nil {
				return nil, err
			}
			eps = append(eps, v)
		case xml.EndElement:
			return eps, nil
		}
	}
}

// decodeBool tolerates unparseable boolean text by dropping the field —
// the value is well-formed markup, so it must not be fatal.
func decodeBool(r *xmlio.Reader, start xml.StartElement) (*bool, error) {
	v, err := r.Text(start)
	if err != nil {
		return nil, err
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil, nil
	}
	return &b, nil
}

type dataClassification struct {
	Flow           string `json:"flow"`
	Classification string `json:"classification"`
}

func dataClassificationFromModel(m model.DataClassification) dataClassification {
	return dataClassification{
		Flow:           m.Flow.String(),
		Classification: m.Classification.String(),
	}
}

func (d dataClassification) toModel() model.DataClassification {
	return model.DataClassification{
		Flow:           model.DataFlowTypeFromString(d.Flow),
		Classification: model.NormalizedString(d.Classification),
	}
}

func (d dataClassification) writeXML(w *xmlio.Writer) error {
	return w.SimpleTag(classificationTag, d.Classification, xmlio.Attr(flowAttr, d.Flow))
}

func decodeData(r *xmlio.Reader, start xml.StartElement) ([]dataClassification, error) {
	data := []dataClassification{}
	for {
		tok, err := r.Token(start.Name.Local)
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != classificationTag {
				if err := r.Skip(t); err != nil {
					return nil, err
				}
				continue
			}
			flow, _ := xmlio.AttrValue(t, flowAttr)
			text, err := r.Text(t)
			if err != nil {
				return nil, err
			}
			data = append(data, dataClassification{Flow: flow, Classification: text})
		case xml.EndElement:
			return data, nil
		}
	}
}
