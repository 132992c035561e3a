package v13

import (
	"encoding/xml"

	"github.com/StinkyLord/sbom-exchange/internal/model"
	"github.com/StinkyLord/sbom-exchange/internal/xmlio"
)

const (
	dependenciesTag   = "dependencies"
	dependencyTag     = "dependency"
	dependencyRefAttr = "ref"
)

type dependencies []dependency

// dependency renders in JSON as {ref, dependsOn} and in XML as a
// dependency element whose dependsOn entries are nested dependency
// elements carrying only a ref attribute.
type dependency struct {
	Ref       string   `json:"ref"`
	DependsOn []string `json:"dependsOn"`
}

func dependenciesFromModel(md model.Dependencies) dependencies {
	ds := make(dependencies, 0, len(md))
	for _, d := range md {
		dependsOn := make([]string, len(d.DependsOn))
		copy(dependsOn, d.DependsOn)
		ds = append(ds, dependency{Ref: d.Ref, DependsOn: dependsOn})
	}
	return ds
}

func (ds dependencies) toModel() model.Dependencies {
	md := make(model.Dependencies, 0, len(ds))
	for _, d := range ds {
		dependsOn := make([]string, len(d.DependsOn))
		copy(dependsOn, d.DependsOn)
		md = append(md, model.Dependency{Ref: d.Ref, DependsOn: dependsOn})
	}
	return md
}

func (ds dependencies) writeXML(w *xmlio.Writer) error {
	if err := w.Start(dependenciesTag); err != nil {
		return err
	}
	for _, d := range ds {
		if err := w.Start(dependencyTag, xmlio.Attr(dependencyRefAttr, d.Ref)); err != nil {
			return err
		}
		for _, ref := range d.DependsOn {
			if err := w.Start(dependencyTag, xmlio.Attr(dependencyRefAttr, ref)); err != nil {
				return err
			}
			if err := w.End(dependencyTag); err != nil {
				return err
			}
		}
		if err := w.End(dependencyTag); err != nil {
			return err
		}
	}
	return w.End(dependenciesTag)
}

func decodeDependencies(r *xmlio.Reader, start xml.StartElement) (dependencies, error) {
	ds := dependencies{}
	for {
		tok, err := r.Token(start.Name.Local)
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != dependencyTag {
				if err := r.Skip(t); err != nil {
					return nil, err
				}
				continue
			}
			d, err := decodeDependency(r, t)
			if err != nil {
				return nil, err
			}
			ds = append(ds, d)
		case xml.EndElement:
			return ds, nil
		}
	}
}

func decodeDependency(r *xmlio.Reader, start xml.StartElement) (dependency, error) {
	d := dependency{DependsOn: []string{}}
	d.Ref, _ = xmlio.AttrValue(start, dependencyRefAttr)
	for {
		tok, err := r.Token(start.Name.Local)
		if err != nil {
			return d, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != dependencyTag {
				if err := r.Skip(t); err != nil {
					return d, err
				}
				continue
			}
			ref, _ := xmlio.AttrValue(t, dependencyRefAttr)
			d.DependsOn = append(d.DependsOn, ref)
			// Deeper nesting inside a dependsOn entry carries no extra
			// information at this level; consume it.
			if err := r.Skip(t); err != nil {
				return d, err
			}
		case xml.EndElement:
			return d, nil
		}
	}
}
