package v14

import (
	"encoding/xml"

	"github.com/StinkyLord/sbom-exchange/internal/model"
	"github.com/StinkyLord/sbom-exchange/internal/xmlio"
)

const (
	externalReferencesTag = "externalReferences"
	referenceTag          = "reference"
	referenceTypeAttr     = "type"
	referenceURLTag       = "url"
	referenceCommentTag   = "comment"
)

type externalReferences []externalReference

// externalReference carries its type as an attribute on the reference
// element, never as a child.
type externalReference struct {
	URL     string  `json:"url"`
	Type    string  `json:"type"`
	Comment *string `json:"comment,omitempty"`
	Hashes  *hashes `json:"hashes,omitempty"`
}

func externalReferencesFromModel(mr model.ExternalReferences) externalReferences {
	rs := make(externalReferences, 0, len(mr))
	for _, ref := range mr {
		er := externalReference{
			URL:     ref.URL.String(),
			Type:    ref.Type.String(),
			Comment: fromNormalized(ref.Comment),
		}
		if ref.Hashes != nil {
			hs := hashesFromModel(*ref.Hashes)
			er.Hashes = &hs
		}
		rs = append(rs, er)
	}
	return rs
}

func (rs externalReferences) toModel() model.ExternalReferences {
	mr := make(model.ExternalReferences, 0, len(rs))
	for _, ref := range rs {
		er := model.ExternalReference{
			URL:     model.URI(ref.URL),
			Type:    model.ExternalReferenceTypeFromString(ref.Type),
			Comment: toNormalized(ref.Comment),
		}
		if ref.Hashes != nil {
			hs := ref.Hashes.toModel()
			er.Hashes = &hs
		}
		mr = append(mr, er)
	}
	return mr
}

func (rs externalReferences) writeXML(w *xmlio.Writer) error {
	if err := w.Start(externalReferencesTag); err != nil {
		return err
	}
	for _, ref := range rs {
		if err := w.Start(referenceTag, xmlio.Attr(referenceTypeAttr, ref.Type)); err != nil {
			return err
		}
		if err := w.SimpleTag(referenceURLTag, ref.URL); err != nil {
			return err
		}
		if ref.Comment != nil {
			if err := w.SimpleTag(referenceCommentTag, *ref.Comment); err != nil {
				return err
			}
		}
		if ref.Hashes != nil {
			if err := ref.Hashes.writeXML(w); err != nil {
				return err
			}
		}
		if err := w.End(referenceTag); err != nil {
			return err
		}
	}
	return w.End(externalReferencesTag)
}

func decodeExternalReferences(r *xmlio.Reader, start xml.StartElement) (externalReferences, error) {
	rs := externalReferences{}
	for {
		tok, err := r.Token(start.Name.Local)
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != referenceTag {
				if err := r.Skip(t); err != nil {
					return nil, err
				}
				continue
			}
			ref, err := decodeExternalReference(r, t)
			if err != nil {
				return nil, err
			}
			rs = append(rs, ref)
		case xml.EndElement:
			return rs, nil
		}
	}
}

func decodeExternalReference(r *xmlio.Reader, start xml.StartElement) (externalReference, error) {
	var ref externalReference
	ref.Type, _ = xmlio.AttrValue(start, referenceTypeAttr)
	for {
		tok, err := r.Token(start.Name.Local)
		if err != nil {
			return ref, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case referenceURLTag:
				v, err := r.Text(t)
				if err != nil {
					return ref, err
				}
				ref.URL = v
			case referenceCommentTag:
				v, err := r.Text(t)
				if err != nil {
					return ref, err
				}
				ref.Comment = &v
			case hashesTag:
				hs, err := decodeHashes(r, t)
				if err != nil {
					return ref, err
				}
				ref.Hashes = &hs
			default:
				if err := r.Skip(t); err != nil {
					return ref, err
				}
			}
		case xml.EndElement:
			return ref, nil
		}
	}
}
