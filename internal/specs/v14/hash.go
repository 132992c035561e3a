package v14

import (
	"encoding/xml"

	"github.com/StinkyLord/sbom-exchange/internal/model"
	"github.com/StinkyLord/sbom-exchange/internal/xmlio"
)

const (
	hashesTag   = "hashes"
	hashTag     = "hash"
	hashAlgAttr = "alg"
)

type hashes []hash

type hash struct {
	Alg     string `json:"alg"`
	Content string `json:"content"`
}

func hashesFromModel(mh model.Hashes) hashes {
	hs := make(hashes, 0, len(mh))
	for _, h := range mh {
		hs = append(hs, hash{Alg: h.Algorithm.String(), Content: string(h.Value)})
	}
	return hs
}

func (hs hashes) toModel() model.Hashes {
	mh := make(model.Hashes, 0, len(hs))
	for _, h := range hs {
		mh = append(mh, model.Hash{
			Algorithm: model.HashAlgorithmFromString(h.Alg),
			Value:     model.HashValue(h.Content),
		})
	}
	return mh
}

func (hs hashes) writeXML(w *xmlio.Writer) error {
	if err := w.Start(hashesTag); err != nil {
		return err
	}
	for _, h := range hs {
		if err := w.SimpleTag(hashTag, h.Content, xmlio.Attr(hashAlgAttr, h.Alg)); err != nil {
			return err
		}
	}
	return w.End(hashesTag)
}

func decodeHashes(r *xmlio.Reader, start xml.StartElement) (hashes, error) {
	hs := hashes{}
	for {
		tok, err := r.Token(start.Name.Local)
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != hashTag {
				if err := r.Skip(t); err != nil {
					return nil, err
				}
				continue
			}
			alg, _ := xmlio.AttrValue(t, hashAlgAttr)
			content, err := r.Text(t)
			if err != nil {
				return nil, err
			}
			hs = append(hs, hash{Alg: alg, Content: content})
		case xml.EndElement:
			return hs, nil
		}
	}
}
