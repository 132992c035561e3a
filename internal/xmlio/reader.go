package xmlio

import (
	"encoding/xml"
	"fmt"
	"io"
)

// ParseError reports structurally malformed markup: bad tokens, mismatched
// tags, truncated input. Well-formed input containing unknown elements or
// attributes never produces one — unknowns are skipped for forward
// compatibility.
type ParseError struct {
	Element string // element being read when the failure occurred
	Offset  int64  // byte offset into the input
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing element <%s> at offset %d: %v", e.Element, e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Reader consumes XML tokens from a source. Entity decoders drive it in a
// token loop, dispatching on child element names and skipping everything
// they do not recognize.
type Reader struct {
	dec *xml.Decoder
}

func NewReader(r io.Reader) *Reader {
	return &Reader{dec: xml.NewDecoder(r)}
}

// AttrValue looks up an unqualified attribute on a start element.
func AttrValue(start xml.StartElement, name string) (string, bool) {
	for _, a := range start.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// Root scans to the document's root element and verifies its name.
func (r *Reader) Root(tag string) (xml.StartElement, error) {
	for {
		tok, err := r.dec.Token()
		if err != nil {
			return xml.StartElement{}, r.wrap(tag, err)
		}
		if start, ok := tok.(xml.StartElement); ok {
			if start.Name.Local != tag {
				return xml.StartElement{}, r.wrap(tag, fmt.Errorf("unexpected root element <%s>", start.Name.Local))
			}
			return start, nil
		}
	}
}

// Token returns the next token inside the element named ctx. Any decoder
// failure, including truncation, becomes a ParseError.
func (r *Reader) Token(ctx string) (xml.Token, error) {
	tok, err := r.dec.Token()
	if err != nil {
		return nil, r.wrap(ctx, err)
	}
	return tok, nil
}

// Text consumes the element opened by start and returns its character
// data. Unexpected child elements are skipped, not fatal.
func (r *Reader) Text(start xml.StartElement) (string, error) {
	var text []byte
	for {
		tok, err := r.dec.Token()
		if err != nil {
			return "", r.wrap(start.Name.Local, err)
		}
		switch t := tok.(type) {
		case xml.CharData:
			text = append(text, t...)
		case xml.StartElement:
			if err := r.Skip(t); err != nil {
				return "", err
			}
		case xml.EndElement:
			return string(text), nil
		}
	}
}

// Skip consumes the element opened by start, children and all.
func (r *Reader) Skip(start xml.StartElement) error {
	if err := r.dec.Skip(); err != nil {
		return r.wrap(start.Name.Local, err)
	}
	return nil
}

func (r *Reader) wrap(element string, err error) error {
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return &ParseError{Element: element, Offset: r.dec.InputOffset(), Err: err}
}
