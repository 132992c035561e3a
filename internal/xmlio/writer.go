// Package xmlio carries the event-level XML plumbing shared by every spec
// version: a thin writer over encoding/xml's token encoder that wraps each
// failure with the tag being written, and reader helpers that make skipping
// unknown elements the default.
package xmlio

import (
	"encoding/xml"
	"fmt"
	"io"
)

// WriteError reports a failure while emitting XML. Serialization is
// all-or-nothing: the first write failure aborts the call and surfaces
// here, carrying the tag that was being written.
type WriteError struct {
	Tag string
	Err error
}

func (e *WriteError) Error() string {
	if e.Tag == "" {
		return fmt.Sprintf("writing XML: %v", e.Err)
	}
	return fmt.Sprintf("writing element <%s>: %v", e.Tag, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Writer emits XML tokens to a sink. The sink is exclusively owned by the
// single serialization call using the Writer and is never retained.
type Writer struct {
	enc *xml.Encoder
}

// NewWriter returns a Writer emitting compact (unindented) XML to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{enc: xml.NewEncoder(w)}
}

// Attr builds an unqualified attribute.
func Attr(name, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: name}, Value: value}
}

// Start opens an element with the given attributes.
func (w *Writer) Start(tag string, attrs ...xml.Attr) error {
	el := xml.StartElement{Name: xml.Name{Local: tag}, Attr: attrs}
	if err := w.enc.EncodeToken(el); err != nil {
		return &WriteError{Tag: tag, Err: err}
	}
	return nil
}

// End closes the element opened with the same tag.
func (w *Writer) End(tag string) error {
	el := xml.EndElement{Name: xml.Name{Local: tag}}
	if err := w.enc.EncodeToken(el); err != nil {
		return &WriteError{Tag: tag, Err: err}
	}
	return nil
}

// Declaration writes the standard XML declaration. Call once, before the
// root element.
func (w *Writer) Declaration() error {
	pi := xml.ProcInst{Target: "xml", Inst: []byte(`version="1.0" encoding="UTF-8"`)}
	if err := w.enc.EncodeToken(pi); err != nil {
		return &WriteError{Err: err}
	}
	return nil
}

// SimpleTag writes <tag>text</tag> with text escaped. An empty string still
// produces the element pair — callers express absence by not calling.
func (w *Writer) SimpleTag(tag, text string, attrs ...xml.Attr) error {
	if err := w.Start(tag, attrs...); err != nil {
		return err
	}
	if err := w.enc.EncodeToken(xml.CharData(text)); err != nil {
		return &WriteError{Tag: tag, Err: err}
	}
	return w.End(tag)
}

// Flush forces buffered tokens out to the sink. Must be called once after
// the root element is closed.
func (w *Writer) Flush() error {
	if err := w.enc.Flush(); err != nil {
		return &WriteError{Err: err}
	}
	return nil
}
