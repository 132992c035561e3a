package xmlio

import (
	"bytes"
	"encoding/xml"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterSimpleTag(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.SimpleTag("name", "auth-service"))
	require.NoError(t, w.Flush())

	assert.Equal(t, `<name>auth-service</name>`, buf.String())
}

func TestWriterSimpleTagWithAttr(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.SimpleTag("classification", "PII", Attr("flow", "outbound")))
	require.NoError(t, w.Flush())

	assert.Equal(t, `<classification flow="outbound">PII</classification>`, buf.String())
}

func TestWriterEscapesText(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.SimpleTag("description", "a < b && c"))
	require.NoError(t, w.Flush())

	assert.Equal(t, `<description>a &lt; b &amp;&amp; c</description>`, buf.String())
}

func TestWriterEmptyElement(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.Start("endpoints"))
	require.NoError(t, w.End("endpoints"))
	require.NoError(t, w.Flush())

	assert.Equal(t, `<endpoints></endpoints>`, buf.String())
}

type failingSink struct{}

func (failingSink) Write([]byte) (int, error) { return 0, errors.New("sink closed") }

// TestWriteErrorCarriesTag: a sink failure aborts serialization and the
// error names the element being written when the failure surfaced.
func TestWriteErrorCarriesTag(t *testing.T) {
	w := NewWriter(failingSink{})

	// The encoder buffers; keep writing until the sink failure surfaces.
	var err error
	big := strings.Repeat("x", 512)
	for i := 0; i < 100 && err == nil; i++ {
		err = w.SimpleTag("endpoint", big)
	}
	if err == nil {
		err = w.Flush()
	}
	require.Error(t, err)

	var werr *WriteError
	require.ErrorAs(t, err, &werr)
	assert.ErrorContains(t, werr, "sink closed")
}

func TestReaderText(t *testing.T) {
	r := NewReader(strings.NewReader(`<name>auth-service</name>`))
	root, err := r.Root("name")
	require.NoError(t, err)

	text, err := r.Text(root)
	require.NoError(t, err)
	assert.Equal(t, "auth-service", text)
}

func TestReaderRootWrongElement(t *testing.T) {
	r := NewReader(strings.NewReader(`<other></other>`))
	_, err := r.Root("bom")

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "bom", perr.Element)
}

func TestReaderTruncatedInput(t *testing.T) {
	r := NewReader(strings.NewReader(`<bom><metadata>`))
	root, err := r.Root("bom")
	require.NoError(t, err)

	_, err = r.Text(root)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
}

// TestReaderSkipConsumesSubtree: skipping an unknown element consumes its
// whole subtree, leaving the reader positioned at the next sibling.
func TestReaderSkipConsumesSubtree(t *testing.T) {
	r := NewReader(strings.NewReader(
		`<svc><future><deep>x</deep></future><name>ok</name></svc>`))
	root, err := r.Root("svc")
	require.NoError(t, err)

	tok, err := r.Token(root.Name.Local)
	require.NoError(t, err)
	future, ok := tok.(xml.StartElement)
	require.True(t, ok)
	assert.Equal(t, "future", future.Name.Local)
	require.NoError(t, r.Skip(future))

	tok, err = r.Token(root.Name.Local)
	require.NoError(t, err)
	name, ok := tok.(xml.StartElement)
	require.True(t, ok)
	assert.Equal(t, "name", name.Name.Local)

	text, err := r.Text(name)
	require.NoError(t, err)
	assert.Equal(t, "ok", text)
}

func TestAttrValue(t *testing.T) {
	r := NewReader(strings.NewReader(`<service bom-ref="svc-1"></service>`))
	root, err := r.Root("service")
	require.NoError(t, err)

	v, ok := AttrValue(root, "bom-ref")
	assert.True(t, ok)
	assert.Equal(t, "svc-1", v)

	_, ok = AttrValue(root, "missing")
	assert.False(t, ok)
}
