package v13

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StinkyLord/sbom-exchange/internal/model"
	"github.com/StinkyLord/sbom-exchange/internal/xmlio"
)

func writeComponentString(t *testing.T, c component) string {
	t.Helper()
	var buf bytes.Buffer
	w := xmlio.NewWriter(&buf)
	require.NoError(t, c.writeXML(w))
	require.NoError(t, w.Flush())
	return buf.String()
}

// TestComponentVersionRequired: 1.3 mandates the version element, so a
// canonical component without a version defaults to empty rather than
// failing the conversion.
func TestComponentVersionRequired(t *testing.T) {
	m := model.Component{Type: model.ComponentTypeLibrary, Name: "parser"}

	c := componentFromModel(m)
	out := writeComponentString(t, c)
	assert.Contains(t, out, `<version></version>`)

	// The defaulted empty version maps back to absent.
	back := c.toModel()
	assert.Nil(t, back.Version)
}

func TestComponentTypeIsAttribute(t *testing.T) {
	c := component{Type: "library", BomRef: strptr("ref-1"), Name: "parser", Version: "1.0"}
	out := writeComponentString(t, c)

	assert.Contains(t, out, `<component type="library" bom-ref="ref-1">`)
	assert.NotContains(t, out, "<type>")
}

func TestComponentConversionRoundTrip(t *testing.T) {
	scope := model.ScopeRequired
	nested := model.Components{{Type: model.ComponentTypeFile, Name: "asset", Version: normptr("1")}}
	m := model.Component{
		Type:       model.ComponentTypeLibrary,
		BomRef:     strptr("pkg:golang/acme/parser@1.2.3"),
		Group:      normptr("acme"),
		Name:       "parser",
		Version:    normptr("1.2.3"),
		Scope:      &scope,
		PackageURL: strptr("pkg:golang/acme/parser@1.2.3"),
		Hashes:     &model.Hashes{{Algorithm: model.HashAlgoSHA256, Value: "abc123"}},
		Components: &nested,
	}

	got := componentFromModel(m).toModel()
	if diff := cmp.Diff(m, got); diff != "" {
		t.Errorf("canonical round trip mismatch (-want +got):\n%s", diff)
	}
}

// TestComponentUnknownTypePreserved: the open-enum contract holds for the
// component classification too.
func TestComponentUnknownTypePreserved(t *testing.T) {
	m := model.Component{
		Type:    model.ComponentTypeFromString("quantum-accelerator"),
		Name:    "qpu",
		Version: normptr("0.1"),
	}

	back := componentFromModel(m).toModel()
	assert.Equal(t, "quantum-accelerator", back.Type.String())
	assert.False(t, back.Type.Known())
}
