package v13

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StinkyLord/sbom-exchange/internal/xmlio"
)

// exampleBom covers every top-level section with stable values so both
// codecs can be round-tripped deterministically.
func exampleBom() *Bom {
	lib := component{
		Type:       "library",
		BomRef:     strptr("pkg:golang/acme/parser@1.2.3"),
		Name:       "parser",
		Version:    "1.2.3",
		PackageURL: strptr("pkg:golang/acme/parser@1.2.3"),
		Hashes:     &hashes{{Alg: "SHA-256", Content: "d2a84f4b8b650937ec8f73cd8be2c74a"}},
		Licenses:   &licenses{{License: &license{ID: strptr("MIT")}}},
	}
	app := component{
		Type:    "application",
		BomRef:  strptr("pkg:golang/acme/gateway@2.0.0"),
		Group:   strptr("acme"),
		Name:    "gateway",
		Version: "2.0.0",
		Properties: &properties{
			{Name: "build", Value: "reproducible"},
		},
	}
	return &Bom{
		BOMFormat:    "CycloneDX",
		SpecVersion:  SpecVersion,
		SerialNumber: strptr("urn:uuid:3e671687-395b-41f5-a30f-a58921a69b79"),
		Version:      1,
		Metadata: &metadata{
			Timestamp: strptr("2026-08-30T12:00:00Z"),
			Tools: &tools{{
				Vendor:  strptr("StinkyLord"),
				Name:    strptr("sbom-exchange"),
				Version: strptr("1.0.0"),
			}},
			Component: &app,
		},
		Components: &components{lib},
		Services:   &services{exampleService()},
		Dependencies: &dependencies{
			{Ref: "pkg:golang/acme/gateway@2.0.0", DependsOn: []string{"pkg:golang/acme/parser@1.2.3"}},
			{Ref: "pkg:golang/acme/parser@1.2.3", DependsOn: []string{}},
		},
	}
}

func TestBomXMLRoundTrip(t *testing.T) {
	b := exampleBom()

	var buf bytes.Buffer
	require.NoError(t, b.WriteXML(&buf))

	back, err := ReadXML(&buf)
	require.NoError(t, err)
	if diff := cmp.Diff(b, back); diff != "" {
		t.Errorf("XML round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestBomJSONRoundTrip(t *testing.T) {
	b := exampleBom()

	var buf bytes.Buffer
	require.NoError(t, b.WriteJSON(&buf))

	back, err := ReadJSON(&buf)
	require.NoError(t, err)
	if diff := cmp.Diff(b, back); diff != "" {
		t.Errorf("JSON round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestBomXMLEnvelope(t *testing.T) {
	b := exampleBom()

	var buf bytes.Buffer
	require.NoError(t, b.WriteXML(&buf))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`), "output: %.80s", out)
	assert.Contains(t, out, `<bom xmlns="http://cyclonedx.org/schema/bom/1.3" `+
		`serialNumber="urn:uuid:3e671687-395b-41f5-a30f-a58921a69b79" version="1">`)
}

func TestBomJSONEnvelope(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, exampleBom().WriteJSON(&buf))

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))

	for _, key := range []string{"bomFormat", "specVersion", "serialNumber", "version"} {
		assert.Contains(t, raw, key)
	}
	assert.Equal(t, `"CycloneDX"`, string(raw["bomFormat"]))
	assert.Equal(t, `"1.3"`, string(raw["specVersion"]))
}

// TestBomOptionalSectionsOmitted: an empty document serializes to just the
// envelope — no metadata, components, services or dependencies anywhere.
func TestBomOptionalSectionsOmitted(t *testing.T) {
	b := &Bom{BOMFormat: "CycloneDX", SpecVersion: SpecVersion, Version: 1}

	var xmlBuf bytes.Buffer
	require.NoError(t, b.WriteXML(&xmlBuf))
	assert.Equal(t,
		`<?xml version="1.0" encoding="UTF-8"?>`+
			`<bom xmlns="http://cyclonedx.org/schema/bom/1.3" version="1"></bom>`,
		xmlBuf.String())

	var jsonBuf bytes.Buffer
	require.NoError(t, b.WriteJSON(&jsonBuf))
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(jsonBuf.Bytes(), &raw))
	for _, key := range []string{"serialNumber", "metadata", "components", "services", "dependencies"} {
		assert.NotContains(t, raw, key)
	}
}

// TestDependenciesXMLShape: dependsOn entries nest as ref-only dependency
// elements inside their parent.
func TestDependenciesXMLShape(t *testing.T) {
	ds := dependencies{
		{Ref: "a", DependsOn: []string{"b", "c"}},
	}

	var buf bytes.Buffer
	w := xmlio.NewWriter(&buf)
	require.NoError(t, ds.writeXML(w))
	require.NoError(t, w.Flush())

	want := `<dependencies>` +
		`<dependency ref="a"><dependency ref="b"></dependency><dependency ref="c"></dependency></dependency>` +
		`</dependencies>`
	assert.Equal(t, want, buf.String())
}

// TestComponentOrderStable: document order of sibling components survives
// a full serialize/parse cycle.
func TestComponentOrderStable(t *testing.T) {
	names := []string{"alpha", "beta", "gamma"}
	cs := components{}
	for _, n := range names {
		cs = append(cs, component{Type: "library", Name: n, Version: "1"})
	}
	b := &Bom{BOMFormat: "CycloneDX", SpecVersion: SpecVersion, Version: 1, Components: &cs}

	var buf bytes.Buffer
	require.NoError(t, b.WriteXML(&buf))
	back, err := ReadXML(&buf)
	require.NoError(t, err)

	require.NotNil(t, back.Components)
	require.Len(t, *back.Components, 3)
	for i, n := range names {
		assert.Equal(t, n, (*back.Components)[i].Name)
	}
}

func TestReadXMLMalformed(t *testing.T) {
	_, err := ReadXML(strings.NewReader(`<bom version="1"><metadata></bom>`))

	var perr *xmlio.ParseError
	require.ErrorAs(t, err, &perr)
}

func TestReadXMLWrongRoot(t *testing.T) {
	_, err := ReadXML(strings.NewReader(`<notABom></notABom>`))

	var perr *xmlio.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "bom", perr.Element)
}

func TestReadXMLBadVersionAttr(t *testing.T) {
	_, err := ReadXML(strings.NewReader(`<bom version="one"></bom>`))

	var perr *xmlio.ParseError
	require.ErrorAs(t, err, &perr)
}

// TestReadXMLIgnoresUnknownTopLevel: sections from newer schema revisions
// are skipped without error.
func TestReadXMLIgnoresUnknownTopLevel(t *testing.T) {
	text := `<bom xmlns="http://cyclonedx.org/schema/bom/1.3" version="2">` +
		`<vulnerabilities><vulnerability id="CVE-0"></vulnerability></vulnerabilities>` +
		`<services><service><name>svc</name></service></services>` +
		`</bom>`

	b, err := ReadXML(strings.NewReader(text))
	require.NoError(t, err)
	assert.Equal(t, 2, b.Version)
	require.NotNil(t, b.Services)
	require.Len(t, *b.Services, 1)
	assert.Equal(t, "svc", (*b.Services)[0].Name)
}
