package exchange

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StinkyLord/sbom-exchange/internal/model"
)

// makeTestBom assembles a canonical document through the checked
// constructors, the way an upstream document builder would.
func makeTestBom(t *testing.T) *model.Bom {
	t.Helper()

	name, err := model.NewRequiredString("name", "auth-service")
	require.NoError(t, err)
	endpoint, err := model.NewURI("endpoint", "https://svc/auth")
	require.NoError(t, err)
	classification, err := model.NewRequiredString("classification", "PII")
	require.NoError(t, err)
	compName, err := model.NewRequiredString("name", "parser")
	require.NoError(t, err)
	compVersion, err := model.NewNormalizedString("version", "1.2.3")
	require.NoError(t, err)

	authenticated := true
	endpoints := []model.URI{endpoint}
	data := []model.DataClassification{{
		Flow:           model.DataFlowOutbound,
		Classification: classification,
	}}
	svcRef := "svc-1"
	compRef := "pkg:golang/acme/parser@1.2.3"

	services := model.Services{{
		BomRef:        &svcRef,
		Name:          name,
		Endpoints:     &endpoints,
		Authenticated: &authenticated,
		Data:          &data,
	}}
	components := model.Components{{
		Type:    model.ComponentTypeLibrary,
		BomRef:  &compRef,
		Name:    compName,
		Version: &compVersion,
	}}
	dependencies := model.Dependencies{{Ref: svcRef, DependsOn: []string{compRef}}}

	serial := "urn:uuid:3e671687-395b-41f5-a30f-a58921a69b79"
	return &model.Bom{
		SerialNumber: &serial,
		Version:      1,
		Components:   &components,
		Services:     &services,
		Dependencies: &dependencies,
	}
}

// TestRoundTripAllVersionFormatPairs: every supported (version, format)
// pair reproduces the canonical document it was given.
func TestRoundTripAllVersionFormatPairs(t *testing.T) {
	bom := makeTestBom(t)

	for _, version := range []SpecVersion{V1_3, V1_4} {
		for _, format := range []Format{FormatXML, FormatJSON} {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, bom, version, format),
				"write %s/%s", version, format)

			back, err := Read(&buf, version, format)
			require.NoError(t, err, "read %s/%s", version, format)
			if diff := cmp.Diff(bom, back); diff != "" {
				t.Errorf("%s/%s round trip mismatch (-want +got):\n%s", version, format, diff)
			}
		}
	}
}

// TestCrossVersionConversion: a 1.3 XML payload comes out as 1.4 JSON
// with the shared fields intact.
func TestCrossVersionConversion(t *testing.T) {
	bom := makeTestBom(t)

	var wire13 bytes.Buffer
	require.NoError(t, Write(&wire13, bom, V1_3, FormatXML))

	decoded, err := Read(&wire13, V1_3, FormatXML)
	require.NoError(t, err)

	var wire14 bytes.Buffer
	require.NoError(t, Write(&wire14, decoded, V1_4, FormatJSON))

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(wire14.Bytes(), &raw))
	assert.Equal(t, `"1.4"`, string(raw["specVersion"]))

	back, err := Read(&wire14, V1_4, FormatJSON)
	require.NoError(t, err)
	if diff := cmp.Diff(bom, back); diff != "" {
		t.Errorf("cross-version mismatch (-want +got):\n%s", diff)
	}
}

func TestParseSpecVersion(t *testing.T) {
	v, err := ParseSpecVersion("1.3")
	require.NoError(t, err)
	assert.Equal(t, V1_3, v)

	_, err = ParseSpecVersion("1.7")
	assert.ErrorContains(t, err, "unsupported spec version")
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = ParseFormat("yaml")
	assert.ErrorContains(t, err, "unsupported format")
}

func TestWriteUnsupportedSelection(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, makeTestBom(t), SpecVersion("0.9"), FormatXML)
	assert.ErrorContains(t, err, "unsupported")

	err = Write(&buf, makeTestBom(t), V1_3, Format("yaml"))
	assert.ErrorContains(t, err, "unsupported")
}

func TestReadUnsupportedSelection(t *testing.T) {
	_, err := Read(strings.NewReader("{}"), SpecVersion("0.9"), FormatJSON)
	assert.ErrorContains(t, err, "unsupported")
}
