package v14

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolptr(b bool) *bool { return &b }

func exampleBom() *Bom {
	return &Bom{
		BOMFormat:    "CycloneDX",
		SpecVersion:  SpecVersion,
		SerialNumber: strptr("urn:uuid:4f782798-406c-52f6-b41f-b69a32b7ac8a"),
		Version:      1,
		Metadata: &metadata{
			Timestamp: strptr("2026-08-30T12:00:00Z"),
			Tools: &tools{{
				Vendor:  strptr("StinkyLord"),
				Name:    strptr("sbom-exchange"),
				Version: strptr("1.0.0"),
			}},
		},
		Components: &components{{
			Type:    "library",
			BomRef:  strptr("pkg:golang/acme/parser@1.2.3"),
			Name:    "parser",
			Version: strptr("1.2.3"),
		}},
		Services: &services{{
			Name:          "auth-service",
			Endpoints:     &[]string{"https://svc/auth"},
			Authenticated: boolptr(true),
			Data:          &[]dataClassification{{Flow: "outbound", Classification: "PII"}},
		}},
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

func TestBomXMLNamespace(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, exampleBom().WriteXML(&buf))

	assert.Contains(t, buf.String(), `xmlns="http://cyclonedx.org/schema/bom/1.4"`)
	assert.True(t, strings.HasPrefix(buf.String(), `<?xml version="1.0" encoding="UTF-8"?>`))
}

func TestBomJSONSpecVersion(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, exampleBom().WriteJSON(&buf))

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	assert.Equal(t, `"1.4"`, string(raw["specVersion"]))
}
