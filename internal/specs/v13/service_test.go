package v13

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StinkyLord/sbom-exchange/internal/model"
	"github.com/StinkyLord/sbom-exchange/internal/xmlio"
)

func strptr(s string) *string { return &s }
func boolptr(b bool) *bool    { return &b }

func normptr(s string) *model.NormalizedString {
	ns := model.NormalizedString(s)
	return &ns
}

// exampleService builds a fully-populated projected service; every
// optional field is present so round trips cover the whole field set.
func exampleService() service {
	return service{
		BomRef: strptr("svc-1"),
		Provider: &organizationalEntity{
			Name:    strptr("Acme"),
			URL:     &[]string{"https://acme.example"},
			Contact: &contacts{{Name: strptr("Ops"), Email: strptr("ops@acme.example")}},
		},
		Group:          strptr("group"),
		Name:           "auth-service",
		Version:        strptr("2.0.1"),
		Description:    strptr("authentication front door"),
		Endpoints:      &[]string{"https://svc/auth"},
		Authenticated:  boolptr(true),
		XTrustBoundary: boolptr(true),
		Data:           &[]dataClassification{{Flow: "outbound", Classification: "PII"}},
		Licenses:       &licenses{{Expression: strptr("Apache-2.0")}},
		ExternalReferences: &externalReferences{
			{URL: "https://acme.example/docs", Type: "documentation"},
		},
		Properties: &properties{{Name: "tier", Value: "0"}},
		Services:   &services{},
	}
}

// correspondingService is the canonical value exampleService projects from.
func correspondingService() model.Service {
	endpoints := []model.URI{"https://svc/auth"}
	data := []model.DataClassification{{
		Flow:           model.DataFlowOutbound,
		Classification: "PII",
	}}
	urls := []model.URI{"https://acme.example"}
	nested := model.Services{}
	return model.Service{
		BomRef: strptr("svc-1"),
		Provider: &model.OrganizationalEntity{
			Name:     normptr("Acme"),
			URLs:     &urls,
			Contacts: &model.Contacts{{Name: normptr("Ops"), Email: normptr("ops@acme.example")}},
		},
		Group:          normptr("group"),
		Name:           "auth-service",
		Version:        normptr("2.0.1"),
		Description:    normptr("authentication front door"),
		Endpoints:      &endpoints,
		Authenticated:  boolptr(true),
		XTrustBoundary: boolptr(true),
		Data:           &data,
		Licenses:       &model.Licenses{{Expression: normptr("Apache-2.0")}},
		ExternalReferences: &model.ExternalReferences{
			{URL: "https://acme.example/docs", Type: model.ERTypeDocumentation},
		},
		Properties: &model.Properties{{Name: "tier", Value: "0"}},
		Services:   &nested,
	}
}

func writeServiceString(t *testing.T, s service) string {
	t.Helper()
	var buf bytes.Buffer
	w := xmlio.NewWriter(&buf)
	require.NoError(t, s.writeXML(w))
	require.NoError(t, w.Flush())
	return buf.String()
}

func decodeServiceString(t *testing.T, text string) service {
	t.Helper()
	r := xmlio.NewReader(strings.NewReader(text))
	root, err := r.Root(serviceTag)
	require.NoError(t, err)
	s, err := decodeService(r, root)
	require.NoError(t, err)
	return s
}

func TestServiceConversionRoundTrip(t *testing.T) {
	got := serviceFromModel(exampleService().toModel())
	if diff := cmp.Diff(exampleService(), got); diff != "" {
		t.Errorf("projection round trip mismatch (-want +got):\n%s", diff)
	}

	gotModel := serviceFromModel(correspondingService()).toModel()
	if diff := cmp.Diff(correspondingService(), gotModel); diff != "" {
		t.Errorf("canonical round trip mismatch (-want +got):\n%s", diff)
	}
}

// TestServiceXMLScenario pins the exact serialized form of a minimal
// service: name, one endpoint, authenticated flag and one data
// classification, in that relative order, with flow as an attribute.
func TestServiceXMLScenario(t *testing.T) {
	auth := model.Service{
		Name:          "auth-service",
		Endpoints:     &[]model.URI{"https://svc/auth"},
		Authenticated: boolptr(true),
		Data: &[]model.DataClassification{{
			Flow:           model.DataFlowOutbound,
			Classification: "PII",
		}},
	}

	got := writeServiceString(t, serviceFromModel(auth))
	want := `<service>` +
		`<name>auth-service</name>` +
		`<endpoints><endpoint>https://svc/auth</endpoint></endpoints>` +
		`<authenticated>true</authenticated>` +
		`<data><classification flow="outbound">PII</classification></data>` +
		`</service>`
	assert.Equal(t, want, got)

	// Parsing the output must reconstruct an equal canonical value.
	back := decodeServiceString(t, got).toModel()
	if diff := cmp.Diff(auth, back); diff != "" {
		t.Errorf("reparsed canonical value mismatch (-want +got):\n%s", diff)
	}
}

func TestServiceXMLRoundTripFull(t *testing.T) {
	s := exampleService()
	back := decodeServiceString(t, writeServiceString(t, s))
	if diff := cmp.Diff(s, back); diff != "" {
		t.Errorf("XML round trip mismatch (-want +got):\n%s", diff)
	}
}

// TestUnknownFlowPreserved: a flow direction outside the published set
// must survive projection, serialization and reparsing byte for byte.
func TestUnknownFlowPreserved(t *testing.T) {
	s := model.Service{
		Name: "svc",
		Data: &[]model.DataClassification{{
			Flow:           model.DataFlowTypeFromString("sidewaysFlow"),
			Classification: "telemetry",
		}},
	}

	out := writeServiceString(t, serviceFromModel(s))
	assert.Contains(t, out, `<classification flow="sidewaysFlow">telemetry</classification>`)

	back := decodeServiceString(t, out).toModel()
	require.NotNil(t, back.Data)
	flow := (*back.Data)[0].Flow
	assert.Equal(t, "sidewaysFlow", flow.String())
	assert.False(t, flow.Known())
}

// TestAbsentFieldProducesNoBytes: a nil optional field must leave zero
// trace in the output, not an empty element.
func TestAbsentFieldProducesNoBytes(t *testing.T) {
	s := service{Name: "bare"}
	out := writeServiceString(t, s)

	assert.Equal(t, `<service><name>bare</name></service>`, out)
	assert.NotContains(t, out, "endpoints")
	assert.NotContains(t, out, "version")
}

// TestEmptyCollectionKeepsWrapper: present-but-empty is observable and
// distinct from absent — the wrapper tags must still be emitted.
func TestEmptyCollectionKeepsWrapper(t *testing.T) {
	s := service{Name: "svc", Endpoints: &[]string{}, Services: &services{}}
	out := writeServiceString(t, s)

	assert.Contains(t, out, `<endpoints></endpoints>`)
	assert.Contains(t, out, `<services></services>`)

	back := decodeServiceString(t, out)
	require.NotNil(t, back.Endpoints)
	assert.Len(t, *back.Endpoints, 0)
	require.NotNil(t, back.Services)
	assert.Len(t, *back.Services, 0)
}

// TestBomRefIsAttribute: the identity token rides on the start tag, never
// as a child element.
func TestBomRefIsAttribute(t *testing.T) {
	s := service{BomRef: strptr("svc-9"), Name: "svc"}
	out := writeServiceString(t, s)

	assert.True(t, strings.HasPrefix(out, `<service bom-ref="svc-9">`), "output: %s", out)
	assert.NotContains(t, out, "<bom-ref>")

	back := decodeServiceString(t, out)
	require.NotNil(t, back.BomRef)
	assert.Equal(t, "svc-9", *back.BomRef)
}

// TestEndpointOrderStable: [A, B, C] in, [A, B, C] out.
func TestEndpointOrderStable(t *testing.T) {
	s := service{Name: "svc", Endpoints: &[]string{"https://a", "https://b", "https://c"}}
	back := decodeServiceString(t, writeServiceString(t, s))

	require.NotNil(t, back.Endpoints)
	assert.Equal(t, []string{"https://a", "https://b", "https://c"}, *back.Endpoints)
}

// TestNestedServicesRecursion: containment recurses to arbitrary depth.
func TestNestedServicesRecursion(t *testing.T) {
	leaf := service{Name: "leaf"}
	mid := service{Name: "mid", Services: &services{leaf}}
	top := service{Name: "top", Services: &services{mid}}

	back := decodeServiceString(t, writeServiceString(t, top))
	require.NotNil(t, back.Services)
	require.Len(t, *back.Services, 1)
	gotMid := (*back.Services)[0]
	assert.Equal(t, "mid", gotMid.Name)
	require.NotNil(t, gotMid.Services)
	require.Len(t, *gotMid.Services, 1)
	assert.Equal(t, "leaf", (*gotMid.Services)[0].Name)
}

// TestUnknownElementsIgnored: well-formed elements from a newer schema
// revision are skipped, not fatal.
func TestUnknownElementsIgnored(t *testing.T) {
	text := `<service bom-ref="svc-1">` +
		`<futureField attr="x"><deeply><nested>stuff</nested></deeply></futureField>` +
		`<name>svc</name>` +
		`<releaseNotes>ignored</releaseNotes>` +
		`</service>`

	s := decodeServiceString(t, text)
	assert.Equal(t, "svc", s.Name)
	require.NotNil(t, s.BomRef)
	assert.Equal(t, "svc-1", *s.BomRef)
}

func TestServiceJSONOmitsAbsentKeys(t *testing.T) {
	s := exampleService()
	s.Endpoints = nil
	s.Description = nil

	var buf bytes.Buffer
	b := Bom{BOMFormat: "CycloneDX", SpecVersion: SpecVersion, Version: 1, Services: &services{s}}
	require.NoError(t, b.WriteJSON(&buf))

	out := buf.String()
	assert.NotContains(t, out, `"endpoints"`)
	assert.NotContains(t, out, `"description"`)
	assert.Contains(t, out, `"x-trust-boundary": true`)
	assert.Contains(t, out, `"bom-ref": "svc-1"`)
}
