package model

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequiredString(t *testing.T) {
	ns, err := NewRequiredString("name", "  auth-service  ")
	require.NoError(t, err)
	assert.Equal(t, "auth-service", ns.String())
}

func TestNewRequiredStringEmpty(t *testing.T) {
	_, err := NewRequiredString("name", "   ")

	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "want *ValidationError, got %v", err)
	assert.Equal(t, EmptyRequiredField, verr.Kind)
	assert.Equal(t, "name", verr.Field)
}

func TestNewNormalizedStringRejectsControlCharacters(t *testing.T) {
	for _, bad := range []string{"a\x00b", "a\x1fb", "line\nbreak", "tab\there"} {
		_, err := NewNormalizedString("description", bad)

		var verr *ValidationError
		require.True(t, errors.As(err, &verr), "input %q: want *ValidationError, got %v", bad, err)
		assert.Equal(t, InvalidCharacter, verr.Kind, "input %q", bad)
	}
}

func TestNewNormalizedStringAllowsEmpty(t *testing.T) {
	ns, err := NewNormalizedString("description", "")
	require.NoError(t, err)
	assert.Equal(t, "", ns.String())
}

func TestNewURI(t *testing.T) {
	u, err := NewURI("endpoint", "https://svc/auth")
	require.NoError(t, err)
	assert.Equal(t, "https://svc/auth", u.String())
}

func TestNewURIEmpty(t *testing.T) {
	_, err := NewURI("endpoint", "")

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, EmptyRequiredField, verr.Kind)
}

func TestNewURIInvalid(t *testing.T) {
	_, err := NewURI("endpoint", "http://[::1")

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, InvalidURI, verr.Kind)
}

// TestDataFlowTypeOpenEnum verifies the open-enum contract: known values
// map to their named variants, anything else is preserved verbatim and
// stays distinct from every known variant.
func TestDataFlowTypeOpenEnum(t *testing.T) {
	known := map[string]DataFlowType{
		"inbound":        DataFlowInbound,
		"outbound":       DataFlowOutbound,
		"bi-directional": DataFlowBiDirectional,
		"unknown":        DataFlowUnknown,
	}
	for text, want := range known {
		got := DataFlowTypeFromString(text)
		assert.Equal(t, want, got)
		assert.True(t, got.Known())
		assert.Equal(t, text, got.String())
	}

	odd := DataFlowTypeFromString("sidewaysFlow")
	assert.False(t, odd.Known())
	assert.Equal(t, "sidewaysFlow", odd.String())
}

// TestDataFlowTypeMatchingIsExact verifies that normalization never kicks
// in: case differences and surrounding whitespace make a value
// unrecognized, not known.
func TestDataFlowTypeMatchingIsExact(t *testing.T) {
	for _, text := range []string{"Inbound", "INBOUND", " inbound", "inbound "} {
		got := DataFlowTypeFromString(text)
		assert.False(t, got.Known(), "input %q must not match a known variant", text)
		assert.Equal(t, text, got.String(), "input %q must round-trip verbatim", text)
		assert.NotEqual(t, DataFlowInbound, got)
	}
}

func TestComponentTypeOpenEnum(t *testing.T) {
	assert.Equal(t, ComponentTypeLibrary, ComponentTypeFromString("library"))
	assert.True(t, ComponentTypeFromString("application").Known())

	odd := ComponentTypeFromString("quantum-accelerator")
	assert.False(t, odd.Known())
	assert.Equal(t, "quantum-accelerator", odd.String())
}

func TestScopeOpenEnum(t *testing.T) {
	assert.Equal(t, ScopeRequired, ScopeFromString("required"))

	odd := ScopeFromString("Required")
	assert.False(t, odd.Known())
	assert.Equal(t, "Required", odd.String())
}

func TestHashAlgorithmOpenEnum(t *testing.T) {
	assert.Equal(t, HashAlgoSHA256, HashAlgorithmFromString("SHA-256"))

	odd := HashAlgorithmFromString("sha-256")
	assert.False(t, odd.Known())
	assert.Equal(t, "sha-256", odd.String())
}

func TestExternalReferenceTypeOpenEnum(t *testing.T) {
	assert.Equal(t, ERTypeVCS, ExternalReferenceTypeFromString("vcs"))

	odd := ExternalReferenceTypeFromString("metaverse")
	assert.False(t, odd.Known())
	assert.Equal(t, "metaverse", odd.String())
}

func TestNewBom(t *testing.T) {
	b := NewBom()
	require.NotNil(t, b.SerialNumber)
	assert.True(t, strings.HasPrefix(*b.SerialNumber, "urn:uuid:"),
		"serial = %q, want urn:uuid: prefix", *b.SerialNumber)
	assert.Equal(t, 1, b.Version)
}

func TestNewSerialNumberIsUnique(t *testing.T) {
	assert.NotEqual(t, NewSerialNumber(), NewSerialNumber())
}
