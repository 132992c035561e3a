package model

// Components is an ordered collection of Component records.
type Components []Component

// Component describes one unit of software recorded in the BOM. Components
// own their nested components outright (tree, not graph); the dependency
// graph between components is tracked separately via Dependencies.
type Component struct {
	Type               ComponentType // required classification
	BomRef             *string       // document-unique cross-reference token
	Group              *NormalizedString
	Name               NormalizedString // required
	Version            *NormalizedString
	Description        *NormalizedString
	Scope              *Scope
	Hashes             *Hashes
	Licenses           *Licenses
	PackageURL         *string // purl identifying the component in a package ecosystem
	ExternalReferences *ExternalReferences
	Properties         *Properties
	Components         *Components // nested components, unbounded depth
}

// ComponentType classifies what kind of software a component is. Open set:
// unrecognized values are preserved verbatim.
type ComponentType struct {
	value string
	known bool
}

var (
	ComponentTypeApplication     = ComponentType{"application", true}
	ComponentTypeFramework       = ComponentType{"framework", true}
	ComponentTypeLibrary         = ComponentType{"library", true}
	ComponentTypeContainer       = ComponentType{"container", true}
	ComponentTypeOperatingSystem = ComponentType{"operating-system", true}
	ComponentTypeDevice          = ComponentType{"device", true}
	ComponentTypeFirmware        = ComponentType{"firmware", true}
	ComponentTypeFile            = ComponentType{"file", true}
)

// ComponentTypeFromString maps the exact published representation to its
// known value; matching is case-sensitive with no trimming.
func ComponentTypeFromString(s string) ComponentType {
	switch s {
	case "application":
		return ComponentTypeApplication
	case "framework":
		return ComponentTypeFramework
	case "library":
		return ComponentTypeLibrary
	case "container":
		return ComponentTypeContainer
	case "operating-system":
		return ComponentTypeOperatingSystem
	case "device":
		return ComponentTypeDevice
	case "firmware":
		return ComponentTypeFirmware
	case "file":
		return ComponentTypeFile
	}
	return ComponentType{value: s}
}

func (t ComponentType) String() string { return t.value }

// Known reports whether t is one of the published component types.
func (t ComponentType) Known() bool { return t.known }

// Equal makes ComponentType comparable by go-cmp without exposing fields.
func (t ComponentType) Equal(o ComponentType) bool { return t == o }

// Scope records whether a component is required, optional or excluded in
// the context of the documented software. Open set.
type Scope struct {
	value string
	known bool
}

var (
	ScopeRequired = Scope{"required", true}
	ScopeOptional = Scope{"optional", true}
	ScopeExcluded = Scope{"excluded", true}
)

// ScopeFromString maps the exact published representation to its known
// value; matching is case-sensitive with no trimming.
func ScopeFromString(s string) Scope {
	switch s {
	case "required":
		return ScopeRequired
	case "optional":
		return ScopeOptional
	case "excluded":
		return ScopeExcluded
	}
	return Scope{value: s}
}

func (s Scope) String() string { return s.value }

// Known reports whether s is one of the published scopes.
func (s Scope) Known() bool { return s.known }

// Equal makes Scope comparable by go-cmp without exposing fields.
func (s Scope) Equal(o Scope) bool { return s == o }
