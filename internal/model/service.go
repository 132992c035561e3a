package model

// Services is an ordered collection of Service records. Order is preserved
// through every conversion and both wire formats.
type Services []Service

// Service describes an external or internal service the documented software
// provides or consumes. A service owns its nested services outright, so the
// containment forms a tree.
type Service struct {
	BomRef             *string               // document-unique cross-reference token
	Provider           *OrganizationalEntity // organization providing the service
	Group              *NormalizedString
	Name               NormalizedString // required
	Version            *NormalizedString
	Description        *NormalizedString
	Endpoints          *[]URI // nil = absent; non-nil empty = present with no entries
	Authenticated      *bool
	XTrustBoundary     *bool // true if the service crosses a trust boundary
	Data               *[]DataClassification
	Licenses           *Licenses
	ExternalReferences *ExternalReferences
	Properties         *Properties
	Services           *Services // nested services, unbounded depth
}

// DataClassification records one kind of data flowing through a service and
// the direction it travels.
type DataClassification struct {
	Flow           DataFlowType
	Classification NormalizedString
}

// DataFlowType is the direction of data moving between a service and its
// peers. The set is open: any value outside the published set is preserved
// verbatim so it survives a round trip intact.
type DataFlowType struct {
	value string
	known bool
}

var (
	DataFlowInbound       = DataFlowType{"inbound", true}
	DataFlowOutbound      = DataFlowType{"outbound", true}
	DataFlowBiDirectional = DataFlowType{"bi-directional", true}
	DataFlowUnknown       = DataFlowType{"unknown", true}
)

// DataFlowTypeFromString maps the exact published representation to its
// known value. Matching is case-sensitive with no trimming; anything else
// becomes an unrecognized value carrying s unchanged.
func DataFlowTypeFromString(s string) DataFlowType {
	switch s {
	case "inbound":
		return DataFlowInbound
	case "outbound":
		return DataFlowOutbound
	case "bi-directional":
		return DataFlowBiDirectional
	case "unknown":
		return DataFlowUnknown
	}
	return DataFlowType{value: s}
}

// String returns the external representation; for unrecognized values this
// is the original input byte for byte.
func (t DataFlowType) String() string { return t.value }

// Known reports whether t is one of the published flow directions.
func (t DataFlowType) Known() bool { return t.known }

// Equal makes DataFlowType comparable by go-cmp without exposing fields.
func (t DataFlowType) Equal(o DataFlowType) bool { return t == o }
