package model

// ExternalReferences is an ordered collection of ExternalReference records.
type ExternalReferences []ExternalReference

// ExternalReference points at a resource outside the BOM that relates to
// the component or service carrying it.
type ExternalReference struct {
	Type    ExternalReferenceType
	URL     URI // required
	Comment *NormalizedString
	Hashes  *Hashes
}

// ExternalReferenceType classifies what an external reference points at.
// Open set: unrecognized values are preserved verbatim.
type ExternalReferenceType struct {
	value string
	known bool
}

var (
	ERTypeVCS           = ExternalReferenceType{"vcs", true}
	ERTypeIssueTracker  = ExternalReferenceType{"issue-tracker", true}
	ERTypeWebsite       = ExternalReferenceType{"website", true}
	ERTypeAdvisories    = ExternalReferenceType{"advisories", true}
	ERTypeBOM           = ExternalReferenceType{"bom", true}
	ERTypeMailingList   = ExternalReferenceType{"mailing-list", true}
	ERTypeSocial        = ExternalReferenceType{"social", true}
	ERTypeChat          = ExternalReferenceType{"chat", true}
	ERTypeDocumentation = ExternalReferenceType{"documentation", true}
	ERTypeSupport       = ExternalReferenceType{"support", true}
	ERTypeDistribution  = ExternalReferenceType{"distribution", true}
	ERTypeLicense       = ExternalReferenceType{"license", true}
	ERTypeBuildMeta     = ExternalReferenceType{"build-meta", true}
	ERTypeBuildSystem   = ExternalReferenceType{"build-system", true}
	ERTypeOther         = ExternalReferenceType{"other", true}
)

// ExternalReferenceTypeFromString maps the exact published representation
// to its known value; matching is case-sensitive with no trimming.
func ExternalReferenceTypeFromString(s string) ExternalReferenceType {
	switch s {
	case "vcs":
		return ERTypeVCS
	case "issue-tracker":
		return ERTypeIssueTracker
	case "website":
		return ERTypeWebsite
	case "advisories":
		return ERTypeAdvisories
	case "bom":
		return ERTypeBOM
	case "mailing-list":
		return ERTypeMailingList
	case "social":
		return ERTypeSocial
	case "chat":
		return ERTypeChat
	case "documentation":
		return ERTypeDocumentation
	case "support":
		return ERTypeSupport
	case "distribution":
		return ERTypeDistribution
	case "license":
		return ERTypeLicense
	case "build-meta":
		return ERTypeBuildMeta
	case "build-system":
		return ERTypeBuildSystem
	case "other":
		return ERTypeOther
	}
	return ExternalReferenceType{value: s}
}

func (t ExternalReferenceType) String() string { return t.value }

// Known reports whether t is one of the published reference types.
func (t ExternalReferenceType) Known() bool { return t.known }

// Equal makes ExternalReferenceType comparable by go-cmp without exposing
// fields.
func (t ExternalReferenceType) Equal(o ExternalReferenceType) bool { return t == o }
