package model

// Dependencies is the document's dependency graph, one entry per component
// or service that declares dependencies.
type Dependencies []Dependency

// Dependency links one bom-ref to the bom-refs it directly depends on.
// Refs are opaque here; resolving them against the document is the
// caller's concern.
type Dependency struct {
	Ref       string
	DependsOn []string
}
