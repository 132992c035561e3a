// Package v13 is the CycloneDX 1.3 projection: shadow types mirroring that
// version's exact field set and key names, conversions to and from the
// canonical model, and the two codecs (imperative XML, tag-driven JSON).
// It never imports a sibling version package.
package v13

import "github.com/StinkyLord/sbom-exchange/internal/model"

func fromNormalized(ns *model.NormalizedString) *string {
	if ns == nil {
		return nil
	}
	s := ns.String()
	return &s
}

func toNormalized(s *string) *model.NormalizedString {
	if s == nil {
		return nil
	}
	ns := model.NormalizedString(*s)
	return &ns
}
