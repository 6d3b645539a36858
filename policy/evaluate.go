package policy

import (
	"github.com/auditkit/ossaudit/bom"
	"github.com/auditkit/ossaudit/common"
	"github.com/auditkit/ossaudit/maven"
)

func suppressed(suppress []string, coordinate maven.Coordinate) bool {
	for _, pattern := range suppress {
		if Covers(pattern, coordinate) {
			return true
		}
	}
	return false
}

func decorate(target *bom.Entry, info *Info) {
	if info == nil {
		return
	}
	target.CopyrightNotices = info.CopyrightNotices
	target.Resolution = info.Resolution
	if info.InteractionTypes != nil {
		target.InteractionTypes = info.InteractionTypes
	}
}

// Evaluate classifies every manifest entry. Denied and not suppressed
// is an issue; denied but suppressed is explicitly waived for this
// run; neither denied nor approved is Unapproved, because an unvetted
// license posture must surface for review. A coordinate on both lists
// is a catalog inconsistency: deny wins and a warning names it.
//
// The verdict is false only when strict is set and at least one
// Denied issue exists. Unapproved issues never fail a build.
func Evaluate(manifest *bom.Manifest, approved, denied *List, suppress []string, strict bool) ([]bom.Issue, bool) {
	issues := make([]bom.Issue, 0, manifest.Size())
	deniedCount := 0
	for _, target := range manifest.Entries {
		coordinate := target.Record.Coordinate
		inDenied, deniedInfo := denied.Matches(coordinate)
		inApproved, approvedInfo := approved.Matches(coordinate)
		decorate(target, approvedInfo)
		if inDenied {
			decorate(target, deniedInfo)
		}
		if inDenied && inApproved {
			common.Log("Warning: %q is in both %s and %s lists; denial wins.",
				coordinate, approved.Name(), denied.Name())
		}
		switch {
		case inDenied && suppressed(suppress, coordinate):
			common.Debug("Denied package %q is suppressed for this run.", coordinate)
		case inDenied:
			issues = append(issues, bom.Issue{Entry: target, Reason: bom.Denied})
			deniedCount += 1
		case !inApproved:
			issues = append(issues, bom.Issue{Entry: target, Reason: bom.Unapproved})
		}
	}
	verdict := !(strict && deniedCount > 0)
	return issues, verdict
}
