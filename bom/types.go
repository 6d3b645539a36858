// Package bom holds the data model of one audit: package records
// collected from the build graph, the deduplicated closure, and the
// ordered manifest that becomes the Bill of Materials.
package bom

import (
	"fmt"

	"github.com/auditkit/ossaudit/maven"
)

// PackageRecord is one audited dependency. Records are created during
// graph collection, get their license during resolution, and are not
// mutated after the manifest is built.
type PackageRecord struct {
	Coordinate maven.Coordinate
	JarURL     string
	SourceURL  string
	License    string
	Modified   bool
}

// IsInternal marks packages built in-house. They carry no artifact
// URL, are excluded from the manifest, and only show up in debug
// diagnostics.
func (it *PackageRecord) IsInternal() bool {
	return len(it.JarURL) == 0
}

// identity is the full dedup key. Identical coordinates resolved from
// different repositories stay distinct on purpose.
func (it *PackageRecord) identity() string {
	return fmt.Sprintf("%s\x00%s\x00%s", it.Coordinate, it.JarURL, it.SourceURL)
}

type Reason string

const (
	Denied     Reason = `Denied`
	Unapproved Reason = `Unapproved`
)
