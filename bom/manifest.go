package bom

import (
	"github.com/auditkit/ossaudit/common"
)

// Entry is one manifest row: the collected record joined with its
// resolved license and, once policy lists are consulted, the catalog
// bookkeeping fields of the original audit format.
type Entry struct {
	Record           *PackageRecord
	CopyrightNotices string
	InteractionTypes []string
	Resolution       string
}

func (it *Entry) Key() string {
	return it.Record.Coordinate.Key()
}

type Manifest struct {
	Entries []*Entry
}

// Issue is a manifest entry flagged by the policy evaluator.
type Issue struct {
	Entry  *Entry
	Reason Reason
}

// BuildManifest joins closure records with resolved licenses by
// artifact URL. Internal packages are filtered here and only counted;
// everything else appears exactly once, with an empty license when
// resolution failed rather than being dropped.
func BuildManifest(closure *Closure, licenses map[string]string) (*Manifest, int) {
	internal := 0
	entries := make([]*Entry, 0, closure.Size())
	for _, record := range closure.Records() {
		if record.IsInternal() {
			internal += 1
			common.Debug("Skipping internal package %q (no artifact URL).", record.Coordinate)
			continue
		}
		record.License = licenses[record.JarURL]
		entries = append(entries, &Entry{Record: record, InteractionTypes: []string{}})
	}
	return &Manifest{Entries: entries}, internal
}

func (it *Manifest) Size() int {
	return len(it.Entries)
}
