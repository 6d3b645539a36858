package bom

import (
	"github.com/auditkit/ossaudit/set"
)

// Closure is a set of package records keyed by the full
// (coordinate, jarURL, sourceURL) triple. Insertion order never
// matters; every read path sorts.
type Closure struct {
	records map[string]*PackageRecord
}

func NewClosure() *Closure {
	return &Closure{records: make(map[string]*PackageRecord)}
}

// Add returns false when an identical triple was already present.
func (it *Closure) Add(record *PackageRecord) bool {
	key := record.identity()
	_, exists := it.records[key]
	if exists {
		return false
	}
	it.records[key] = record
	return true
}

func (it *Closure) Size() int {
	return len(it.records)
}

// Records returns the closure in the canonical manifest order:
// BOM key first, artifact URL as tiebreak.
func (it *Closure) Records() []*PackageRecord {
	result := make([]*PackageRecord, 0, len(it.records))
	for _, key := range set.Keys(it.records) {
		result = append(result, it.records[key])
	}
	return set.SortedBy(result, func(left, right *PackageRecord) bool {
		first, second := left.Coordinate.Key(), right.Coordinate.Key()
		if first != second {
			return first < second
		}
		return left.JarURL < right.JarURL
	})
}

// JarURLs lists the unique artifact URLs that need license
// resolution. Internal packages have none and contribute nothing.
func (it *Closure) JarURLs() []string {
	urls := make([]string, 0, len(it.records))
	for _, record := range it.records {
		if !record.IsInternal() {
			urls = append(urls, record.JarURL)
		}
	}
	return set.Set(urls)
}

func (it *Closure) Internals() []*PackageRecord {
	result := make([]*PackageRecord, 0, 8)
	for _, record := range it.Records() {
		if record.IsInternal() {
			result = append(result, record)
		}
	}
	return result
}
