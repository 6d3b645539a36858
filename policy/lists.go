// Package policy loads the approved and denied package catalogs and
// classifies manifest entries against them.
package policy

import (
	"fmt"
	"strings"

	yaml "gopkg.in/yaml.v2"

	"github.com/auditkit/ossaudit/cloud"
	"github.com/auditkit/ossaudit/common"
	"github.com/auditkit/ossaudit/maven"
	"github.com/auditkit/ossaudit/set"
)

// Info is the catalog bookkeeping attached to a listed package in the
// approved/denied documents. It gets copied onto matching BOM entries.
type Info struct {
	CopyrightNotices string   `yaml:"copyright_notices"`
	InteractionTypes []string `yaml:"interaction_types"`
	Resolution       string   `yaml:"resolution"`
}

type entry struct {
	pattern string
	info    *Info
}

// List is one policy catalog: patterns are either full coordinates or
// coordinate prefixes, in either group:artifact:version or
// group.artifact:version form.
type List struct {
	name    string
	entries []entry
}

func Empty(name string) *List {
	return &List{name: name}
}

// LoadList reads a catalog document. Two shapes are accepted: a
// mapping from coordinate to bookkeeping info, and a plain sequence
// of coordinate strings. An empty resource means an absent list,
// which evaluates as empty; an unreadable or unparsable document is
// fatal, because policy cannot be evaluated safely against garbage.
func LoadList(name, resource string) (*List, error) {
	if len(resource) == 0 {
		common.Debug("No %s list given, treating it as empty.", name)
		return Empty(name), nil
	}
	blob, err := cloud.ReadFile(resource)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s list %q: %w", name, resource, err)
	}
	return parseList(name, resource, blob)
}

func parseList(name, resource string, blob []byte) (*List, error) {
	result := Empty(name)
	structured := make(map[string]*Info)
	mappingErr := yaml.Unmarshal(blob, &structured)
	if mappingErr == nil {
		for _, pattern := range set.Keys(structured) {
			result.entries = append(result.entries, entry{pattern: pattern, info: structured[pattern]})
		}
		return result, nil
	}
	sequence := make([]string, 0)
	sequenceErr := yaml.Unmarshal(blob, &sequence)
	if sequenceErr != nil {
		return nil, fmt.Errorf("cannot parse %s list %q: %v", name, resource, mappingErr)
	}
	for _, pattern := range set.Set(sequence) {
		result.entries = append(result.entries, entry{pattern: pattern})
	}
	return result, nil
}

func (it *List) Name() string {
	return it.name
}

func (it *List) Size() int {
	return len(it.entries)
}

// Covers tells whether one pattern applies to the coordinate: exact
// match or a prefix that ends at a segment boundary, tried against
// both coordinate forms.
func Covers(pattern string, coordinate maven.Coordinate) bool {
	for _, form := range []string{coordinate.String(), coordinate.Key()} {
		if pattern == form {
			return true
		}
		if strings.HasSuffix(pattern, ":") && strings.HasPrefix(form, pattern) {
			return true
		}
		if strings.HasPrefix(form, pattern+":") {
			return true
		}
	}
	return false
}

// Matches finds the first entry covering the coordinate.
func (it *List) Matches(coordinate maven.Coordinate) (bool, *Info) {
	for _, candidate := range it.entries {
		if Covers(candidate.pattern, coordinate) {
			return true, candidate.info
		}
	}
	return false, nil
}
