package bom

import (
	yaml "gopkg.in/yaml.v2"

	"github.com/auditkit/ossaudit/common"
)

func yesno(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

// fields renders one entry with keys in a fixed order, so that the
// emitted documents are byte for byte reproducible run to run.
func (it *Entry) fields(reason Reason) yaml.MapSlice {
	record := it.Record
	result := yaml.MapSlice{
		{Key: "copyright_notices", Value: it.CopyrightNotices},
		{Key: "interaction_types", Value: it.InteractionTypes},
		{Key: "jar_url", Value: record.JarURL},
		{Key: "license", Value: record.License},
		{Key: "maven-artifactId", Value: record.Coordinate.Artifact},
		{Key: "maven-groupId", Value: record.Coordinate.Group},
		{Key: "modified", Value: yesno(record.Modified)},
		{Key: "name", Value: record.Coordinate.Artifact},
	}
	if len(reason) > 0 {
		result = append(result, yaml.MapItem{Key: "reason", Value: string(reason)})
	}
	return append(result,
		yaml.MapItem{Key: "repository", Value: common.DefaultRepository},
		yaml.MapItem{Key: "resolution", Value: it.Resolution},
		yaml.MapItem{Key: "url", Value: record.SourceURL},
		yaml.MapItem{Key: "version", Value: record.Coordinate.Version},
	)
}

// AsYaml emits the BOM document. An empty manifest still emits the
// empty mapping, never an empty file.
func (it *Manifest) AsYaml() ([]byte, error) {
	document := yaml.MapSlice{}
	for _, entry := range it.Entries {
		document = append(document, yaml.MapItem{Key: entry.Key(), Value: entry.fields("")})
	}
	return yaml.Marshal(document)
}

// IssuesAsYaml emits the BOM-issues document: flagged entries in
// manifest order with their reason attached.
func IssuesAsYaml(issues []Issue) ([]byte, error) {
	document := yaml.MapSlice{}
	for _, issue := range issues {
		document = append(document, yaml.MapItem{Key: issue.Entry.Key(), Value: issue.Entry.fields(issue.Reason)})
	}
	return yaml.Marshal(document)
}
