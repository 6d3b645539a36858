// Package operations ties the audit pipeline together: collect the
// closure, resolve licenses, build the BOM, evaluate policy, write
// the outputs, journal the run.
package operations

import (
	"github.com/auditkit/ossaudit/bom"
	"github.com/auditkit/ossaudit/buildgraph"
	"github.com/auditkit/ossaudit/common"
	"github.com/auditkit/ossaudit/journal"
	"github.com/auditkit/ossaudit/licenses"
	"github.com/auditkit/ossaudit/pathlib"
	"github.com/auditkit/ossaudit/policy"
	"github.com/auditkit/ossaudit/pretty"
	"github.com/auditkit/ossaudit/xviper"
)

const resolverCommandKey = `audit.resolver.command`

type AuditOptions struct {
	GraphFile       string
	Target          string
	ApprovedFile    string
	DeniedFile      string
	Suppress        []string
	Strict          bool
	BomFile         string
	IssuesFile      string
	ResolverCommand string
	// Resolver overrides the lookup mechanism; tests and dry runs
	// inject canned answers here.
	Resolver licenses.Resolver
}

type AuditOutcome struct {
	Manifest    *bom.Manifest
	Issues      []bom.Issue
	Verdict     bool
	Internal    int
	Environment int
	Warnings    []string
	Failures    int
	Fingerprint string
}

func (it *AuditOptions) resolver() licenses.Resolver {
	if it.Resolver != nil {
		return it.Resolver
	}
	command := it.ResolverCommand
	if len(command) == 0 {
		command = xviper.GetString(resolverCommandKey)
	}
	if len(command) > 0 {
		return licenses.NewCommandResolver(command)
	}
	return licenses.NewPomResolver()
}

// RunAudit is a pure function of (graph snapshot, policy lists) up to
// logging: it keeps no state between invocations, and the emitted BOM
// and issues documents are byte for byte reproducible. Outputs are
// written whenever the graph and the lists are structurally valid,
// gaps and all; only structural problems return an error.
func RunAudit(options *AuditOptions) (*AuditOutcome, error) {
	defer common.Stopwatch("Audit of %q lasted", options.Target).Report()

	snapshot, err := buildgraph.LoadSnapshot(options.GraphFile)
	if err != nil {
		return nil, err
	}
	// Policy lists load before any resolution work, so a broken
	// document fails the run before network time is spent.
	approved, err := policy.LoadList("approved", options.ApprovedFile)
	if err != nil {
		return nil, err
	}
	denied, err := policy.LoadList("denied", options.DeniedFile)
	if err != nil {
		return nil, err
	}
	collection, err := buildgraph.Collect(snapshot, options.Target)
	if err != nil {
		return nil, err
	}
	for _, warning := range collection.Warnings {
		pretty.Warning("%s", warning)
	}

	urls := collection.Closure.JarURLs()
	progress := pretty.ResolutionProgress("Resolving licenses", len(urls))
	progress.Start()
	resolved, failures := licenses.ResolveAll(options.resolver(), urls, func(jarURL string) {
		progress.Step(jarURL)
	})
	progress.Stop()

	manifest, internal := bom.BuildManifest(collection.Closure, resolved)
	if internal > 0 {
		pretty.Note("%d internal packages stay out of the BOM.", internal)
	}
	issues, verdict := policy.Evaluate(manifest, approved, denied, options.Suppress, options.Strict)

	outcome := &AuditOutcome{
		Manifest:    manifest,
		Issues:      issues,
		Verdict:     verdict,
		Internal:    internal,
		Environment: collection.Environment.Size(),
		Warnings:    collection.Warnings,
		Failures:    failures,
		Fingerprint: manifest.Fingerprint(),
	}
	if err := writeOutputs(options, outcome); err != nil {
		return nil, err
	}

	deniedKeys := make([]string, 0, len(issues))
	for _, issue := range issues {
		if issue.Reason == bom.Denied {
			deniedKeys = append(deniedKeys, issue.Entry.Key())
		}
	}
	pretty.DeniedAlert(deniedKeys, options.BomFile, options.DeniedFile)

	common.Uncritical("journal", journal.Post("audit", options.Target,
		"identity=%s verdict=%v issues=%d fingerprint=%s",
		xviper.RunIdentity(), verdict, len(issues), outcome.Fingerprint))
	return outcome, nil
}

func writeOutputs(options *AuditOptions, outcome *AuditOutcome) error {
	if len(options.BomFile) > 0 {
		blob, err := outcome.Manifest.AsYaml()
		if err != nil {
			return err
		}
		if err := pathlib.WriteFile(options.BomFile, blob, 0o644); err != nil {
			return err
		}
		common.Log("Wrote BOM with %d entries to %q.", outcome.Manifest.Size(), options.BomFile)
	}
	if len(options.IssuesFile) > 0 {
		blob, err := bom.IssuesAsYaml(outcome.Issues)
		if err != nil {
			return err
		}
		if err := pathlib.WriteFile(options.IssuesFile, blob, 0o644); err != nil {
			return err
		}
		common.Log("Wrote BOM-issues with %d entries to %q.", len(outcome.Issues), options.IssuesFile)
	}
	return nil
}
