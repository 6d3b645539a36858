package operations_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/auditkit/ossaudit/bom"
	"github.com/auditkit/ossaudit/common"
	"github.com/auditkit/ossaudit/hamlet"
	"github.com/auditkit/ossaudit/licenses"
	"github.com/auditkit/ossaudit/operations"
	"github.com/auditkit/ossaudit/xviper"
)

const exampleGraph = `
nodes:
  "//service:backend":
    edges:
      deps: ["//third_party:alpha", "//third_party:bravo"]
      runtime_deps: ["//third_party:charlie"]
      deploy_env: ["//env:servlet"]
  "//third_party:alpha":
    tags:
      - maven_coordinates=legal.trouble:alpha:1.0
      - maven_url=https://repo/alpha-1.0.jar
  "//third_party:bravo":
    tags:
      - maven_coordinates=fine.vendor:bravo:2.0
      - maven_url=https://repo/bravo-2.0.jar
  "//third_party:charlie":
    tags:
      - maven_coordinates=gray.area:charlie:3.0
      - maven_url=https://repo/charlie-3.0.jar
  "//env:servlet":
    tags:
      - maven_coordinates=org.env:servlet:4.0
      - maven_url=https://repo/servlet-4.0.jar
`

func testHome(t *testing.T) {
	t.Helper()
	common.ForceHome(t.TempDir())
	xviper.Reset()
	t.Cleanup(func() {
		common.ForceHome("")
		xviper.Reset()
	})
}

func write(t *testing.T, directory, name, content string) string {
	t.Helper()
	filename := filepath.Join(directory, name)
	if err := os.WriteFile(filename, []byte(content), 0o640); err != nil {
		t.Fatal(err)
	}
	return filename
}

func exampleOptions(t *testing.T, strict bool) *operations.AuditOptions {
	t.Helper()
	directory := t.TempDir()
	return &operations.AuditOptions{
		GraphFile:    write(t, directory, "graph.yaml", exampleGraph),
		Target:       "//service:backend",
		ApprovedFile: write(t, directory, "approved.yaml", "- fine.vendor:bravo:2.0\n"),
		DeniedFile:   write(t, directory, "denied.yaml", "- legal.trouble:alpha:1.0\n"),
		Strict:       strict,
		BomFile:      filepath.Join(directory, "out", "bom.yaml"),
		IssuesFile:   filepath.Join(directory, "out", "bom-issues.yaml"),
		Resolver: licenses.NewCanned(map[string]string{
			"https://repo/alpha-1.0.jar":   "GPL-3.0",
			"https://repo/charlie-3.0.jar": "MIT",
		}),
	}
}

func TestFullAuditRun(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	testHome(t)

	options := exampleOptions(t, true)
	outcome, err := operations.RunAudit(options)
	must_be.Nil(err)
	wont_be.Nil(outcome)

	// Environment packages never reach the manifest.
	must_be.Equal(3, outcome.Manifest.Size())
	must_be.Equal(1, outcome.Environment)

	// bravo has no canned license: degraded to empty, not dropped.
	must_be.Equal(1, outcome.Failures)
	must_be.Equal(2, len(outcome.Issues))
	must_be.Equal(bom.Unapproved, outcome.Issues[0].Reason)
	must_be.Equal("gray.area.charlie:3.0", outcome.Issues[0].Entry.Key())
	must_be.Equal(bom.Denied, outcome.Issues[1].Reason)
	must_be.Equal("legal.trouble.alpha:1.0", outcome.Issues[1].Entry.Key())
	wont_be.True(outcome.Verdict)

	blob, err := os.ReadFile(options.BomFile)
	must_be.Nil(err)
	must_be.Contains("fine.vendor.bravo:2.0:", string(blob))
	must_be.Contains("license: \"\"", string(blob))

	issues, err := os.ReadFile(options.IssuesFile)
	must_be.Nil(err)
	must_be.Contains("reason: Denied", string(issues))
	wont_be.Contains("fine.vendor.bravo:2.0:", string(issues))
}

func TestRepeatedRunsAreByteIdentical(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	testHome(t)

	first, err := operations.RunAudit(exampleOptions(t, false))
	must_be.Nil(err)
	second, err := operations.RunAudit(exampleOptions(t, false))
	must_be.Nil(err)
	must_be.Equal(first.Fingerprint, second.Fingerprint)

	one, err := first.Manifest.AsYaml()
	must_be.Nil(err)
	two, err := second.Manifest.AsYaml()
	must_be.Nil(err)
	must_be.Equal(string(one), string(two))
}

func TestRelaxedModeAlwaysPasses(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	testHome(t)

	outcome, err := operations.RunAudit(exampleOptions(t, false))
	must_be.Nil(err)
	must_be.True(outcome.Verdict)
	must_be.Equal(2, len(outcome.Issues))
}

func TestSuppressionTurnsVerdictAround(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	testHome(t)

	options := exampleOptions(t, true)
	options.Suppress = []string{"legal.trouble:alpha:1.0"}
	outcome, err := operations.RunAudit(options)
	must_be.Nil(err)
	must_be.True(outcome.Verdict)
	must_be.Equal(1, len(outcome.Issues))
	must_be.Equal(bom.Unapproved, outcome.Issues[0].Reason)
}

func TestBrokenPolicyListAbortsBeforeOutputs(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	testHome(t)

	options := exampleOptions(t, false)
	options.DeniedFile = filepath.Join(t.TempDir(), "missing.yaml")
	_, err := operations.RunAudit(options)
	wont_be.Nil(err)
	must_be.True(!fileExists(options.BomFile))
}

func fileExists(filename string) bool {
	_, err := os.Stat(filename)
	return err == nil
}
