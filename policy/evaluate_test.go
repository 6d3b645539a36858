package policy_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/auditkit/ossaudit/bom"
	"github.com/auditkit/ossaudit/hamlet"
	"github.com/auditkit/ossaudit/maven"
	"github.com/auditkit/ossaudit/policy"
)

func record(coordinate, jarURL string) *bom.PackageRecord {
	parsed, err := maven.ParseCoordinate(coordinate)
	if err != nil {
		panic(err)
	}
	return &bom.PackageRecord{Coordinate: parsed, JarURL: jarURL}
}

func exampleManifest() *bom.Manifest {
	closure := bom.NewClosure()
	closure.Add(record("legal.trouble:alpha:1.0", "https://repo/alpha-1.0.jar"))
	closure.Add(record("fine.vendor:bravo:2.0", "https://repo/bravo-2.0.jar"))
	closure.Add(record("gray.area:charlie:3.0", "https://repo/charlie-3.0.jar"))
	manifest, _ := bom.BuildManifest(closure, map[string]string{
		"https://repo/alpha-1.0.jar":   "GPL-3.0",
		"https://repo/bravo-2.0.jar":   "Apache-2.0",
		"https://repo/charlie-3.0.jar": "MIT",
	})
	return manifest
}

func listFrom(t *testing.T, name, content string) *policy.List {
	t.Helper()
	filename := filepath.Join(t.TempDir(), name+".yaml")
	if err := os.WriteFile(filename, []byte(content), 0o640); err != nil {
		t.Fatal(err)
	}
	loaded, err := policy.LoadList(name, filename)
	if err != nil {
		t.Fatal(err)
	}
	return loaded
}

func TestDeniedApprovedAndUnlistedScenario(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	manifest := exampleManifest()
	must_be.Equal(3, manifest.Size())

	approved := listFrom(t, "approved", "fine.vendor.bravo:2.0:\n  resolution: vetted for release\n")
	denied := listFrom(t, "denied", "legal.trouble.alpha:1.0:\n  resolution: incompatible license\n")

	issues, verdict := policy.Evaluate(manifest, approved, denied, nil, true)
	must_be.Equal(2, len(issues))
	must_be.Equal(bom.Unapproved, issues[0].Reason)
	must_be.Equal("gray.area.charlie:3.0", issues[0].Entry.Key())
	must_be.Equal(bom.Denied, issues[1].Reason)
	must_be.Equal("legal.trouble.alpha:1.0", issues[1].Entry.Key())
	wont_be.True(verdict)

	_, relaxed := policy.Evaluate(manifest, approved, denied, nil, false)
	must_be.True(relaxed)
}

func TestSuppressionWaivesDenial(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	manifest := exampleManifest()
	approved := listFrom(t, "approved", "- fine.vendor:bravo:2.0\n- gray.area:charlie:3.0\n")
	denied := listFrom(t, "denied", "- legal.trouble:alpha:1.0\n")

	issues, verdict := policy.Evaluate(manifest, approved, denied,
		[]string{"legal.trouble:alpha:1.0"}, true)
	must_be.Equal(0, len(issues))
	must_be.True(verdict)
}

func TestUnapprovedAloneNeverFailsEvenWhenStrict(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	manifest := exampleManifest()
	issues, verdict := policy.Evaluate(manifest, policy.Empty("approved"), policy.Empty("denied"), nil, true)
	// Absent lists fail open to visibility: everything surfaces as
	// Unapproved, nothing fails the build.
	must_be.Equal(3, len(issues))
	for _, issue := range issues {
		must_be.Equal(bom.Unapproved, issue.Reason)
	}
	must_be.True(verdict)
}

func TestDenyWinsOverApproveOnListInconsistency(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	manifest := exampleManifest()
	approved := listFrom(t, "approved", "- legal.trouble:alpha:1.0\n- fine.vendor:bravo:2.0\n- gray.area:charlie:3.0\n")
	denied := listFrom(t, "denied", "- legal.trouble:alpha:1.0\n")

	issues, verdict := policy.Evaluate(manifest, approved, denied, nil, true)
	must_be.Equal(1, len(issues))
	must_be.Equal(bom.Denied, issues[0].Reason)
	wont_be.True(verdict)
}

func TestPrefixPatternsCoverAllVersions(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	coordinate, err := maven.ParseCoordinate("legal.trouble:alpha:1.0")
	must_be.Nil(err)
	must_be.True(policy.Covers("legal.trouble:alpha:1.0", coordinate))
	must_be.True(policy.Covers("legal.trouble.alpha:1.0", coordinate))
	must_be.True(policy.Covers("legal.trouble:alpha", coordinate))
	must_be.True(policy.Covers("legal.trouble:alpha:", coordinate))
	must_be.True(policy.Covers("legal.trouble", coordinate))
	wont_be.True(policy.Covers("legal.troub", coordinate))
	wont_be.True(policy.Covers("legal.trouble:alpha:2.0", coordinate))
}

func TestApprovedBookkeepingReachesEntries(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	manifest := exampleManifest()
	approved := listFrom(t, "approved", `fine.vendor.bravo:2.0:
  copyright_notices: Copyright 2019 Fine Vendor Oy
  interaction_types:
    - distributed
  resolution: approved for bundling
`)
	policy.Evaluate(manifest, approved, policy.Empty("denied"), nil, false)
	for _, entry := range manifest.Entries {
		if entry.Key() == "fine.vendor.bravo:2.0" {
			must_be.Equal("Copyright 2019 Fine Vendor Oy", entry.CopyrightNotices)
			must_be.Equal("approved for bundling", entry.Resolution)
			must_be.Equal([]string{"distributed"}, entry.InteractionTypes)
		}
	}
}
