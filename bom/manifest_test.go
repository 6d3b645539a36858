package bom_test

import (
	"testing"

	"github.com/auditkit/ossaudit/bom"
	"github.com/auditkit/ossaudit/hamlet"
	"github.com/auditkit/ossaudit/maven"
)

func record(coordinate, jarURL, sourceURL string) *bom.PackageRecord {
	parsed, err := maven.ParseCoordinate(coordinate)
	if err != nil {
		panic(err)
	}
	return &bom.PackageRecord{Coordinate: parsed, JarURL: jarURL, SourceURL: sourceURL}
}

func TestClosureDeduplicatesByFullTriple(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	sut := bom.NewClosure()
	must_be.True(sut.Add(record("com.acme:thing:1.0", "https://central/thing-1.0.jar", "")))
	wont_be.True(sut.Add(record("com.acme:thing:1.0", "https://central/thing-1.0.jar", "")))
	// Same coordinate from another repository stays a separate record.
	must_be.True(sut.Add(record("com.acme:thing:1.0", "https://mirror/thing-1.0.jar", "")))
	must_be.Equal(2, sut.Size())
	must_be.Equal(2, len(sut.JarURLs()))
}

func TestInternalPackagesNeverReachManifest(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	closure := bom.NewClosure()
	closure.Add(record("com.acme:secret-sauce:3.2", "", ""))
	closure.Add(record("com.acme:public:1.0", "https://central/public-1.0.jar", ""))

	manifest, internal := bom.BuildManifest(closure, nil)
	must_be.Equal(1, internal)
	must_be.Equal(1, manifest.Size())
	must_be.Equal("com.acme.public:1.0", manifest.Entries[0].Key())
}

func TestFailedResolutionKeepsEntryWithEmptyLicense(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	closure := bom.NewClosure()
	closure.Add(record("com.acme:public:1.0", "https://central/public-1.0.jar", ""))
	manifest, _ := bom.BuildManifest(closure, map[string]string{})
	must_be.Equal(1, manifest.Size())
	must_be.Equal("", manifest.Entries[0].Record.License)
}

func buildExample(insertions []int) *bom.Manifest {
	records := []*bom.PackageRecord{
		record("com.acme:thing:1.0", "https://central/thing-1.0.jar", "https://github.com/acme/thing"),
		record("aa.first:early:0.1", "https://central/early-0.1.jar", ""),
		record("zz.last:late:9.9", "https://central/late-9.9.jar", ""),
	}
	closure := bom.NewClosure()
	for _, at := range insertions {
		closure.Add(records[at])
	}
	manifest, _ := bom.BuildManifest(closure, map[string]string{
		"https://central/thing-1.0.jar": "Apache License\nVersion 2.0",
		"https://central/early-0.1.jar": "MIT",
		"https://central/late-9.9.jar":  "EPL-1.0",
	})
	return manifest
}

func TestManifestOrderIsInsertionIndependent(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	one := buildExample([]int{0, 1, 2})
	two := buildExample([]int{2, 0, 1})

	first, err := one.AsYaml()
	must_be.Nil(err)
	second, err := two.AsYaml()
	must_be.Nil(err)
	must_be.Equal(string(first), string(second))
	must_be.Equal(one.Fingerprint(), two.Fingerprint())

	must_be.Equal("aa.first.early:0.1", one.Entries[0].Key())
	must_be.Equal("com.acme.thing:1.0", one.Entries[1].Key())
	must_be.Equal("zz.last.late:9.9", one.Entries[2].Key())
}

func TestManifestYamlShape(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	blob, err := buildExample([]int{0, 1, 2}).AsYaml()
	must_be.Nil(err)
	text := string(blob)
	must_be.Contains("com.acme.thing:1.0:", text)
	must_be.Contains("jar_url: https://central/thing-1.0.jar", text)
	must_be.Contains("maven-groupId: com.acme", text)
	must_be.Contains("maven-artifactId: thing", text)
	must_be.Contains("modified: \"no\"", text)
	must_be.Contains("repository: Maven", text)
	must_be.Contains("url: https://github.com/acme/thing", text)
	// Multi-line license text renders as a block literal.
	must_be.Contains("license: |-", text)
}

func TestEmptyManifestStillEmitsMapping(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	manifest, _ := bom.BuildManifest(bom.NewClosure(), nil)
	blob, err := manifest.AsYaml()
	must_be.Nil(err)
	must_be.Equal("{}\n", string(blob))

	blob, err = bom.IssuesAsYaml(nil)
	must_be.Nil(err)
	must_be.Equal("{}\n", string(blob))
}

func TestIssuesYamlCarriesReason(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	manifest := buildExample([]int{1})
	blob, err := bom.IssuesAsYaml([]bom.Issue{{Entry: manifest.Entries[0], Reason: bom.Denied}})
	must_be.Nil(err)
	must_be.Contains("reason: Denied", string(blob))
}

func TestFingerprintReactsToContent(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	full := buildExample([]int{0, 1, 2})
	partial := buildExample([]int{0, 1})
	must_be.Equal(full.Fingerprint(), buildExample([]int{0, 1, 2}).Fingerprint())
	wont_be.Equal(full.Fingerprint(), partial.Fingerprint())
}
