package licenses_test

import (
	"sync"
	"testing"

	"github.com/auditkit/ossaudit/hamlet"
	"github.com/auditkit/ossaudit/licenses"
)

func TestResolvesEachUniqueUrlExactlyOnce(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	resolver := licenses.NewCanned(map[string]string{
		"https://repo/a-1.0.jar": "Apache-2.0",
		"https://repo/b-2.0.jar": "MIT",
	})
	urls := []string{
		"https://repo/a-1.0.jar",
		"https://repo/b-2.0.jar",
		"https://repo/a-1.0.jar",
		"https://repo/a-1.0.jar",
	}
	seen := 0
	mutex := sync.Mutex{}
	results, failures := licenses.ResolveAll(resolver, urls, func(string) {
		mutex.Lock()
		defer mutex.Unlock()
		seen += 1
	})
	must_be.Equal(0, failures)
	must_be.Equal(2, len(results))
	must_be.Equal(2, seen)
	must_be.Equal("Apache-2.0", results["https://repo/a-1.0.jar"])
	must_be.Equal("MIT", results["https://repo/b-2.0.jar"])
	must_be.Equal(1, resolver.Calls("https://repo/a-1.0.jar"))
	must_be.Equal(1, resolver.Calls("https://repo/b-2.0.jar"))
}

func TestOneFailingUrlDegradesOnlyItself(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	resolver := licenses.NewCanned(map[string]string{
		"https://repo/good-1.0.jar": "BSD-3-Clause",
	})
	results, failures := licenses.ResolveAll(resolver, []string{
		"https://repo/good-1.0.jar",
		"https://repo/lost-9.9.jar",
	}, nil)
	must_be.Equal(1, failures)
	must_be.Equal("BSD-3-Clause", results["https://repo/good-1.0.jar"])
	must_be.Equal("", results["https://repo/lost-9.9.jar"])
}

func TestLicenseTextIsNormalized(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	resolver := licenses.NewCanned(map[string]string{
		"https://repo/multi-1.0.jar": "  Apache License\r\nVersion 2.0\r\n  ",
	})
	results, failures := licenses.ResolveAll(resolver, []string{"https://repo/multi-1.0.jar"}, nil)
	must_be.Equal(0, failures)
	must_be.Equal("Apache License\nVersion 2.0", results["https://repo/multi-1.0.jar"])
}
