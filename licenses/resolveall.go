package licenses

import (
	"strings"
	"sync"

	"github.com/auditkit/ossaudit/anywork"
	"github.com/auditkit/ossaudit/common"
	"github.com/auditkit/ossaudit/set"
)

// ResolveAll fans license lookups out on the worker pool, exactly one
// lookup per unique URL no matter how many records share it, and
// blocks until every lookup settled. One failing URL degrades only
// its own entry: the license stays empty, a warning is logged, and
// sibling lookups keep running. Returns the results keyed by URL and
// the failure count.
func ResolveAll(resolver Resolver, urls []string, observer func(jarURL string)) (map[string]string, int) {
	unique := set.Set(urls)
	results := make(map[string]string, len(unique))
	failures := 0
	mutex := sync.Mutex{}

	anywork.AutoScale()
	for _, url := range unique {
		anywork.Backlog(func() {
			license, err := resolver.Resolve(url)
			if err != nil {
				common.Log("Warning: license lookup failed for %q: %v", url, err)
				license = ""
			}
			license = strings.TrimSpace(strings.ReplaceAll(license, "\r", ""))
			mutex.Lock()
			results[url] = license
			if err != nil {
				failures += 1
			}
			mutex.Unlock()
			if observer != nil {
				observer(url)
			}
		})
	}
	err := anywork.Sync()
	common.Uncritical("license fan-out", err)
	return results, failures
}
