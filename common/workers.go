package common

import (
	"runtime"
)

// WorkerCountOption is the --workers selection, zero meaning "decide
// for me". License lookups are network bound, so the automatic choice
// leans on CPU count only as a stand-in for "reasonable parallelism"
// against a downstream service, not as a real resource limit.
var WorkerCountOption int

func OptimalWorkerCount() int {
	if WorkerCountOption > 0 {
		return WorkerCountOption
	}
	limit := runtime.NumCPU()
	if limit < 2 {
		return 2
	}
	if limit > 8 {
		return 8
	}
	return limit
}
