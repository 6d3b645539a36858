// Package anywork is a process wide pool of background workers with a
// fan-out/fan-in contract: Backlog queues work, Sync waits until every
// queued item is done and reports how many of them failed. License
// lookups are the heavy users here, so the pool is sized for network
// bound work, not CPU bound work.
package anywork

import (
	"fmt"
	"os"
	"runtime"

	"github.com/auditkit/ossaudit/common"
)

var (
	group     WorkGroup
	pipeline  WorkQueue
	failpipe  Failures
	errcount  Counters
	headcount uint64
)

type Work func()
type WorkQueue chan Work
type Failures chan string
type Counters chan uint64

func catcher(title string, identity uint64) {
	catch := recover()
	if catch != nil {
		failpipe <- fmt.Sprintf("Recovering %q #%d: %v", title, identity, catch)
	}
}

func process(fun Work, identity uint64) {
	defer catcher("process", identity)
	fun()
}

func member(identity uint64) {
	defer catcher("member", identity)
	for {
		work, ok := <-pipeline
		if !ok {
			break
		}
		process(work, identity)
		group.done()
	}
}

func watcher(failures Failures, counters Counters) {
	counter := uint64(0)
	for {
		select {
		case fail := <-failures:
			counter += 1
			fmt.Fprintln(os.Stderr, fail)
		case counters <- counter:
			counter = 0
		}
	}
}

func init() {
	group = NewGroup()
	// Buffer covers one full fan-out of unique artifact URLs without
	// blocking the dispatching goroutine.
	pipeline = make(WorkQueue, 4096)
	failpipe = make(Failures)
	errcount = make(Counters)
	headcount = 0
	AutoScale()
	go watcher(failpipe, errcount)
}

func Scale() uint64 {
	return headcount
}

// AutoScale grows the pool up to the configured worker count. Workers
// are never torn down; an idle goroutine parked on a channel is cheap.
func AutoScale() {
	limit := uint64(common.OptimalWorkerCount())
	for headcount < limit {
		go member(headcount)
		headcount += 1
	}
}

func Backlog(todo Work) {
	if todo != nil {
		group.add()
		pipeline <- todo
	}
}

func Sync() error {
	trials := int(Scale())
	for retries := 0; retries < trials; retries++ {
		runtime.Gosched()
	}
	group.Wait()
	count := <-errcount
	if count > 0 {
		return fmt.Errorf("there has been %d failures, see messages above", count)
	}
	return nil
}
