package common

import (
	"fmt"
	"time"
)

type Duration time.Duration

func (it Duration) String() string {
	return fmt.Sprintf("%5.3fs", float64(it)/float64(time.Second))
}

type stopwatch struct {
	message string
	started time.Time
}

func Stopwatch(format string, details ...interface{}) *stopwatch {
	return &stopwatch{
		message: fmt.Sprintf(format, details...),
		started: time.Now(),
	}
}

func (it *stopwatch) Elapsed() Duration {
	return Duration(time.Since(it.started))
}

func (it *stopwatch) Report() Duration {
	elapsed := it.Elapsed()
	Debug("%s %s", it.message, elapsed)
	return elapsed
}
