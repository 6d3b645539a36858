package common

import (
	"fmt"
	"os"
)

// ExitCode is panicked from deep inside command implementations and
// caught by ExitProtection in main, so that every exit path still
// flushes pending log output.
type ExitCode struct {
	Code    int
	Message string
}

func (it ExitCode) ShowMessage() {
	if len(it.Message) > 0 {
		Stdout("%s\n", it.Message)
	}
}

func ExitProtection() {
	status := recover()
	if status != nil {
		exit, ok := status.(ExitCode)
		if ok {
			exit.ShowMessage()
			WaitLogs()
			os.Exit(exit.Code)
		}
		WaitLogs()
		panic(status)
	}
	WaitLogs()
}

func Failure(format string, details ...interface{}) ExitCode {
	return ExitCode{Code: 1, Message: fmt.Sprintf(format, details...)}
}
