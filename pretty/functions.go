package pretty

import (
	"fmt"

	"github.com/auditkit/ossaudit/common"
)

func Ok() error {
	common.Log("%sOK.%s", Green, Reset)
	return nil
}

func Warning(format string, rest ...interface{}) {
	common.Log("%sWarning: %s%s", Yellow, fmt.Sprintf(format, rest...), Reset)
}

func Note(format string, rest ...interface{}) {
	common.Log("%sNote: %s%s", Cyan, fmt.Sprintf(format, rest...), Reset)
}

func Highlight(format string, rest ...interface{}) {
	common.Log("%s%s%s", Bold, fmt.Sprintf(format, rest...), Reset)
}

// Exit panics an ExitCode which main catches in its ExitProtection,
// so deferred cleanups between here and there still run.
func Exit(code int, format string, rest ...interface{}) error {
	message := fmt.Sprintf(format, rest...)
	if code == 0 {
		message = fmt.Sprintf("%s%s%s", Green, message, Reset)
	} else {
		message = fmt.Sprintf("%s%s%s", Red, message, Reset)
	}
	panic(common.ExitCode{Code: code, Message: message})
}

// Guard watches that condition holds, and if it does not, exits the
// process with given exit code and message.
func Guard(condition bool, code int, format string, rest ...interface{}) {
	if !condition {
		Exit(code, format, rest...)
	}
}
