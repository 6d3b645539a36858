package common

var (
	silentFlag bool
	debugFlag  bool
	traceFlag  bool
)

// DefineVerbosity is the single place where command line verbosity
// selections become effective. Trace implies debug, and debug or trace
// win over silent, so that asking for more output always works.
func DefineVerbosity(silent, debug, trace bool) {
	silentFlag = silent && !debug && !trace
	debugFlag = debug
	traceFlag = trace
}

func Silent() bool {
	return silentFlag
}

func DebugFlag() bool {
	return debugFlag || traceFlag
}

func TraceFlag() bool {
	return traceFlag
}
