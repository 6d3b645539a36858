package common

import (
	"os"
	"path/filepath"
)

const (
	OSSAUDIT_HOME_VARIABLE = `OSSAUDIT_HOME`
	defaultHomeLocation    = `$HOME/.ossaudit`
)

var forcedHome string

// ForceHome overrides the product home for this process only.
// Used by tests and by the --home option.
func ForceHome(value string) {
	forcedHome = value
}

func ExpandPath(entry string) string {
	intermediate := os.ExpandEnv(entry)
	result, err := filepath.Abs(intermediate)
	if err != nil {
		return intermediate
	}
	return result
}

// Home is the directory where ossaudit keeps its own state: the
// persisted configuration and the run journal. Outputs never go here.
func Home() string {
	if len(forcedHome) > 0 {
		return ExpandPath(forcedHome)
	}
	home := os.Getenv(OSSAUDIT_HOME_VARIABLE)
	if len(home) > 0 {
		return ExpandPath(home)
	}
	return ExpandPath(defaultHomeLocation)
}

func EnsureHome() (string, error) {
	where := Home()
	err := os.MkdirAll(where, 0o750)
	if err != nil {
		return "", err
	}
	return where, nil
}

func ConfigFile() string {
	return filepath.Join(Home(), "ossaudit.yaml")
}

func JournalFile() string {
	return filepath.Join(Home(), "audit.journal")
}
