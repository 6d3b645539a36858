// Package journal keeps an append-only record of audit runs in the
// product home. One JSON object per line; readers tolerate unknown
// fields so old journals survive upgrades.
package journal

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"

	ps "github.com/mitchellh/go-ps"

	"github.com/auditkit/ossaudit/common"
)

type Event struct {
	When       int64  `json:"when"`
	Controller string `json:"controller"`
	Parent     string `json:"parent"`
	Event      string `json:"event"`
	Detail     string `json:"detail"`
	Comment    string `json:"comment,omitempty"`
}

var whitespace = regexp.MustCompile(`\s+`)

// Unify collapses runs of whitespace so journal lines stay one line.
func Unify(value string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(value, " "))
}

// parentProcess names whoever launched this audit; in CI that is the
// runner, interactively the shell. Attribution only, never trusted.
func parentProcess() string {
	process, err := ps.FindProcess(os.Getppid())
	if err != nil || process == nil {
		return "unknown"
	}
	return process.Executable()
}

func Post(event, detail, commentForm string, fields ...interface{}) error {
	entry := Event{
		When:       common.When,
		Controller: common.ControllerType,
		Parent:     parentProcess(),
		Event:      Unify(event),
		Detail:     Unify(detail),
		Comment:    Unify(fmt.Sprintf(commentForm, fields...)),
	}
	blob, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	if _, err := common.EnsureHome(); err != nil {
		return err
	}
	handle, err := os.OpenFile(common.JournalFile(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o640)
	if err != nil {
		return err
	}
	defer handle.Close()
	_, err = fmt.Fprintf(handle, "%s\n", blob)
	return err
}

func Events() ([]Event, error) {
	handle, err := os.Open(common.JournalFile())
	if err != nil {
		return nil, err
	}
	defer handle.Close()
	result := make([]Event, 0, 16)
	scanner := bufio.NewScanner(handle)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}
		var entry Event
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			common.Debug("Skipping broken journal line: %v", err)
			continue
		}
		result = append(result, entry)
	}
	return result, scanner.Err()
}
