package licenses

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/google/shlex"

	"github.com/auditkit/ossaudit/common"
)

// CommandResolver delegates the lookup to an external command. The
// command template is split shell-style and the artifact URL is
// appended as the final argument; the license text is the command's
// stdout.
type CommandResolver struct {
	Command string
}

func NewCommandResolver(command string) *CommandResolver {
	return &CommandResolver{Command: command}
}

func (it *CommandResolver) Resolve(jarURL string) (string, error) {
	parts, err := shlex.Split(it.Command)
	if err != nil {
		return "", fmt.Errorf("invalid resolver command %q: %w", it.Command, err)
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("resolver command is empty")
	}
	parts = append(parts, jarURL)
	common.Trace("Running license lookup: %v", parts)
	out, err := exec.Command(parts[0], parts[1:]...).Output()
	if err != nil {
		return "", fmt.Errorf("license lookup command failed for %q: %w", jarURL, err)
	}
	return strings.TrimSpace(string(out)), nil
}
