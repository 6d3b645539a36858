// Package maven models the identity of one audited dependency in the
// Maven ecosystem binding: the group/artifact/version coordinate.
package maven

import (
	"fmt"
	"strings"
)

type Coordinate struct {
	Group    string
	Artifact string
	Version  string
}

// ParseCoordinate splits "group:artifact:version" form. The version is
// everything after the last colon, the group everything before the
// first one, and the artifact keeps any colons in between (classifier
// variants stay attached to the artifact).
func ParseCoordinate(text string) (Coordinate, error) {
	cut := strings.LastIndex(text, ":")
	if cut < 0 {
		return Coordinate{}, fmt.Errorf("invalid maven coordinate %q: expecting group:artifact:version form", text)
	}
	version := text[cut+1:]
	group, artifact, ok := strings.Cut(text[:cut], ":")
	if !ok {
		return Coordinate{}, fmt.Errorf("invalid maven coordinate %q: expecting group:artifact:version form", text)
	}
	if len(group) == 0 || len(artifact) == 0 || len(version) == 0 {
		return Coordinate{}, fmt.Errorf("invalid maven coordinate %q: empty segment", text)
	}
	return Coordinate{Group: group, Artifact: artifact, Version: version}, nil
}

func (it Coordinate) String() string {
	return fmt.Sprintf("%s:%s:%s", it.Group, it.Artifact, it.Version)
}

// Key is the "<group>.<artifact>:<version>" form used as BOM entry
// key and in approved/denied catalogs.
func (it Coordinate) Key() string {
	return fmt.Sprintf("%s.%s:%s", it.Group, it.Artifact, it.Version)
}
