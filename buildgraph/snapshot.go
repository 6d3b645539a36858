package buildgraph

import (
	"fmt"

	yaml "gopkg.in/yaml.v2"

	"github.com/auditkit/ossaudit/cloud"
	"github.com/auditkit/ossaudit/set"
)

// Snapshot is a serialized build graph: one YAML document per build,
// produced by querying the build system before the audit runs. It is
// also the graph fake the tests build by hand.
type Snapshot struct {
	nodes map[string]*snapshotNode
}

type snapshotNode struct {
	Tags  []string            `yaml:"tags,omitempty"`
	Edges map[string][]string `yaml:"edges,omitempty"`
}

type snapshotFile struct {
	Nodes map[string]*snapshotNode `yaml:"nodes"`
}

func NewSnapshot() *Snapshot {
	return &Snapshot{nodes: make(map[string]*snapshotNode)}
}

// Add declares a node with its tags, creating it when missing.
func (it *Snapshot) Add(label string, tags ...string) *Snapshot {
	node := it.node(label)
	node.Tags = append(node.Tags, tags...)
	return it
}

// Connect declares an edge of given kind; both endpoints come to
// existence as needed.
func (it *Snapshot) Connect(from string, kind Kind, to string) *Snapshot {
	node := it.node(from)
	node.Edges[string(kind)] = append(node.Edges[string(kind)], to)
	it.node(to)
	return it
}

func (it *Snapshot) node(label string) *snapshotNode {
	found, ok := it.nodes[label]
	if !ok {
		found = &snapshotNode{Edges: make(map[string][]string)}
		it.nodes[label] = found
	}
	return found
}

func (it *Snapshot) Size() int {
	return len(it.nodes)
}

func (it *Snapshot) Edges(label string) ([]Edge, bool) {
	node, ok := it.nodes[label]
	if !ok {
		return nil, false
	}
	// Edge order must not depend on map iteration order.
	result := make([]Edge, 0, 8)
	for _, kind := range set.Keys(node.Edges) {
		for _, target := range node.Edges[kind] {
			result = append(result, Edge{Kind: Kind(kind), Target: target})
		}
	}
	return result, true
}

func (it *Snapshot) Tags(label string) ([]string, bool) {
	node, ok := it.nodes[label]
	if !ok {
		return nil, false
	}
	return node.Tags, true
}

func ParseSnapshot(blob []byte) (*Snapshot, error) {
	content := new(snapshotFile)
	err := yaml.UnmarshalStrict(blob, content)
	if err != nil {
		return nil, fmt.Errorf("invalid graph snapshot: %w", err)
	}
	result := NewSnapshot()
	for label, node := range content.Nodes {
		if node == nil {
			node = &snapshotNode{}
		}
		if node.Edges == nil {
			node.Edges = make(map[string][]string)
		}
		result.nodes[label] = node
	}
	return result, nil
}

// LoadSnapshot reads a snapshot from a local file or an URL.
func LoadSnapshot(resource string) (*Snapshot, error) {
	blob, err := cloud.ReadFile(resource)
	if err != nil {
		return nil, fmt.Errorf("cannot read graph snapshot %q: %w", resource, err)
	}
	return ParseSnapshot(blob)
}
