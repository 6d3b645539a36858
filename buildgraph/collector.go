package buildgraph

import (
	"fmt"
	"strings"

	"github.com/auditkit/ossaudit/bom"
	"github.com/auditkit/ossaudit/common"
	"github.com/auditkit/ossaudit/maven"
)

const (
	coordinatesTag = `maven_coordinates=`
	urlTag         = `maven_url=`
	sourcesTag     = `maven_sources_url=`
)

// Collection is everything one traversal produced: the audited
// closure, the informational environment set, and non-fatal warnings.
type Collection struct {
	Closure     *bom.Closure
	Environment *bom.Closure
	Warnings    []string
}

type collector struct {
	graph   Graph
	memo    map[string]bool
	pending []string
	result  *Collection
}

// Collect walks the transitive closure of the target over the audited
// edge kinds, memoizing per node so diamond dependencies cost one
// visit. Nodes reachable only through deploy_env edges land in the
// environment set instead of the audited closure. A missing target is
// the one structural failure; everything else degrades to warnings.
func Collect(graph Graph, target string) (*Collection, error) {
	_, known := graph.Edges(target)
	if !known {
		return nil, fmt.Errorf("target %q not present in graph snapshot", target)
	}
	it := &collector{
		graph: graph,
		memo:  make(map[string]bool),
		result: &Collection{
			Closure:     bom.NewClosure(),
			Environment: bom.NewClosure(),
		},
	}
	it.walk(target, it.result.Closure)
	// Environment roots found during the audited walk, and any found
	// while walking the environment itself. The shared memo keeps
	// nodes already audited out of the environment set.
	for len(it.pending) > 0 {
		root := it.pending[0]
		it.pending = it.pending[1:]
		it.walk(root, it.result.Environment)
	}
	common.Debug("Collected %d audited and %d environment records from %d visited nodes.",
		it.result.Closure.Size(), it.result.Environment.Size(), len(it.memo))
	return it.result, nil
}

func (it *collector) walk(label string, into *bom.Closure) {
	if it.memo[label] {
		return
	}
	it.memo[label] = true
	edges, known := it.graph.Edges(label)
	if !known {
		it.warn("Node %q is referenced but missing from the snapshot; treating as leaf.", label)
		return
	}
	it.extract(label, into)
	for _, edge := range edges {
		switch {
		case edge.Kind == KindDeployEnv:
			it.pending = append(it.pending, edge.Target)
		case auditedKinds[edge.Kind]:
			it.walk(edge.Target, into)
		default:
			common.Trace("Ignoring edge %q -> %q of unknown kind %q.", label, edge.Target, edge.Kind)
		}
	}
}

// extract contributes zero or one package record for the node. Nodes
// without coordinate metadata are plain build internals and only
// bring their sub-closure.
func (it *collector) extract(label string, into *bom.Closure) {
	tags, _ := it.graph.Tags(label)
	var coordinates, jarURL, sourceURL string
	found := false
	for _, tag := range tags {
		if value, ok := strings.CutPrefix(tag, coordinatesTag); ok {
			coordinates, found = value, true
		}
		if value, ok := strings.CutPrefix(tag, urlTag); ok {
			jarURL = value
		}
		if value, ok := strings.CutPrefix(tag, sourcesTag); ok {
			sourceURL = value
		}
	}
	if !found {
		return
	}
	coordinate, err := maven.ParseCoordinate(coordinates)
	if err != nil {
		it.warn("Node %q carries malformed coordinates %q; skipping its record.", label, coordinates)
		return
	}
	added := into.Add(&bom.PackageRecord{
		Coordinate: coordinate,
		JarURL:     jarURL,
		SourceURL:  sourceURL,
	})
	if !added {
		common.Trace("Node %q repeats already known package %q.", label, coordinate)
	}
}

func (it *collector) warn(format string, details ...interface{}) {
	// Callers surface these; here they only hit the debug stream.
	message := fmt.Sprintf(format, details...)
	common.Debug("Warning: %s", message)
	it.result.Warnings = append(it.result.Warnings, message)
}
