// Package buildgraph walks an already materialized build dependency
// graph and collects the open source package closure of a target.
// The graph itself is a capability: anything that can answer "what
// are the edges and tags of this node" can be audited.
package buildgraph

type Kind string

const (
	KindData        Kind = `data`
	KindSrcs        Kind = `srcs`
	KindDeps        Kind = `deps`
	KindExports     Kind = `exports`
	KindJar         Kind = `jar`
	KindRuntimeDeps Kind = `runtime_deps`
	KindDeployEnv   Kind = `deploy_env`
)

// auditedKinds are followed into the bundled closure. Deploy
// environment edges are followed too, but into the informational
// environment set instead.
var auditedKinds = map[Kind]bool{
	KindData:        true,
	KindSrcs:        true,
	KindDeps:        true,
	KindExports:     true,
	KindJar:         true,
	KindRuntimeDeps: true,
}

type Edge struct {
	Kind   Kind
	Target string
}

type Graph interface {
	// Edges lists outgoing edges of the node; the bool tells whether
	// the node exists at all.
	Edges(label string) ([]Edge, bool)
	// Tags lists the free form "key=value" tags attached to the node.
	Tags(label string) ([]string, bool)
}
