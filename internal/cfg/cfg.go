// Package cfg models the per-member control-flow graphs the declaration
// checkers consume, and computes definite-initialization facts over them.
//
// One graph exists per constructor, per anonymous initializer and per
// property initializer that performs assignments. The graphs arrive from the
// body-resolution phase; this package only queries them.
package cfg

import "github.com/quill-lang/quill/internal/decl"

// Block is a basic block. Assigns lists the member properties the block
// definitely assigns, in order. Exceptional marks blocks reachable only on
// thrown-error paths; they are not part of the normal path.
type Block struct {
	Assigns     []decl.PropertyID
	Succs       []*Block
	Exceptional bool

	preds []*Block
}

// Graph is the control-flow graph of one executable member. Entry and Exit
// are the distinguished start and normal-completion blocks.
type Graph struct {
	Blocks []*Block
	Entry  *Block
	Exit   *Block
}

// Provider maps an executable member declaration to its control-flow graph.
// A nil result means no graph is available (unresolved or erroneous code);
// callers skip that member's contribution.
type Provider interface {
	GraphFor(d decl.Decl) *Graph
}

// MapProvider is a Provider backed by a plain map. The zero value is usable
// and reports no graphs.
type MapProvider map[decl.Decl]*Graph

// GraphFor implements Provider.
func (m MapProvider) GraphFor(d decl.Decl) *Graph {
	return m[d]
}

// connect wires predecessor lists from the successor lists.
func (g *Graph) connect() {
	for _, b := range g.Blocks {
		b.preds = b.preds[:0]
	}
	for _, b := range g.Blocks {
		for _, s := range b.Succs {
			s.preds = append(s.preds, b)
		}
	}
}
