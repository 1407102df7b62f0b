package cfg

import "github.com/quill-lang/quill/internal/decl"

// Facts computes, for every block on the normal path, the initialization
// lattice value of each tracked property at the block's end.
//
// The computation is a forward must-analysis: a property is definitely
// initialized at a point only if every normal-path predecessor proves it.
// A companion may-analysis distinguishes "assigned on some path" from
// "assigned on no path". Exceptional blocks are excluded entirely; facts on
// the error path never strengthen or weaken the normal path.
func Facts(g *Graph, tracked []decl.PropertyID) map[*Block]map[decl.PropertyID]LatticeValue {
	if g == nil || g.Entry == nil {
		return nil
	}
	g.connect()

	inTracked := make(map[decl.PropertyID]bool, len(tracked))
	for _, id := range tracked {
		inTracked[id] = true
	}

	type state struct {
		visited bool
		must    map[decl.PropertyID]bool
		may     map[decl.PropertyID]bool
	}
	out := make(map[*Block]*state, len(g.Blocks))
	for _, b := range g.Blocks {
		out[b] = &state{}
	}

	transfer := func(b *Block, must, may map[decl.PropertyID]bool) {
		for _, id := range b.Assigns {
			if inTracked[id] {
				must[id] = true
				may[id] = true
			}
		}
	}

	worklist := []*Block{g.Entry}
	for len(worklist) > 0 {
		b := worklist[0]
		worklist = worklist[1:]
		if b.Exceptional {
			continue
		}

		must := make(map[decl.PropertyID]bool)
		may := make(map[decl.PropertyID]bool)
		if b != g.Entry {
			first := true
			for _, p := range b.preds {
				if p.Exceptional || !out[p].visited {
					continue
				}
				if first {
					for id := range out[p].must {
						must[id] = true
					}
					first = false
				} else {
					for id := range must {
						if !out[p].must[id] {
							delete(must, id)
						}
					}
				}
				for id := range out[p].may {
					may[id] = true
				}
			}
		}
		transfer(b, must, may)

		s := out[b]
		if s.visited && setsEqual(s.must, must) && setsEqual(s.may, may) {
			continue
		}
		s.visited = true
		s.must = must
		s.may = may
		worklist = append(worklist, b.Succs...)
	}

	facts := make(map[*Block]map[decl.PropertyID]LatticeValue, len(g.Blocks))
	for _, b := range g.Blocks {
		s := out[b]
		if b.Exceptional || !s.visited {
			continue
		}
		values := make(map[decl.PropertyID]LatticeValue, len(tracked))
		for _, id := range tracked {
			switch {
			case s.must[id]:
				values[id] = DefinitelyInitialized
			case s.may[id]:
				values[id] = MaybeInitialized
			default:
				values[id] = NotInitialized
			}
		}
		facts[b] = values
	}
	return facts
}

// ExitFacts reads the normal-path lattice values at the graph's exit block.
// The result defaults every tracked property to NotInitialized when the exit
// is unreachable on the normal path.
func ExitFacts(g *Graph, tracked []decl.PropertyID) map[decl.PropertyID]LatticeValue {
	values := make(map[decl.PropertyID]LatticeValue, len(tracked))
	for _, id := range tracked {
		values[id] = NotInitialized
	}
	if g == nil || g.Exit == nil {
		return values
	}
	if exit, ok := Facts(g, tracked)[g.Exit]; ok {
		for id, v := range exit {
			values[id] = v
		}
	}
	return values
}

func setsEqual(a, b map[decl.PropertyID]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for id := range a {
		if !b[id] {
			return false
		}
	}
	return true
}
