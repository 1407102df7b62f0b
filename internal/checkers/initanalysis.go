package checkers

import (
	"github.com/quill-lang/quill/internal/cfg"
	"github.com/quill-lang/quill/internal/decl"
)

// InitResult holds per-property definite-initialization facts for one class.
// All maps default to false for properties never mentioned.
type InitResult struct {
	// byConstructor is true only when every constructor with an available
	// graph proves the property initialized (the caller may pick any one).
	byConstructor map[decl.PropertyID]bool

	// byInitBlock is true when any anonymous initializer proves it; init
	// blocks all run unconditionally for every instance.
	byInitBlock map[decl.PropertyID]bool

	// byPropertyInit is true when some other property's initializer graph
	// proves it (initializers that assign as a side effect).
	byPropertyInit map[decl.PropertyID]bool
}

// IsInitialized reports whether the property is proven initialized by the
// time construction completes.
func (r *InitResult) IsInitialized(p *decl.Property) bool {
	return p.HasInitializer() ||
		r.byConstructor[p.ID] ||
		r.byInitBlock[p.ID] ||
		r.byPropertyInit[p.ID]
}

// AnalyzeInitialization computes definite-initialization facts for every
// direct member property of the class.
//
// Constructors contribute under AND semantics, anonymous initializers and
// other property initializers under OR semantics. A constructor delegating
// via this(...) inherits the delegate's facts additively: assignments before
// and after delegation lie on one sequential path, not alternative paths.
// Members without an available graph are skipped; they neither prove nor
// disprove initialization.
func AnalyzeInitialization(class *decl.Class, graphs cfg.Provider) *InitResult {
	result := &InitResult{
		byConstructor:  make(map[decl.PropertyID]bool),
		byInitBlock:    make(map[decl.PropertyID]bool),
		byPropertyInit: make(map[decl.PropertyID]bool),
	}

	props := class.Properties()
	tracked := make([]decl.PropertyID, len(props))
	for i, p := range props {
		tracked[i] = p.ID
	}
	if len(tracked) == 0 {
		return result
	}

	// Facts per constructor, memoized so delegation lookups are O(1).
	// Scoped to this one class analysis.
	ctorFacts := make(map[*decl.Constructor]map[decl.PropertyID]cfg.LatticeValue)

	seenCtor := false
	for _, ctor := range class.Constructors() {
		g := graphs.GraphFor(ctor)
		if g == nil {
			continue
		}
		facts := cfg.ExitFacts(g, tracked)

		// Union in the delegate constructor's facts when they were already
		// computed in this pass; an unresolved or not-yet-seen delegate
		// simply contributes nothing.
		if ctor.DelegatesTo != nil {
			if delegated, ok := ctorFacts[ctor.DelegatesTo]; ok {
				for _, id := range tracked {
					facts[id] = facts[id].Join(delegated[id])
				}
			}
		}
		ctorFacts[ctor] = facts

		for _, id := range tracked {
			proven := facts[id].IsDefinitelyInitialized()
			if !seenCtor {
				result.byConstructor[id] = proven
			} else {
				result.byConstructor[id] = result.byConstructor[id] && proven
			}
		}
		seenCtor = true
	}

	for _, init := range class.AnonymousInitializers() {
		g := graphs.GraphFor(init)
		if g == nil {
			continue
		}
		facts := cfg.ExitFacts(g, tracked)
		for _, id := range tracked {
			if facts[id].IsDefinitelyInitialized() {
				result.byInitBlock[id] = true
			}
		}
	}

	for _, p := range props {
		g := graphs.GraphFor(p)
		if g == nil {
			continue
		}
		facts := cfg.ExitFacts(g, tracked)
		for _, id := range tracked {
			if facts[id].IsDefinitelyInitialized() {
				result.byPropertyInit[id] = true
			}
		}
	}

	return result
}
