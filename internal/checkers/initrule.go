package checkers

import (
	"fmt"

	"github.com/quill-lang/quill/internal/decl"
	"github.com/quill-lang/quill/internal/diag"
)

// checkPropertyInitialization is the initialization sub-check: given the
// analyzer's verdict for the property, decide whether a missing
// initialization must be reported. At most one diagnostic is emitted per
// property.
func (c *Checker) checkPropertyInitialization(class *decl.Class, p *decl.Property, initialized bool, stack decl.Stack) {
	if initialized {
		return
	}
	if p.Abstract || p.HasAbstractModifier || p.IsDelegated() {
		return
	}
	// Interface members and expect declarations have no backing field to
	// initialize.
	if class.Kind == decl.KindInterface || inExpectClass(class, stack) {
		return
	}
	// A property whose reads and (for vars) writes are fully covered by
	// accessor bodies has no backing field.
	if accessorHasBody(p.Getter) && (!p.Mutable || accessorHasBody(p.Setter)) {
		return
	}

	if class.CanHaveAbstractMembers() {
		c.reportError(p.Span(), diag.CodeMustBeInitializedOrAbstract,
			fmt.Sprintf("property '%s' must be initialized or be abstract", p.Name))
		return
	}
	c.reportError(p.Span(), diag.CodeMustBeInitialized,
		fmt.Sprintf("property '%s' must be initialized", p.Name))
}
