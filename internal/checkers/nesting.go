package checkers

import (
	"fmt"

	"github.com/quill-lang/quill/internal/config"
	"github.com/quill-lang/quill/internal/decl"
	"github.com/quill-lang/quill/internal/diag"
)

// checkClassNesting applies the class-nesting decision table to one class
// and its immediate lexical container. At most one diagnostic is emitted.
//
// Only inner classes may nest inside inner or local classes: an inner class
// carries an implicit outer-instance reference that other nested
// declarations cannot obtain correctly inside a local scope or another inner
// class's instance. Enum entries additionally restrict nesting to inner
// classes and companions since language version 1.2.
func (c *Checker) checkClassNesting(class *decl.Class, stack decl.Stack) {
	// Local singletons (objects and companions declared inside a body) are
	// governed by a different diagnostic path.
	if class.IsSingleton() && class.Local {
		return
	}

	container, ok := stack.Container().(*decl.Class)
	if !ok {
		// Top level, or a non-class container such as a function body.
		return
	}

	switch {
	case container.Kind == decl.KindClass:
		if !class.Inner && (container.Inner || container.Local) {
			c.reportNestingViolation(class)
		}
	case container.Kind == decl.KindEnumEntry:
		if !c.cfg.LanguageVersion.AtLeast(config.EnumEntryNestingVersion) {
			return
		}
		// Companions inside enum entries are reported elsewhere under a
		// separate code.
		if !class.Inner && !class.Companion {
			c.reportNestingViolation(class)
		}
	}
}

func (c *Checker) reportNestingViolation(class *decl.Class) {
	c.reportError(
		class.Span(),
		diag.CodeNestedClassNotAllowed,
		fmt.Sprintf("%s is not allowed here", class.Kind.Label()),
	)
}
