package checkers

import (
	"fmt"

	"github.com/quill-lang/quill/internal/decl"
	"github.com/quill-lang/quill/internal/diag"
)

// checkExpectProperty validates properties declared inside an expect
// (declaration-only, multiplatform) class: they must stay body-free and
// visible enough to be matched against an actual implementation.
func (c *Checker) checkExpectProperty(p *decl.Property) {
	if p.HasInitializer() || p.IsDelegated() || accessorHasBody(p.Getter) || accessorHasBody(p.Setter) {
		c.reportError(p.Span(), diag.CodeExpectedPropertyWithInitializer,
			fmt.Sprintf("expected property '%s' cannot have an initializer or accessor bodies", p.Name))
	}
	if p.Visibility == decl.Private {
		c.reportError(p.Span(), diag.CodeExpectedPrivateDeclaration,
			"expected declaration cannot be private")
	}
}
