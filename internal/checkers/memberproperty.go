package checkers

import (
	"fmt"

	"github.com/quill-lang/quill/internal/decl"
	"github.com/quill-lang/quill/internal/diag"
)

// checkMemberProperties runs the definite-initialization analysis once for
// the class, then applies the member-property rule table to each property.
func (c *Checker) checkMemberProperties(class *decl.Class, stack decl.Stack) {
	result := AnalyzeInitialization(class, c.graphs)
	for _, p := range class.Properties() {
		c.checkMemberProperty(class, p, result.IsInitialized(p), stack)
	}
}

// checkMemberProperty applies the rule table to one property. Rules are
// independent: several may fire for the same property. Only the
// abstract-in-non-abstract-class rule is terminal, and only for the
// remaining abstract-specific rules.
func (c *Checker) checkMemberProperty(class *decl.Class, p *decl.Property, initialized bool, stack decl.Stack) {
	// Compiler-synthesized properties have no source location to report at.
	if p.Synthesized() {
		return
	}

	inInterface := class.Kind == decl.KindInterface

	if inInterface && p.Visibility == decl.Private && !p.Abstract && !accessorHasBody(p.Getter) {
		c.reportError(p.Span(), diag.CodePrivatePropertyInInterface,
			"property in an interface cannot be private")
	}

	if p.Abstract || p.HasAbstractModifier {
		c.checkAbstractProperty(class, p)
	}

	c.checkPropertyInitialization(class, p, initialized, stack)

	if inInterface && p.HasOpenModifier && !p.HasAbstractModifier && p.Abstract && !inExpectClass(class, stack) {
		c.reportWarning(p.Span(), diag.CodeRedundantOpenInInterface,
			"'open' modifier is redundant for abstract interface members")
	}

	if (p.Open || p.HasOpenModifier) && !p.IsDelegated() &&
		accessorHasBody(p.Setter) && p.Setter.Visibility == decl.Private && p.Visibility != decl.Private {
		c.reportError(p.Setter.Span(), diag.CodePrivateSetterForOpenProperty,
			fmt.Sprintf("private setters are not allowed for open property '%s'", p.Name))
	}

	if inExpectClass(class, stack) {
		c.checkExpectProperty(p)
	}
}

// checkAbstractProperty applies the abstract-specific rules.
func (c *Checker) checkAbstractProperty(class *decl.Class, p *decl.Property) {
	if !class.CanHaveAbstractMembers() {
		c.reportError(p.Span(), diag.CodeAbstractPropertyInNonAbstractClass,
			fmt.Sprintf("abstract property '%s' in non-abstract class '%s'", p.Name, class.Name))
		return
	}

	if p.HasInitializer() {
		c.reportError(p.Initializer.Span(), diag.CodeAbstractPropertyWithInitializer,
			"abstract property cannot have an initializer")
	}
	if p.IsDelegated() {
		c.reportError(p.Delegate.Span(), diag.CodeAbstractDelegatedProperty,
			"abstract property cannot be delegated")
	}
	if p.IsDelegated() {
		return
	}
	if accessorHasBody(p.Getter) {
		c.reportError(p.Getter.Span(), diag.CodeAbstractPropertyWithGetter,
			"abstract property cannot have a getter with a body")
	}
	if accessorHasBody(p.Setter) {
		if p.Setter.Visibility == decl.Private && p.Visibility != decl.Private {
			c.reportError(p.Setter.Span(), diag.CodePrivateSetterForAbstractProperty,
				fmt.Sprintf("private setters are not allowed for abstract property '%s'", p.Name))
		} else {
			c.reportError(p.Setter.Span(), diag.CodeAbstractPropertyWithSetter,
				"abstract property cannot have a setter with a body")
		}
	}
}

func accessorHasBody(a *decl.PropertyAccessor) bool {
	return a != nil && a.HasBody
}
