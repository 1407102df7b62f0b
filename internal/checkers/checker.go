// Package checkers implements the declaration checks of the Quill front
// end: class-nesting rules and class-member-property rules, including the
// definite-initialization analysis they depend on. The checks are read-only
// over the resolved declaration tree and side-effect only through the
// diagnostic reporter.
package checkers

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/quill-lang/quill/internal/cfg"
	"github.com/quill-lang/quill/internal/config"
	"github.com/quill-lang/quill/internal/decl"
	"github.com/quill-lang/quill/internal/diag"
	"github.com/quill-lang/quill/internal/source"
)

// Checker runs the declaration checks. Each class check is a pure function
// over its inputs; a Checker can be shared across goroutines as long as the
// reporter is not (CheckFileConcurrent gives every worker its own bag).
type Checker struct {
	graphs   cfg.Provider
	cfg      config.Config
	reporter diag.Reporter
}

// NewChecker creates a checker over the given control-flow-graph provider,
// configuration and diagnostic sink.
func NewChecker(graphs cfg.Provider, cfg config.Config, reporter diag.Reporter) *Checker {
	return &Checker{graphs: graphs, cfg: cfg, reporter: reporter}
}

// CheckFile runs every declaration check over every class in the file.
func (c *Checker) CheckFile(file *decl.File) {
	decl.WalkClasses(file, func(class *decl.Class, stack decl.Stack) {
		c.CheckClass(class, stack)
	})
}

// CheckClass runs the declaration checks for a single class given its
// containment context.
func (c *Checker) CheckClass(class *decl.Class, stack decl.Stack) {
	c.checkClassNesting(class, stack)
	c.checkMemberProperties(class, stack)
}

// CheckFileConcurrent checks classes on up to workers goroutines, one class
// per unit of work. Diagnostics are collected per worker and forwarded to
// the checker's reporter in deterministic (tree) order.
func (c *Checker) CheckFileConcurrent(ctx context.Context, file *decl.File, workers int) error {
	type unit struct {
		class *decl.Class
		stack decl.Stack
	}
	var units []unit
	decl.WalkClasses(file, func(class *decl.Class, stack decl.Stack) {
		units = append(units, unit{class: class, stack: stack})
	})

	if workers < 1 {
		workers = 1
	}
	bags := make([]*diag.Bag, len(units))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, u := range units {
		i, u := i, u
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			bag := diag.NewBag()
			worker := &Checker{graphs: c.graphs, cfg: c.cfg, reporter: bag}
			worker.CheckClass(u.class, u.stack)
			bags[i] = bag
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, bag := range bags {
		for _, d := range bag.Diagnostics() {
			c.reporter.Report(d)
		}
	}
	return nil
}

func (c *Checker) reportError(span source.Span, code diag.Code, msg string) {
	c.reporter.Report(diag.Diagnostic{
		Stage:    diag.StageDeclCheck,
		Severity: diag.SeverityError,
		Code:     code,
		Message:  msg,
		Span:     span,
	})
}

func (c *Checker) reportWarning(span source.Span, code diag.Code, msg string) {
	c.reporter.Report(diag.Diagnostic{
		Stage:    diag.StageDeclCheck,
		Severity: diag.SeverityWarning,
		Code:     code,
		Message:  msg,
		Span:     span,
	})
}

// inExpectClass reports whether the class itself or any enclosing class is
// an expect (declaration-only, multiplatform) class.
func inExpectClass(class *decl.Class, stack decl.Stack) bool {
	if class.Expect {
		return true
	}
	for _, d := range stack {
		if enclosing, ok := d.(*decl.Class); ok && enclosing.Expect {
			return true
		}
	}
	return false
}
