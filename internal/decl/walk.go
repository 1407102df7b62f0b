package decl

// WalkClasses visits every class declaration in the file in source order,
// outermost first, passing the containment stack (innermost enclosing
// declaration last) alongside each class. Members of a class are visited
// with the class pushed onto the stack.
func WalkClasses(file *File, visit func(c *Class, stack Stack)) {
	var walk func(d Decl, stack Stack)
	walk = func(d Decl, stack Stack) {
		switch d := d.(type) {
		case *Class:
			visit(d, stack)
			inner := stack.Push(d)
			for _, m := range d.Members {
				walk(m, inner)
			}
		case *Function:
			inner := stack.Push(d)
			for _, l := range d.Locals {
				walk(l, inner)
			}
		}
	}
	for _, d := range file.Decls {
		walk(d, nil)
	}
}
