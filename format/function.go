package format

import (
	"github.com/eutampieri/gleam/ast"
	"github.com/eutampieri/gleam/doc"
)

func (f *formatter) typeAst(t ast.TypeAst) doc.Doc {
	switch n := t.(type) {
	case ast.TypeName:
		name := n.Name
		if n.Module != nil {
			name = *n.Module + "." + name
		}
		if len(n.Args) == 0 {
			return doc.Text(name)
		}
		args := make([]doc.Doc, len(n.Args))
		for i, a := range n.Args {
			args[i] = f.typeAst(a)
		}
		return doc.Concat(doc.Text(name+"("), joinComma(args), doc.Text(")"))

	case ast.TypeVar:
		return doc.Text(n.Name)

	case ast.TypeFn:
		args := make([]doc.Doc, len(n.Args))
		for i, a := range n.Args {
			args[i] = f.typeAst(a)
		}
		return doc.Concat(doc.Text("fn("), joinComma(args), doc.Text(") -> "), f.typeAst(n.Return))

	case ast.TypeTuple:
		elems := make([]doc.Doc, len(n.Elements))
		for i, e := range n.Elements {
			elems[i] = f.typeAst(e)
		}
		return doc.Concat(doc.Text("#("), joinComma(elems), doc.Text(")"))

	case ast.TypeHole:
		return doc.Text(n.Name)

	default:
		invariant("unrecognised type AST node %T", t)
		return nil
	}
}

func (f *formatter) functionParameter(p ast.FunctionParameter) doc.Doc {
	var label doc.Doc
	if p.Label != nil {
		label = doc.Text(*p.Label + " ")
	}
	d := doc.Concat(label, f.pattern(p.Pattern))
	if p.Annotation != nil {
		d = doc.Concat(d, doc.Text(": "), f.typeAst(p.Annotation))
	}
	return d
}

// attributes renders a definition's attribute block, one attribute per
// line, each followed by a forced break. targetAttr, when non-empty, is
// the @target(...) line a TargetedDefinition prepends ahead of the rest.
func (f *formatter) attributes(a ast.Attributes, targetAttr string) doc.Doc {
	var lines []doc.Doc
	if targetAttr != "" {
		lines = append(lines, doc.Text(targetAttr), doc.Line())
	}
	if a.Deprecated != nil {
		lines = append(lines, doc.Text("@deprecated(\""+*a.Deprecated+"\")"), doc.Line())
	}
	if a.ExternalErlang != nil {
		lines = append(lines, doc.Text("@external(erlang, \""+a.ExternalErlang.Module+"\", \""+a.ExternalErlang.Function+"\")"), doc.Line())
	}
	if a.ExternalJavaScript != nil {
		lines = append(lines, doc.Text("@external(javascript, \""+a.ExternalJavaScript.Module+"\", \""+a.ExternalJavaScript.Function+"\")"), doc.Line())
	}
	if a.Internal {
		lines = append(lines, doc.Text("@internal"), doc.Line())
	}
	if len(lines) == 0 {
		return nil
	}
	return doc.Concat(lines...)
}

func (f *formatter) docComment(d *string) doc.Doc {
	if d == nil {
		return nil
	}
	return doc.Concat(doc.Text(*d), doc.Line())
}

func (f *formatter) function(n ast.Function, targetAttr string) doc.Doc {
	if n.Name == "" {
		invariant("function definition without a name")
	}
	pub := ""
	if n.Public {
		pub = "pub "
	}
	params := make([]doc.Doc, len(n.Parameters))
	for i, p := range n.Parameters {
		params[i] = f.functionParameter(p)
	}
	head := doc.Concat(doc.Text(pub+"fn "+n.Name+"("), joinComma(params), doc.Text(")"))
	if n.Return != nil {
		head = doc.Concat(head, doc.Text(" -> "), f.typeAst(n.Return))
	}

	var body doc.Doc
	if isExternalBody(n.Body) {
		body = doc.Concat()
	} else {
		body = doc.Concat(
			doc.Text(" {"),
			doc.Nest(Indent, doc.Concat(doc.Line(), f.statements(n.Body, n.EndSpan.End))),
			doc.Line(),
			doc.Text("}"),
		)
	}

	return doc.Concat(
		f.docComment(n.Doc),
		f.attributes(n.Attributes, targetAttr),
		doc.ForceBreak(doc.Group(doc.Concat(head, body))),
	)
}

// isExternalBody reports whether body is the sole PlaceholderStatement
// marking a declaration-only (`@external`) function.
func isExternalBody(body []ast.Statement) bool {
	if len(body) != 1 {
		return false
	}
	_, ok := body[0].(ast.PlaceholderStatement)
	return ok
}

func (f *formatter) customType(n ast.CustomType, targetAttr string) doc.Doc {
	pub, opaque := "", ""
	if n.Public {
		pub = "pub "
	}
	if n.Opaque {
		opaque = "opaque "
	}
	head := doc.Text(pub + opaque + "type " + n.Name)
	if len(n.Parameters) > 0 {
		params := make([]doc.Doc, len(n.Parameters))
		for i, p := range n.Parameters {
			params[i] = doc.Text(p)
		}
		head = doc.Concat(head, doc.Text("("), joinComma(params), doc.Text(")"))
	}

	if len(n.Constructors) == 0 {
		return doc.Concat(f.docComment(n.Doc), f.attributes(n.Attributes, targetAttr), head)
	}

	ctors := make([]doc.Doc, 0, len(n.Constructors)*2)
	for i, c := range n.Constructors {
		if i > 0 {
			ctors = append(ctors, doc.Line())
		}
		ctors = append(ctors, f.recordConstructor(c), doc.Line())
	}

	return doc.Concat(
		f.docComment(n.Doc),
		f.attributes(n.Attributes, targetAttr),
		doc.ForceBreak(doc.Group(doc.Concat(
			head, doc.Text(" {"),
			doc.Nest(Indent, doc.Concat(doc.Line(), doc.Concat(ctors...))),
			doc.Line(),
			doc.Text("}"),
		))),
	)
}

func (f *formatter) recordConstructor(c ast.RecordConstructor) doc.Doc {
	head := doc.Text(c.Name)
	if len(c.Fields) == 0 && !f.cursor.HasComments(c.Span.End) {
		return doc.Concat(f.docComment(c.Doc), f.attributes(c.Attributes, ""), head)
	}

	items := make([]SeqItem, len(c.Fields))
	for i, field := range c.Fields {
		var label doc.Doc
		if field.Label != nil {
			label = doc.Text(*field.Label + ": ")
		}
		items[i] = SeqItem{
			Start: field.Span.Start,
			End:   field.Span.End,
			Value: doc.Concat(f.commentsBefore(field.Span.Start, true), label, f.typeAst(field.Type)),
		}
	}
	body := f.sequence("(", ")", items, nil, c.Span.Start, c.Span.End)
	return doc.Concat(f.docComment(c.Doc), f.attributes(c.Attributes, ""), head, body)
}

func (f *formatter) typeAlias(n ast.TypeAlias, targetAttr string) doc.Doc {
	pub := ""
	if n.Public {
		pub = "pub "
	}
	head := doc.Text(pub + "type " + n.Name)
	if len(n.Parameters) > 0 {
		params := make([]doc.Doc, len(n.Parameters))
		for i, p := range n.Parameters {
			params[i] = doc.Text(p)
		}
		head = doc.Concat(head, doc.Text("("), joinComma(params), doc.Text(")"))
	}
	return doc.Concat(
		f.docComment(n.Doc),
		f.attributes(n.Attributes, targetAttr),
		doc.Group(doc.Concat(head, doc.Text(" = "), f.typeAst(n.Type))),
	)
}

func (f *formatter) moduleConstant(n ast.ModuleConstant, targetAttr string) doc.Doc {
	pub := ""
	if n.Public {
		pub = "pub "
	}
	head := doc.Text(pub + "const " + n.Name)
	if n.Annotation != nil {
		head = doc.Concat(head, doc.Text(": "), f.typeAst(n.Annotation))
	}
	return doc.Concat(
		f.docComment(n.Doc),
		f.attributes(n.Attributes, targetAttr),
		doc.Group(doc.Concat(head, doc.Text(" = "), f.expr(n.Value))),
	)
}
