package format

import (
	"sort"

	"github.com/eutampieri/gleam/ast"
	"github.com/eutampieri/gleam/doc"
)

// importGroup is one author-delimited run of imports: a leading comment (or
// blank-line separation, carrying no comment) followed by the imports that
// belong under it, sorted alphabetically by module path.
type importGroup struct {
	leadingComments doc.Doc
	imports         []ast.Import
}

// importRegion renders a contiguous run of import definitions: subdivided
// into author-delimited groups at the first import
// preceded by a blank line or comment, each group sorted alphabetically by
// module path with its leading comment preserved verbatim above the sorted
// block, one blank line between groups.
func (f *formatter) importRegion(imports []ast.Import) doc.Doc {
	groups := make([]importGroup, 0, 1)
	for i, imp := range imports {
		startsGroup := i == 0 || f.cursor.HasComments(imp.Span_.Start) || f.precedingBlankLine(imp.Span_.Start)
		leading := f.commentsBefore(imp.Span_.Start, false)
		if startsGroup || len(groups) == 0 {
			groups = append(groups, importGroup{leadingComments: leading})
		} else if leading != nil {
			last := &groups[len(groups)-1]
			last.leadingComments = doc.Concat(last.leadingComments, leading)
		}
		g := &groups[len(groups)-1]
		g.imports = append(g.imports, imp)
	}

	parts := make([]doc.Doc, 0, len(groups)*2)
	for i, g := range groups {
		if i > 0 {
			parts = append(parts, doc.Line(), doc.Line())
		}
		sorted := append([]ast.Import(nil), g.imports...)
		sort.SliceStable(sorted, func(a, b int) bool { return sorted[a].Module < sorted[b].Module })
		if g.leadingComments != nil {
			parts = append(parts, g.leadingComments)
		}
		for j, imp := range sorted {
			if j > 0 {
				parts = append(parts, doc.Line())
			}
			parts = append(parts, f.importDef(imp))
		}
	}
	return doc.Concat(parts...)
}

func (f *formatter) importDef(n ast.Import) doc.Doc {
	head := doc.Text("import " + n.Module)

	var unqualified doc.Doc
	if len(n.UnqualifiedTypes) > 0 || len(n.UnqualifiedValues) > 0 {
		types := append([]ast.UnqualifiedImport(nil), n.UnqualifiedTypes...)
		sort.SliceStable(types, func(a, b int) bool { return types[a].Name < types[b].Name })
		values := append([]ast.UnqualifiedImport(nil), n.UnqualifiedValues...)
		sort.SliceStable(values, func(a, b int) bool { return values[a].Name < values[b].Name })

		items := make([]doc.Doc, 0, len(types)+len(values))
		for _, t := range types {
			items = append(items, unqualifiedImportDoc("type ", t))
		}
		for _, v := range values {
			items = append(items, unqualifiedImportDoc("", v))
		}
		unqualified = doc.Group(doc.Concat(doc.Text(".{ "), joinFlexComma(items), doc.Text(" }")))
	}

	var alias doc.Doc
	if n.Alias != nil && *n.Alias != defaultModuleAlias(n.Module) {
		alias = doc.Text(" as " + *n.Alias)
	}

	return doc.Concat(head, unqualified, alias)
}

func unqualifiedImportDoc(prefix string, u ast.UnqualifiedImport) doc.Doc {
	d := doc.Text(prefix + u.Name)
	if u.Alias != nil {
		d = doc.Concat(d, doc.Text(" as "+*u.Alias))
	}
	return d
}

func joinFlexComma(items []doc.Doc) doc.Doc {
	parts := make([]doc.Doc, 0, len(items)*2)
	for i, it := range items {
		if i > 0 {
			parts = append(parts, doc.FlexBreak(",", ", "))
		}
		parts = append(parts, it)
	}
	return doc.Concat(parts...)
}

// defaultModuleAlias returns the name a bare `import a/b/c` would bind,
// namely the path's last slash-delimited segment, so the "omit the alias
// when it is redundant" rule can compare against it.
func defaultModuleAlias(module string) string {
	last := module
	for i := len(module) - 1; i >= 0; i-- {
		if module[i] == '/' {
			last = module[i+1:]
			break
		}
	}
	return last
}
