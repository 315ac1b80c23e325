package format

import (
	"github.com/eutampieri/gleam/ast"
	"github.com/eutampieri/gleam/doc"
)

// region is one top-level layout unit: either a chunk of consecutive
// imports (rendered together so they can be grouped/sorted as a whole) or a
// single non-import definition.
type region struct {
	imports    []ast.Import
	definition *ast.TargetedDefinition
}

func (f *formatter) module(m *ast.Module) doc.Doc {
	regions := chunkRegions(m.Definitions)

	parts := make([]doc.Doc, 0, len(regions)*2+2)

	for _, c := range f.cursor.ModuleComments() {
		parts = append(parts, doc.Text(c.Content), doc.Line())
	}
	if len(f.cursor.ModuleComments()) > 0 {
		parts = append(parts, doc.Line())
	}

	for i, r := range regions {
		if i > 0 {
			parts = append(parts, doc.Line(), doc.Line())
		}
		if r.imports != nil {
			parts = append(parts, f.importRegion(r.imports))
			continue
		}
		parts = append(parts, f.targetedDefinition(*r.definition))
	}

	if tail := f.floatedComments(); tail != nil {
		if len(regions) > 0 {
			parts = append(parts, doc.Line(), doc.Line())
		}
		parts = append(parts, tail)
	}

	parts = append(parts, doc.Line())
	return doc.Concat(parts...)
}

// chunkRegions groups consecutive import definitions into a single region,
// leaving every other definition as its own region.
func chunkRegions(defs []ast.TargetedDefinition) []region {
	var regions []region
	for i := 0; i < len(defs); i++ {
		if imp, ok := defs[i].Definition.(ast.Import); ok {
			run := []ast.Import{imp}
			j := i + 1
			for j < len(defs) {
				next, ok := defs[j].Definition.(ast.Import)
				if !ok {
					break
				}
				run = append(run, next)
				j++
			}
			regions = append(regions, region{imports: run})
			i = j - 1
			continue
		}
		d := defs[i]
		regions = append(regions, region{definition: &d})
	}
	return regions
}

func (f *formatter) targetedDefinition(td ast.TargetedDefinition) doc.Doc {
	targetAttr := ""
	switch td.Target {
	case ast.TargetErlang:
		targetAttr = "@target(erlang)"
	case ast.TargetJavaScript:
		targetAttr = "@target(javascript)"
	}

	switch n := td.Definition.(type) {
	case ast.Function:
		return f.function(n, targetAttr)
	case ast.CustomType:
		return f.customType(n, targetAttr)
	case ast.TypeAlias:
		return f.typeAlias(n, targetAttr)
	case ast.ModuleConstant:
		return f.moduleConstant(n, targetAttr)
	case ast.Import:
		invariant("a lone import definition should have been chunked into a region")
		return nil
	default:
		invariant("unrecognised top-level definition %T", td.Definition)
		return nil
	}
}

// floatedComments renders every `///` doc-comment and `//` comment left
// unpopped once every definition has been visited, per the "floated to
// end" rule: doc comments first, then ordinary comments, each
// block one-per-line.
func (f *formatter) floatedComments() doc.Doc {
	var parts []doc.Doc

	remainingDocs := f.cursor.RemainingDocComments()
	for i, c := range remainingDocs {
		if i > 0 {
			parts = append(parts, doc.Line())
		}
		parts = append(parts, doc.Text(c.Content))
	}

	popped := f.cursor.PopCommentsWithPosition(maxInt, false)
	for _, p := range popped {
		if p.Content == nil {
			continue
		}
		if len(parts) > 0 {
			parts = append(parts, doc.Line())
		}
		parts = append(parts, doc.Text(*p.Content))
	}

	if len(parts) == 0 {
		return nil
	}
	return doc.Concat(parts...)
}

const maxInt = int(^uint(0) >> 1)
