package convert

import (
	"bytes"
	"fmt"
	"log"

	"github.com/goplus/cbgen/ast"
	"github.com/goplus/cbgen/internal/cdecl"
)

// EmitStubs writes one handler definition per callback. The handler only
// runs the progress statement; a handler whose signature returns a value
// returns a zero value of that type. types resolves typedef names of return
// types, it may be nil.
func EmitStubs(b *bytes.Buffer, cbs []*Callback, types *Types, progress string) {
	if types == nil {
		types = NewTypes()
	}
	for _, cb := range cbs {
		sig := namedParams(cb.Sig)
		b.WriteString(cdecl.Decl(sig, cb.Stub))
		b.WriteString("\n{\n")
		ret := sig.Elem
		hasResult := ret != nil && !types.IsVoid(ret)
		if hasResult {
			if debugEmit {
				log.Printf("EmitStubs: %s returns %s, returning zero value\n", cb.Stub, cdecl.Decl(ret, ""))
			}
			fmt.Fprintf(b, "\t%s = {0};\n", cdecl.Decl(ret, "result"))
		}
		if progress != "" {
			fmt.Fprintf(b, "\t%s;\n", progress)
		}
		if hasResult {
			b.WriteString("\treturn result;\n")
		}
		b.WriteString("}\n\n")
	}
}

// namedParams returns fn with a name for every parameter, so that it can
// head a definition. fn itself is left untouched.
func namedParams(fn *ast.Type) *ast.Type {
	if fn == nil {
		return &ast.Type{Kind: ast.Func, Elem: &ast.Type{Kind: ast.Builtin, Name: "void"}}
	}
	ret := *fn
	params := fn.Params
	if len(params) == 1 && params[0].Name == "" && params[0].Type.IsVoid() {
		params = nil
	}
	used := make(map[string]bool, len(params))
	for _, p := range params {
		used[p.Name] = true
	}
	ret.Params = make([]*ast.Param, len(params))
	next := 0
	for i, p := range params {
		name := p.Name
		for name == "" {
			if cand := fmt.Sprintf("arg%d", next); !used[cand] {
				name = cand
				used[cand] = true
			}
			next++
		}
		ret.Params[i] = &ast.Param{Name: name, Type: p.Type}
	}
	return &ret
}
