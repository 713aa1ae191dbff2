// Package cdecl renders ast types as C declarations.
package cdecl

import (
	"strings"

	"github.com/goplus/cbgen/ast"
)

// Decl renders t declaring name, e.g. Decl(ptr(int), "p") == "int *p".
// An empty name renders the abstract declarator used in casts.
func Decl(t *ast.Type, name string) string {
	return render(t, name)
}

// Params renders the parameter list of the function type fn without the
// surrounding parentheses.
func Params(fn *ast.Type) string {
	if len(fn.Params) == 0 {
		if fn.Variadic {
			return "..."
		}
		return "void"
	}
	parts := make([]string, 0, len(fn.Params)+1)
	for _, p := range fn.Params {
		parts = append(parts, render(p.Type, p.Name))
	}
	if fn.Variadic {
		parts = append(parts, "...")
	}
	return strings.Join(parts, ", ")
}

func render(t *ast.Type, inner string) string {
	if t == nil {
		return join("int", inner)
	}
	switch t.Kind {
	case ast.Pointer:
		ptr := "*"
		if q := quals(t.Qual); q != "" {
			ptr += q
			if inner != "" {
				ptr += " "
			}
		}
		inner = ptr + inner
		if e := t.Elem; e != nil && (e.Kind == ast.Array || e.Kind == ast.Func) {
			inner = "(" + inner + ")"
		}
		return render(t.Elem, inner)
	case ast.Array:
		return render(t.Elem, inner+"["+t.Len+"]")
	case ast.Func:
		return render(t.Elem, inner+"("+Params(t)+")")
	}
	base := t.Name
	switch t.Kind {
	case ast.Struct, ast.Union, ast.Enum:
		base = t.Kind.String() + " " + t.Name
	}
	if q := quals(t.Qual); q != "" {
		base = q + " " + base
	}
	return join(base, inner)
}

func join(base, inner string) string {
	if inner == "" {
		return base
	}
	return base + " " + inner
}

func quals(q ast.Qualifier) string {
	var parts []string
	if q&ast.Const != 0 {
		parts = append(parts, "const")
	}
	if q&ast.Volatile != 0 {
		parts = append(parts, "volatile")
	}
	if q&ast.Restrict != 0 {
		parts = append(parts, "restrict")
	}
	return strings.Join(parts, " ")
}
