package convert

import "github.com/goplus/cbgen/ast"

// Types indexes typedefs by name. The first declaration of a name wins.
type Types struct {
	definitions map[string]*ast.TypedefDecl
}

func NewTypes() *Types {
	return &Types{
		definitions: make(map[string]*ast.TypedefDecl),
	}
}

func (t *Types) Lookup(name string) (*ast.TypedefDecl, bool) {
	decl, ok := t.definitions[name]
	return decl, ok
}

// Register records decl under name and reports whether it was new.
func (t *Types) Register(name string, decl *ast.TypedefDecl) bool {
	if _, ok := t.definitions[name]; ok {
		return false
	}
	t.definitions[name] = decl
	return true
}

// IsVoid reports whether t is void, following typedef names.
func (t *Types) IsVoid(typ *ast.Type) bool {
	for seen := 0; typ != nil && typ.Kind == ast.Named; seen++ {
		decl, ok := t.Lookup(typ.Name)
		if !ok || seen > len(t.definitions) {
			return false
		}
		typ = decl.Type
	}
	return typ.IsVoid()
}
