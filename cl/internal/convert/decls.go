package convert

import (
	"fmt"
	"log"

	"github.com/goplus/cbgen/ast"
)

// LoadError reports a declaration tree the generator cannot start from.
type LoadError struct {
	Enum   string
	Reason string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load declarations: callback identifier enum %s: %s", e.Enum, e.Reason)
}

// Decls holds the declarations the generator works on, in source order.
type Decls struct {
	Typedefs  []*ast.TypedefDecl // function pointer typedefs only
	Enums     []*ast.EnumTypeDecl
	Callbacks *ast.EnumTypeDecl // the callback identifier enum
	Types     *Types            // every typedef, by name
}

// LoadDecls collects the function pointer typedefs and enums of file and
// locates the callback identifier enum named enum.
func LoadDecls(file *ast.File, enum string) (*Decls, error) {
	if file == nil {
		return nil, &LoadError{Enum: enum, Reason: "no declarations"}
	}
	decls := &Decls{Enums: file.Enums, Types: NewTypes()}
	for _, td := range file.Typedefs {
		decls.Types.Register(td.Name, td)
		if td.Type.FuncPointee() == nil {
			if debugLoad {
				log.Printf("LoadDecls: typedef %s is not a function pointer, skipped\n", td.Name)
			}
			continue
		}
		decls.Typedefs = append(decls.Typedefs, td)
	}
	for _, e := range file.Enums {
		if e.Name == enum {
			decls.Callbacks = e
			break
		}
	}
	if decls.Callbacks == nil {
		return nil, &LoadError{Enum: enum, Reason: "not found"}
	}
	if debugLoad {
		log.Printf("LoadDecls: %d function pointer typedefs, %d enums, %s has %d members\n",
			len(decls.Typedefs), len(decls.Enums), enum, len(decls.Callbacks.Items))
	}
	return decls, nil
}
