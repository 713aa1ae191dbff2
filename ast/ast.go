package ast

// File is the declaration tree produced by the header parser.
// Declarations keep their source order.
type File struct {
	Typedefs []*TypedefDecl
	Enums    []*EnumTypeDecl
}

type TypedefDecl struct {
	Name string
	Type *Type
}

type EnumTypeDecl struct {
	Name  string
	Items []*EnumItem
}

type EnumItem struct {
	Name  string
	Value string // literal as written, may be empty
}

type TypeKind uint

const (
	Builtin TypeKind = iota + 1 // int, unsigned long, void ...
	Named                       // reference to a typedef name
	Struct
	Union
	Enum
	Pointer
	Array
	Func
)

var kindNames = [...]string{
	Builtin: "builtin",
	Named:   "named",
	Struct:  "struct",
	Union:   "union",
	Enum:    "enum",
	Pointer: "pointer",
	Array:   "array",
	Func:    "function",
}

func (k TypeKind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "unknown"
}

// KindOf returns the kind spelled s, or 0 if s names no kind.
func KindOf(s string) TypeKind {
	for k, name := range kindNames {
		if name != "" && name == s {
			return TypeKind(k)
		}
	}
	return 0
}

type Qualifier uint

const (
	Const Qualifier = 1 << iota
	Volatile
	Restrict
)

// Type describes a C type.
//
//	Builtin, Named, Struct, Union, Enum: Name
//	Pointer, Array: Elem (Array also Len, empty for [])
//	Func: Elem is the return type, Params, Variadic
type Type struct {
	Kind     TypeKind
	Name     string
	Qual     Qualifier
	Elem     *Type
	Len      string
	Params   []*Param
	Variadic bool
}

type Param struct {
	Name string // may be empty
	Type *Type
}

// IsVoid reports whether t is the builtin void, ignoring qualifiers.
func (t *Type) IsVoid() bool {
	return t != nil && t.Kind == Builtin && t.Name == "void"
}

// FuncPointee returns the function type t points to, or nil if t is not a
// pointer to function.
func (t *Type) FuncPointee() *Type {
	if t == nil || t.Kind != Pointer || t.Elem == nil || t.Elem.Kind != Func {
		return nil
	}
	return t.Elem
}
