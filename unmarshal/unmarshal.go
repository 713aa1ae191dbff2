// Package unmarshal decodes the serialized declaration model written by the
// header-to-model step.
package unmarshal

import (
	"fmt"

	"github.com/goplus/cbgen/ast"
	"github.com/qiniu/x/errors"
	"gopkg.in/yaml.v3"
)

type fileNode struct {
	Typedefs []typedefNode `yaml:"typedefs"`
	Enums    []enumNode    `yaml:"enums"`
}

type typedefNode struct {
	Name string    `yaml:"name"`
	Type *typeNode `yaml:"type"`
}

type enumNode struct {
	Name    string       `yaml:"name"`
	Members []memberNode `yaml:"members"`
}

type memberNode struct {
	Name  string `yaml:"name"`
	Value string `yaml:"val"`
}

type typeNode struct {
	Kind     string      `yaml:"kind"`
	Name     string      `yaml:"name"`
	Const    bool        `yaml:"const"`
	Volatile bool        `yaml:"volatile"`
	Restrict bool        `yaml:"restrict"`
	Type     *typeNode   `yaml:"type"`
	Len      string      `yaml:"len"`
	Params   []paramNode `yaml:"params"`
	Variadic bool        `yaml:"variadic"`
}

type paramNode struct {
	Name string    `yaml:"name"`
	Type *typeNode `yaml:"type"`
}

// File decodes a YAML declaration model. Every malformed declaration is
// reported; the returned error is an errors.List when there is more than one.
func File(data []byte) (*ast.File, error) {
	var doc fileNode
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal declarations: %w", err)
	}

	var errs errors.List
	file := &ast.File{}
	for i, td := range doc.Typedefs {
		where := fmt.Sprintf("typedefs[%d]", i)
		if td.Name == "" {
			errs.Add(fmt.Errorf("%s: missing name", where))
			continue
		}
		where += " " + td.Name
		if td.Type == nil {
			errs.Add(fmt.Errorf("%s: missing type", where))
			continue
		}
		typ, err := convType(td.Type, where)
		if err != nil {
			errs.Add(err)
			continue
		}
		file.Typedefs = append(file.Typedefs, &ast.TypedefDecl{Name: td.Name, Type: typ})
	}
	for i, e := range doc.Enums {
		where := fmt.Sprintf("enums[%d]", i)
		if e.Name == "" {
			errs.Add(fmt.Errorf("%s: missing name", where))
			continue
		}
		decl := &ast.EnumTypeDecl{Name: e.Name}
		for j, m := range e.Members {
			if m.Name == "" {
				errs.Add(fmt.Errorf("%s %s: members[%d]: missing name", where, e.Name, j))
				continue
			}
			decl.Items = append(decl.Items, &ast.EnumItem{Name: m.Name, Value: m.Value})
		}
		file.Enums = append(file.Enums, decl)
	}
	if err := errs.ToError(); err != nil {
		return nil, err
	}
	return file, nil
}

func convType(n *typeNode, where string) (*ast.Type, error) {
	kind := ast.KindOf(n.Kind)
	if kind == 0 {
		return nil, fmt.Errorf("%s: unknown type kind %q", where, n.Kind)
	}
	t := &ast.Type{
		Kind:     kind,
		Name:     n.Name,
		Len:      n.Len,
		Variadic: n.Variadic,
	}
	if n.Const {
		t.Qual |= ast.Const
	}
	if n.Volatile {
		t.Qual |= ast.Volatile
	}
	if n.Restrict {
		t.Qual |= ast.Restrict
	}

	switch kind {
	case ast.Builtin, ast.Named, ast.Struct, ast.Union, ast.Enum:
		if n.Name == "" {
			return nil, fmt.Errorf("%s: %s type without name", where, kind)
		}
		return t, nil
	}

	if n.Type == nil {
		return nil, fmt.Errorf("%s: %s type without element type", where, kind)
	}
	elem, err := convType(n.Type, where)
	if err != nil {
		return nil, err
	}
	t.Elem = elem
	if kind != ast.Func {
		return t, nil
	}
	for i, p := range n.Params {
		if p.Type == nil {
			return nil, fmt.Errorf("%s: params[%d]: missing type", where, i)
		}
		pt, err := convType(p.Type, where)
		if err != nil {
			return nil, err
		}
		t.Params = append(t.Params, &ast.Param{Name: p.Name, Type: pt})
	}
	return t, nil
}
