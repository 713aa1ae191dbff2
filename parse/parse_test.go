package parse_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/goplus/cbgen/ast"
	"github.com/goplus/cbgen/parse"
)

type mockParser struct {
	src      string
	macros   map[string]string
	includes []string
	file     *ast.File
	err      error
}

func (m *mockParser) Parse(src string, macros map[string]string, includes []string) (*ast.File, error) {
	m.src, m.macros, m.includes = src, macros, includes
	return m.file, m.err
}

func TestDo(t *testing.T) {
	want := &ast.File{Enums: []*ast.EnumTypeDecl{{Name: "ompt_callbacks_t"}}}
	p := &mockParser{file: want}
	got, err := parse.Do(&parse.Config{
		Include: []string{"omp-tools.h"},
		CFlags:  "-I/usr/lib/llvm/include -DNDEBUG -I ./",
		Macros:  map[string]string{"__inline": "", "__nonnull(a)": ""},
	}, p)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Fatal("Do should return the parser's tree")
	}
	if p.src != "#include <stdint.h>\n#include <stddef.h>\n#include <omp-tools.h>\n" {
		t.Fatalf("unexpected source: %q", p.src)
	}
	if !reflect.DeepEqual(p.includes, []string{"/usr/lib/llvm/include", "./"}) {
		t.Fatalf("unexpected include paths: %v", p.includes)
	}
	expectMacros := map[string]string{
		"__attribute__(a)": "",
		"__restrict":       "restrict",
		"__inline":         "",
		"__extension__":    "",
		"__asm__(a)":       "",
		"__nonnull(a)":     "",
	}
	if !reflect.DeepEqual(p.macros, expectMacros) {
		t.Fatalf("unexpected macros: %v", p.macros)
	}
}

func TestDoError(t *testing.T) {
	if _, err := parse.Do(&parse.Config{Include: []string{"a.h"}}, nil); !errors.Is(err, parse.ErrNoParser) {
		t.Fatalf("want ErrNoParser, got %v", err)
	}
	if _, err := parse.Do(&parse.Config{}, &mockParser{}); !errors.Is(err, parse.ErrNoHeader) {
		t.Fatalf("want ErrNoHeader, got %v", err)
	}
	boom := errors.New("boom")
	_, err := parse.Do(&parse.Config{Include: []string{"a.h"}}, &mockParser{err: boom})
	if !errors.Is(err, boom) {
		t.Fatalf("want wrapped parser error, got %v", err)
	}
}

func TestIncludePaths(t *testing.T) {
	testCases := []struct {
		cflags string
		expect []string
	}{
		{"", nil},
		{"-I/a -I/b", []string{"/a", "/b"}},
		{"-O2 -I", nil},
		{"-I /a -Wall", []string{"/a"}},
	}
	for _, tc := range testCases {
		if got := parse.IncludePaths(tc.cflags); !reflect.DeepEqual(got, tc.expect) {
			t.Errorf("IncludePaths(%q) = %v, want %v", tc.cflags, got, tc.expect)
		}
	}
}
