// Package parse drives the external C header parser.
//
// The preprocessor and declaration parser are not part of this module: any
// implementation of Parser can be plugged in (a clang based one, or a mock in
// tests).
package parse

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/goplus/cbgen/ast"
)

// Parser turns preprocessed header text into a declaration tree.
type Parser interface {
	Parse(src string, macros map[string]string, includes []string) (*ast.File, error)
}

type Config struct {
	Include []string          // headers making up the API, e.g. omp-tools.h
	CFlags  string            // -I flags contribute include paths
	Macros  map[string]string // merged over DefaultMacros
}

var (
	ErrNoParser = errors.New("parse: no parser")
	ErrNoHeader = errors.New("parse: no header to parse")
)

const (
	DbgParse   = 1 << iota
	DbgFlagAll = DbgParse
)

var debugParse bool

func SetDebug(flag int) {
	debugParse = (flag & DbgParse) != 0
}

// DefaultMacros neutralizes the compiler extensions system headers use, so
// that a plain C parser accepts them.
func DefaultMacros() map[string]string {
	return map[string]string{
		"__attribute__(a)": "",
		"__restrict":       "restrict",
		"__inline":         "inline",
		"__extension__":    "",
		"__asm__(a)":       "",
	}
}

// Do assembles the translation unit described by conf and hands it to p.
func Do(conf *Config, p Parser) (*ast.File, error) {
	if p == nil {
		return nil, ErrNoParser
	}
	if len(conf.Include) == 0 {
		return nil, ErrNoHeader
	}
	macros := DefaultMacros()
	for k, v := range conf.Macros {
		macros[k] = v
	}
	includes := IncludePaths(conf.CFlags)
	src := Source(conf.Include)
	if debugParse {
		keys := make([]string, 0, len(macros))
		for k := range macros {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		log.Printf("parse: headers %v, include paths %v, macros %v\n", conf.Include, includes, keys)
	}
	file, err := p.Parse(src, macros, includes)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", strings.Join(conf.Include, ", "), err)
	}
	return file, nil
}

// Source returns the text of a translation unit including the libc basics
// and then every header.
func Source(headers []string) string {
	var b strings.Builder
	b.WriteString("#include <stdint.h>\n#include <stddef.h>\n")
	for _, h := range headers {
		fmt.Fprintf(&b, "#include <%s>\n", h)
	}
	return b.String()
}

// IncludePaths extracts the -I directories of cflags, in order.
func IncludePaths(cflags string) []string {
	var paths []string
	fields := strings.Fields(cflags)
	for i := 0; i < len(fields); i++ {
		f := fields[i]
		if !strings.HasPrefix(f, "-I") {
			continue
		}
		if dir := f[2:]; dir != "" {
			paths = append(paths, dir)
		} else if i+1 < len(fields) {
			i++
			paths = append(paths, fields[i])
		}
	}
	return paths
}
