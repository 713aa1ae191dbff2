package cl

import (
	"github.com/goplus/cbgen/ast"
	"github.com/goplus/cbgen/cl/internal/convert"
	"github.com/goplus/cbgen/cl/nc"
	"github.com/goplus/cbgen/config"
	"github.com/goplus/cbgen/parse"
)

const (
	DbgLoad    = convert.DbgLoad
	DbgJoin    = convert.DbgJoin
	DbgEmit    = convert.DbgEmit
	DbgFlagAll = convert.DbgFlagAll
)

func SetDebug(flag int) {
	convert.SetDebug(flag)
}

type (
	Callback  = convert.Callback
	LoadError = convert.LoadError
	Registrar = convert.Registrar
)

type ConvConfig struct {
	File      *ast.File        // declaration tree, parsed from Include when nil
	Enum      string           // callback identifier enum
	NC        nc.NameConverter // naming convention
	Mandatory config.Manifest  // events whose registration must succeed
	Progress  string           // statement run by every stub
	Registrar Registrar
	Headers   []string

	// Used only when File is nil.
	Parser  parse.Parser
	Include []string
	CFlags  string
	Macros  map[string]string
}

type Result struct {
	Callbacks []*Callback
	Code      []byte // stubs followed by the registration routine
}

// Convert generates the callback stubs and their registration routine.
// Without a declaration tree, the headers in Include are parsed first.
func Convert(conf *ConvConfig) (*Result, error) {
	file := conf.File
	if file == nil {
		var err error
		file, err = parse.Do(&parse.Config{
			Include: conf.Include,
			CFlags:  conf.CFlags,
			Macros:  conf.Macros,
		}, conf.Parser)
		if err != nil {
			return nil, err
		}
	}
	pkg, err := convert.Convert(&convert.Config{
		Enum:      conf.Enum,
		NC:        conf.NC,
		Mandatory: conf.Mandatory,
		Progress:  conf.Progress,
		Registrar: conf.Registrar,
		Headers:   conf.Headers,
	}, file)
	if err != nil {
		return nil, err
	}
	return &Result{Callbacks: pkg.Callbacks, Code: pkg.Code}, nil
}
