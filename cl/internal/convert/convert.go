package convert

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/goplus/cbgen/ast"
	"github.com/goplus/cbgen/cl/nc"
	"github.com/goplus/cbgen/config"
)

type Config struct {
	Enum      string // callback identifier enum
	NC        nc.NameConverter
	Mandatory config.Manifest
	Progress  string
	Registrar Registrar
	Headers   []string // emitted as #include lines ahead of the stubs
}

type Package struct {
	Callbacks []*Callback
	Code      []byte
}

// Convert generates the stubs and the registration routine for file. On
// error nothing is generated.
func Convert(conf *Config, file *ast.File) (*Package, error) {
	if conf == nil {
		return nil, errors.New("config is nil")
	}
	if conf.NC == nil {
		return nil, errors.New("config: no name converter")
	}
	decls, err := LoadDecls(file, conf.Enum)
	if err != nil {
		return nil, err
	}
	cbs := Join(decls, conf.NC)
	if debugJoin {
		logUnknownEvents(cbs, conf.Mandatory)
	}

	var b bytes.Buffer
	emitHeaders(&b, conf.Headers)
	EmitStubs(&b, cbs, decls.Types, conf.Progress)
	EmitRegister(&b, cbs, conf.Mandatory.Mandatory, &conf.Registrar)
	return &Package{Callbacks: cbs, Code: b.Bytes()}, nil
}

func emitHeaders(b *bytes.Buffer, headers []string) {
	if len(headers) == 0 {
		return
	}
	b.WriteString("/* generated. See cbgen.cfg */\n")
	for _, h := range headers {
		if !strings.HasPrefix(h, "<") && !strings.HasPrefix(h, `"`) {
			h = "<" + h + ">"
		}
		fmt.Fprintf(b, "#include %s\n", h)
	}
	b.WriteString("\n")
}

// logUnknownEvents lists manifest entries no callback was generated for.
func logUnknownEvents(cbs []*Callback, mandatory map[string]bool) {
	known := make(map[string]bool, len(cbs))
	for _, cb := range cbs {
		known[cb.Event] = true
	}
	var unknown []string
	for event := range mandatory {
		if !known[event] {
			unknown = append(unknown, event)
		}
	}
	if len(unknown) == 0 {
		return
	}
	sort.Strings(unknown)
	log.Printf("Convert: manifest events without callback: %s\n", strings.Join(unknown, " "))
}
