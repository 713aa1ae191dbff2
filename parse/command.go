package parse

import (
	"bytes"
	"fmt"
	"log"
	"os/exec"
	"sort"
	"strings"

	"github.com/goplus/cbgen/ast"
	"github.com/goplus/cbgen/unmarshal"
)

// Command is a Parser running an external program. The translation unit is
// written to its stdin, include paths and macros are passed as -I and -D
// flags after Args, and the YAML declaration model is read from its stdout.
type Command struct {
	Path string
	Args []string
}

// NewCommand splits cmdline into the program and its leading arguments.
func NewCommand(cmdline string) *Command {
	fields := strings.Fields(cmdline)
	if len(fields) == 0 {
		return nil
	}
	return &Command{Path: fields[0], Args: fields[1:]}
}

func (c *Command) Parse(src string, macros map[string]string, includes []string) (*ast.File, error) {
	args := append([]string(nil), c.Args...)
	for _, dir := range includes {
		args = append(args, "-I"+dir)
	}
	keys := make([]string, 0, len(macros))
	for k := range macros {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		args = append(args, "-D"+k+"="+macros[k])
	}

	cmd := exec.Command(c.Path, args...)
	cmd.Stdin = strings.NewReader(src)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if debugParse {
		log.Printf("parse: run %s\n", strings.Join(cmd.Args, " "))
	}
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%s: %w: %s", c.Path, err, msg)
		}
		return nil, fmt.Errorf("%s: %w", c.Path, err)
	}
	return unmarshal.File(stdout.Bytes())
}
