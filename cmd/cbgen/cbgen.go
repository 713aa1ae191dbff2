/*
 * Copyright (c) 2024 The GoPlus Authors (goplus.org). All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/goplus/cbgen/ast"
	"github.com/goplus/cbgen/cl"
	"github.com/goplus/cbgen/cl/nc/ncimpl"
	"github.com/goplus/cbgen/config"
	"github.com/goplus/cbgen/internal/cwrite"
	"github.com/goplus/cbgen/parse"
	"github.com/goplus/cbgen/unmarshal"
	"github.com/spf13/cobra"
)

type options struct {
	verbose  bool
	model    string
	manifest string
	output   string
}

func NewCLI() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "cbgen [config-file]",
		Short: "Generate profiling callback stubs and the routine registering them",
		Long: `cbgen reads the declaration model of a callback registration API (such as
omp-tools.h) and writes one stub per callback signature followed by a routine
registering every stub. Registrations of events the manifest marks mandatory
are asserted to always succeed.

The configuration file defaults to ` + config.CBGEN_CFG + `. Relative paths in it are
resolved against its directory. When the configuration names a parser command,
the headers listed in include are parsed by it instead of reading the model.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfgFile string
			if len(args) > 0 {
				cfgFile = args[0]
			}
			return do(cfgFile, &opts)
		},
	}
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose output")
	cmd.Flags().StringVar(&opts.model, "model", "", "Declaration model file, - reads stdin (overrides the config)")
	cmd.Flags().StringVar(&opts.manifest, "manifest", "", "Mandatory event manifest (overrides the config)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file, - writes stdout (overrides the config)")
	cmd.AddCommand(newInitCmd())
	return cmd
}

func newInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init [config-file]",
		Short: "Write a " + config.CBGEN_CFG + " holding the default settings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile := config.CBGEN_CFG
			if len(args) > 0 {
				cfgFile = args[0]
			}
			if !force {
				if _, err := os.Stat(cfgFile); err == nil {
					return fmt.Errorf("%s already exists, use --force to overwrite", cfgFile)
				}
			}
			return config.WriteFile(config.NewDefault(), cfgFile)
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config file")
	return cmd
}

func main() {
	cobra.CheckErr(NewCLI().ExecuteContext(context.Background()))
}

func do(cfgFile string, opts *options) error {
	if opts.verbose {
		cl.SetDebug(cl.DbgFlagAll)
		parse.SetDebug(parse.DbgFlagAll)
	}

	conf, err := loadConf(cfgFile)
	if err != nil {
		return err
	}
	if opts.model != "" {
		conf.Model = opts.model
	}
	if opts.manifest != "" {
		conf.Manifest = opts.manifest
	}
	if opts.output != "" {
		conf.Output = opts.output
	}
	if err := conf.Validate(); err != nil {
		return err
	}

	var file *ast.File
	var parser parse.Parser
	if p := parse.NewCommand(conf.Parser); p != nil && opts.model == "" {
		parser = p
	} else {
		data, err := config.ReadFile(conf.Model)
		if err != nil {
			return fmt.Errorf("read declarations: %w", err)
		}
		if file, err = unmarshal.File(data); err != nil {
			return fmt.Errorf("%s: %w", conf.Model, err)
		}
	}
	manifest := config.Manifest{}
	if conf.Manifest != "" {
		if manifest, err = config.GetManifestFromFile(conf.Manifest); err != nil {
			return err
		}
	}

	res, err := cl.Convert(&cl.ConvConfig{
		File: file,
		Enum: conf.Enum,
		NC: &ncimpl.Converter{
			MemberSuffix: conf.MemberSuffix,
			TypeSuffix:   conf.TypeSuffix,
			StubPrefix:   conf.StubPrefix,
			StubSuffix:   conf.StubSuffix,
		},
		Mandatory: manifest,
		Progress:  conf.Progress,
		Registrar: cl.Registrar{
			Func:         conf.Register,
			SetCallback:  conf.SetCallback,
			CallbackType: conf.CallbackType,
			ResultType:   conf.ResultType,
			Success:      conf.Success,
		},
		Headers: conf.Headers,
		Parser:  parser,
		Include: conf.Include,
		CFlags:  conf.CFlags,
		Macros:  conf.Macros,
	})
	if err != nil {
		return err
	}
	if err := cwrite.Write(conf.Output, res.Code); err != nil {
		return err
	}
	if opts.verbose {
		log.Printf("%s: %d callbacks of %s generated\n", conf.Name, len(res.Callbacks), conf.Enum)
	}
	return nil
}

// loadConf reads cfgFile, or the default cbgen.cfg when cfgFile is empty.
// Without any config file the built-in defaults apply.
func loadConf(cfgFile string) (*config.Config, error) {
	explicit := cfgFile != ""
	if !explicit {
		cfgFile = config.CBGEN_CFG
	}
	conf, err := config.GetConfFromFile(cfgFile)
	if err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		conf = config.NewDefault()
	}
	conf.ExpandEnv()
	if cfgFile != "-" {
		dir := filepath.Dir(cfgFile)
		conf.Model = resolve(dir, conf.Model)
		conf.Manifest = resolve(dir, conf.Manifest)
		conf.Output = resolve(dir, conf.Output)
	}
	return conf, nil
}

func resolve(dir, file string) string {
	if file == "" || file == "-" || filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(dir, file)
}
