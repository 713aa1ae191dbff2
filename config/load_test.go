package config_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/goplus/cbgen/config"
)

type testMode int

const (
	useStdin testMode = 1 << iota
	useFile
)

func TestGetConfFromFile(t *testing.T) {
	ompt := config.NewDefault()
	ompt.Output = "nrm_omp_callbacks.c"
	ompt.Headers = []string{"assert.h", "nrm_omp.h"}

	custom := config.NewDefault()
	custom.Name = "roctx"
	custom.Enum = "roctx_callbacks_t"
	custom.MemberSuffix = "_id"
	custom.TypeSuffix = "_fn"
	custom.StubPrefix = "my_"
	custom.StubSuffix = "_stub"
	custom.ResultType = ""
	custom.Macros = map[string]string{"__nonnull(a)": ""}

	testCases := []struct {
		name      string
		input     string
		mode      testMode
		expect    *config.Config
		expectErr bool
	}{
		{
			name: "OMPT configuration(File)",
			input: `{
  "output": "nrm_omp_callbacks.c",
  "headers": ["assert.h", "nrm_omp.h"]
}`,
			expect: ompt,
			mode:   useFile,
		},
		{
			name: "OMPT configuration(Stdin)",
			input: `{
  "output": "nrm_omp_callbacks.c",
  "headers": ["assert.h", "nrm_omp.h"]
}`,
			expect: ompt,
			mode:   useStdin,
		},
		{
			name: "Custom naming(File)",
			input: `{
  "name": "roctx",
  "enum": "roctx_callbacks_t",
  "memberSuffix": "_id",
  "typeSuffix": "_fn",
  "stubPrefix": "my_",
  "stubSuffix": "_stub",
  "resultType": "",
  "macros": {"__nonnull(a)": ""}
}`,
			expect: custom,
			mode:   useFile,
		},
		{
			name:      "Invalid JSON",
			input:     `{invalid json}`,
			expectErr: true,
			mode:      useFile,
		},
		{
			name:      "Invalid JSON(Stdin)",
			input:     `{"enum": 1}`,
			expectErr: true,
			mode:      useStdin,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			file := filepath.Join(t.TempDir(), config.CBGEN_CFG)
			if err := os.WriteFile(file, []byte(tc.input), 0644); err != nil {
				t.Fatal(err)
			}

			var result *config.Config
			var err error
			if tc.mode&useStdin != 0 {
				fileR, err := os.Open(file)
				if err != nil {
					t.Fatal(err)
				}
				defer fileR.Close()

				stdin := os.Stdin
				defer func() { os.Stdin = stdin }()
				os.Stdin = fileR

				result, err = config.GetConfFromFile("-")
				if tc.expectErr {
					if err == nil {
						t.Fatalf("expected error for test case %s, but got nil", tc.name)
					}
					return
				}
				if err != nil {
					t.Fatalf("Unexpected error for test case %s: %v", tc.name, err)
				}
			}

			if tc.mode&useFile != 0 {
				result, err = config.GetConfFromFile(file)
				if tc.expectErr {
					if err == nil {
						t.Fatalf("expected error for test case %s, but got nil", tc.name)
					}
					return
				}
				if err != nil {
					t.Fatalf("Unexpected error for test case %s: %v", tc.name, err)
				}
			}

			if !reflect.DeepEqual(result, tc.expect) {
				t.Fatalf("expected %#v, but got %#v", tc.expect, result)
			}
		})
	}
}

func TestGetConfFromFileNotFound(t *testing.T) {
	_, err := config.GetConfFromFile(filepath.Join(t.TempDir(), "nonexistent_file.cfg"))
	if err == nil {
		t.Error("Expected error for non-existent file, got nil")
	}
}

func TestWriteFileRoundTrip(t *testing.T) {
	conf := config.NewDefault()
	conf.Headers = []string{"assert.h"}
	file := filepath.Join(t.TempDir(), config.CBGEN_CFG)
	if err := config.WriteFile(conf, file); err != nil {
		t.Fatal(err)
	}
	got, err := config.GetConfFromFile(file)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, conf) {
		t.Fatalf("expected %#v, but got %#v", conf, got)
	}
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("OMPT_ROOT", "/opt/omp")
	conf := config.NewDefault()
	conf.CFlags = "-I${OMPT_ROOT}/include"
	conf.Model = "$OMPT_ROOT/omp-tools.yaml"
	conf.ExpandEnv()
	if conf.CFlags != "-I/opt/omp/include" {
		t.Errorf("unexpected cflags: %q", conf.CFlags)
	}
	if conf.Model != "/opt/omp/omp-tools.yaml" {
		t.Errorf("unexpected model: %q", conf.Model)
	}
}

func TestValidate(t *testing.T) {
	if err := config.NewDefault().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
	fields := map[string]func(c *config.Config){
		"enum":         func(c *config.Config) { c.Enum = "" },
		"register":     func(c *config.Config) { c.Register = "" },
		"setCallback":  func(c *config.Config) { c.SetCallback = "" },
		"callbackType": func(c *config.Config) { c.CallbackType = "" },
		"success":      func(c *config.Config) { c.Success = "" },
	}
	for name, clear := range fields {
		conf := config.NewDefault()
		clear(conf)
		if err := conf.Validate(); err == nil {
			t.Errorf("expect error when %s is empty", name)
		}
	}
}
