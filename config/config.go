package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/goplus/llgo/xtool/env"
)

const (
	CBGEN_CFG      = "cbgen.cfg"
	CBGEN_MODEL    = "omp-tools.yaml"
	CBGEN_MANIFEST = "omp-tools-events.yaml"
)

// Config is the content of cbgen.cfg.
type Config struct {
	Name    string            `json:"name"`
	Enum    string            `json:"enum"` // callback identifier enum
	Include []string          `json:"include"`
	CFlags  string            `json:"cflags,omitempty"`
	Macros  map[string]string `json:"macros,omitempty"`
	Parser  string            `json:"parser,omitempty"` // external parser command, used instead of Model

	Model    string `json:"model"`
	Manifest string `json:"manifest"`
	Output   string `json:"output"`

	MemberSuffix string `json:"memberSuffix"`
	TypeSuffix   string `json:"typeSuffix"`
	StubPrefix   string `json:"stubPrefix"`
	StubSuffix   string `json:"stubSuffix"`

	Progress     string   `json:"progress"`
	Register     string   `json:"register"`
	SetCallback  string   `json:"setCallback"`
	CallbackType string   `json:"callbackType"`
	ResultType   string   `json:"resultType"`
	Success      string   `json:"success"`
	Headers      []string `json:"headers,omitempty"`
}

// NewDefault returns the configuration generating the NRM OMPT tool.
func NewDefault() *Config {
	return &Config{
		Name:         "nrm_omp",
		Enum:         "ompt_callbacks_t",
		Include:      []string{"omp-tools.h"},
		Model:        CBGEN_MODEL,
		Manifest:     CBGEN_MANIFEST,
		TypeSuffix:   "_t",
		StubPrefix:   "nrm_",
		StubSuffix:   "_cb",
		Progress:     "nrm_send_progress(ctxt, 1)",
		Register:     "nrm_ompt_register_cbs",
		SetCallback:  "nrm_ompt_set_callback",
		CallbackType: "ompt_callback_t",
		ResultType:   "ompt_set_result_t",
		Success:      "ompt_set_always",
	}
}

// GetConfFromFile reads cbgen.cfg, a "-" file reads stdin. Fields missing
// from the file keep their NewDefault value.
func GetConfFromFile(cfgFile string) (*Config, error) {
	data, err := ReadFile(cfgFile)
	if err != nil {
		return nil, err
	}
	return GetConfFromByte(data)
}

func GetConfFromByte(data []byte) (*Config, error) {
	conf := NewDefault()
	if err := json.Unmarshal(data, conf); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return conf, nil
}

// ExpandEnv expands $(cmd), ${VAR} and $VAR in the path-like fields.
func (c *Config) ExpandEnv() {
	c.CFlags = env.ExpandEnv(c.CFlags)
	c.Parser = env.ExpandEnv(c.Parser)
	c.Model = env.ExpandEnv(c.Model)
	c.Manifest = env.ExpandEnv(c.Manifest)
	c.Output = env.ExpandEnv(c.Output)
}

// Validate reports settings the generator cannot run without.
func (c *Config) Validate() error {
	switch {
	case c.Enum == "":
		return fmt.Errorf("config: %q is required", "enum")
	case c.Register == "":
		return fmt.Errorf("config: %q is required", "register")
	case c.SetCallback == "":
		return fmt.Errorf("config: %q is required", "setCallback")
	case c.CallbackType == "":
		return fmt.Errorf("config: %q is required", "callbackType")
	case c.Success == "":
		return fmt.Errorf("config: %q is required", "success")
	}
	return nil
}

// WriteFile writes conf as indented JSON.
func WriteFile(conf *Config, file string) error {
	data, err := json.MarshalIndent(conf, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(file, append(data, '\n'), 0644)
}
