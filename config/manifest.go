package config

import (
	"fmt"
	"strings"

	"github.com/qiniu/x/errors"
	"gopkg.in/yaml.v3"
)

// Manifest maps event names to whether registering their callback must
// always succeed. A missing event is not mandatory.
type Manifest map[string]bool

func (m Manifest) Mandatory(event string) bool {
	return m[event]
}

// GetManifestFromFile loads a manifest, a "-" file reads stdin.
func GetManifestFromFile(file string) (Manifest, error) {
	data, err := ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	m, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", file, err)
	}
	return m, nil
}

// ParseManifest decodes a flat YAML mapping of event name to bool.
func ParseManifest(data []byte) (Manifest, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	m := make(Manifest)
	if doc.Kind == 0 {
		return m, nil
	}
	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return m, nil
		}
		root = root.Content[0]
	}
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return m, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expect a mapping of event names", root.Line)
	}

	var errs errors.List
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		if key.Kind != yaml.ScalarNode || key.Value == "" {
			errs.Add(fmt.Errorf("line %d: invalid event name", key.Line))
			continue
		}
		if _, dup := m[key.Value]; dup {
			errs.Add(fmt.Errorf("line %d: duplicate event %s", key.Line, key.Value))
			continue
		}
		mandatory, ok := boolValue(val)
		if !ok {
			errs.Add(fmt.Errorf("line %d: %s: expect true or false, got %q", val.Line, key.Value, val.Value))
			continue
		}
		m[key.Value] = mandatory
	}
	if err := errs.ToError(); err != nil {
		return nil, err
	}
	return m, nil
}

// boolValue accepts YAML 1.2 booleans and the plain YAML 1.1 spellings
// yes/no and on/off in any case.
func boolValue(val *yaml.Node) (bool, bool) {
	if val.Kind != yaml.ScalarNode {
		return false, false
	}
	if val.Tag == "!!bool" {
		var b bool
		if err := val.Decode(&b); err != nil {
			return false, false
		}
		return b, true
	}
	if val.Style&(yaml.SingleQuotedStyle|yaml.DoubleQuotedStyle|yaml.LiteralStyle|yaml.FoldedStyle) != 0 {
		return false, false
	}
	switch strings.ToLower(val.Value) {
	case "yes", "on":
		return true, true
	case "no", "off":
		return false, true
	}
	return false, false
}
