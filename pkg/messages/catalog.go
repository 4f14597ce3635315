// Package messages provides a YAML-backed localization catalog that plugs
// into the parse context's Localize seam. Hosts with their own localization
// pipeline can ignore it entirely.
package messages

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/snoolib/modcmd/pkg/command"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Catalog maps failure codes to message templates. Templates use positional
// {0}, {1} placeholders; parameter zero is the argument descriptor (rendered
// as its key) and parameter one the offending value.
type Catalog struct {
	messages map[string]string
}

// Default returns the built-in English catalog. It covers every failure code
// the interpreter emits.
func Default() *Catalog {
	c, err := parse(defaultsYAML)
	if err != nil {
		// The embedded catalog is part of the build; a parse failure here
		// is a broken release, not a runtime condition.
		panic(fmt.Sprintf("messages: embedded defaults: %v", err))
	}
	return c
}

// Load reads a catalog from a YAML file of code-to-template pairs. Codes
// missing from the file fall back to the embedded defaults.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("messages: read %s: %w", path, err)
	}
	overlay, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("messages: parse %s: %w", path, err)
	}
	c := Default()
	for code, tmpl := range overlay.messages {
		c.messages[code] = tmpl
	}
	return c, nil
}

func parse(data []byte) (*Catalog, error) {
	messages := make(map[string]string)
	if err := yaml.Unmarshal(data, &messages); err != nil {
		return nil, err
	}
	return &Catalog{messages: messages}, nil
}

// Localize implements the parse context's localization seam.
func (c *Catalog) Localize(code string, params ...any) (string, bool) {
	tmpl, ok := c.messages[code]
	if !ok {
		return "", false
	}
	return expand(tmpl, params), true
}

func expand(tmpl string, params []any) string {
	out := tmpl
	for i, p := range params {
		out = strings.ReplaceAll(out, fmt.Sprintf("{%d}", i), render(p))
	}
	return out
}

func render(p any) string {
	switch v := p.(type) {
	case nil:
		return ""
	case *command.ArgSpec:
		return v.Key
	case *command.Filing:
		return v.Name
	case string:
		return v
	}
	return fmt.Sprint(p)
}
