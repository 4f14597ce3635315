// Package loader discovers command definition files on disk and feeds them
// through the normal registration API, one file per command. It is glue: all
// validation and alias bookkeeping stays in pkg/command.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"

	"github.com/snoolib/modcmd/pkg/command"
	"github.com/snoolib/modcmd/pkg/logging"
)

// CommandsDirName is the directory, under the project root or the user home,
// that Discover scans for definitions.
const CommandsDirName = ".modcmd/commands"

// ArgDef is the on-disk shape of one argument descriptor.
type ArgDef struct {
	Key         string `yaml:"key"`
	Type        string `yaml:"type"`
	Description string `yaml:"description"`
	Required    bool   `yaml:"required"`
	Default     any    `yaml:"default"`
	Choices     []any  `yaml:"choices"`
	MinLength   *int   `yaml:"min_length"`
	MaxLength   *int   `yaml:"max_length"`
	Matches     string `yaml:"matches"`
	Min         *int64 `yaml:"min"`
	Max         *int64 `yaml:"max"`
	FollowAlias *bool  `yaml:"follow_alias"`
}

// Definition is the on-disk shape of one command. Handler names the entry in
// the loader's handler table the command is bound to.
type Definition struct {
	Name            string   `yaml:"name"`
	Command         string   `yaml:"command"`
	Aliases         []string `yaml:"aliases"`
	Description     string   `yaml:"description"`
	LongDescription string   `yaml:"long_description"`
	Category        string   `yaml:"category"`
	Permissionless  bool     `yaml:"permissionless"`
	Handler         string   `yaml:"handler"`
	Arguments       []ArgDef `yaml:"arguments"`
}

// Loader registers discovered definitions into a registry.
type Loader struct {
	registry *command.Registry
	handlers map[string]command.Handler
	fallback command.Handler
	log      logging.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the loader's logger.
func WithLogger(l logging.Logger) Option {
	return func(ld *Loader) { ld.log = l }
}

// WithFallbackHandler binds definitions whose handler name is unknown (or
// empty) to the given handler instead of failing the file.
func WithFallbackHandler(h command.Handler) Option {
	return func(ld *Loader) { ld.fallback = h }
}

// New returns a loader that binds definitions to the named handlers.
func New(reg *command.Registry, handlers map[string]command.Handler, opts ...Option) *Loader {
	ld := &Loader{
		registry: reg,
		handlers: handlers,
		log:      logging.NewDisabledLogger(),
	}
	for _, opt := range opts {
		opt(ld)
	}
	return ld
}

// Discover loads definitions from the user-level commands directory and then
// the project-level one, so project definitions shadow user definitions.
// Missing directories are fine.
func (ld *Loader) Discover(projectRoot string) error {
	if home, err := homedir.Dir(); err == nil {
		if err := ld.LoadDir(filepath.Join(home, CommandsDirName)); err != nil {
			return err
		}
	}
	return ld.LoadDir(filepath.Join(projectRoot, CommandsDirName))
}

// LoadDir loads every .yaml/.yml file under dir, recursively. A missing
// directory loads nothing.
func (ld *Loader) LoadDir(dir string) error {
	if _, err := os.Stat(dir); err != nil {
		ld.log.Debug("commands directory not present", "dir", dir)
		return nil
	}
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !isDefinitionFile(info.Name()) {
			return nil
		}
		if err := ld.LoadFile(path); err != nil {
			return err
		}
		return nil
	})
}

// LoadFile registers the single definition in path. A malformed file aborts
// with a wrapped error rather than being silently dropped.
func (ld *Loader) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("loader: read %s: %w", path, err)
	}
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return fmt.Errorf("loader: parse %s: %w", path, err)
	}
	spec, err := ld.toSpec(&def)
	if err != nil {
		return fmt.Errorf("loader: %s: %w", path, err)
	}
	if err := ld.registry.Register(spec); err != nil {
		return fmt.Errorf("loader: %s: %w", path, err)
	}
	ld.log.Debug("registered command", "file", path, "name", spec.Name)
	return nil
}

func (ld *Loader) toSpec(def *Definition) (*command.Spec, error) {
	handler := ld.fallback
	if def.Handler != "" {
		h, ok := ld.handlers[def.Handler]
		if !ok && ld.fallback == nil {
			return nil, fmt.Errorf("unknown handler %q", def.Handler)
		}
		if ok {
			handler = h
		}
	}
	spec := &command.Spec{
		Name:            def.Name,
		Command:         def.Command,
		Aliases:         def.Aliases,
		Description:     def.Description,
		LongDescription: def.LongDescription,
		Category:        def.Category,
		Permissionless:  def.Permissionless,
		Handler:         handler,
	}
	for i := range def.Arguments {
		a := &def.Arguments[i]
		spec.Arguments = append(spec.Arguments, &command.ArgSpec{
			Key:         a.Key,
			Type:        a.Type,
			Description: a.Description,
			Required:    a.Required,
			Default:     normalizeDefault(a.Type, a.Default),
			Choices:     a.Choices,
			MinLength:   a.MinLength,
			MaxLength:   a.MaxLength,
			Matches:     a.Matches,
			Min:         a.Min,
			Max:         a.Max,
			FollowAlias: a.FollowAlias,
		})
	}
	return spec, nil
}

// normalizeDefault widens YAML's int defaults to the int64 the integer type
// produces, so defaults and parsed values look alike to handlers.
func normalizeDefault(typ string, def any) any {
	if def == nil {
		return nil
	}
	switch typ {
	case command.TypeInteger, command.TypeDuration:
		if n, ok := def.(int); ok {
			return int64(n)
		}
	}
	return def
}

func isDefinitionFile(name string) bool {
	return strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")
}
