// Package config resolves pathobject settings from flags, environment
// variables and an optional JSON file.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/vercel/pathobject/internal/pathio"
	"github.com/vercel/pathobject/internal/pathobject"
	"github.com/vercel/pathobject/internal/pathsyntax"
	"github.com/vercel/pathobject/internal/ui"
)

const (
	// EnvPrefix prefixes every environment variable we read.
	EnvPrefix = "pathobject"
	// EnvLogLevel is the environment log level
	EnvLogLevel = "PATHOBJECT_LOG_LEVEL"
)

// Config is the resolved configuration for one invocation.
type Config struct {
	Syntax    pathsyntax.Syntax
	LogLevel  hclog.Level
	ColorMode ui.ColorMode

	path pathobject.Path
}

// Path returns the location of the config file, which may not exist.
func (c *Config) Path() pathobject.Path {
	return c.path
}

// Flavor returns the Flavor for the configured syntax.
func (c *Config) Flavor() pathobject.Flavor {
	return pathobject.For(c.Syntax)
}

// SetSyntax records name as the default syntax in the config file,
// creating the file and its parents if necessary. Only the file's own
// contents are rewritten; values from flags and the environment are not
// persisted, and the syntax resolved for this invocation is unchanged.
func (c *Config) SetSyntax(io *pathio.IO, name string) error {
	if _, err := pathsyntax.Lookup(name); err != nil {
		return err
	}
	fileViper := viper.New()
	fileViper.SetConfigFile(c.path.String())
	fileViper.SetConfigType("json")
	if err := fileViper.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "reading config %v", c.path)
	}
	fileViper.Set("syntax", name)
	if err := io.EnsureDir(c.path); err != nil {
		return err
	}
	if err := fileViper.WriteConfig(); err != nil {
		return errors.Wrapf(err, "writing config %v", c.path)
	}
	return nil
}

// DefaultConfigPath returns the platform-dependent location of the user
// config file.
func DefaultConfigPath() pathobject.Path {
	return pathobject.New(filepath.Join(xdg.ConfigHome, "pathobject", "config.json"))
}

// AddFlags adds the configuration flags to the given flagset
func AddFlags(flags *pflag.FlagSet) {
	flags.Var(&syntaxValue{}, "syntax", "Path syntax to use: native, posix or windows")
	flags.String("config", "", "Path to the config file (default $XDG_CONFIG_HOME/pathobject/config.json)")
	flags.Bool("color", false, "Force color usage in the terminal")
	flags.Bool("no-color", false, "Suppress color usage in the terminal")
	flags.CountP("verbosity", "v", "verbosity, repeat for more detail (-v, -vv, -vvv)")
}

// Load resolves the configuration. Each setting comes from the first of
// flags, PATHOBJECT_* environment variables, the config file and the
// built-in default that provides it. A missing config file is not an error.
func Load(flags *pflag.FlagSet) (*Config, error) {
	path := DefaultConfigPath()
	if override, err := flags.GetString("config"); err == nil && override != "" {
		path = pathobject.New(override)
	}

	v := viper.New()
	v.SetConfigFile(path.String())
	v.SetConfigType("json")
	v.SetEnvPrefix(EnvPrefix)
	v.MustBindEnv("syntax")
	v.MustBindEnv("color")
	v.MustBindEnv("log_level", EnvLogLevel)
	v.SetDefault("syntax", "native")
	v.SetDefault("color", "auto")
	if f := flags.Lookup("syntax"); f != nil {
		if err := v.BindPFlag("syntax", f); err != nil {
			return nil, err
		}
	}
	if err := v.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "reading config %v", path)
	}

	syntax, err := pathsyntax.Lookup(v.GetString("syntax"))
	if err != nil {
		return nil, err
	}
	level, err := logLevel(v.GetString("log_level"), flags)
	if err != nil {
		return nil, err
	}
	mode, err := colorMode(v.GetString("color"), flags)
	if err != nil {
		return nil, err
	}
	return &Config{
		Syntax:    syntax,
		LogLevel:  level,
		ColorMode: mode,
		path:      path,
	}, nil
}

// logLevel starts from the configured level and lets each -v raise it.
func logLevel(configured string, flags *pflag.FlagSet) (hclog.Level, error) {
	level := hclog.NoLevel
	if configured != "" {
		level = hclog.LevelFromString(configured)
		if level == hclog.NoLevel {
			return hclog.NoLevel, errors.Errorf("%s value %q is not a valid log level", EnvLogLevel, configured)
		}
	}
	verbosity, _ := flags.GetCount("verbosity")
	var requested hclog.Level
	switch {
	case verbosity == 1:
		requested = hclog.Info
	case verbosity == 2:
		requested = hclog.Debug
	case verbosity >= 3:
		requested = hclog.Trace
	default:
		return level, nil
	}
	if level == hclog.NoLevel || level > requested {
		level = requested
	}
	return level, nil
}

func colorMode(configured string, flags *pflag.FlagSet) (ui.ColorMode, error) {
	if noColor, _ := flags.GetBool("no-color"); noColor {
		return ui.ColorModeSuppressed, nil
	}
	if forceColor, _ := flags.GetBool("color"); forceColor {
		return ui.ColorModeForced, nil
	}
	mode, err := ui.ParseColorMode(configured)
	if err != nil {
		return ui.ColorModeUndefined, err
	}
	if mode == ui.ColorModeUndefined {
		return ui.GetColorModeFromEnv(), nil
	}
	return mode, nil
}

// syntaxValue implements pflag.Value for --syntax, rejecting unknown names
// at parse time.
type syntaxValue struct {
	name string
}

var _ pflag.Value = &syntaxValue{}

func (s *syntaxValue) String() string {
	if s.name == "" {
		return "native"
	}
	return s.name
}

func (s *syntaxValue) Set(value string) error {
	if _, err := pathsyntax.Lookup(value); err != nil {
		return err
	}
	s.name = value
	return nil
}

func (s *syntaxValue) Type() string {
	return "syntax"
}
