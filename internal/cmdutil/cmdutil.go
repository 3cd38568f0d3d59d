// Package cmdutil holds functionality to run pathobject via cobra. That includes flag parsing and configuration
// of components common to all subcommands
package cmdutil

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/mitchellh/cli"
	"github.com/spf13/pflag"
	"github.com/vercel/pathobject/internal/config"
	"github.com/vercel/pathobject/internal/pathio"
	"github.com/vercel/pathobject/internal/pathobject"
	"github.com/vercel/pathobject/internal/ui"
)

// Helper is a struct used to hold configuration values passed via flag, env vars,
// config files, etc. It is not intended for direct use by pathobject commands, it drives
// the creation of CmdBase, which is then used by the commands themselves.
type Helper struct {
	// Version is the version of pathobject that is currently executing
	Version string
	Stdout  io.Writer
	Stderr  io.Writer

	cleanupsMu sync.Mutex
	cleanups   []io.Closer
}

// RegisterCleanup saves a function to be run after pathobject execution,
// even if the command that runs returns an error
func (h *Helper) RegisterCleanup(cleanup io.Closer) {
	h.cleanupsMu.Lock()
	defer h.cleanupsMu.Unlock()
	h.cleanups = append(h.cleanups, cleanup)
}

// Cleanup runs the registered cleanup handlers, in reverse order of
// registration, and reports every failure.
func (h *Helper) Cleanup() error {
	h.cleanupsMu.Lock()
	defer h.cleanupsMu.Unlock()
	var result *multierror.Error
	for i := len(h.cleanups) - 1; i >= 0; i-- {
		if err := h.cleanups[i].Close(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	h.cleanups = nil
	return result.ErrorOrNil()
}

// NewHelper returns a new helper instance to hold configuration values for the root
// pathobject command.
func NewHelper(version string) *Helper {
	return &Helper{
		Version: version,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// AddFlags adds common flags for all pathobject commands to the given flagset
func (h *Helper) AddFlags(flags *pflag.FlagSet) {
	config.AddFlags(flags)
}

func (h *Helper) getLogger(c *config.Config) hclog.Logger {
	// Default output is nowhere unless we enable logging.
	var output io.Writer = io.Discard
	color := hclog.ColorOff
	if c.LogLevel != hclog.NoLevel {
		output = h.Stderr
		if c.ColorMode != ui.ColorModeSuppressed {
			color = hclog.AutoColor
		}
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "pathobject",
		Level:  c.LogLevel,
		Color:  color,
		Output: output,
	})
}

// GetCmdBase returns a CmdBase instance configured with values from this helper.
func (h *Helper) GetCmdBase(flags *pflag.FlagSet) (*CmdBase, error) {
	c, err := config.Load(flags)
	if err != nil {
		return nil, err
	}
	logger := h.getLogger(c)
	logger.Debug("loaded config", "path", c.Path().String(), "syntax", c.Syntax.Name())
	return &CmdBase{
		UI:      ui.BuildColoredUi(c.ColorMode, h.Stdout, h.Stderr),
		Logger:  logger,
		Config:  c,
		Flavor:  c.Flavor(),
		IO:      pathio.New(logger),
		Version: h.Version,
	}, nil
}

// CmdBase encompasses configured components common to all pathobject commands.
type CmdBase struct {
	UI      cli.Ui
	Logger  hclog.Logger
	Config  *config.Config
	Flavor  pathobject.Flavor
	IO      *pathio.IO
	Version string
}

// LogWarning logs an error and outputs it to the UI.
func (b *CmdBase) LogWarning(prefix string, err error) {
	b.Logger.Warn(prefix, "warning", err)
	if prefix != "" {
		prefix = prefix + ": "
	}
	b.UI.Warn(fmt.Sprintf("%s%s%s", ui.WarningPrefix, prefix, err.Error()))
}

// LogInfo logs an message and outputs it to the UI.
func (b *CmdBase) LogInfo(msg string) {
	b.Logger.Info(msg)
	b.UI.Info(fmt.Sprintf("%s%s", ui.InfoPrefix, msg))
}
