package cli

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/roguegrid/pkg/buildinfo"
	"github.com/matzehuels/roguegrid/pkg/cache"
	"github.com/matzehuels/roguegrid/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "roguegrid"

	// configFileName is the name of the config file inside the config directory.
	configFileName = "config.toml"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	config     Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		config: DefaultConfig(),
	}
}

// SetLogLevel updates the logger's level. At debug level the pipeline,
// session and HTTP hooks log through the CLI logger.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	if level <= log.DebugLevel {
		registerLogHooks(c.Logger)
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Roguegrid generates roguelike dungeon maps",
		Long:          `Roguegrid generates grid-based dungeons: rooms on a coarse macro grid, joined by corridors drawn with box-drawing glyphs, with a start, a treasure and a goal placed for play.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return c.loadConfig()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/roguegrid/config.toml)")

	// Register all subcommands
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.gridCommand())
	root.AddCommand(c.playCommand())
	root.AddCommand(c.serveCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use. With cached set, rendered
// artifacts are kept under the XDG cache directory; if that directory can't
// be created the runner renders without a cache.
func (c *CLI) newRunner(cached bool) *pipeline.Runner {
	if !cached {
		return pipeline.NewRunner(nil, c.Logger)
	}
	dir, err := cacheDir()
	if err != nil {
		c.Logger.Debug("artifact cache disabled", "error", err)
		return pipeline.NewRunner(nil, c.Logger)
	}
	fc, err := cache.NewFileCache(dir, cache.TTLArtifact)
	if err != nil {
		c.Logger.Debug("artifact cache disabled", "dir", dir, "error", err)
		return pipeline.NewRunner(nil, c.Logger)
	}
	return pipeline.NewRunner(fc, c.Logger)
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatText}
	}
	var formats []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			formats = append(formats, f)
		}
	}
	return formats
}
