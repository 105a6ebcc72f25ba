package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ironsheep/color-tools-mcp/internal/config"
	"github.com/ironsheep/color-tools-mcp/internal/filters"
	"github.com/ironsheep/color-tools-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// errNoValue makes convert exit with status 1 without printing anything.
var errNoValue = errors.New("no value")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errNoValue) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	root := &cobra.Command{
		Use:   "color-mcp",
		Short: "MCP server for color parsing and conversion",
		Long: `color-mcp converts colors between hex, rgb and hsl notations.

Run without a command it serves the color tools over the MCP protocol on
stdin/stdout. Configure it in your MCP client (e.g., Claude Desktop).`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, cfgFile)
			if err != nil {
				return err
			}

			logger, err := buildLogger(cfg.Logging.File, cfg.Logging.Level)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			logger.Info("starting color-mcp",
				zap.String("version", Version),
				zap.String("build_time", BuildTime),
				zap.String("commit", GitCommit))

			srv := server.New(server.Config{
				Version:      Version,
				SwatchWidth:  cfg.Swatch.Width,
				SwatchHeight: cfg.Swatch.Height,
				PaletteCount: cfg.Palette.Count,
			}, logger)
			if err := srv.Serve(cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
				logger.Error("server error", zap.Error(err))
				return err
			}
			return nil
		},
	}
	root.SetVersionTemplate(fmt.Sprintf("color-mcp {{.Version}}\n  Build time: %s\n  Git commit: %s\n", BuildTime, GitCommit))

	flags := root.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: ./color-mcp.yaml or $HOME/.config/color-mcp/color-mcp.yaml)")
	flags.String("log-level", "", "log level: debug, info, warn, error (env COLOR_MCP_LOGGING_LEVEL)")
	flags.String("log-file", "", "log file path (default: stderr; stdout is never used)")

	_ = v.BindPFlag("logging.level", flags.Lookup("log-level"))
	_ = v.BindPFlag("logging.file", flags.Lookup("log-file"))

	root.AddCommand(newConvertCmd())
	return root
}

func newConvertCmd() *cobra.Command {
	collection := filters.WithColorFilters(filters.NewCollection())

	return &cobra.Command{
		Use:   "convert <filter> <color> [args...]",
		Short: "Apply one color filter and print the result",
		Long: fmt.Sprintf(`Apply one color filter to a color and print the result.

Filters: %v

Nothing is printed and the exit status is 1 when the color is not
recognized by the filter.`, collection.Names()),
		Example: `  color-mcp convert color_to_hex "rgb(255, 0, 0)"
  color-mcp convert color_extract "hsl(120, 50%, 50%)" green`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := collection.Invoke(args[0], args[1], filters.Arguments(args[2:]), filters.EvalContext{})
			if err != nil {
				return err
			}
			if value.IsNil() {
				return errNoValue
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
			return err
		},
	}
}
