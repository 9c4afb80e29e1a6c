package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"fenboard/internal/config"
	"fenboard/internal/render"
	"fenboard/internal/tui"
)

var (
	// Global flags
	verbose    bool
	configPath string
	asciiMode  bool

	logger *zap.Logger
	cfg    config.Config
)

// Set by the linker at release time.
var (
	versionName = "dev"
	buildDate   = "(null)"
	gitRevision = "(null)"
)

var rootCmd = &cobra.Command{
	Use:   "fenboard",
	Short: "Parse FEN position strings and render them as a board",
	Long: `fenboard parses Forsyth-Edwards Notation (FEN) strings into a structured
position record and renders the record as a colored terminal board.

Run without arguments to start the interactive viewer.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var zcfg = zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		cfg, err = config.Load(configPath)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(newRenderer())
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and build metadata",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "fenboard",
			"VersionName", versionName,
			"BuildDate", buildDate,
			"GitRevision", gitRevision,
			"RuntimeVersion", runtime.Version(),
		)
	},
}

// newRenderer builds the renderer from config plus flag overrides.
func newRenderer() *render.Renderer {
	return render.New(render.Options{
		ASCII: asciiMode || cfg.Render.Glyphs == "ascii",
		Theme: render.Theme{
			LightSquare: cfg.Render.LightSquare,
			DarkSquare:  cfg.Render.DarkSquare,
			WhitePiece:  cfg.Render.WhitePiece,
			BlackPiece:  cfg.Render.BlackPiece,
			Label:       cfg.Render.Label,
			Highlight:   cfg.Render.Highlight,
			Error:       cfg.Render.Error,
		},
	})
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config file")
	rootCmd.PersistentFlags().BoolVar(&asciiMode, "ascii", false, "use piece letters instead of unicode glyphs")

	rootCmd.AddCommand(viewCmd, checkCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
