package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"i3uw/internal/app"
	"i3uw/internal/wm"
	"i3uw/pkg/config"
	"i3uw/pkg/logger"
)

type rootFlags struct {
	configPath string
	debug      bool
	dryRun     bool
	logFile    string
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	root := &cobra.Command{
		Use:   "i3uw",
		Short: "Float a lone window and tile pairs on i3/sway workspaces",
		Long: `i3uw watches window events from i3 or sway. On a handled workspace a single
window is floated, resized and moved to the configured spot; when a second
window arrives both are tiled and the new one is moved to the right.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDaemon(cmd.Context(), flags)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "path to config file (.toml, .yaml or .json)")
	pf.BoolVar(&flags.debug, "debug", false, "enable debug logging")
	pf.StringVar(&flags.logFile, "log-file", "", "log file path (default "+logger.DefaultLogDir+"/"+logger.DefaultLogFile+")")

	run := &cobra.Command{
		Use:   "run",
		Short: "Run the event loop (default)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDaemon(cmd.Context(), flags)
		},
	}
	for _, c := range []*cobra.Command{root, run} {
		c.Flags().BoolVar(&flags.dryRun, "dry-run", false, "log commands instead of sending them")
	}

	root.AddCommand(run, newCheckCmd(&flags), newVersionCmd())
	return root
}

func newLogger(flags rootFlags) (*logger.Logger, error) {
	logLevel := zerolog.InfoLevel
	if flags.debug {
		logLevel = zerolog.DebugLevel
	}
	opts := []logger.Option{logger.WithConsole(), logger.WithLevel(logLevel)}
	if flags.logFile != "" {
		opts = append(opts, logger.WithFile(flags.logFile))
	}
	return logger.NewLogger(opts...)
}

func runDaemon(ctx context.Context, flags rootFlags) error {
	log, err := newLogger(flags)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Close()

	log.Info("Starting i3uw",
		"version", version,
		"pid", os.Getpid(),
		"os", runtime.GOOS,
		"arch", runtime.GOARCH,
		"debug", flags.debug,
		"dry_run", flags.dryRun)

	cfg, err := config.Find(flags.configPath, log)
	if err != nil {
		log.Error("Failed to load configuration", err, "provided_path", flags.configPath)
		return err
	}
	log.Info("Configuration loaded successfully",
		"path", cfg.Path(),
		"workspaces", cfg.HandledWorkspaces(),
		"size", cfg.Size(),
		"position", cfg.Position())

	manager, err := wm.NewManager(log, wm.WithDryRun(flags.dryRun))
	if err != nil {
		log.Error("Failed to connect to window manager", err)
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.NewI3UW(cfg, manager, log).Run(ctx)
}

func newCheckCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Load and validate the configuration, then exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := logger.NewLogger(logger.WithWriter(cmd.ErrOrStderr()), logger.WithLevel(zerolog.WarnLevel))
			if err != nil {
				return err
			}
			cfg, err := config.Find(flags.configPath, log)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			size, pos := cfg.Size(), cfg.Position()
			fmt.Fprintf(out, "config:     %s\n", cfg.Path())
			fmt.Fprintf(out, "workspaces: %v\n", cfg.HandledWorkspaces())
			fmt.Fprintf(out, "size:       %dx%d\n", size.Width, size.Height)
			fmt.Fprintf(out, "position:   %d,%d\n", pos.X, pos.Y)
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "i3uw %s (commit %s)\n", version, commit)
		},
	}
}
