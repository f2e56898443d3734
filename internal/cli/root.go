// Package cli defines the mpdwaves command line.
package cli

import (
	"context"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/llehouerou/mpdwaves/internal/app"
	"github.com/llehouerou/mpdwaves/internal/config"
	"github.com/llehouerou/mpdwaves/internal/errmsg"
	"github.com/llehouerou/mpdwaves/internal/logging"
)

// NewRootCmd builds the root command. Without a subcommand it starts the
// interactive client.
func NewRootCmd() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:           "mpdwaves",
		Short:         "Terminal client for the Music Player Daemon",
		Version:       appVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, configFile)
			if err != nil {
				return err
			}
			log, closer, err := logging.Open(cfg.Log.File, cfg.Log.Level)
			if err != nil {
				return errmsg.Wrap(errmsg.OpInitialize, err)
			}
			defer closer.Close()

			ctx, stop := interruptible(cmd.Context())
			defer stop()
			return app.Run(ctx, cfg, log)
		},
	}

	fs := cmd.PersistentFlags()
	fs.StringVarP(&configFile, "config", "c", "", "config file (replaces the default search path)")
	fs.String("host", "", "daemon host or socket path, optionally password@host")
	fs.Int("port", 0, "daemon port")
	fs.String("password", "", "daemon password")
	fs.String("sync", "", "state sync mode: loop or background")
	fs.String("icons", "", "icon style: nerd, unicode or none")
	fs.String("log-file", "", "log file (default: XDG state dir)")
	fs.String("log-level", "", "log level")

	cmd.AddCommand(newStatusCmd(&configFile), newWatchCmd(&configFile))
	return cmd
}

// Execute runs the root command and prints any error to stderr.
func Execute() int {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		printError(cmd.ErrOrStderr(), err)
		return 1
	}
	return 0
}

// interruptible cancels on SIGINT and SIGTERM.
func interruptible(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
}

func printError(w io.Writer, err error) {
	_, _ = io.WriteString(w, "mpdwaves: "+err.Error()+"\n")
}

func loadConfig(cmd *cobra.Command, configFile string) (*config.Config, error) {
	cfg, err := config.Load(config.LoadOptions{File: configFile, Flags: cmd.Flags()})
	if err != nil {
		return nil, errmsg.Wrap(errmsg.OpConfigLoad, err)
	}
	return cfg, nil
}

// quietLogger discards everything; one-shot commands report errors directly.
func quietLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func appVersion() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok || bi.Main.Version == "" {
		return "unknown"
	}
	return bi.Main.Version
}
