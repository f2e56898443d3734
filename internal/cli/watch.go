package cli

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/llehouerou/mpdwaves/internal/daemon"
	"github.com/llehouerou/mpdwaves/internal/errmsg"
	"github.com/llehouerou/mpdwaves/internal/mirror"
)

var watchSubsystems = []string{"player", "mixer", "playlist", "options", "stored_playlist"}

// newWatchCmd is a developer tool: it logs every idle event with the state
// refreshed after it, to stderr, until interrupted.
func newWatchCmd(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:    "watch",
		Short:  "Log daemon idle events and the refreshed state",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, *configFile)
			if err != nil {
				return err
			}
			log := logrus.New()
			log.SetOutput(cmd.ErrOrStderr())
			log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

			ctx, stop := interruptible(cmd.Context())
			defer stop()

			opts := cfg.DaemonOptions()
			client, err := daemon.Dial(ctx, opts)
			if err != nil {
				return errmsg.Wrap(errmsg.OpConnect, err)
			}
			defer client.Close()

			m, err := mirror.New(client, log)
			if err != nil {
				return err
			}
			events, errs, err := daemon.Watch(ctx, opts, watchSubsystems...)
			if err != nil {
				return errmsg.Wrap(errmsg.OpWatch, err)
			}
			log.WithField("daemon", opts.String()).Info("watching, ctrl+c to stop")
			watchLoop(ctx, m, events, errs, log)
			return nil
		},
	}
}

// refresher is the part of the mirror the watch loop needs.
type refresher interface {
	Refresh() error
	Snapshot() mirror.Snapshot
}

func watchLoop(ctx context.Context, m refresher, events <-chan string, errs <-chan error, log logrus.FieldLogger) {
	for {
		select {
		case <-ctx.Done():
			return
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			log.WithError(err).Warn("watcher error")
		case name, ok := <-events:
			if !ok {
				return
			}
			if err := m.Refresh(); err != nil {
				log.WithError(err).Warn(errmsg.Format(errmsg.OpRefresh, err))
				continue
			}
			logSnapshot(log, name, m.Snapshot())
		}
	}
}

func logSnapshot(log logrus.FieldLogger, subsystem string, snap mirror.Snapshot) {
	entry := log.WithFields(logrus.Fields{
		"subsystem": subsystem,
		"state":     snap.Status.State,
		"volume":    snap.Status.Volume,
		"queue":     len(snap.Queue),
		"playlists": len(snap.Playlists),
	})
	if snap.Current != nil {
		entry = entry.WithField("file", snap.Current.File)
	}
	entry.Info("changed")
}
