// internal/app/run.go
package app

import (
	"context"
	"errors"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/llehouerou/mpdwaves/internal/config"
	"github.com/llehouerou/mpdwaves/internal/daemon"
	"github.com/llehouerou/mpdwaves/internal/errmsg"
	"github.com/llehouerou/mpdwaves/internal/icons"
	"github.com/llehouerou/mpdwaves/internal/keymap"
	"github.com/llehouerou/mpdwaves/internal/logging"
	"github.com/llehouerou/mpdwaves/internal/mirror"
	"github.com/llehouerou/mpdwaves/internal/notify"
	"github.com/llehouerou/mpdwaves/internal/session"
	"github.com/llehouerou/mpdwaves/internal/state"
	"github.com/llehouerou/mpdwaves/internal/stderr"
	"github.com/llehouerou/mpdwaves/internal/syncloop"
)

// inputBuffer is the number of key presses queued ahead of the loop.
const inputBuffer = 64

// idleSubsystems are the daemon changes that trigger a background refresh.
var idleSubsystems = []string{"player", "mixer", "playlist", "options", "stored_playlist"}

// wiring is the session plus the refresh strategy chosen by sync.mode.
type wiring struct {
	session       *session.Session
	refreshOnTick bool
	// background keeps a locked mirror current; nil in loop mode.
	background func(ctx context.Context)
}

func wire(client daemon.Client, cfg *config.Config, store state.Interface, events <-chan string, log logrus.FieldLogger) (*wiring, error) {
	m, err := mirror.New(client, logging.Component(log, "mirror"))
	if err != nil {
		return nil, err
	}
	bindings, err := cfg.Bindings()
	if err != nil {
		return nil, errmsg.Wrap(errmsg.OpConfigLoad, err)
	}

	w := &wiring{refreshOnTick: true}
	var st session.State = m
	if cfg.Sync.Mode == config.SyncBackground {
		locked := mirror.NewLocked(m)
		st = locked
		w.refreshOnTick = false
		r := &mirror.Refresher{
			State:    locked,
			Interval: cfg.Sync.RefreshInterval,
			Events:   events,
			Log:      logging.Component(log, "refresher"),
		}
		w.background = r.Run
	}

	w.session = session.New(st, session.Options{
		Keys:   keymap.NewTable(bindings),
		Log:    logging.Component(log, "session"),
		Store:  store,
		Daemon: cfg.DaemonOptions().String(),
	})
	return w, nil
}

// announcer passes every rendered frame to the track-change notifier.
type announcer struct {
	syncloop.Renderer
	nowPlaying *notify.NowPlaying
}

func (a announcer) Render(f session.Frame) {
	a.nowPlaying.Observe(f.Snapshot)
	a.Renderer.Render(f)
}

// withNotifications wraps r when notifications are enabled. The returned
// function delivers them and must run until ctx is cancelled.
func withNotifications(r syncloop.Renderer, cfg *config.Config, log logrus.FieldLogger) (syncloop.Renderer, func(ctx context.Context)) {
	if !cfg.Notify.Enabled {
		return r, nil
	}
	n, err := notify.New()
	if err != nil {
		log.WithError(err).Warn("desktop notifications unavailable")
		return r, nil
	}
	np := notify.NewNowPlaying(n, int32(cfg.Notify.Timeout.Milliseconds()), logging.Component(log, "notify"))
	return announcer{Renderer: r, nowPlaying: np}, np.Run
}

// openStore opens the session store, or returns nil when persistence is
// disabled or unavailable.
func openStore(cfg *config.Config, log logrus.FieldLogger) state.Interface {
	if !cfg.State.Enabled {
		return nil
	}
	mgr, err := state.Open(cfg.State.Path, logging.Component(log, "state"))
	if err != nil {
		log.WithError(err).Warn(errmsg.Format(errmsg.OpStateLoad, err))
		return nil
	}
	return mgr
}

// watch subscribes to idle events. Failures leave the ticker as the only trigger.
func watch(ctx context.Context, opts daemon.Options, log logrus.FieldLogger) <-chan string {
	events, errs, err := daemon.Watch(ctx, opts, idleSubsystems...)
	if err != nil {
		log.WithError(err).Warn(errmsg.Format(errmsg.OpWatch, err))
		return nil
	}
	go func() {
		for err := range errs {
			log.WithError(err).Warn("idle watcher error")
		}
	}()
	return events
}

// Run connects to the daemon and runs the interactive session. Cancelling ctx
// ends it without an error.
func Run(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) error {
	log = logging.Component(log, "app")
	opts := cfg.DaemonOptions()

	client, err := daemon.Dial(ctx, opts)
	if err != nil {
		return errmsg.Wrap(errmsg.OpConnect, err)
	}
	defer func() {
		if err := client.Close(); err != nil {
			log.WithError(err).Debug("close daemon connection")
		}
	}()
	log.WithField("daemon", opts.String()).Info("connected")

	if store := openStore(cfg, log); store != nil {
		defer store.Close()
		return run(ctx, client, cfg, store, log)
	}
	return run(ctx, client, cfg, nil, log)
}

func run(parent context.Context, client daemon.Client, cfg *config.Config, store state.Interface, log logrus.FieldLogger) error {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	var events <-chan string
	if cfg.Sync.Mode == config.SyncBackground && cfg.Sync.Idle {
		events = watch(ctx, cfg.DaemonOptions(), logging.Component(log, "watcher"))
	}
	w, err := wire(client, cfg, store, events, log)
	if err != nil {
		return err
	}

	icons.Init(cfg.Icons)
	bridge := NewBridge(inputBuffer)
	p := tea.NewProgram(NewModel(bridge, cfg.QueueColumns()), tea.WithAltScreen(), tea.WithContext(ctx))
	bridge.Attach(p.Send)

	renderer, deliver := withNotifications(bridge, cfg, log)

	var wg sync.WaitGroup
	for _, fn := range []func(context.Context){w.background, deliver} {
		if fn == nil {
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn(ctx)
		}()
	}

	loop := &syncloop.Loop{
		Session:       w.session,
		Input:         bridge,
		Renderer:      renderer,
		Log:           logging.Component(log, "loop"),
		TickRate:      cfg.Sync.TickRate,
		RefreshOnTick: w.refreshOnTick,
	}
	loopErr := make(chan error, 1)
	go func() {
		err := loop.Run(ctx)
		loopErr <- err
		p.Send(LoopDoneMsg{Err: err})
	}()

	if err := stderr.Start(logging.Component(log, "stderr")); err != nil {
		log.WithError(err).Warn("stderr capture unavailable")
	}
	_, runErr := p.Run()
	stderr.Stop()

	bridge.Close()
	err = <-loopErr
	cancel()
	wg.Wait()

	switch {
	case parent.Err() != nil:
		log.Info("interrupted")
		return nil
	case runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled):
		return runErr
	case err != nil:
		log.WithError(err).Error("sync loop failed")
		return err
	}
	log.Info("session ended")
	return nil
}
