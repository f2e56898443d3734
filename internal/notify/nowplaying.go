package notify

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/llehouerou/mpdwaves/internal/daemon"
	"github.com/llehouerou/mpdwaves/internal/mirror"
	"github.com/llehouerou/mpdwaves/internal/ui/render"
)

// DefaultTimeout is how long a track notification stays up, in ms.
const DefaultTimeout = 4000

// NowPlaying turns track changes seen in snapshots into notifications.
// Observe is called from the sync loop and never blocks; Run delivers.
type NowPlaying struct {
	notifier Notifier
	log      logrus.FieldLogger
	timeout  int32

	pending chan Notification
	last    string // file of the last announced track
	seen    bool
}

// NewNowPlaying creates a NowPlaying sending through n. A timeout of 0
// uses DefaultTimeout.
func NewNowPlaying(n Notifier, timeout int32, log logrus.FieldLogger) *NowPlaying {
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &NowPlaying{
		notifier: n,
		log:      log,
		timeout:  timeout,
		pending:  make(chan Notification, 1),
	}
}

// Observe queues a notification when snap's current track differs from the
// last one observed. The first snapshot only records the track, so starting
// the client does not announce what was already playing. When a
// notification is still queued, the newer one replaces it.
func (p *NowPlaying) Observe(snap mirror.Snapshot) {
	file := ""
	if snap.Current != nil && snap.Status.State == daemon.StatePlay {
		file = snap.Current.File
	}
	first := !p.seen
	p.seen = true
	if file == p.last {
		return
	}
	p.last = file
	if first || file == "" {
		return
	}

	n := Notification{
		Title:   trackTitle(*snap.Current),
		Body:    trackBody(*snap.Current),
		Icon:    "audio-x-generic",
		Timeout: p.timeout,
		Urgency: UrgencyLow,
	}
	for {
		select {
		case p.pending <- n:
			return
		default:
		}
		select {
		case <-p.pending:
		default:
		}
	}
}

// Run sends queued notifications until ctx is cancelled. Each one replaces
// the previous so only the latest track is on screen.
func (p *NowPlaying) Run(ctx context.Context) {
	var id uint32
	for {
		select {
		case <-ctx.Done():
			if id != 0 {
				_ = p.notifier.Close(id)
			}
			return
		case n := <-p.pending:
			n.ReplacesID = id
			newID, err := p.notifier.Notify(n)
			if err != nil {
				p.log.WithError(err).Debug("notification failed")
				continue
			}
			id = newID
		}
	}
}

func trackTitle(t daemon.Track) string {
	if t.Title != "" {
		return render.Sanitize(t.Title)
	}
	return render.Sanitize(t.File)
}

func trackBody(t daemon.Track) string {
	parts := make([]string, 0, 2)
	for _, tag := range []string{"Artist", "Album"} {
		if v := t.Tag(tag); v != "" {
			parts = append(parts, render.Sanitize(v))
		}
	}
	return strings.Join(parts, " - ")
}
