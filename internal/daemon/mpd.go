package daemon

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/fhs/gompd/v2/mpd"
)

// Options locate and authenticate the daemon.
type Options struct {
	Host     string
	Port     int
	Password string
	Timeout  time.Duration
}

// Network returns "unix" for socket paths and "tcp" otherwise.
func (o Options) Network() string {
	if strings.HasPrefix(o.Host, "/") || strings.HasPrefix(o.Host, "@") {
		return "unix"
	}
	return "tcp"
}

// Address returns the dial address for Network.
func (o Options) Address() string {
	if o.Network() == "unix" {
		return o.Host
	}
	return net.JoinHostPort(o.Host, strconv.Itoa(o.Port))
}

func (o Options) String() string {
	return o.Network() + "://" + o.Address()
}

// MPD is a Client backed by a single gompd connection.
type MPD struct {
	conn *mpd.Client
}

var _ Client = (*MPD)(nil)

// Dial connects to the daemon. The context bounds the connection attempt only.
func Dial(ctx context.Context, opts Options) (*MPD, error) {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	type result struct {
		conn *mpd.Client
		err  error
	}
	done := make(chan result, 1)
	go func() {
		var r result
		if opts.Password != "" {
			r.conn, r.err = mpd.DialAuthenticated(opts.Network(), opts.Address(), opts.Password)
		} else {
			r.conn, r.err = mpd.Dial(opts.Network(), opts.Address())
		}
		done <- r
	}()

	select {
	case r := <-done:
		if r.err != nil {
			return nil, wrap("dial "+opts.String(), r.err)
		}
		return &MPD{conn: r.conn}, nil
	case <-ctx.Done():
		// Reap the late connection so it does not leak.
		go func() {
			if r := <-done; r.conn != nil {
				_ = r.conn.Close()
			}
		}()
		return nil, &Error{Op: "dial " + opts.String(), Kind: KindTransport, Err: ctx.Err()}
	}
}

func (m *MPD) Status() (Status, error) {
	attrs, err := m.conn.Status()
	if err != nil {
		return Status{}, wrap("status", err)
	}
	st, err := parseStatus(attrs)
	if err != nil {
		return Status{}, &Error{Op: "status", Kind: KindProtocol, Err: err}
	}
	return st, nil
}

func (m *MPD) CurrentTrack() (*Track, error) {
	attrs, err := m.conn.CurrentSong()
	if err != nil {
		return nil, wrap("currentsong", err)
	}
	if len(attrs) == 0 || attrs["file"] == "" {
		return nil, nil
	}
	t := parseTrack(attrs)
	return &t, nil
}

func (m *MPD) Queue() ([]Track, error) {
	list, err := m.conn.PlaylistInfo(-1, -1)
	if err != nil {
		return nil, wrap("playlistinfo", err)
	}
	tracks := make([]Track, 0, len(list))
	for _, attrs := range list {
		tracks = append(tracks, parseTrack(attrs))
	}
	return tracks, nil
}

func (m *MPD) Playlists() ([]Playlist, error) {
	list, err := m.conn.ListPlaylists()
	if err != nil {
		return nil, wrap("listplaylists", err)
	}
	out := make([]Playlist, 0, len(list))
	for _, attrs := range list {
		out = append(out, parsePlaylist(attrs))
	}
	return out, nil
}

// TogglePause sends a bare pause, which the daemon treats as a toggle.
func (m *MPD) TogglePause() error {
	return wrap("pause", m.conn.Command("pause").OK())
}

func (m *MPD) SetVolume(percent int) error {
	if percent < 0 || percent > 100 {
		return &Error{Op: "setvol", Kind: KindProtocol, Err: fmt.Errorf("volume %d out of range", percent)}
	}
	return wrap("setvol", m.conn.SetVolume(percent))
}

func (m *MPD) SwitchTo(index int) error {
	return wrap("play "+strconv.Itoa(index), m.conn.Play(index))
}

func (m *MPD) Close() error {
	return wrap("close", m.conn.Close())
}
