package daemon

import (
	"context"

	"github.com/fhs/gompd/v2/mpd"
)

// Watch opens a second connection in idle mode and reports the names of
// changed subsystems. Both channels close when ctx is cancelled.
// With no subsystems every change is reported.
func Watch(ctx context.Context, opts Options, subsystems ...string) (<-chan string, <-chan error, error) {
	w, err := mpd.NewWatcher(opts.Network(), opts.Address(), opts.Password, subsystems...)
	if err != nil {
		return nil, nil, wrap("idle", err)
	}

	events := make(chan string, 1)
	errs := make(chan error, 1)
	go func() {
		defer close(events)
		defer close(errs)
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case name, ok := <-w.Event:
				if !ok {
					return
				}
				// Coalesce bursts: one pending event is enough to trigger a refresh.
				select {
				case events <- name:
				default:
				}
			case err, ok := <-w.Error:
				if !ok {
					return
				}
				select {
				case errs <- wrap("idle", err):
				default:
				}
			}
		}
	}()
	return events, errs, nil
}
