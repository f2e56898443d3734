package daemon

import (
	"errors"
	"fmt"
	"io"
	"net"
	"syscall"
)

// ErrNoMixer is returned by volume changes when the daemon has no mixer.
var ErrNoMixer = errors.New("daemon has no volume control")

// Kind separates connection failures from commands the daemon rejected.
type Kind int

const (
	KindProtocol Kind = iota
	KindTransport
)

func (k Kind) String() string {
	if k == KindTransport {
		return "transport"
	}
	return "protocol"
}

// Error wraps a failed daemon call with the command that produced it.
type Error struct {
	Op   string
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s error: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Classify reports whether err came from the connection or from the daemon itself.
func Classify(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	var netErr net.Error
	switch {
	case errors.As(err, &netErr),
		errors.Is(err, io.EOF),
		errors.Is(err, io.ErrUnexpectedEOF),
		errors.Is(err, net.ErrClosed),
		errors.Is(err, syscall.EPIPE),
		errors.Is(err, syscall.ECONNRESET),
		errors.Is(err, syscall.ECONNREFUSED):
		return KindTransport
	}
	return KindProtocol
}

// IsTransport reports whether err is a connection failure.
func IsTransport(err error) bool {
	return err != nil && Classify(err) == KindTransport
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Kind: Classify(err), Err: err}
}
