// Package app runs the terminal UI on top of the sync loop.
package app

import "github.com/llehouerou/mpdwaves/internal/session"

// FrameMsg carries a freshly built frame from the loop to the program.
type FrameMsg struct {
	Frame session.Frame
}

// LoopDoneMsg is sent when the sync loop returns. The program quits on it.
type LoopDoneMsg struct {
	Err error
}
