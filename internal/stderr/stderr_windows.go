//go:build windows

// Package stderr is a no-op on Windows.
package stderr

import "github.com/sirupsen/logrus"

// Start is a no-op on Windows.
func Start(logrus.FieldLogger) error {
	return nil
}

// Stop is a no-op on Windows.
func Stop() {}
