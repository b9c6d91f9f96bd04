// File: diag/logrus.go
// Author: momentics <momentics@gmail.com>

package diag

import (
	"github.com/sirupsen/logrus"
)

// NewLogrusHandler adapts a logrus logger into a Handler, so applications
// that already run structured logging can absorb the debug stream:
//
//	diag.SetHandler(diag.NewLogrusHandler(logrus.StandardLogger()), nil)
func NewLogrusHandler(logger *logrus.Logger) Handler {
	return func(_ any, message string) {
		logger.WithField("source", "netfd").Debug(message)
	}
}
