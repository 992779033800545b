// Package netcalclog is netcalc's leveled logger: a small
// Trace/Debug/Info/Warn/Error surface over github.com/sirupsen/logrus so
// structured fields (script line numbers, operation counts) come through
// as real key/value pairs rather than string concatenation.
package netcalclog

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// base is the package-level logrus logger every helper writes through.
// Tests that want to inspect output should construct their own
// logrus.Logger and call the instance methods instead.
var base = logrus.New()

func init() {
	base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	base.SetLevel(logrus.InfoLevel)
}

// SetLevel parses level (trace/debug/info/warn/error, case-insensitive)
// and sets the global log level. An unrecognized level is an error and
// leaves the current level unchanged.
func SetLevel(level string) error {
	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		return errors.Wrapf(err, "invalid log level %q", level)
	}
	base.SetLevel(lvl)
	return nil
}

// IsDebugEnabled reports whether Debug-level (or more verbose) messages
// are currently emitted; callers use this to skip building an expensive
// debug payload when it would be discarded anyway.
func IsDebugEnabled() bool {
	return base.IsLevelEnabled(logrus.DebugLevel)
}

// Tracef logs a formatted trace message.
func Tracef(format string, args ...interface{}) { base.Tracef(format, args...) }

// Debugf logs a formatted debug message.
func Debugf(format string, args ...interface{}) { base.Debugf(format, args...) }

// Infof logs a formatted info message.
func Infof(format string, args ...interface{}) { base.Infof(format, args...) }

// Warnf logs a formatted warning message.
func Warnf(format string, args ...interface{}) { base.Warnf(format, args...) }

// Errorf logs a formatted error message.
func Errorf(format string, args ...interface{}) { base.Errorf(format, args...) }

// WithField returns a logrus entry carrying one structured field, for
// call sites that want to attach context (e.g. the offending script line)
// without formatting it into the message text.
func WithField(key string, value interface{}) *logrus.Entry {
	return base.WithField(key, value)
}

// WithError returns a logrus entry carrying err under the conventional
// "error" field.
func WithError(err error) *logrus.Entry {
	return base.WithField("error", err)
}
