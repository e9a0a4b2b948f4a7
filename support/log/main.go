// Package log provides the logging entry type used by binaries in this
// repository. It is a thin veneer over logrus so call sites stay decoupled
// from the underlying logger.
package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

// F is shorthand for a field set attached to a log line.
type F map[string]interface{}

// Entry is the logging object. All message emission methods (Info, Errorf,
// Fatal and friends) come from the embedded logrus entry.
type Entry struct {
	logrus.Entry
}

// New returns a new Entry backed by a fresh logrus logger at warn level.
func New() *Entry {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	return &Entry{Entry: logrus.Entry{Logger: logger}}
}

func (e *Entry) SetLevel(level logrus.Level) {
	e.Logger.SetLevel(level)
}

func (e *Entry) SetOutput(w io.Writer) {
	e.Logger.SetOutput(w)
}

// UseJSONFormatter switches the underlying logger to one-line JSON records.
func (e *Entry) UseJSONFormatter() {
	e.Logger.SetFormatter(&logrus.JSONFormatter{})
}

func (e *Entry) AddHook(hook logrus.Hook) {
	e.Logger.AddHook(hook)
}

func (e *Entry) WithField(key string, value interface{}) *Entry {
	return &Entry{Entry: *e.Entry.WithField(key, value)}
}

func (e *Entry) WithFields(fields F) *Entry {
	return &Entry{Entry: *e.Entry.WithFields(logrus.Fields(fields))}
}

func (e *Entry) WithError(err error) *Entry {
	return &Entry{Entry: *e.Entry.WithError(err)}
}
