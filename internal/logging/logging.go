package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

const (
	maxSizeMB  = 5
	maxBackups = 3
	maxAgeDays = 7
)

// New builds a logger that writes only to a rotating file. The terminal
// belongs to the game screen, so nothing is written to stdout or stderr.
func New(level, file string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	log := logrus.New()
	log.SetLevel(lvl)
	log.SetOutput(io.Discard)

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   file,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
		Level:      lvl,
		Formatter: &logrus.TextFormatter{
			DisableColors: true,
			FullTimestamp: true,
		},
	})
	if err != nil {
		return log, fmt.Errorf("unable to open log file %s: %w", file, err)
	}
	log.AddHook(hook)

	return log, nil
}

// NewOrDiscard is New with the fallback used at startup: a log file that cannot
// be opened leaves a logger that discards everything.
func NewOrDiscard(level, file string) *logrus.Logger {
	log, err := New(level, file)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logging disabled:", err)
		if log == nil {
			log = Discard()
		}
	}
	return log
}

// Discard returns a logger with no output, for tests.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
