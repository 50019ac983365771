package log

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

type Logger struct {
	*log.Entry
}

// base is shared by every module logger so level, output and hooks are set
// once for the whole process. Stdout belongs to codewords, logs go to stderr.
var base = newBase()

func newBase() *log.Logger {
	l := log.New()
	l.SetFormatter(&log.TextFormatter{
		DisableColors:    false,
		DisableTimestamp: false,
	})
	l.SetOutput(os.Stderr)
	l.SetLevel(log.WarnLevel)
	return l
}

func NewLogger(module string) *Logger {
	baselogger := base.WithFields(
		log.Fields{
			"name": module,
		})
	return &Logger{baselogger}
}

// SetLevel parses a logrus level name ("trace", "debug", "info", ...) and
// applies it to all loggers.
func SetLevel(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	base.SetLevel(lvl)
	return nil
}

func GetLevel() log.Level {
	return base.GetLevel()
}

func SetOutput(w io.Writer) {
	base.SetOutput(w)
}
