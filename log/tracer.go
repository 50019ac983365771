package log

import (
	"github.com/rifflock/lfshook"
	log "github.com/sirupsen/logrus"
)

// AddTracer mirrors log events into JSON files next to path: trace and debug
// events go to <path>.trace, warnings and worse to <path>.warn. Events are
// only written if the current level lets them through.
func AddTracer(path string) {
	pathMap := lfshook.PathMap{
		log.TraceLevel: path + ".trace",
		log.DebugLevel: path + ".trace",
		log.WarnLevel:  path + ".warn",
		log.ErrorLevel: path + ".warn",
		log.FatalLevel: path + ".warn",
	}
	hook := lfshook.NewHook(
		pathMap,
		&log.JSONFormatter{
			TimestampFormat: "Jan _2 2006 15:04:05.000000",
		},
	)
	base.Hooks.Add(hook)
}

// ResetHooks drops every hook installed by AddTracer.
func ResetHooks() {
	base.ReplaceHooks(make(log.LevelHooks))
}
