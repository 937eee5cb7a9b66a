package main

import (
	"log"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// flogger is the subset of log.Logger the workers use; ThreadLogger tags
// each line with the worker name.
type flogger interface {
	Printf(format string, v ...interface{})
	Println(v ...interface{})
}

type ThreadLogger struct {
	name string
}

func (t *ThreadLogger) Printf(format string, v ...interface{}) {
	log.Printf("["+t.name+"] "+format, v...)
}

func (t *ThreadLogger) Println(v ...interface{}) {
	log.Println(append([]interface{}{"[" + t.name + "]"}, v...)...)
}

// setupLogging points the stdlib logger at a rotating file unless we are
// in dev mode, where stderr is more useful.
func setupLogging(settings configSettings) {
	if settings.GetBool(sDevMode) {
		log.SetOutput(os.Stderr)
		return
	}
	log.SetOutput(&lumberjack.Logger{
		Filename:   settings.GetString(sLogFile),
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     30, // days
	})
}
