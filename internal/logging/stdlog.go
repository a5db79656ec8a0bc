// Package logging provides the default port.EventLogger, writing parse
// events through the standard library logger.
package logging

import (
	"log"

	"schemadoc/internal/port"
)

// StdLogger formats parse events as single-line stdlib log records.
type StdLogger struct{}

// NewStdLogger creates a StdLogger.
func NewStdLogger() *StdLogger {
	return &StdLogger{}
}

func (*StdLogger) ParseStarted(e port.ParseEvent) {
	log.Printf("engine.Engine: %s started op=%s bytes=%d", e.Operation, e.OpID, e.ContentBytes)
}

func (*StdLogger) ParseCompleted(e port.ParseEvent) {
	log.Printf("engine.Engine: %s completed op=%s bytes=%d strategy=%s from_cache=%t elapsed=%s",
		e.Operation, e.OpID, e.ContentBytes, e.Strategy, e.FromCache, e.Elapsed)
}

func (*StdLogger) ParseFailed(e port.ParseEvent, err error) {
	log.Printf("engine.Engine: %s failed op=%s bytes=%d elapsed=%s: %v",
		e.Operation, e.OpID, e.ContentBytes, e.Elapsed, err)
}

func (*StdLogger) Warning(e port.ParseEvent, msg string) {
	log.Printf("engine.Engine: %s warning op=%s: %s", e.Operation, e.OpID, msg)
}
