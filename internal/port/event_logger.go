package port

import (
	"time"

	"github.com/google/uuid"

	"schemadoc/internal/domain"
)

// ParseEvent carries the context of one engine operation for logging.
type ParseEvent struct {
	OpID         uuid.UUID
	Operation    string
	ContentBytes int
	Strategy     domain.Strategy
	FromCache    bool
	Elapsed      time.Duration
}

// EventLogger receives structured start/end/warning/error events per call.
// Formatting and storage are the implementation's concern.
type EventLogger interface {
	ParseStarted(e ParseEvent)
	ParseCompleted(e ParseEvent)
	ParseFailed(e ParseEvent, err error)
	Warning(e ParseEvent, msg string)
}
