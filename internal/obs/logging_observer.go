package obs

import "log/slog"

// LoggingObserver logs every event via slog, grounded on the teacher's
// engine.LoggingObserver.
type LoggingObserver struct {
	Logger *slog.Logger
}

// NewLoggingObserver builds a LoggingObserver over logger, or slog.Default()
// if logger is nil.
func NewLoggingObserver(logger *slog.Logger) *LoggingObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingObserver{Logger: logger}
}

// OnEvent implements Observer, logging each event with structured fields.
func (lo *LoggingObserver) OnEvent(event Event) {
	args := []any{
		"event", string(event.Type),
		"query_id", event.QueryID,
		"timestamp", event.Timestamp,
	}
	for k, v := range event.Data {
		args = append(args, k, v)
	}
	lo.Logger.Info("query_lifecycle", args...)
}
