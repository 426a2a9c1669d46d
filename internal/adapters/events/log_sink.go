package events

import (
	"fleet-cargo-service/internal/domain"

	"github.com/sirupsen/logrus"
)

// LogSink writes every event as a structured log line.
type LogSink struct {
	Logger logrus.FieldLogger
}

func NewLogSink(logger logrus.FieldLogger) *LogSink {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LogSink{Logger: logger}
}

func (s *LogSink) Emit(e domain.Event) {
	entry := s.Logger.WithFields(logrus.Fields(Fields(e)))

	switch ev := e.(type) {
	case domain.CargoUnloaded:
		entry.Debug(e.String())
	case domain.CargoUnplaced, domain.RangeExceeded:
		entry.Warn(e.String())
	case domain.RouteChecked:
		if !ev.Feasible {
			entry.Warn(e.String())
			return
		}
		entry.Info(e.String())
	default:
		entry.Info(e.String())
	}
}
