package diag

import (
	"io"

	"github.com/charmbracelet/log"
)

// LogReporter forwards diagnostics to a charmbracelet logger.
type LogReporter struct {
	logger *log.Logger
}

// NewLogReporter creates a reporter writing to the given logger.
func NewLogReporter(logger *log.Logger) *LogReporter {
	return &LogReporter{logger: logger}
}

// NewTerminalReporter creates a reporter with a fresh logger on w.
// verbose lowers the level so notes and other messages are visible.
func NewTerminalReporter(w io.Writer, verbose bool) *LogReporter {
	logger := log.New(w)
	logger.SetReportTimestamp(false)

	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	return &LogReporter{logger: logger}
}

// Report maps the message severity onto the logger's levels. Mandatory
// warnings bypass level filtering.
func (r *LogReporter) Report(m Message) {
	keyvals := []any{}
	if m.Element != "" {
		keyvals = append(keyvals, "type", m.Element)
	}

	switch m.Severity {
	case SeverityNote:
		r.logger.Info(m.Text, keyvals...)
	case SeverityWarning:
		r.logger.Warn(m.Text, keyvals...)
	case SeverityMandatoryWarning:
		r.logger.Print("WARN "+m.Text, keyvals...)
	case SeverityError:
		r.logger.Error(m.Text, keyvals...)
	case SeverityOther:
		r.logger.Debug(m.Text, keyvals...)
	default:
		r.logger.Debug(m.Text, keyvals...)
	}
}
