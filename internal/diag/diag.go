package diag

import (
	"fmt"

	"modelgen/internal/common"
)

// Severity represents the severity level of a diagnostic message.
type Severity int

const (
	SeverityNote Severity = iota
	SeverityWarning
	SeverityMandatoryWarning
	SeverityError
	SeverityOther
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityNote:
		return "note"
	case SeverityWarning:
		return "warning"
	case SeverityMandatoryWarning:
		return "mandatory warning"
	case SeverityError:
		return "error"
	case SeverityOther:
		return "other"
	default:
		return common.UnknownStr
	}
}

// Message is a single diagnostic emitted during a generation round.
type Message struct {
	// Severity of the message.
	Severity Severity
	// Text is the human-readable description.
	Text string
	// Element identifies which type declaration this relates to (if any).
	Element string
}

// String returns a formatted diagnostic string.
func (m Message) String() string {
	if m.Element != "" {
		return "[" + m.Element + "] " + m.Text
	}

	return m.Text
}

// Reporter consumes diagnostic messages. Implementations decide where the
// messages land (terminal, recording buffer).
type Reporter interface {
	Report(m Message)
}

// Notef builds a note message. elem may be empty.
func Notef(elem, format string, args ...any) Message {
	return Message{Severity: SeverityNote, Text: fmt.Sprintf(format, args...), Element: elem}
}

// Warningf builds a warning message. elem may be empty.
func Warningf(elem, format string, args ...any) Message {
	return Message{Severity: SeverityWarning, Text: fmt.Sprintf(format, args...), Element: elem}
}

// MandatoryWarningf builds a warning that is shown regardless of the
// reporter's verbosity. elem may be empty.
func MandatoryWarningf(elem, format string, args ...any) Message {
	return Message{Severity: SeverityMandatoryWarning, Text: fmt.Sprintf(format, args...), Element: elem}
}

// Errorf builds an error message. elem may be empty.
func Errorf(elem, format string, args ...any) Message {
	return Message{Severity: SeverityError, Text: fmt.Sprintf(format, args...), Element: elem}
}

// Otherf builds a message outside the standard severities. elem may be empty.
func Otherf(elem, format string, args ...any) Message {
	return Message{Severity: SeverityOther, Text: fmt.Sprintf(format, args...), Element: elem}
}
