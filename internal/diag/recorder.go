package diag

// Recorder collects diagnostics in memory. It is the reporter used in tests
// and by callers that inspect messages after a round.
type Recorder struct {
	Messages []Message
}

// Report appends the message.
func (r *Recorder) Report(m Message) {
	r.Messages = append(r.Messages, m)
}

// BySeverity returns the recorded messages with the given severity,
// in report order.
func (r *Recorder) BySeverity(s Severity) []Message {
	var out []Message

	for _, m := range r.Messages {
		if m.Severity == s {
			out = append(out, m)
		}
	}

	return out
}

// HasErrors returns true if any error diagnostic was recorded.
func (r *Recorder) HasErrors() bool {
	return len(r.BySeverity(SeverityError)) > 0
}
