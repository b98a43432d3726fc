package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityNote, "note"},
		{SeverityWarning, "warning"},
		{SeverityMandatoryWarning, "mandatory warning"},
		{SeverityError, "error"},
		{SeverityOther, "other"},
		{Severity(42), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.severity.String())
	}
}

func TestMessage_String(t *testing.T) {
	m := Errorf("geo.Point", "failed creating source file for generated interface %s", "Point_Model")
	assert.Equal(t, "[geo.Point] failed creating source file for generated interface Point_Model", m.String())

	m = Notef("", "nothing to do")
	assert.Equal(t, "nothing to do", m.String())
}

func TestRecorder(t *testing.T) {
	var rec Recorder

	rec.Report(Notef("a.B", "generating model interface %s", "B_Model"))
	rec.Report(Warningf("a.B", "unknown flag %q", "frozen"))
	rec.Report(Errorf("a.C", "boom"))

	assert.Len(t, rec.Messages, 3)
	assert.Len(t, rec.BySeverity(SeverityNote), 1)
	assert.Len(t, rec.BySeverity(SeverityWarning), 1)
	assert.True(t, rec.HasErrors())

	assert.Equal(t, SeverityNote, rec.Messages[0].Severity)
	assert.Equal(t, "generating model interface B_Model", rec.Messages[0].Text)
}
