package modeled

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlags_Has(t *testing.T) {
	f := FlagReadonly | FlagImmutable

	assert.True(t, f.Has(FlagReadonly))
	assert.True(t, f.Has(FlagImmutable))
	assert.True(t, f.Has(FlagsNone))
	assert.False(t, FlagReadonly.Has(FlagImmutable))
	assert.False(t, FlagsNone.Has(FlagReadonly))
}

func TestFlags_String(t *testing.T) {
	tests := []struct {
		name  string
		flags Flags
		want  string
	}{
		{"none", FlagsNone, "none"},
		{"readonly", FlagReadonly, "readonly"},
		{"immutable", FlagImmutable, "immutable"},
		{"all", FlagsAll, "readonly|immutable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.flags.String())
		})
	}
}
