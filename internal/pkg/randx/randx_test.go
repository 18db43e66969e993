package randx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionID_Shape(t *testing.T) {
	id, err := SessionID()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(id, SessionIDPrefix))
	assert.Len(t, id, len(SessionIDPrefix)+SessionIDRawLength)
	assert.True(t, IsValidSessionID(id))
}

func TestSessionID_Unique(t *testing.T) {
	seen := make(map[string]struct{})

	for i := 0; i < 100; i++ {
		id, err := SessionID()
		require.NoError(t, err)

		_, dup := seen[id]
		require.False(t, dup, "duplicate session id %s", id)
		seen[id] = struct{}{}
	}
}

func TestIsValidSessionID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{"empty", "", false},
		{"missing prefix", "abcdef0123456789", false},
		{"too short", "sess_abc", false},
		{"too long", "sess_" + strings.Repeat("a", SessionIDRawLength+1), false},
		{"invalid char", "sess_abcdefgh1234567!", false},
		{"valid", "sess_abcDEF0123456789", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidSessionID(tt.id))
		})
	}
}

func TestMessageID(t *testing.T) {
	first := MessageID()
	second := MessageID()

	assert.Len(t, first, 36)
	assert.NotEqual(t, first, second)
}
