package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompleted(t *testing.T) {
	cases := []struct {
		status    IntentStatus
		completed bool
	}{
		{IntentPending, false},
		{IntentInProgress, false},
		{IntentBlocked, false},
		{IntentCompleted, true},
	}
	for _, tc := range cases {
		i := &BusinessIntent{Status: tc.status}
		assert.Equal(t, tc.completed, i.Completed(), "status=%s", tc.status)
	}
}

func TestContentHash(t *testing.T) {
	h := ContentHash([]byte("hello"))
	assert.Len(t, h, 64, "sha256 hex digest")
	assert.Equal(t, h, ContentHash([]byte("hello")))
	assert.NotEqual(t, h, ContentHash([]byte("hello!")))

	empty := ContentHash(nil)
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", empty)
}
