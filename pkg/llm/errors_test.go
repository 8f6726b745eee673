package llm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		wantType      ErrorType
		wantRetryable bool
	}{
		{"unauthorized", errors.New("status 401 Unauthorized"), ErrTypeAuth, false},
		{"bad api key", errors.New("Incorrect API key provided"), ErrTypeAuth, false},
		{"rate limited", errors.New("429 Too Many Requests"), ErrTypeRateLimit, true},
		{"timeout", errors.New("context deadline exceeded"), ErrTypeTimeout, true},
		{"connection refused", errors.New("dial tcp 127.0.0.1:443: connection refused"), ErrTypeConnection, true},
		{"server error", errors.New("503 Service Unavailable"), ErrTypeServer, true},
		{"unknown", errors.New("something else entirely"), ErrTypeUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classified := ClassifyError(tt.err)
			require.NotNil(t, classified)
			assert.Equal(t, tt.wantType, classified.Type)
			assert.Equal(t, tt.wantRetryable, classified.Retryable)
			assert.ErrorIs(t, classified, tt.err)
		})
	}
}

func TestClassifyError_Nil(t *testing.T) {
	assert.Nil(t, ClassifyError(nil))
}

func TestClassifyError_AlreadyClassified(t *testing.T) {
	original := &Error{Type: ErrTypeRateLimit, Message: "rate limited", Retryable: true}
	wrapped := fmt.Errorf("call failed: %w", original)
	assert.Same(t, original, ClassifyError(wrapped))
}

func TestError_IsRetryable(t *testing.T) {
	assert.True(t, (&Error{Retryable: true}).IsRetryable())
	assert.False(t, (&Error{}).IsRetryable())
}

func TestError_Error(t *testing.T) {
	withCause := &Error{Type: ErrTypeTimeout, Message: "request timed out", Cause: errors.New("deadline exceeded")}
	assert.Equal(t, "timeout: request timed out: deadline exceeded", withCause.Error())

	bare := &Error{Type: ErrTypeAuth, Message: "authentication failed"}
	assert.Equal(t, "auth: authentication failed", bare.Error())
}
