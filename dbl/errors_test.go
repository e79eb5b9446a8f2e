package dbl

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind     ErrorKind
		expected string
	}{
		{InvalidURL, "invalid url"},
		{JSONDecode, "json decode"},
		{Transport, "transport"},
		{BadResponse, "bad response"},
		{InvalidResponse, "invalid response"},
		{Unauthorized, "unauthorized"},
		{InvalidHeaderValue, "invalid header value"},
		{KindUnknown, "unknown"},
		{ErrorKind(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.String())
		})
	}
}

func TestErrorMessage(t *testing.T) {
	t.Run("status", func(t *testing.T) {
		err := &Error{Kind: BadResponse, Op: "GetBot", StatusCode: 404, Body: []byte("Not Found")}
		assert.Equal(t, "dbl: GetBot: bad response: status 404: Not Found", err.Error())
	})

	t.Run("cause", func(t *testing.T) {
		err := &Error{Kind: Transport, Op: "GetUser", Err: errors.New("timeout")}
		assert.Equal(t, "dbl: GetUser: transport: timeout", err.Error())
	})

	t.Run("long body truncated", func(t *testing.T) {
		body := make([]byte, 300)
		for i := range body {
			body[i] = 'x'
		}
		err := &Error{Kind: InvalidResponse, StatusCode: 500, Body: body}
		assert.Len(t, err.Error(), len("dbl: invalid response: status 500: ")+200+3)
	})
}

func TestErrorIs(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &Error{Kind: Unauthorized, StatusCode: 401})

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.NotErrorIs(t, err, ErrBadResponse)
	assert.Equal(t, Unauthorized, KindOf(err))
	assert.Equal(t, KindUnknown, KindOf(errors.New("other")))
}

func TestErrorClassification(t *testing.T) {
	assert.True(t, (&Error{Kind: BadResponse, StatusCode: 404}).IsNotFound())
	assert.False(t, (&Error{Kind: InvalidResponse, StatusCode: 500}).IsNotFound())

	assert.True(t, (&Error{Kind: Unauthorized, StatusCode: 403}).IsUnauthorized())
	assert.False(t, (&Error{Kind: BadResponse, StatusCode: 400}).IsUnauthorized())

	tests := []struct {
		err      *Error
		expected bool
	}{
		{&Error{Kind: Transport}, true},
		{&Error{Kind: InvalidResponse, StatusCode: 503}, true},
		{&Error{Kind: BadResponse, StatusCode: 429}, true},
		{&Error{Kind: BadResponse, StatusCode: 400}, false},
		{&Error{Kind: JSONDecode}, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.err.Retryable(), tt.err.Error())
	}
}

func TestStatusKind(t *testing.T) {
	assert.Equal(t, Unauthorized, statusKind(401))
	assert.Equal(t, Unauthorized, statusKind(403))
	assert.Equal(t, BadResponse, statusKind(422))
	assert.Equal(t, InvalidResponse, statusKind(500))
	assert.Equal(t, InvalidResponse, statusKind(304))
}
