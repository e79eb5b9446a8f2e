package endpoint

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEndpoints(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"bot", Bot(1), "https://discordbots.org/api/bots/1"},
		{"bot stats", BotStats(1), "https://discordbots.org/api/bots/1/stats"},
		{"vote check", BotVoteCheck(1, 2), "https://discordbots.org/api/bots/1/check?userId=2"},
		{"votes", BotVotes(1), "https://discordbots.org/api/bots/1/votes"},
		{"bots", Bots(), "https://discordbots.org/api/bots"},
		{"user", User(3), "https://discordbots.org/api/users/3"},
		{"widget", Widget(270198738570444801), "https://discordbots.org/api/widget/270198738570444801.svg"},
		{"max id", Bot(math.MaxUint64), "https://discordbots.org/api/bots/18446744073709551615"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.got)
		})
	}
}

func TestEndpointsArePure(t *testing.T) {
	for i := 0; i < 3; i++ {
		assert.Equal(t, "https://discordbots.org/api/bots/1", Bot(1))
		assert.Equal(t, "https://discordbots.org/api/bots/1/check?userId=2", BotVoteCheck(1, 2))
	}
}

func TestBuilderCustomBase(t *testing.T) {
	b := New("http://127.0.0.1:8080/api/")

	assert.Equal(t, "http://127.0.0.1:8080/api", b.Base())
	assert.Equal(t, "http://127.0.0.1:8080/api/bots/5/votes", b.BotVotes(5))
	assert.Equal(t, "http://127.0.0.1:8080/api/bots", b.Bots())
}
