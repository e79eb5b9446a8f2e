package dbl

import (
	"context"
)

// API defines the interface for Discord Bot List operations
type API interface {
	// GetBot retrieves a single bot listing
	GetBot(ctx context.Context, botID uint64) (*Bot, error)

	// SearchBots retrieves one page of bots matching search
	SearchBots(ctx context.Context, search *BotSearch) (*SearchResponse[Bot], error)

	// GetBotStats retrieves a bot's server and shard counts
	GetBotStats(ctx context.Context, botID uint64) (*BotStats, error)

	// HasVoted checks whether a user voted for a bot in the last 24 hours
	HasVoted(ctx context.Context, token string, botID, userID uint64) (bool, error)

	// GetBotVotes retrieves the users that voted for a bot this month
	GetBotVotes(ctx context.Context, token string, botID uint64) (*BotVotes, error)

	// GetUser retrieves a user profile
	GetUser(ctx context.Context, userID uint64) (*User, error)

	// PostStats reports a bot's server counts
	PostStats(ctx context.Context, token string, botID uint64, stats ShardStats) error
}

var _ API = (*Client)(nil)
