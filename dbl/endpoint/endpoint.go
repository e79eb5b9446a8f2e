// Package endpoint builds fully qualified Discord Bot List API URLs.
package endpoint

import (
	"fmt"
	"strings"
)

// Base is the API URI base.
const Base = "https://discordbots.org/api"

var std = New(Base)

// Builder resolves endpoints against a base URL
type Builder struct {
	base string
}

// New returns a Builder for the given base. A trailing slash is trimmed.
func New(base string) Builder {
	return Builder{base: strings.TrimRight(base, "/")}
}

// Base returns the base the builder resolves against
func (b Builder) Base() string {
	return b.base
}

// Bot returns the URL of a single bot
func (b Builder) Bot(id uint64) string {
	return fmt.Sprintf("%s/bots/%d", b.base, id)
}

// BotStats returns the URL of a bot's shard and server statistics
func (b Builder) BotStats(id uint64) string {
	return fmt.Sprintf("%s/bots/%d/stats", b.base, id)
}

// BotVoteCheck returns the URL checking whether userID voted for botID
func (b Builder) BotVoteCheck(botID, userID uint64) string {
	return fmt.Sprintf("%s/bots/%d/check?userId=%d", b.base, botID, userID)
}

// BotVotes returns the URL of a bot's recent voters
func (b Builder) BotVotes(id uint64) string {
	return fmt.Sprintf("%s/bots/%d/votes", b.base, id)
}

// Bots returns the URL of the bot collection, used for searching
func (b Builder) Bots() string {
	return b.base + "/bots"
}

// User returns the URL of a single user
func (b Builder) User(id uint64) string {
	return fmt.Sprintf("%s/users/%d", b.base, id)
}

// Widget returns the URL of a bot's SVG widget
func (b Builder) Widget(id uint64) string {
	return fmt.Sprintf("%s/widget/%d.svg", b.base, id)
}

// Bot returns the URL of a single bot against Base.
func Bot(id uint64) string { return std.Bot(id) }

// BotStats returns the stats URL of a bot against Base.
func BotStats(id uint64) string { return std.BotStats(id) }

// BotVoteCheck returns the vote check URL against Base.
func BotVoteCheck(botID, userID uint64) string { return std.BotVoteCheck(botID, userID) }

// BotVotes returns the votes URL of a bot against Base.
func BotVotes(id uint64) string { return std.BotVotes(id) }

// Bots returns the bot collection URL against Base.
func Bots() string { return std.Bots() }

// User returns the URL of a single user against Base.
func User(id uint64) string { return std.User(id) }

// Widget returns the widget URL of a bot against Base.
func Widget(id uint64) string { return std.Widget(id) }
