package dbl

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Bot represents a bot listing
type Bot struct {
	Avatar           *string   `json:"avatar,omitempty"`
	CertifiedBot     bool      `json:"certifiedBot"`
	Date             time.Time `json:"date"`
	DefAvatar        *string   `json:"defAvatar,omitempty"`
	LongDescription  *string   `json:"longdesc,omitempty"`
	ShortDescription string    `json:"shortdesc"`
	Discriminator    string    `json:"discriminator"`
	GitHub           *string   `json:"github,omitempty"`
	ID               string    `json:"id"`
	Invite           *string   `json:"invite,omitempty"`
	Lib              string    `json:"lib"`
	// Owners holds user IDs; the first one is the primary owner
	Owners   []string `json:"owners"`
	Points   uint64   `json:"points"`
	Prefix   string   `json:"prefix"`
	Support  *string  `json:"support,omitempty"`
	Tags     []string `json:"tags"`
	Username string   `json:"username"`
	Vanity   *string  `json:"vanity,omitempty"`
	Website  *string  `json:"website,omitempty"`
}

// PrimaryOwner returns the ID of the bot's primary owner, or "" if unknown
func (b *Bot) PrimaryOwner() string {
	if len(b.Owners) == 0 {
		return ""
	}
	return b.Owners[0]
}

// HasTag reports whether the bot is tagged with tag, ignoring case
func (b *Bot) HasTag(tag string) bool {
	for _, t := range b.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// BotStats holds the aggregate server and shard counts of a bot
type BotStats struct {
	ServerCount *uint64  `json:"server_count,omitempty"`
	Shards      []uint64 `json:"shards"`
	ShardCount  *uint64  `json:"shard_count,omitempty"`
}

// UnmarshalJSON decodes stats, leaving Shards empty rather than nil
func (s *BotStats) UnmarshalJSON(data []byte) error {
	type plain BotStats
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	if p.Shards == nil {
		p.Shards = []uint64{}
	}
	*s = BotStats(p)
	return nil
}

// VotesKind identifies which variant a BotVotes holds
type VotesKind int

const (
	// VotesIDs means the service returned bare user IDs
	VotesIDs VotesKind = iota
	// VotesUsers means the service returned full user objects
	VotesUsers
)

// String returns the string representation of a VotesKind
func (k VotesKind) String() string {
	if k == VotesUsers {
		return "users"
	}
	return "ids"
}

// BotVotes is the list of users that voted for a bot. The service returns
// either an array of numeric IDs or an array of user objects; which one is
// decided by the shape of the body.
type BotVotes struct {
	kind  VotesKind
	IDs   []uint64
	Users []DiscordUser
}

// NewVoteIDs returns a BotVotes holding bare IDs
func NewVoteIDs(ids []uint64) BotVotes {
	return BotVotes{kind: VotesIDs, IDs: ids}
}

// NewVoteUsers returns a BotVotes holding user objects
func NewVoteUsers(users []DiscordUser) BotVotes {
	return BotVotes{kind: VotesUsers, Users: users}
}

// Kind returns the variant held
func (v *BotVotes) Kind() VotesKind {
	return v.kind
}

// Len returns the number of voters
func (v *BotVotes) Len() int {
	if v.kind == VotesUsers {
		return len(v.Users)
	}
	return len(v.IDs)
}

var errVotesShape = errors.New("votes body is neither an array of ids nor an array of users")

// UnmarshalJSON tries an array of IDs first, then an array of users.
// An empty array decodes as the IDs variant.
func (v *BotVotes) UnmarshalJSON(data []byte) error {
	if strings.TrimSpace(string(data)) == "null" {
		return errVotesShape
	}

	var ids []uint64
	if err := json.Unmarshal(data, &ids); err == nil {
		*v = NewVoteIDs(ids)
		return nil
	}

	var users []DiscordUser
	if err := json.Unmarshal(data, &users); err != nil {
		return fmt.Errorf("%w: %v", errVotesShape, err)
	}
	*v = NewVoteUsers(users)
	return nil
}

// MarshalJSON encodes whichever variant is held
func (v BotVotes) MarshalJSON() ([]byte, error) {
	if v.kind == VotesUsers {
		if v.Users == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.Users)
	}
	if v.IDs == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(v.IDs)
}

// DiscordUser is the minimal identity of a Discord user
type DiscordUser struct {
	Avatar        *string `json:"avatar,omitempty"`
	Discriminator uint16  `json:"discriminator"`
	ID            string  `json:"id"`
	Username      string  `json:"username"`
}

// Tag returns the user's name#discriminator form
func (u *DiscordUser) Tag() string {
	return fmt.Sprintf("%s#%04d", u.Username, u.Discriminator)
}

// responseUserVoted is the body of the vote check endpoint
type responseUserVoted struct {
	Voted uint8 `json:"voted"`
}

// SearchResponse is one page of search results
type SearchResponse[T any] struct {
	// Count is the number of results in this page
	Count   uint64 `json:"count"`
	Limit   uint64 `json:"limit"`
	Offset  uint64 `json:"offset"`
	Results []T    `json:"results"`
	// Total is the number of matches across all pages
	Total uint64 `json:"total"`
}

// HasMore checks if there are results past this page
func (r *SearchResponse[T]) HasMore() bool {
	return r.Offset+r.Count < r.Total
}

// NextOffset returns the offset of the following page
func (r *SearchResponse[T]) NextOffset() uint64 {
	return r.Offset + r.Count
}

// ShardStats is the payload posted to a bot's stats endpoint. It is one of
// Cumulative, Shard or Shards.
type ShardStats interface {
	json.Marshaler
	isShardStats()
}

// Cumulative reports the total server count across all shards
type Cumulative struct {
	ShardCount *uint64
	Total      uint64
}

// Shard reports the server count of a single shard
type Shard struct {
	GuildCount uint16
	ShardCount uint64
	ShardID    uint64
}

// Shards reports per-shard server counts, indexed by shard ID
type Shards []uint64

func (Cumulative) isShardStats() {}
func (Shard) isShardStats()      {}
func (Shards) isShardStats()     {}

// MarshalJSON implements json.Marshaler
func (c Cumulative) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ServerCount uint64  `json:"server_count"`
		ShardCount  *uint64 `json:"shard_count,omitempty"`
	}{c.Total, c.ShardCount})
}

// MarshalJSON implements json.Marshaler
func (s Shard) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ServerCount uint16 `json:"server_count"`
		ShardID     uint64 `json:"shard_id"`
		ShardCount  uint64 `json:"shard_count"`
	}{s.GuildCount, s.ShardID, s.ShardCount})
}

// MarshalJSON implements json.Marshaler
func (s Shards) MarshalJSON() ([]byte, error) {
	counts := []uint64(s)
	if counts == nil {
		counts = []uint64{}
	}
	return json.Marshal(struct {
		Shards []uint64 `json:"shards"`
	}{counts})
}

// ParseShardStats decodes a stats payload in the form MarshalJSON writes.
// A "shards" array selects Shards, a "shard_id" selects Shard, anything
// else is Cumulative.
func ParseShardStats(data []byte) (ShardStats, error) {
	var raw struct {
		ServerCount *uint64  `json:"server_count"`
		ShardID     *uint64  `json:"shard_id"`
		ShardCount  *uint64  `json:"shard_count"`
		Shards      []uint64 `json:"shards"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &Error{Kind: JSONDecode, Op: "ParseShardStats", Err: err}
	}

	switch {
	case raw.Shards != nil:
		return Shards(raw.Shards), nil
	case raw.ShardID != nil:
		if raw.ServerCount == nil || *raw.ServerCount > 0xFFFF {
			return nil, &Error{Kind: JSONDecode, Op: "ParseShardStats",
				Err: errors.New("shard report needs a server_count between 0 and 65535")}
		}
		var count uint64
		if raw.ShardCount != nil {
			count = *raw.ShardCount
		}
		return Shard{GuildCount: uint16(*raw.ServerCount), ShardCount: count, ShardID: *raw.ShardID}, nil
	case raw.ServerCount != nil:
		return Cumulative{ShardCount: raw.ShardCount, Total: *raw.ServerCount}, nil
	default:
		return nil, &Error{Kind: JSONDecode, Op: "ParseShardStats",
			Err: errors.New("payload has neither server_count nor shards")}
	}
}

// Social holds a user's social handles. Missing handles are empty strings.
type Social struct {
	GitHub    string `json:"github"`
	Instagram string `json:"instagram"`
	Reddit    string `json:"reddit"`
	Twitter   string `json:"twitter"`
	YouTube   string `json:"youtube"`
}

// User represents a full user profile
type User struct {
	Admin         bool    `json:"admin"`
	Avatar        *string `json:"avatar,omitempty"`
	Banner        *string `json:"banner,omitempty"`
	Bio           *string `json:"bio,omitempty"`
	CertifiedDev  bool    `json:"certifiedDev"`
	Colour        *string `json:"color,omitempty"`
	DefAvatar     *string `json:"defAvatar,omitempty"`
	Discriminator string  `json:"discriminator"`
	ID            string  `json:"id"`
	Mod           bool    `json:"mod"`
	Social        Social  `json:"social"`
	Supporter     bool    `json:"supporter"`
	Username      string  `json:"username"`
	WebMod        bool    `json:"webMod"`
}
