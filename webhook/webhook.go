// Package webhook receives vote notifications pushed by Discord Bot List.
//
// Bots with more than 1000 monthly votes cannot page through
// dbl.Client.GetBotVotes and have to accept votes through a webhook instead.
package webhook

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// VoteType is the kind of vote notification
type VoteType string

const (
	// VoteTypeUpvote is a real vote
	VoteTypeUpvote VoteType = "upvote"
	// VoteTypeTest is sent by the "Test" button on the bot's edit page
	VoteTypeTest VoteType = "test"
)

// Vote is the payload of a vote notification
type Vote struct {
	Bot       string   `json:"bot" binding:"required"`
	User      string   `json:"user" binding:"required"`
	Type      VoteType `json:"type" binding:"required"`
	IsWeekend bool     `json:"isWeekend"`
	Query     string   `json:"query,omitempty"`
}

// IsTest checks if the vote was triggered from the test button
func (v *Vote) IsTest() bool {
	return v.Type == VoteTypeTest
}

// Weight returns how many votes this notification counts for. Weekend votes
// count double.
func (v *Vote) Weight() int {
	if v.IsWeekend {
		return 2
	}
	return 1
}

// VoteFunc is called for every accepted vote. A returned error answers the
// webhook with 500 so the service retries the delivery.
type VoteFunc func(ctx context.Context, vote Vote) error

// ErrUnauthorized is returned to the sender when the Authorization header
// does not match
var ErrUnauthorized = errors.New("webhook authorization mismatch")

// NewHandler returns a gin handler accepting vote notifications. Requests
// whose Authorization header differs from authorization are rejected. An
// empty authorization accepts every request.
func NewHandler(authorization string, onVote VoteFunc, logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authorization != "" {
			got := c.GetHeader("Authorization")
			if subtle.ConstantTimeCompare([]byte(got), []byte(authorization)) != 1 {
				logger.Warn().Str("remote", c.ClientIP()).Msg("Rejected vote webhook with bad authorization")
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrUnauthorized.Error()})
				return
			}
		}

		var vote Vote
		if err := c.ShouldBindJSON(&vote); err != nil {
			logger.Warn().Err(err).Msg("Invalid vote webhook payload")
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		logger.Info().
			Str("bot", vote.Bot).
			Str("user", vote.User).
			Str("type", string(vote.Type)).
			Bool("weekend", vote.IsWeekend).
			Msg("Received vote")

		if onVote != nil {
			if err := onVote(c.Request.Context(), vote); err != nil {
				logger.Error().Err(err).Str("user", vote.User).Msg("Vote handler failed")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "vote handler failed"})
				return
			}
		}

		c.Status(http.StatusNoContent)
	}
}

// Config holds the webhook server settings
type Config struct {
	Listen        string
	Path          string
	Authorization string
}

// NewRouter returns a gin engine serving the vote handler at cfg.Path
func NewRouter(cfg Config, onVote VoteFunc, logger zerolog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))
	router.POST(cfg.Path, NewHandler(cfg.Authorization, onVote, logger))
	return router
}

// NewServer returns an http.Server for the vote webhook. The caller starts
// and shuts it down.
func NewServer(cfg Config, onVote VoteFunc, logger zerolog.Logger) *http.Server {
	return &http.Server{
		Addr:              cfg.Listen,
		Handler:           NewRouter(cfg, onVote, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// requestLogger logs each request at debug level
func requestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("Webhook request")
	}
}
