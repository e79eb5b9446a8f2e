package dbl

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/net/http/httpguts"

	"github.com/s0up4200/dblgo/dbl/endpoint"
)

// Client represents a Discord Bot List API client
type Client struct {
	endpoints   endpoint.Builder
	httpClient  Doer
	userAgent   string
	concurrency int
	logger      zerolog.Logger
}

// NewClient creates a new Discord Bot List client
func NewClient(logger zerolog.Logger, opts ...Option) (*Client, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	base, err := url.Parse(o.baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: base URL: %v", ErrInvalidConfig, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("%w: base URL %q must be absolute", ErrInvalidConfig, o.baseURL)
	}

	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: o.timeout}
	}

	return &Client{
		endpoints:   endpoint.New(o.baseURL),
		httpClient:  httpClient,
		userAgent:   o.userAgent,
		concurrency: o.concurrency,
		logger:      logger,
	}, nil
}

// request describes a single API call
type request struct {
	op      string
	method  string
	url     string
	auth    bool
	token   string
	payload any
}

// do performs an HTTP request and decodes a JSON response into out. A nil
// out discards the body.
func (c *Client) do(ctx context.Context, r request, out any) error {
	u, err := url.Parse(r.url)
	if err != nil {
		return &Error{Kind: InvalidURL, Op: r.op, URL: r.url, Err: err}
	}

	var body io.Reader
	if r.payload != nil {
		data, err := json.Marshal(r.payload)
		if err != nil {
			return &Error{Kind: JSONDecode, Op: r.op, URL: r.url, Err: fmt.Errorf("failed to encode payload: %w", err)}
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u.String(), body)
	if err != nil {
		return &Error{Kind: InvalidURL, Op: r.op, URL: r.url, Err: fmt.Errorf("failed to create request: %w", err)}
	}

	if r.auth {
		if !httpguts.ValidHeaderFieldValue(r.token) {
			return &Error{Kind: InvalidHeaderValue, Op: r.op, URL: r.url,
				Err: errors.New("token contains characters not allowed in a header")}
		}
		req.Header.Set("Authorization", r.token)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Kind: Transport, Op: r.op, URL: r.url, Err: fmt.Errorf("request failed: %w", err)}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: Transport, Op: r.op, URL: r.url, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	c.logger.Debug().
		Str("op", r.op).
		Str("method", r.method).
		Str("url", r.url).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("DBL API request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{
			Kind:       statusKind(resp.StatusCode),
			Op:         r.op,
			URL:        r.url,
			StatusCode: resp.StatusCode,
			Body:       respBody,
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return &Error{Kind: JSONDecode, Op: r.op, URL: r.url, Err: fmt.Errorf("failed to parse response: %w", err)}
	}

	return nil
}

// GetBot retrieves a single bot listing
func (c *Client) GetBot(ctx context.Context, botID uint64) (*Bot, error) {
	var bot Bot
	err := c.do(ctx, request{op: "GetBot", method: http.MethodGet, url: c.endpoints.Bot(botID)}, &bot)
	if err != nil {
		return nil, err
	}
	return &bot, nil
}

// SearchBots retrieves one page of bots. A nil search uses the service's
// defaults. The search is consumed.
func (c *Client) SearchBots(ctx context.Context, search *BotSearch) (*SearchResponse[Bot], error) {
	rawURL := c.endpoints.Bots()
	if search != nil {
		params, err := search.Build()
		if err != nil {
			return nil, &Error{Kind: InvalidURL, Op: "SearchBots", URL: rawURL, Err: err}
		}
		if len(params) > 0 {
			rawURL += "?" + encodeParams(params)
		}
	}

	var resp SearchResponse[Bot]
	if err := c.do(ctx, request{op: "SearchBots", method: http.MethodGet, url: rawURL}, &resp); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Uint64("count", resp.Count).
		Uint64("offset", resp.Offset).
		Uint64("total", resp.Total).
		Msg("Retrieved bots from DBL")

	return &resp, nil
}

// GetBotStats retrieves a bot's server and shard counts
func (c *Client) GetBotStats(ctx context.Context, botID uint64) (*BotStats, error) {
	var stats BotStats
	err := c.do(ctx, request{op: "GetBotStats", method: http.MethodGet, url: c.endpoints.BotStats(botID)}, &stats)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// HasVoted checks whether userID voted for botID in the last 24 hours
func (c *Client) HasVoted(ctx context.Context, token string, botID, userID uint64) (bool, error) {
	var resp responseUserVoted
	err := c.do(ctx, request{
		op:     "HasVoted",
		method: http.MethodGet,
		url:    c.endpoints.BotVoteCheck(botID, userID),
		auth:   true,
		token:  token,
	}, &resp)
	if err != nil {
		return false, err
	}
	return resp.Voted == 1, nil
}

// GetBotVotes retrieves the users that voted for botID this month. Bots with
// more than 1000 monthly votes must use webhooks instead.
func (c *Client) GetBotVotes(ctx context.Context, token string, botID uint64) (*BotVotes, error) {
	var votes BotVotes
	err := c.do(ctx, request{
		op:     "GetBotVotes",
		method: http.MethodGet,
		url:    c.endpoints.BotVotes(botID),
		auth:   true,
		token:  token,
	}, &votes)
	if err != nil {
		return nil, err
	}

	c.logger.Debug().
		Uint64("bot_id", botID).
		Stringer("kind", votes.Kind()).
		Int("count", votes.Len()).
		Msg("Retrieved votes from DBL")

	return &votes, nil
}

// GetUser retrieves a user profile
func (c *Client) GetUser(ctx context.Context, userID uint64) (*User, error) {
	var user User
	err := c.do(ctx, request{op: "GetUser", method: http.MethodGet, url: c.endpoints.User(userID)}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// PostStats reports botID's server counts
func (c *Client) PostStats(ctx context.Context, token string, botID uint64, stats ShardStats) error {
	if stats == nil {
		return &Error{Kind: JSONDecode, Op: "PostStats", URL: c.endpoints.BotStats(botID),
			Err: errors.New("stats payload is nil")}
	}

	return c.do(ctx, request{
		op:      "PostStats",
		method:  http.MethodPost,
		url:     c.endpoints.BotStats(botID),
		auth:    true,
		token:   token,
		payload: stats,
	}, nil)
}
