package dbl

import (
	"context"
)

// Future is the pending result of a call made through AsyncClient
type Future[T any] struct {
	done chan struct{}
	val  T
	err  error
}

func startFuture[T any](fn func() (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		f.val, f.err = fn()
	}()
	return f
}

// Done is closed once the result is available
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the call completes or ctx is done. Cancelling ctx only
// stops the wait; the request follows the context it was started with. An
// abandoned wait is a Transport error wrapping ctx.Err().
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, &Error{Kind: Transport, Op: "Await", Err: ctx.Err()}
	}
}

// AsyncClient exposes the Client operations without blocking the caller.
// Each call returns immediately and runs the blocking implementation in its
// own goroutine.
type AsyncClient struct {
	c *Client
}

// Async returns the non-blocking form of c
func (c *Client) Async() *AsyncClient {
	return &AsyncClient{c: c}
}

// GetBot is the non-blocking form of Client.GetBot
func (a *AsyncClient) GetBot(ctx context.Context, botID uint64) *Future[*Bot] {
	return startFuture(func() (*Bot, error) {
		return a.c.GetBot(ctx, botID)
	})
}

// SearchBots is the non-blocking form of Client.SearchBots
func (a *AsyncClient) SearchBots(ctx context.Context, search *BotSearch) *Future[*SearchResponse[Bot]] {
	return startFuture(func() (*SearchResponse[Bot], error) {
		return a.c.SearchBots(ctx, search)
	})
}

// GetBotStats is the non-blocking form of Client.GetBotStats
func (a *AsyncClient) GetBotStats(ctx context.Context, botID uint64) *Future[*BotStats] {
	return startFuture(func() (*BotStats, error) {
		return a.c.GetBotStats(ctx, botID)
	})
}

// HasVoted is the non-blocking form of Client.HasVoted
func (a *AsyncClient) HasVoted(ctx context.Context, token string, botID, userID uint64) *Future[bool] {
	return startFuture(func() (bool, error) {
		return a.c.HasVoted(ctx, token, botID, userID)
	})
}

// GetBotVotes is the non-blocking form of Client.GetBotVotes
func (a *AsyncClient) GetBotVotes(ctx context.Context, token string, botID uint64) *Future[*BotVotes] {
	return startFuture(func() (*BotVotes, error) {
		return a.c.GetBotVotes(ctx, token, botID)
	})
}

// GetUser is the non-blocking form of Client.GetUser
func (a *AsyncClient) GetUser(ctx context.Context, userID uint64) *Future[*User] {
	return startFuture(func() (*User, error) {
		return a.c.GetUser(ctx, userID)
	})
}

// PostStats is the non-blocking form of Client.PostStats
func (a *AsyncClient) PostStats(ctx context.Context, token string, botID uint64, stats ShardStats) *Future[struct{}] {
	return startFuture(func() (struct{}, error) {
		return struct{}{}, a.c.PostStats(ctx, token, botID, stats)
	})
}
