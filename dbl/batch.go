package dbl

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// GetBots fetches several bots concurrently, at most WithConcurrency at a
// time. Results are in the order of ids. The first failure cancels the
// remaining requests and is returned.
func (c *Client) GetBots(ctx context.Context, ids ...uint64) ([]*Bot, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	// Each goroutine writes only its own index.
	bots := make([]*Bot, len(ids))
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			bot, err := c.GetBot(ctx, id)
			if err != nil {
				return err
			}
			bots[i] = bot
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	c.logger.Debug().Int("count", len(bots)).Msg("Retrieved bots from DBL")
	return bots, nil
}
