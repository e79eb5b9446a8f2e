// Package dbl provides a client for the Discord Bot List API.
//
// Discord Bot List tracks bot listings: bot metadata, vote and server
// statistics, user profiles and embeddable widget images. This package builds
// the request URLs, attaches the Authorization header where the service
// requires a token, and maps the JSON bodies onto typed records.
//
// # Architecture
//
// The package is organized into several components:
//
//   - Client: the blocking API client, one method per endpoint
//   - AsyncClient: the same operations returning a Future
//   - Types: Bot, BotStats, BotVotes, User, SearchResponse and ShardStats
//   - Builders: BotSearch, LargeWidget and SmallWidget
//   - Errors: a single Error type classified by ErrorKind
//
// URLs come from the endpoint subpackage, which can also be used on its own.
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client, err := dbl.NewClient(logger, dbl.WithTimeout(10*time.Second))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	bot, err := client.GetBot(ctx, 270198738570444801)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	page, err := client.SearchBots(ctx, dbl.NewBotSearch().
//		Search("music").
//		Sort("points", false).
//		Limit(50))
//
//	err = client.PostStats(ctx, token, botID, dbl.Cumulative{Total: 1200})
//
// Non-blocking calls share the same implementation:
//
//	f := client.Async().GetBotStats(ctx, botID)
//	// ... other work ...
//	stats, err := f.Await(ctx)
//
// Widget URLs are built without any request:
//
//	u, err := dbl.NewSmallWidget(botID).LeftColor("FF0000").Build()
//
// Builders are single-use. Calling Build a second time returns
// ErrBuilderConsumed.
//
// # Error Handling
//
// Every failure is an *Error whose Kind is one of InvalidURL, JSONDecode,
// Transport, BadResponse, InvalidResponse, Unauthorized or
// InvalidHeaderValue. Each kind has a sentinel usable with errors.Is:
//
//	if errors.Is(err, dbl.ErrUnauthorized) {
//		// Handle a rejected token
//	}
//
// Status errors keep the status code and raw body. The client never retries;
// Error.Retryable tells the caller whether trying again may help.
package dbl
