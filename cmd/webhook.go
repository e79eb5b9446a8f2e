package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/s0up4200/dblgo/webhook"
)

var verifyVotes bool

// webhookCmd represents the webhook command
var webhookCmd = &cobra.Command{
	Use:   "webhook",
	Short: "Receive vote notifications",
	Long: `Run an HTTP server accepting Discord Bot List vote webhooks. Set the
webhook URL on the bot's edit page to http://<host><webhook.listen><webhook.path>
and the authorization to webhook.authorization.`,
	Args: cobra.NoArgs,
	RunE: runWebhook,
}

func init() {
	webhookCmd.Flags().BoolVar(&verifyVotes, "verify", false, "confirm each vote with the API (needs api.token)")
	rootCmd.AddCommand(webhookCmd)
}

func runWebhook(cmd *cobra.Command, args []string) error {
	if cfg.Webhook.Authorization == "" {
		logger.Warn().Msg("webhook.authorization is empty, accepting unauthenticated votes")
	}
	if verifyVotes {
		if _, err := requireToken(); err != nil {
			return err
		}
	}
	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := webhook.NewServer(webhook.Config{
		Listen:        cfg.Webhook.Listen,
		Path:          cfg.Webhook.Path,
		Authorization: cfg.Webhook.Authorization,
	}, handleVote, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("listen", srv.Addr).Str("path", cfg.Webhook.Path).Msg("Listening for votes")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("webhook server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info().Msg("Shutting down webhook server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// handleVote prints a vote and, with --verify, checks it against the API
func handleVote(ctx context.Context, vote webhook.Vote) error {
	if jsonOutput {
		if err := printJSON(vote); err != nil {
			return err
		}
	} else {
		fmt.Printf("• %s voted for %s (weight %d)", vote.User, vote.Bot, vote.Weight())
		if vote.IsTest() {
			fmt.Printf(" [TEST]")
		}
		fmt.Println()
	}

	if !verifyVotes || vote.IsTest() {
		return nil
	}

	botID, err := strconv.ParseUint(vote.Bot, 10, 64)
	if err != nil {
		return fmt.Errorf("vote for non-numeric bot %q: %w", vote.Bot, err)
	}
	userID, err := strconv.ParseUint(vote.User, 10, 64)
	if err != nil {
		return fmt.Errorf("vote from non-numeric user %q: %w", vote.User, err)
	}

	// The service may not have recorded the vote yet when the webhook fires,
	// so the check runs in the background and only logs its result.
	f := dblClient.Async().HasVoted(context.Background(), cfg.API.Token, botID, userID)
	go func() {
		awaitCtx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout)
		defer cancel()
		voted, err := f.Await(awaitCtx)
		if err != nil {
			logger.Error().Err(err).Str("user", vote.User).Msg("Failed to verify vote")
			return
		}
		logger.Info().Str("user", vote.User).Bool("confirmed", voted).Msg("Verified vote")
	}()
	return nil
}
