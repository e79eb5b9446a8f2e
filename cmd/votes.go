package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/dblgo/dbl"
)

// votesCmd represents the votes command
var votesCmd = &cobra.Command{
	Use:   "votes <bot-id>",
	Short: "List this month's voters of a bot",
	Args:  cobra.ExactArgs(1),
	RunE:  runVotes,
}

// votedCmd represents the voted command
var votedCmd = &cobra.Command{
	Use:   "voted <bot-id> <user-id>",
	Short: "Check whether a user voted for a bot in the last 24 hours",
	Args:  cobra.ExactArgs(2),
	RunE:  runVoted,
}

// userCmd represents the user command
var userCmd = &cobra.Command{
	Use:   "user <id>",
	Short: "Show a user profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runUser,
}

func init() {
	rootCmd.AddCommand(votesCmd, votedCmd, userCmd)
}

func runVotes(cmd *cobra.Command, args []string) error {
	botID, err := parseID("bot ID", args[0])
	if err != nil {
		return err
	}
	auth, err := requireToken()
	if err != nil {
		return err
	}

	votes, err := dblClient.GetBotVotes(context.Background(), auth, botID)
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(votes)
	}

	fmt.Printf("%d voters this month:\n", votes.Len())
	switch votes.Kind() {
	case dbl.VotesUsers:
		for _, u := range votes.Users {
			fmt.Printf("• %s (%s)\n", u.Tag(), u.ID)
		}
	default:
		for _, id := range votes.IDs {
			fmt.Printf("• %d\n", id)
		}
	}
	return nil
}

func runVoted(cmd *cobra.Command, args []string) error {
	botID, err := parseID("bot ID", args[0])
	if err != nil {
		return err
	}
	userID, err := parseID("user ID", args[1])
	if err != nil {
		return err
	}
	auth, err := requireToken()
	if err != nil {
		return err
	}

	voted, err := dblClient.HasVoted(context.Background(), auth, botID, userID)
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(map[string]bool{"voted": voted})
	}
	fmt.Printf("User %d voted for bot %d: %s\n", userID, botID, boolToStatus(voted))
	return nil
}

func runUser(cmd *cobra.Command, args []string) error {
	userID, err := parseID("user ID", args[0])
	if err != nil {
		return err
	}

	user, err := dblClient.GetUser(context.Background(), userID)
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(user)
	}

	fmt.Printf("• %s#%s (%s)\n", user.Username, user.Discriminator, user.ID)
	if bio := deref(user.Bio); bio != "" {
		fmt.Printf("  %s\n", bio)
	}
	fmt.Printf("  Certified developer: %s\n", boolToStatus(user.CertifiedDev))
	fmt.Printf("  Supporter: %s\n", boolToStatus(user.Supporter))
	if user.Admin || user.Mod || user.WebMod {
		fmt.Printf("  Staff: admin=%t mod=%t webmod=%t\n", user.Admin, user.Mod, user.WebMod)
	}
	for name, handle := range map[string]string{
		"GitHub":    user.Social.GitHub,
		"Instagram": user.Social.Instagram,
		"Reddit":    user.Social.Reddit,
		"Twitter":   user.Social.Twitter,
		"YouTube":   user.Social.YouTube,
	} {
		if handle != "" {
			fmt.Printf("  %s: %s\n", name, handle)
		}
	}
	return nil
}
