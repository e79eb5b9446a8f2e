package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/dblgo/dbl"
	"github.com/s0up4200/dblgo/filter"
)

var (
	searchQuery  string
	searchSort   string
	searchDesc   bool
	searchLimit  uint16
	searchOffset uint64
	filterExpr   string

	statsFile   string
	statsTotal  uint64
	statsShards []string
	shardID     int64
	shardCount  uint64
)

// botCmd represents the bot command
var botCmd = &cobra.Command{
	Use:   "bot <id>...",
	Short: "Show bot listings",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runBot,
}

// botsCmd represents the bots command
var botsCmd = &cobra.Command{
	Use:   "bots",
	Short: "Search bot listings",
	Long: `Search bot listings. Results can be narrowed further on the client with
an expression, e.g. --filter 'hasTag("music") and Points > 100' or
--filter 'includes(Description, "moderation")'.`,
	Args: cobra.NoArgs,
	RunE: runBots,
}

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats <bot-id>",
	Short: "Show a bot's server and shard counts",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

// postStatsCmd represents the post-stats command
var postStatsCmd = &cobra.Command{
	Use:   "post-stats <bot-id>",
	Short: "Post a bot's server counts",
	Long: `Post a bot's server counts. Use exactly one of:
  --total N [--shard-count N]         cumulative count
  --total N --shard-id I --shard-count N  count of a single shard
  --shards N,N,...                    per-shard counts
  --file stats.json                   raw payload`,
	Args: cobra.ExactArgs(1),
	RunE: runPostStats,
}

func init() {
	botsCmd.Flags().StringVarP(&searchQuery, "search", "s", "", "free-text query")
	botsCmd.Flags().StringVar(&searchSort, "sort", "", "field to sort by")
	botsCmd.Flags().BoolVar(&searchDesc, "desc", false, "sort descending")
	botsCmd.Flags().Uint16VarP(&searchLimit, "limit", "l", 0, fmt.Sprintf("page size (max %d)", dbl.MaxSearchLimit))
	botsCmd.Flags().Uint64Var(&searchOffset, "offset", 0, "results to skip")
	botsCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "client-side filter expression")

	postStatsCmd.Flags().StringVar(&statsFile, "file", "", "JSON payload file")
	postStatsCmd.Flags().Uint64Var(&statsTotal, "total", 0, "server count")
	postStatsCmd.Flags().StringSliceVar(&statsShards, "shards", nil, "per-shard server counts")
	postStatsCmd.Flags().Int64Var(&shardID, "shard-id", -1, "shard reported by --total")
	postStatsCmd.Flags().Uint64Var(&shardCount, "shard-count", 0, "total number of shards")

	rootCmd.AddCommand(botCmd, botsCmd, statsCmd, postStatsCmd)
}

func runBot(cmd *cobra.Command, args []string) error {
	ids := make([]uint64, 0, len(args))
	for _, arg := range args {
		id, err := parseID("bot ID", arg)
		if err != nil {
			return err
		}
		ids = append(ids, id)
	}

	bots, err := dblClient.GetBots(context.Background(), ids...)
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(bots)
	}
	for _, bot := range bots {
		printBot(bot, true)
	}
	return nil
}

func runBots(cmd *cobra.Command, args []string) error {
	search := dbl.NewBotSearch()
	if cmd.Flags().Changed("search") {
		search.Search(searchQuery)
	}
	if searchSort != "" {
		search.Sort(searchSort, !searchDesc)
	}
	if cmd.Flags().Changed("limit") {
		search.Limit(searchLimit)
	}
	if cmd.Flags().Changed("offset") {
		search.Offset(searchOffset)
	}

	var f *filter.Filter
	if filterExpr != "" {
		var err error
		f, err = filter.Compile(filterExpr)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
	}

	page, err := dblClient.SearchBots(context.Background(), search)
	if err != nil {
		return err
	}

	results := page.Results
	if f != nil {
		results, err = f.Apply(results)
		if err != nil {
			return err
		}
		logger.Debug().Int("before", len(page.Results)).Int("after", len(results)).Msg("Applied filter")
	}

	if jsonOutput {
		return printJSON(results)
	}

	if len(results) == 0 {
		fmt.Println("No bots found matching the search.")
		return nil
	}

	fmt.Printf("\nShowing %d of %d bots (offset %d):\n", len(results), page.Total, page.Offset)
	fmt.Println(strings.Repeat("-", 80))
	for i := range results {
		printBot(&results[i], false)
	}
	if page.HasMore() {
		fmt.Printf("\nMore results available, use --offset %d\n", page.NextOffset())
	}
	return nil
}

func printBot(bot *dbl.Bot, details bool) {
	fmt.Printf("• %s#%s (%s) - %d points", bot.Username, bot.Discriminator, bot.ID, bot.Points)
	if bot.CertifiedBot {
		fmt.Printf(" [CERTIFIED]")
	}
	fmt.Println()
	fmt.Printf("  %s\n", bot.ShortDescription)
	if !details {
		return
	}
	fmt.Printf("  Library: %s\n", bot.Lib)
	fmt.Printf("  Prefix: %s\n", bot.Prefix)
	if len(bot.Tags) > 0 {
		fmt.Printf("  Tags: %s\n", strings.Join(bot.Tags, ", "))
	}
	if owner := bot.PrimaryOwner(); owner != "" {
		fmt.Printf("  Owner: %s\n", owner)
	}
	if !bot.Date.IsZero() {
		fmt.Printf("  Approved: %s\n", bot.Date.Format("2006-01-02"))
	}
	if site := deref(bot.Website); site != "" {
		fmt.Printf("  Website: %s\n", site)
	}
}

func runStats(cmd *cobra.Command, args []string) error {
	botID, err := parseID("bot ID", args[0])
	if err != nil {
		return err
	}

	stats, err := dblClient.GetBotStats(context.Background(), botID)
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(stats)
	}

	fmt.Printf("Stats for bot %d:\n", botID)
	if stats.ServerCount != nil {
		fmt.Printf("- Servers: %d\n", *stats.ServerCount)
	}
	if stats.ShardCount != nil {
		fmt.Printf("- Shards: %d\n", *stats.ShardCount)
	}
	for i, count := range stats.Shards {
		fmt.Printf("  • shard %d: %d servers\n", i, count)
	}
	return nil
}

func runPostStats(cmd *cobra.Command, args []string) error {
	botID, err := parseID("bot ID", args[0])
	if err != nil {
		return err
	}
	auth, err := requireToken()
	if err != nil {
		return err
	}

	stats, err := shardStatsFromFlags(cmd)
	if err != nil {
		return err
	}

	if err := dblClient.PostStats(context.Background(), auth, botID, stats); err != nil {
		return err
	}

	logger.Info().Uint64("bot_id", botID).Msg("Posted stats")
	return nil
}

// shardStatsFromFlags picks the ShardStats variant the flags describe
func shardStatsFromFlags(cmd *cobra.Command) (dbl.ShardStats, error) {
	given := 0
	for _, name := range []string{"file", "shards", "total"} {
		if cmd.Flags().Changed(name) {
			given++
		}
	}
	switch {
	case given == 0:
		return nil, fmt.Errorf("one of --total, --shards or --file is required")
	case given > 1:
		return nil, fmt.Errorf("--total, --shards and --file are mutually exclusive")
	}

	switch {
	case cmd.Flags().Changed("file"):
		data, err := os.ReadFile(statsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read stats file: %w", err)
		}
		return dbl.ParseShardStats(data)
	case cmd.Flags().Changed("shards"):
		counts := make(dbl.Shards, 0, len(statsShards))
		for _, v := range statsShards {
			n, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid shard count %q: %w", v, err)
			}
			counts = append(counts, n)
		}
		return counts, nil
	case shardID >= 0:
		if statsTotal > 0xFFFF {
			return nil, fmt.Errorf("--total of a single shard must be at most 65535")
		}
		return dbl.Shard{GuildCount: uint16(statsTotal), ShardCount: shardCount, ShardID: uint64(shardID)}, nil
	default:
		c := dbl.Cumulative{Total: statsTotal}
		if cmd.Flags().Changed("shard-count") {
			n := shardCount
			c.ShardCount = &n
		}
		return c, nil
	}
}
