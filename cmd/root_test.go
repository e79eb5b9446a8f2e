package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/dblgo/config"
	"github.com/s0up4200/dblgo/dbl"
)

func TestParseID(t *testing.T) {
	id, err := parseID("bot ID", "270198738570444801")
	require.NoError(t, err)
	assert.Equal(t, uint64(270198738570444801), id)

	_, err = parseID("bot ID", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bot ID")

	_, err = parseID("user ID", "-1")
	require.Error(t, err)
}

func TestRequireToken(t *testing.T) {
	cfg = &config.Config{}
	_, err := requireToken()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DBLGO_API_TOKEN")

	cfg.API.Token = "secret"
	got, err := requireToken()
	require.NoError(t, err)
	assert.Equal(t, "secret", got)
}

// newStatsCmd returns a fresh command carrying the post-stats flags
func newStatsCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()

	statsFile, statsTotal, statsShards, shardID, shardCount = "", 0, nil, -1, 0

	c := &cobra.Command{Use: "post-stats"}
	c.Flags().StringVar(&statsFile, "file", "", "")
	c.Flags().Uint64Var(&statsTotal, "total", 0, "")
	c.Flags().StringSliceVar(&statsShards, "shards", nil, "")
	c.Flags().Int64Var(&shardID, "shard-id", -1, "")
	c.Flags().Uint64Var(&shardCount, "shard-count", 0, "")
	require.NoError(t, c.Flags().Parse(args))
	return c
}

func TestShardStatsFromFlags(t *testing.T) {
	four := uint64(4)

	tests := []struct {
		name    string
		args    []string
		want    dbl.ShardStats
		wantErr bool
	}{
		{
			name: "cumulative",
			args: []string{"--total", "1200"},
			want: dbl.Cumulative{Total: 1200},
		},
		{
			name: "cumulative with shard count",
			args: []string{"--total", "1200", "--shard-count", "4"},
			want: dbl.Cumulative{Total: 1200, ShardCount: &four},
		},
		{
			name: "single shard",
			args: []string{"--total", "300", "--shard-id", "2", "--shard-count", "4"},
			want: dbl.Shard{GuildCount: 300, ShardID: 2, ShardCount: 4},
		},
		{
			name:    "single shard over range",
			args:    []string{"--total", "70000", "--shard-id", "0"},
			wantErr: true,
		},
		{
			name: "per shard",
			args: []string{"--shards", "10,20,30"},
			want: dbl.Shards{10, 20, 30},
		},
		{
			name:    "invalid shard count",
			args:    []string{"--shards", "10,x"},
			wantErr: true,
		},
		{
			name:    "shards and total together",
			args:    []string{"--shards", "10,20", "--total", "30"},
			wantErr: true,
		},
		{
			name:    "file and total together",
			args:    []string{"--file", "stats.json", "--total", "30"},
			wantErr: true,
		},
		{
			name:    "nothing given",
			args:    nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := shardStatsFromFlags(newStatsCmd(t, tt.args...))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShardStatsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"shards":[5,6]}`), 0o600))

	got, err := shardStatsFromFlags(newStatsCmd(t, "--file", path))
	require.NoError(t, err)
	assert.Equal(t, dbl.Shards{5, 6}, got)

	_, err = shardStatsFromFlags(newStatsCmd(t, "--file", filepath.Join(t.TempDir(), "missing.json")))
	assert.Error(t, err)
}

func TestSetupLoggerLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		l := setupLogger(config.LoggingConfig{Level: level, Format: "json"})
		assert.NotNil(t, l)
	}
}
