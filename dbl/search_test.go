package dbl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paramMap(params []QueryParam) map[string]string {
	m := make(map[string]string, len(params))
	for _, p := range params {
		m[p.Key] = p.Value
	}
	return m
}

func TestBotSearchFields(t *testing.T) {
	params, err := NewBotSearch().Limit(10).Offset(20).Search("hi").Sort("b", false).Build()
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"limit":  "10",
		"offset": "20",
		"search": "hi",
		"sort":   "-b",
	}, paramMap(params))
}

func TestBotSearchLimitClamp(t *testing.T) {
	tests := []struct {
		limit    uint16
		expected string
	}{
		{0, "0"},
		{499, "499"},
		{500, "500"},
		{501, "500"},
		{1000, "500"},
		{65535, "500"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			params, err := NewBotSearch().Limit(tt.limit).Build()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, paramMap(params)["limit"])
		})
	}
}

func TestBotSearchSort(t *testing.T) {
	for _, field := range []string{"points", "date", "username"} {
		asc, err := NewBotSearch().Sort(field, true).Build()
		require.NoError(t, err)
		assert.Equal(t, field, paramMap(asc)["sort"])

		desc, err := NewBotSearch().Sort(field, false).Build()
		require.NoError(t, err)
		assert.Equal(t, "-"+field, paramMap(desc)["sort"])
	}
}

func TestBotSearchLastValueWins(t *testing.T) {
	params, err := NewBotSearch().Search("a").Search("b").Build()
	require.NoError(t, err)
	assert.Equal(t, []QueryParam{{Key: "search", Value: "b"}}, params)
}

func TestBotSearchSortedByKey(t *testing.T) {
	params, err := NewBotSearch().Sort("points", true).Offset(1).Limit(2).Build()
	require.NoError(t, err)
	require.Len(t, params, 3)
	assert.Equal(t, "limit", params[0].Key)
	assert.Equal(t, "offset", params[1].Key)
	assert.Equal(t, "sort", params[2].Key)
}

func TestBotSearchSingleUse(t *testing.T) {
	s := NewBotSearch().Search("music")

	_, err := s.Build()
	require.NoError(t, err)

	s.Limit(5)
	_, err = s.Build()
	assert.ErrorIs(t, err, ErrBuilderConsumed)
}

func TestBotSearchZeroValue(t *testing.T) {
	var s BotSearch
	params, err := s.Offset(3).Build()
	require.NoError(t, err)
	assert.Equal(t, []QueryParam{{Key: "offset", Value: "3"}}, params)
}

func TestEncodeParams(t *testing.T) {
	got := encodeParams([]QueryParam{{"search", "music bot"}, {"limit", "5"}})
	assert.Equal(t, "limit=5&search=music+bot", got)
}
