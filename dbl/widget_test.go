package dbl

import (
	"net/url"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmallWidget(t *testing.T) {
	u, err := NewSmallWidget(1).
		AvatarBackground("00FF00").
		LeftColor("FF0000").
		LeftTextColor("FFFFFF").
		RightColor("0F0F0F").
		RightTextColor("F0F0F0").
		Build()
	require.NoError(t, err)

	// Parameter order is not guaranteed.
	assert.Contains(t, u, "avatarbg=00FF00")
	assert.Contains(t, u, "lefttextcolor=FFFFFF")
	assert.Contains(t, u, "leftcolor=FF0000")
	assert.Contains(t, u, "rightcolor=0F0F0F")
	assert.Contains(t, u, "righttextcolor=F0F0F0")
	assert.Regexp(t, `^https://discordbots\.org/api/widget/1\.svg\?`, u)
}

func TestSmallWidgetLongID(t *testing.T) {
	u, err := NewSmallWidget(270198738570444801).
		LeftColor("FF0000").
		LeftTextColor("FFFFFF").
		Build()
	require.NoError(t, err)

	assert.Regexp(t, `^https://discordbots\.org/api/widget/270198738570444801\.svg\?`, u)
	assert.Contains(t, u, "leftcolor=FF0000")
	assert.Contains(t, u, "lefttextcolor=FFFFFF")
}

func TestLargeWidget(t *testing.T) {
	u, err := NewLargeWidget(1).
		CertifiedColor("FF0000").
		DataColor("00FF00").
		LabelColor("0000FF").
		MiddleColor("FFF000").
		TopColor("000FFF").
		UsernameColor("AAAAAA").
		Build()
	require.NoError(t, err)

	parsed, err := url.Parse(u)
	require.NoError(t, err)
	assert.Equal(t, "/api/widget/1.svg", parsed.Path)

	q := parsed.Query()
	assert.Equal(t, "FF0000", q.Get("certifiedcolor"))
	assert.Equal(t, "00FF00", q.Get("datacolor"))
	assert.Equal(t, "0000FF", q.Get("labelcolor"))
	assert.Equal(t, "FFF000", q.Get("middlecolor"))
	assert.Equal(t, "000FFF", q.Get("topcolor"))
	assert.Equal(t, "AAAAAA", q.Get("usernamecolor"))
}

func TestWidgetWithoutOptions(t *testing.T) {
	u, err := NewLargeWidget(7).Build()
	require.NoError(t, err)
	assert.Equal(t, "https://discordbots.org/api/widget/7.svg", u)
}

func TestWidgetEscapesValues(t *testing.T) {
	u, err := NewSmallWidget(1).LeftColor("#FF 00").Build()
	require.NoError(t, err)
	assert.Contains(t, u, "leftcolor=%23FF+00")
}

func TestWidgetInvalidValue(t *testing.T) {
	_, err := NewSmallWidget(1).LeftColor("\xff\xfe").Build()
	require.Error(t, err)
	assert.Equal(t, InvalidURL, KindOf(err))
	assert.ErrorIs(t, err, ErrInvalidURL)
}

func TestWidgetSingleUse(t *testing.T) {
	w := NewLargeWidget(1).TopColor("FFFFFF")

	_, err := w.Build()
	require.NoError(t, err)

	_, err = w.Build()
	assert.ErrorIs(t, err, ErrBuilderConsumed)
}

func TestClientWidgetUsesBaseURL(t *testing.T) {
	client, err := NewClient(zerolog.Nop(), WithBaseURL("http://localhost:8080/api/"))
	require.NoError(t, err)

	u, err := client.SmallWidget(42).LeftColor("FF0000").Build()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/api/widget/42.svg?leftcolor=FF0000", u)

	u, err = client.LargeWidget(42).Build()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/api/widget/42.svg", u)

	def, err := NewClient(zerolog.Nop())
	require.NoError(t, err)
	u, err = def.LargeWidget(42).Build()
	require.NoError(t, err)
	assert.Equal(t, "https://discordbots.org/api/widget/42.svg", u)
}
