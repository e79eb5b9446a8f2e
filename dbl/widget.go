package dbl

import (
	"fmt"
	"net/url"
	"unicode/utf8"

	"github.com/s0up4200/dblgo/dbl/endpoint"
)

// widget is the state shared by LargeWidget and SmallWidget
type widget struct {
	endpoints endpoint.Builder
	botID     uint64
	params    map[string]string
	consumed  bool
}

func newWidget(endpoints endpoint.Builder, botID uint64) widget {
	return widget{endpoints: endpoints, botID: botID, params: make(map[string]string)}
}

func (w *widget) insert(key, value string) {
	if w.consumed {
		return
	}
	w.params[key] = value
}

func (w *widget) build() (string, error) {
	if w.consumed {
		return "", ErrBuilderConsumed
	}
	w.consumed = true

	raw := w.endpoints.Widget(w.botID)
	u, err := url.Parse(raw)
	if err != nil {
		return "", &Error{Kind: InvalidURL, Op: "BuildWidget", URL: raw, Err: err}
	}

	params := make([]QueryParam, 0, len(w.params))
	for k, v := range w.params {
		if !utf8.ValidString(v) {
			return "", &Error{Kind: InvalidURL, Op: "BuildWidget", URL: raw,
				Err: fmt.Errorf("value of %q is not valid UTF-8", k)}
		}
		params = append(params, QueryParam{Key: k, Value: v})
	}
	u.RawQuery = encodeParams(params)

	return u.String(), nil
}

// LargeWidget builds the URL of a large bot widget
type LargeWidget struct {
	w widget
}

// NewLargeWidget creates a large widget for botID on endpoint.Base. Use
// Client.LargeWidget for a client with a different base URL.
func NewLargeWidget(botID uint64) *LargeWidget {
	return &LargeWidget{w: newWidget(endpoint.New(endpoint.Base), botID)}
}

// LargeWidget creates a large widget for botID on the client's base URL
func (c *Client) LargeWidget(botID uint64) *LargeWidget {
	return &LargeWidget{w: newWidget(c.endpoints, botID)}
}

// Build consumes the widget and returns its URL
func (l *LargeWidget) Build() (string, error) {
	return l.w.build()
}

// TopColor sets the colour of the top bar
func (l *LargeWidget) TopColor(value string) *LargeWidget {
	l.w.insert("topcolor", value)
	return l
}

// MiddleColor sets the colour of the middle section
func (l *LargeWidget) MiddleColor(value string) *LargeWidget {
	l.w.insert("middlecolor", value)
	return l
}

// UsernameColor sets the colour of the username
func (l *LargeWidget) UsernameColor(value string) *LargeWidget {
	l.w.insert("usernamecolor", value)
	return l
}

// CertifiedColor sets the colour of the certified badge
func (l *LargeWidget) CertifiedColor(value string) *LargeWidget {
	l.w.insert("certifiedcolor", value)
	return l
}

// DataColor sets the colour of the statistic values
func (l *LargeWidget) DataColor(value string) *LargeWidget {
	l.w.insert("datacolor", value)
	return l
}

// LabelColor sets the colour of the statistic labels
func (l *LargeWidget) LabelColor(value string) *LargeWidget {
	l.w.insert("labelcolor", value)
	return l
}

// SmallWidget builds the URL of a small bot widget
type SmallWidget struct {
	w widget
}

// NewSmallWidget creates a small widget for botID on endpoint.Base. Use
// Client.SmallWidget for a client with a different base URL.
func NewSmallWidget(botID uint64) *SmallWidget {
	return &SmallWidget{w: newWidget(endpoint.New(endpoint.Base), botID)}
}

// SmallWidget creates a small widget for botID on the client's base URL
func (c *Client) SmallWidget(botID uint64) *SmallWidget {
	return &SmallWidget{w: newWidget(c.endpoints, botID)}
}

// Build consumes the widget and returns its URL
func (s *SmallWidget) Build() (string, error) {
	return s.w.build()
}

// AvatarBackground sets the background colour behind the avatar
func (s *SmallWidget) AvatarBackground(value string) *SmallWidget {
	s.w.insert("avatarbg", value)
	return s
}

// LeftColor sets the colour of the left half
func (s *SmallWidget) LeftColor(value string) *SmallWidget {
	s.w.insert("leftcolor", value)
	return s
}

// LeftTextColor sets the text colour of the left half
func (s *SmallWidget) LeftTextColor(value string) *SmallWidget {
	s.w.insert("lefttextcolor", value)
	return s
}

// RightColor sets the colour of the right half
func (s *SmallWidget) RightColor(value string) *SmallWidget {
	s.w.insert("rightcolor", value)
	return s
}

// RightTextColor sets the text colour of the right half
func (s *SmallWidget) RightTextColor(value string) *SmallWidget {
	s.w.insert("righttextcolor", value)
	return s
}
