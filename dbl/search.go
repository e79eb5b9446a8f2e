package dbl

import (
	"net/url"
	"sort"
	"strconv"
)

// MaxSearchLimit is the largest page size the service accepts. Larger
// limits are clamped to it.
const MaxSearchLimit = 500

// QueryParam is one key/value pair of a query string
type QueryParam struct {
	Key   string
	Value string
}

// BotSearch accumulates the optional parameters of a bot search. It is
// single-use: after Build it ignores setters and Build fails.
type BotSearch struct {
	params   map[string]string
	consumed bool
}

// NewBotSearch creates an empty search
func NewBotSearch() *BotSearch {
	return &BotSearch{params: make(map[string]string, 4)}
}

func (s *BotSearch) set(key, value string) *BotSearch {
	if s.consumed {
		return s
	}
	if s.params == nil {
		s.params = make(map[string]string, 4)
	}
	s.params[key] = value
	return s
}

// Limit sets the page size, clamped to MaxSearchLimit
func (s *BotSearch) Limit(limit uint16) *BotSearch {
	if limit > MaxSearchLimit {
		limit = MaxSearchLimit
	}
	return s.set("limit", strconv.FormatUint(uint64(limit), 10))
}

// Offset sets how many results to skip
func (s *BotSearch) Offset(offset uint64) *BotSearch {
	return s.set("offset", strconv.FormatUint(offset, 10))
}

// Search sets the free-text query
func (s *BotSearch) Search(query string) *BotSearch {
	return s.set("search", query)
}

// Sort orders results by field. Descending order prefixes the field with "-".
func (s *BotSearch) Sort(field string, ascending bool) *BotSearch {
	if !ascending {
		field = "-" + field
	}
	return s.set("sort", field)
}

// Build consumes the search and returns its parameters sorted by key
func (s *BotSearch) Build() ([]QueryParam, error) {
	if s.consumed {
		return nil, ErrBuilderConsumed
	}
	s.consumed = true

	params := make([]QueryParam, 0, len(s.params))
	for k, v := range s.params {
		params = append(params, QueryParam{Key: k, Value: v})
	}
	sort.Slice(params, func(i, j int) bool {
		return params[i].Key < params[j].Key
	})

	return params, nil
}

// encodeParams renders params as an encoded query string
func encodeParams(params []QueryParam) string {
	values := make(url.Values, len(params))
	for _, p := range params {
		values.Set(p.Key, p.Value)
	}
	return values.Encode()
}
