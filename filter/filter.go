// Package filter selects bots with expr-lang expressions.
//
// Expressions see the bot as top-level variables (Username, ID, Points,
// Certified, Lib, Prefix, Tags, Owners, Date, Description, Vanity, Website)
// and a few helpers:
//
//	hasTag("music") and Points > 100
//	ownedBy("114941315417899012") or daysSince(Date) < 30
//	includes(Description, "moderation") and Lib == "discordgo"
//
// includes is a case-insensitive substring match. The infix form
// `Description contains "x"` is the case-sensitive built-in.
package filter

import (
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/dblgo/dbl"
)

// DefaultCacheSize is the number of compiled programs kept by Compile
const DefaultCacheSize = 100

var defaultCompiler = NewCompiler(DefaultCacheSize)

// Filter is a compiled expression. It is safe for concurrent use.
type Filter struct {
	expression string
	program    *vm.Program
}

// Compile compiles an expression using a shared, cached compiler
func Compile(expression string) (*Filter, error) {
	return defaultCompiler.Compile(expression)
}

// Expression returns the source expression
func (f *Filter) Expression() string {
	return f.expression
}

// Match evaluates the filter against a bot
func (f *Filter) Match(bot dbl.Bot) (bool, error) {
	result, err := expr.Run(f.program, botEnv(bot))
	if err != nil {
		return false, &EvaluationError{Expression: f.expression, BotID: bot.ID, Err: err}
	}
	return result.(bool), nil
}

// Apply returns the bots matching the filter, keeping their order. It stops
// at the first evaluation error.
func (f *Filter) Apply(bots []dbl.Bot) ([]dbl.Bot, error) {
	matched := make([]dbl.Bot, 0, len(bots))
	for _, bot := range bots {
		ok, err := f.Match(bot)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, bot)
		}
	}
	return matched, nil
}

// Compiler compiles expressions and caches the resulting programs
type Compiler struct {
	cache *lruCache[string, *Filter]
}

// NewCompiler creates a compiler caching up to cacheSize programs. A size
// of zero disables caching.
func NewCompiler(cacheSize int) *Compiler {
	c := &Compiler{}
	if cacheSize > 0 {
		c.cache = newLRUCache[string, *Filter](cacheSize)
	}
	return c
}

// Compile parses and type-checks an expression against the bot environment
func (c *Compiler) Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompileError{Expression: expression, Reason: "empty expression"}
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(botEnv(dbl.Bot{})),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompileError{Expression: expression, Reason: "failed to compile expression", Err: err}
	}

	f := &Filter{expression: expression, program: program}
	if c.cache != nil {
		c.cache.Put(expression, f)
	}
	return f, nil
}

// Reset drops every cached program
func (c *Compiler) Reset() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

// CacheLen returns the number of cached programs
func (c *Compiler) CacheLen() int {
	if c.cache == nil {
		return 0
	}
	return c.cache.Len()
}

// botEnv builds the evaluation environment of a bot
func botEnv(bot dbl.Bot) map[string]any {
	tags := bot.Tags
	if tags == nil {
		tags = []string{}
	}
	owners := bot.Owners
	if owners == nil {
		owners = []string{}
	}

	return map[string]any{
		"Username":    bot.Username,
		"ID":          bot.ID,
		"Points":      int(bot.Points),
		"Certified":   bot.CertifiedBot,
		"Lib":         bot.Lib,
		"Prefix":      bot.Prefix,
		"Tags":        tags,
		"Owners":      owners,
		"Date":        bot.Date,
		"Description": bot.ShortDescription,
		"Vanity":      deref(bot.Vanity),
		"Website":     deref(bot.Website),

		"hasTag": func(tag string) bool {
			return bot.HasTag(tag)
		},
		"ownedBy": func(userID string) bool {
			for _, o := range bot.Owners {
				if o == userID {
					return true
				}
			}
			return false
		},
		"daysSince": func(t time.Time) int {
			return int(time.Since(t).Hours() / 24)
		},
		"includes": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"lower": strings.ToLower,
		"now":   time.Now,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
