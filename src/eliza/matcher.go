// Blueprint for new Go projects
// Author: Christi Mahu – https://christimahu.dev
// Part of the dev repo: https://github.com/christimahu/dev/
// This file is part of a minimal idiomatic Go blueprint for creating new applications.
//
// matcher.go - The response matcher. Input text is tested against an ordered
// table of case-insensitive patterns; the first match picks a reply template and
// fills in its $1, $2, ... placeholders from the captured groups.

package eliza

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidConfiguration is returned by New when the rule table cannot be used.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Rule is a compiled pattern paired with its candidate replies.
type Rule struct {
	pattern *regexp.Regexp
	replies []string
}

// Matcher maps one line of user text to one reply.
// It is immutable after New and safe for concurrent use.
type Matcher struct {
	rules    []Rule
	defaults []string
	picker   Picker
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithPicker replaces the random source used to choose between replies.
func WithPicker(p Picker) Option {
	return func(m *Matcher) {
		if p != nil {
			m.picker = p
		}
	}
}

// New compiles cfg into a Matcher. Rule order is kept as declared.
func New(cfg Config, opts ...Option) (*Matcher, error) {
	if len(cfg.Rules) == 0 {
		return nil, fmt.Errorf("%w: rule table is empty", ErrInvalidConfiguration)
	}
	if len(cfg.DefaultReplies) == 0 {
		return nil, fmt.Errorf("%w: default replies are empty", ErrInvalidConfiguration)
	}

	rules := make([]Rule, 0, len(cfg.Rules))
	for i, spec := range cfg.Rules {
		if len(spec.Replies) == 0 {
			return nil, fmt.Errorf("%w: rule %d (%q) has no replies", ErrInvalidConfiguration, i, spec.Matcher)
		}
		re, err := regexp.Compile("(?i)" + spec.Matcher)
		if err != nil {
			return nil, fmt.Errorf("%w: rule %d: %v", ErrInvalidConfiguration, i, err)
		}
		rules = append(rules, Rule{
			pattern: re,
			replies: append([]string(nil), spec.Replies...),
		})
	}

	m := &Matcher{
		rules:    rules,
		defaults: append([]string(nil), cfg.DefaultReplies...),
		picker:   RandomPicker(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Resolve returns the reply for text. It never fails.
func (m *Matcher) Resolve(text string) string {
	for _, rule := range m.rules {
		loc := rule.pattern.FindStringSubmatchIndex(text)
		if loc == nil {
			continue
		}
		reply := rule.replies[m.pick(len(rule.replies))]
		return interpolate(reply, text, loc)
	}
	return m.defaults[m.pick(len(m.defaults))]
}

// Rules returns the number of rules in the table.
func (m *Matcher) Rules() int {
	return len(m.rules)
}

// DefaultReplies returns a copy of the fallback replies.
func (m *Matcher) DefaultReplies() []string {
	return append([]string(nil), m.defaults...)
}

func (m *Matcher) pick(n int) int {
	i := m.picker.Intn(n)
	if i < 0 || i >= n {
		return 0
	}
	return i
}

// interpolate replaces the first occurrence of each $k with group k.
// Groups that did not take part in the match leave their placeholder as is.
func interpolate(reply, text string, loc []int) string {
	for k := 1; k < len(loc)/2; k++ {
		start, end := loc[2*k], loc[2*k+1]
		if start < 0 {
			continue
		}
		reply = strings.Replace(reply, "$"+strconv.Itoa(k), text[start:end], 1)
	}
	return reply
}
