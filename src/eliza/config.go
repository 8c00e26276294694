// Blueprint for new Go projects
// Author: Christi Mahu – https://christimahu.dev
// Part of the dev repo: https://github.com/christimahu/dev/
// This file is part of a minimal idiomatic Go blueprint for creating new applications.
//
// config.go - The rule table format and its loaders. Rule tables are YAML
// documents; JSON works too since it is a subset of YAML.

package eliza

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed rules/default.yaml
var defaultRules []byte

// RuleSpec is one rule record: a pattern and the replies it can produce.
type RuleSpec struct {
	Matcher string   `yaml:"matcher" json:"matcher"`
	Replies []string `yaml:"replies" json:"replies"`
}

// Config is the static configuration of a Matcher.
type Config struct {
	Rules          []RuleSpec `yaml:"rules" json:"rules"`
	DefaultReplies []string   `yaml:"defaultReplies" json:"defaultReplies"`
}

// Parse decodes a rule table. Unknown fields and multiple documents are rejected.
func Parse(data []byte) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to parse rules: %w", err)
	}

	var extra interface{}
	if err := dec.Decode(&extra); err == nil {
		return Config{}, fmt.Errorf("failed to parse rules: multiple YAML documents are not supported")
	} else if !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed after first YAML document: %w", err)
	}
	return cfg, nil
}

// LoadFile reads and parses the rule table at path.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read rules: %w", err)
	}
	return Parse(data)
}

// DefaultConfig returns the built-in rule table.
func DefaultConfig() (Config, error) {
	return Parse(defaultRules)
}
