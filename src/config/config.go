// Blueprint for new Go projects
// Author: Christi Mahu – https://christimahu.dev
// Part of the dev repo: https://github.com/christimahu/dev/
// This file is part of a minimal idiomatic Go blueprint for creating new applications.
//
// config.go - Runtime settings read from the environment, plus the helper that
// turns them into a ready matcher.

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/christimahu/dev/blueprints/eliza/src/eliza"
)

// Config holds the settings for the CLI and the HTTP server.
type Config struct {
	Addr           string
	RulesFile      string
	BotName        string
	LogLevel       string
	AllowedOrigins []string
	// Seed makes reply selection reproducible when set.
	Seed *uint64
}

// Load reads an optional .env file and then the ELIZA_* environment variables.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Addr:           envOr("ELIZA_ADDR", ":8080"),
		RulesFile:      strings.TrimSpace(os.Getenv("ELIZA_RULES_FILE")),
		BotName:        envOr("ELIZA_BOT_NAME", "Eliza"),
		LogLevel:       envOr("ELIZA_LOG_LEVEL", "info"),
		AllowedOrigins: splitList(envOr("ELIZA_ALLOWED_ORIGINS", "*")),
	}

	if raw := strings.TrimSpace(os.Getenv("ELIZA_SEED")); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid ELIZA_SEED %q: %w", raw, err)
		}
		cfg.Seed = &seed
	}
	return cfg, nil
}

// Matcher loads the configured rule table, or the built-in one when no file
// is set, and compiles it.
func (c Config) Matcher() (*eliza.Matcher, error) {
	rules, err := c.Rules()
	if err != nil {
		return nil, err
	}

	var opts []eliza.Option
	if c.Seed != nil {
		opts = append(opts, eliza.WithPicker(eliza.NewSeededPicker(*c.Seed)))
	}
	return eliza.New(rules, opts...)
}

// Rules returns the raw rule table without compiling it.
func (c Config) Rules() (eliza.Config, error) {
	if c.RulesFile == "" {
		return eliza.DefaultConfig()
	}
	return eliza.LoadFile(c.RulesFile)
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
