// Blueprint for new Go projects
// Author: Christi Mahu – https://christimahu.dev
// Part of the dev repo: https://github.com/christimahu/dev/
// This file is part of a minimal idiomatic Go blueprint for creating new applications.
//
// config_test.go - Tests for environment loading and matcher construction.
// Every ELIZA_* variable is reset per test with t.Setenv.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/christimahu/dev/blueprints/eliza/src/eliza"
)

// Blanks every ELIZA_* variable for the duration of the test.
func clearEnv(t *testing.T) {
	for _, key := range []string{
		"ELIZA_ADDR", "ELIZA_RULES_FILE", "ELIZA_BOT_NAME",
		"ELIZA_LOG_LEVEL", "ELIZA_ALLOWED_ORIGINS", "ELIZA_SEED",
	} {
		t.Setenv(key, "")
	}
}

// With nothing set, every setting takes its default.
func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "", cfg.RulesFile)
	assert.Equal(t, "Eliza", cfg.BotName)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Nil(t, cfg.Seed)
}

// Environment values replace the defaults; origin lists are trimmed.
func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ELIZA_ADDR", "127.0.0.1:9000")
	t.Setenv("ELIZA_BOT_NAME", "Doc")
	t.Setenv("ELIZA_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("ELIZA_SEED", "99")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, "Doc", cfg.BotName)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, uint64(99), *cfg.Seed)
}

// A seed that is not a number fails loading.
func TestLoad_BadSeed(t *testing.T) {
	clearEnv(t)
	t.Setenv("ELIZA_SEED", "not-a-number")

	_, err := Load()
	assert.Error(t, err)
}

// No rules file means the built-in table.
func TestMatcher_Embedded(t *testing.T) {
	m, err := Config{}.Matcher()
	require.NoError(t, err)
	assert.Equal(t, 13, m.Rules())
}

// A fixed seed gives matchers that answer alike.
func TestMatcher_SeededIsReproducible(t *testing.T) {
	seed := uint64(5)
	a, err := Config{Seed: &seed}.Matcher()
	require.NoError(t, err)
	b, err := Config{Seed: &seed}.Matcher()
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Resolve("purple elephants dance"), b.Resolve("purple elephants dance"))
	}
}

// A rules file replaces the built-in table entirely.
func TestMatcher_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	body := "rules:\n  - matcher: ping\n    replies: [pong]\ndefaultReplies: [what]\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	m, err := Config{RulesFile: path}.Matcher()
	require.NoError(t, err)
	assert.Equal(t, "pong", m.Resolve("PING"))
	assert.Equal(t, "what", m.Resolve("hello"))
}

// A rules file without rules fails at startup.
func TestMatcher_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("defaultReplies: [what]\n"), 0o644))

	_, err := Config{RulesFile: path}.Matcher()
	assert.ErrorIs(t, err, eliza.ErrInvalidConfiguration)
}
