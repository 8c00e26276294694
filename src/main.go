// Blueprint for new Go projects
// Author: Christi Mahu – https://christimahu.dev
// Part of the dev repo: https://github.com/christimahu/dev/
// This file is part of a minimal idiomatic Go blueprint for creating new applications.
//
// main.go - Entry point for the eliza command. Settings come from the
// environment (and an optional .env file); flags override them.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/christimahu/dev/blueprints/eliza/src/chatbot"
	"github.com/christimahu/dev/blueprints/eliza/src/config"
	"github.com/christimahu/dev/blueprints/eliza/src/eliza"
	"github.com/christimahu/dev/blueprints/eliza/src/logging"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	cfg    config.Config
	logger *zap.Logger

	rulesFile string
	seed      uint64
	logLevel  string
	name      string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return newRootCmdFor(&app{})
}

// newRootCmdFor builds the command tree around a. A logger already set on a
// is kept instead of building one from the configured level.
func newRootCmdFor(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "eliza",
		Short: "A rule-based chatbot that answers with canned replies",
		Long: `eliza matches each message against an ordered table of patterns and
answers with one of the replies of the first rule that matches.

Run without arguments to start an interactive chat.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runChat(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.rulesFile, "rules", "", "rule table file (YAML or JSON); defaults to the built-in table")
	flags.Uint64Var(&a.seed, "seed", 0, "seed for reproducible reply selection")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVar(&a.name, "name", "", "bot name shown in the chat")

	root.AddCommand(
		newChatCmd(a),
		newReplyCmd(a),
		newServeCmd(a),
		newCheckCmd(a),
	)
	return root
}

// setup loads the environment and applies flag overrides.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("rules") {
		cfg.RulesFile = a.rulesFile
	}
	if flags.Changed("seed") {
		seed := a.seed
		cfg.Seed = &seed
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("name") {
		cfg.BotName = a.name
	}
	a.cfg = cfg

	if a.logger == nil {
		a.logger, err = logging.New(cfg.LogLevel)
	}
	return err
}

// matcher builds the matcher, failing fast on a bad rule table. The error is
// returned, not logged; cobra reports it.
func (a *app) matcher() (*eliza.Matcher, error) {
	m, err := a.cfg.Matcher()
	if err != nil {
		return nil, fmt.Errorf("load rules: %w", err)
	}
	a.logger.Debug("rules loaded", zap.Int("rules", m.Rules()), zap.String("file", a.cfg.RulesFile))
	return m, nil
}

func (a *app) bot() (*chatbot.Bot, *eliza.Matcher, error) {
	m, err := a.matcher()
	if err != nil {
		return nil, nil, err
	}
	return chatbot.NewBot(a.cfg.BotName, m), m, nil
}
