// Blueprint for new Go projects
// Author: Christi Mahu – https://christimahu.dev
// Part of the dev repo: https://github.com/christimahu/dev/
// This file is part of a minimal idiomatic Go blueprint for creating new applications.
//
// commands.go - The chat, reply, serve and check subcommands.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/christimahu/dev/blueprints/eliza/src/chatbot"
	"github.com/christimahu/dev/blueprints/eliza/src/eliza"
	"github.com/christimahu/dev/blueprints/eliza/src/server"
)

// maxLineSize bounds one line typed into the chat.
const maxLineSize = 1 << 20

func newChatCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Chat interactively on the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runChat(cmd)
		},
	}
}

func (a *app) runChat(cmd *cobra.Command) error {
	bot, _, err := a.bot()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Chat with %s! Type 'bye' to exit.\n", bot.Name)
	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)

	for {
		fmt.Fprint(out, "You: ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}
		input := scanner.Text()
		if chatbot.IsExit(input) {
			fmt.Fprintf(out, "%s: Goodbye!\n", bot.Name)
			break
		}
		ex, err := bot.Respond(input)
		if errors.Is(err, chatbot.ErrEmptyMessage) {
			fmt.Fprintln(out, "Please enter a valid message.")
			continue
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s: %s\n", bot.Name, ex.Bot)
	}
	return scanner.Err()
}

func newReplyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reply [message]",
		Short: "Print the reply to a single message",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bot, _, err := a.bot()
			if err != nil {
				return err
			}
			ex, err := bot.Respond(strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ex.Bot)
			return nil
		},
	}
}

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the chat API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("addr") {
				a.cfg.Addr = addr
			}
			bot, m, err := a.bot()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			h := server.NewHandler(bot, m, a.logger)
			return server.Run(ctx, a.cfg.Addr, server.NewRouter(h, a.cfg.AllowedOrigins, a.logger), a.logger)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from ELIZA_ADDR or :8080)")
	return cmd
}

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check [file]",
		Short: "Validate a rule table",
		Long: `Loads and compiles a rule table and reports its size.
Without an argument the --rules file (or the built-in table) is checked.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				a.cfg.RulesFile = args[0]
			}
			rules, err := a.cfg.Rules()
			if err != nil {
				return err
			}
			m, err := eliza.New(rules)
			if err != nil {
				return err
			}
			source := a.cfg.RulesFile
			if source == "" {
				source = "built-in"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d rules, %d default replies\n", source, m.Rules(), len(m.DefaultReplies()))
			return nil
		},
	}
}
