// Blueprint for new Go projects
// Author: Christi Mahu – https://christimahu.dev
// Part of the dev repo: https://github.com/christimahu/dev/
// This file is part of a minimal idiomatic Go blueprint for creating new applications.
//
// chatbot.go - The conversational front of the bot. It cleans up what the user
// typed, hands it to a Responder and pairs the user line with the bot reply.

package chatbot

import (
	"errors"
	"strings"
)

// ErrEmptyMessage is returned when the user submits nothing but whitespace.
var ErrEmptyMessage = errors.New("please enter a valid message")

// Responder turns one line of text into a reply.
type Responder interface {
	Resolve(text string) string
}

// Exchange is one user turn and the bot's answer to it.
type Exchange struct {
	User string `json:"user"`
	Bot  string `json:"bot"`
}

// Bot is a chatbot with a name and a source of replies.
type Bot struct {
	Name      string
	responder Responder
}

// NewBot returns a new Bot instance with the provided name and responder.
func NewBot(name string, responder Responder) *Bot {
	return &Bot{Name: name, responder: responder}
}

// Respond trims input and asks the responder for a reply, once.
// Blank input is rejected with ErrEmptyMessage.
func (b *Bot) Respond(input string) (Exchange, error) {
	msg := strings.TrimSpace(input)
	if msg == "" {
		return Exchange{}, ErrEmptyMessage
	}
	return Exchange{User: msg, Bot: b.responder.Resolve(msg)}, nil
}

// IsExit reports whether input asks to end an interactive session.
func IsExit(input string) bool {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "bye", "quit", "exit":
		return true
	default:
		return false
	}
}
