// Blueprint for new Go projects
// Author: Christi Mahu – https://christimahu.dev
// Part of the dev repo: https://github.com/christimahu/dev/
// This file is part of a minimal idiomatic Go blueprint for creating new applications.
//
// handler.go - HTTP handlers. A chat front end posts the user's message and
// renders the returned pair as a user bubble and a bot bubble.

package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/christimahu/dev/blueprints/eliza/src/chatbot"
)

// RuleInfo describes the loaded rule table.
type RuleInfo interface {
	Rules() int
	DefaultReplies() []string
}

// Handler serves the chat endpoints.
type Handler struct {
	bot    *chatbot.Bot
	rules  RuleInfo
	logger *zap.Logger
}

// NewHandler returns a Handler answering with bot.
func NewHandler(bot *chatbot.Bot, rules RuleInfo, logger *zap.Logger) *Handler {
	return &Handler{bot: bot, rules: rules, logger: logger}
}

type replyRequest struct {
	Message string `json:"message"`
}

type replyResponse struct {
	ID string `json:"id"`
	chatbot.Exchange
}

type rulesResponse struct {
	Bot            string   `json:"bot"`
	Rules          int      `json:"rules"`
	DefaultReplies []string `json:"defaultReplies"`
}

// HandleReply answers one user message.
func (h *Handler) HandleReply(w http.ResponseWriter, r *http.Request) {
	var req replyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	ex, err := h.bot.Respond(req.Message)
	if errors.Is(err, chatbot.ErrEmptyMessage) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		h.logger.Error("reply failed", zap.Error(err))
		http.Error(w, "processing error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.logger, replyResponse{ID: uuid.NewString(), Exchange: ex})
}

// HandleRules reports the size of the loaded rule table.
func (h *Handler) HandleRules(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, h.logger, rulesResponse{
		Bot:            h.bot.Name,
		Rules:          h.rules.Rules(),
		DefaultReplies: h.rules.DefaultReplies(),
	})
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("write response", zap.Error(err))
	}
}
