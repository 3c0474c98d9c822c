package router

import (
	"context"

	"calendar-assistant/pkg/gemini"
	"calendar-assistant/pkg/log"
)

// Generator is the part of the LLM client the router needs.
type Generator interface {
	GenerateContent(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error)
}

// SemanticRouter classifies user intent using LLM
type SemanticRouter struct {
	llm Generator
	l   log.Logger
}

// New creates a new SemanticRouter
func New(llm Generator, l log.Logger) *SemanticRouter {
	return &SemanticRouter{
		llm: llm,
		l:   l,
	}
}
