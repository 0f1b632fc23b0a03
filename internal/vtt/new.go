package vtt

import (
	"github.com/ndhoang91/vtt-transcripts/internal/logger"
)

type implParser struct {
	logger logger.Logger
}

// NewParser creates a new Parser instance
func NewParser(log logger.Logger) Parser {
	return &implParser{
		logger: log,
	}
}
