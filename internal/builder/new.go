package builder

import (
	"github.com/ndhoang91/vtt-transcripts/internal/logger"
	"github.com/ndhoang91/vtt-transcripts/internal/segments"
	"github.com/ndhoang91/vtt-transcripts/internal/vtt"
)

type implBuilder struct {
	store     segments.Store
	parser    vtt.Parser
	logger    logger.Logger
	outputDir string
}

// New creates a new Builder instance
func New(store segments.Store, parser vtt.Parser, log logger.Logger, outputDir string) Builder {
	return &implBuilder{
		store:     store,
		parser:    parser,
		logger:    log,
		outputDir: outputDir,
	}
}
