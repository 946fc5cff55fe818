package pipeline

import (
	"context"

	"github.com/google/uuid"

	"github.com/silversquirl/elide-c/internal/ast"
	"github.com/silversquirl/elide-c/internal/config"
	"github.com/silversquirl/elide-c/internal/symbols"
)

// Processor is one stage of the pipeline.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// PipelineContext carries one compilation unit through the pipeline.
type PipelineContext struct {
	UnitID   uuid.UUID
	FilePath string
	Source   []byte

	Program *ast.Program
	Globals *symbols.GlobalScope
	Errors  []error

	Config  *config.Config
	Context context.Context
}

// NewUnit creates a context for the unit stored at path. Source may be nil,
// in which case the loader reads the file.
func NewUnit(ctx context.Context, cfg *config.Config, path string, source []byte) *PipelineContext {
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg == nil {
		cfg = config.Default()
	}
	return &PipelineContext{
		UnitID:   uuid.New(),
		FilePath: path,
		Source:   source,
		Config:   cfg,
		Context:  ctx,
	}
}

// Failed reports whether any stage recorded an error.
func (c *PipelineContext) Failed() bool { return len(c.Errors) > 0 }

// Err returns the first recorded error, or nil.
func (c *PipelineContext) Err() error {
	if len(c.Errors) == 0 {
		return nil
	}
	return c.Errors[0]
}
