package analyzer

import (
	"context"

	"github.com/silversquirl/elide-c/internal/pipeline"
)

// AnnotatorProcessor runs the annotation pass over ctx.Program.
type AnnotatorProcessor struct{}

func (ap *AnnotatorProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Program == nil {
		return ctx
	}

	runCtx := ctx.Context
	if runCtx == nil {
		runCtx = context.Background()
	}

	annotator := New(ctx.Config)
	if err := annotator.AnnotateProgram(runCtx, ctx.Program); err != nil {
		ctx.Errors = append(ctx.Errors, err)
	}
	ctx.Globals = annotator.Globals()
	return ctx
}
