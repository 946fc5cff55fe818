package loader

import (
	"os"

	"github.com/silversquirl/elide-c/internal/pipeline"
)

// LoaderProcessor fills ctx.Program from ctx.Source, reading ctx.FilePath
// when no source was supplied.
type LoaderProcessor struct{}

func (lp *LoaderProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Source == nil {
		data, err := os.ReadFile(ctx.FilePath)
		if err != nil {
			ctx.Errors = append(ctx.Errors, err)
			return ctx
		}
		ctx.Source = data
	}

	prog, err := Parse(ctx.Source, ctx.FilePath)
	if err != nil {
		ctx.Errors = append(ctx.Errors, err)
		return ctx
	}
	ctx.Program = prog
	return ctx
}
