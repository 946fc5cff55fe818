package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/silversquirl/elide-c/internal/analyzer"
	"github.com/silversquirl/elide-c/internal/ast"
	"github.com/silversquirl/elide-c/internal/config"
	"github.com/silversquirl/elide-c/internal/diagnostics"
	"github.com/silversquirl/elide-c/internal/loader"
	"github.com/silversquirl/elide-c/internal/pipeline"
	"github.com/silversquirl/elide-c/internal/prettyprinter"
	"github.com/silversquirl/elide-c/internal/utils"
)

// run is the whole driver; it returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("elidec", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to elide.yaml (default: search upwards from the working directory)")
	dump := fs.Bool("dump", false, "print annotated trees to stdout")
	workers := fs.Int("j", 0, "number of units annotated in parallel (default from config)")
	color := fs.String("color", "", "colour diagnostics: auto, always or never")
	verbose := fs.Bool("v", false, "log every unit with its id")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: elidec [flags] unit%s...\n", config.UnitFileExt)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Printf("elidec: %v", err)
		return 2
	}
	if *dump {
		cfg.Dump = true
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if *color != "" {
		if !config.ValidColor(*color) {
			log.Printf("elidec: -color must be auto, always or never, got %q", *color)
			return 2
		}
		cfg.Color = *color
	}

	paths, err := utils.ExpandUnitPaths(fs.Args())
	if err != nil {
		log.Printf("elidec: %v", err)
		return 2
	}
	if len(paths) == 0 {
		if paths, err = cfg.UnitPaths(); err != nil {
			log.Printf("elidec: %v", err)
			return 2
		}
	}
	if len(paths) == 0 {
		fs.Usage()
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	units := make([]*pipeline.PipelineContext, len(paths))
	for i, path := range paths {
		units[i] = pipeline.NewUnit(ctx, cfg, path, nil)
	}
	pipe := pipeline.New(&loader.LoaderProcessor{}, &analyzer.AnnotatorProcessor{})
	results, err := pipeline.RunUnits(ctx, pipe, units, cfg.Workers)
	if err != nil {
		log.Printf("elidec: %v", err)
		return 1
	}

	return report(results, cfg, *verbose, stdout, stderr)
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		if path, err = config.FindConfig(wd); err != nil {
			return nil, err
		}
		if path == "" {
			return config.Default(), nil
		}
	}
	return config.LoadConfig(path)
}

// report emits the first diagnostic of every failed unit in input order and
// dumps the trees of the rest when asked to.
func report(results []*pipeline.PipelineContext, cfg *config.Config, verbose bool, stdout, stderr io.Writer) int {
	emitter := diagnostics.NewEmitter(stderr, diagnostics.ColorMode(cfg.Color))
	failed := 0
	for _, res := range results {
		if verbose {
			status := "ok"
			if res.Failed() {
				status = "failed"
			}
			log.Printf("unit %s %s (%s): %s", res.UnitID, utils.UnitName(res.FilePath), filepath.ToSlash(res.FilePath), status)
		}
		if res.Failed() {
			failed++
			emitter.Emit(filepath.ToSlash(res.FilePath), res.Err())
			if snippet := offendingExpression(res.Err()); snippet != "" {
				fmt.Fprintf(stderr, "  in: %s\n", snippet)
			}
			continue
		}
		if cfg.Dump && res.Program != nil {
			fmt.Fprint(stdout, prettyprinter.Dump(res.Program))
		}
	}

	if failed > 0 {
		log.Printf("elidec: %d of %d units failed", failed, len(results))
		return 1
	}
	return 0
}

func offendingExpression(err error) string {
	var de *diagnostics.DiagnosticError
	if !errors.As(err, &de) {
		return ""
	}
	e, ok := de.Node.(ast.Expression)
	if !ok {
		return ""
	}
	return prettyprinter.Expression(e)
}
