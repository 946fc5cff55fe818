package pipeline

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

type recordingProcessor struct {
	name  string
	fail  bool
	calls *[]string
}

func (p *recordingProcessor) Process(ctx *PipelineContext) *PipelineContext {
	*p.calls = append(*p.calls, p.name)
	if p.fail {
		ctx.Errors = append(ctx.Errors, errors.New(p.name+" failed"))
	}
	return ctx
}

func TestRunStopsAtFirstFailure(t *testing.T) {
	var calls []string
	p := New(
		&recordingProcessor{name: "load", calls: &calls},
		&recordingProcessor{name: "annotate", fail: true, calls: &calls},
		&recordingProcessor{name: "dump", calls: &calls},
	)

	out := p.Run(NewUnit(context.Background(), nil, "a.tree.yaml", nil))
	if len(calls) != 2 || calls[1] != "annotate" {
		t.Fatalf("expected load and annotate to run, got %v", calls)
	}
	if !out.Failed() || out.Err().Error() != "annotate failed" {
		t.Errorf("expected annotate failure, got %v", out.Errors)
	}
}

func TestNewUnit(t *testing.T) {
	a := NewUnit(nil, nil, "a.tree.yaml", nil)
	b := NewUnit(nil, nil, "b.tree.yaml", nil)
	if a.UnitID == b.UnitID {
		t.Errorf("units should get distinct ids")
	}
	if a.Config == nil || a.Context == nil {
		t.Errorf("NewUnit should fill in defaults")
	}
	if a.Err() != nil {
		t.Errorf("fresh unit should have no error")
	}
}

type countingProcessor struct {
	inFlight, peak atomic.Int32
	release        chan struct{}
}

func (p *countingProcessor) Process(ctx *PipelineContext) *PipelineContext {
	n := p.inFlight.Add(1)
	for {
		old := p.peak.Load()
		if n <= old || p.peak.CompareAndSwap(old, n) {
			break
		}
	}
	<-p.release
	p.inFlight.Add(-1)
	if ctx.FilePath == "bad" {
		ctx.Errors = append(ctx.Errors, errors.New("bad unit"))
	}
	return ctx
}

func TestRunUnits(t *testing.T) {
	proc := &countingProcessor{release: make(chan struct{})}
	close(proc.release)

	paths := []string{"a", "bad", "c", "d", "e"}
	units := make([]*PipelineContext, len(paths))
	for i, path := range paths {
		units[i] = NewUnit(context.Background(), nil, path, nil)
	}

	results, err := RunUnits(context.Background(), New(proc), units, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != len(paths) {
		t.Fatalf("expected %d results, got %d", len(paths), len(results))
	}
	for i, res := range results {
		if res.FilePath != paths[i] {
			t.Errorf("result %d: expected %s, got %s", i, paths[i], res.FilePath)
		}
		if res.Failed() != (paths[i] == "bad") {
			t.Errorf("result %d: unexpected failure state %v", i, res.Errors)
		}
	}
	if peak := proc.peak.Load(); peak > 2 {
		t.Errorf("expected at most 2 units in flight, saw %d", peak)
	}
}

func TestRunUnitsCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls []string
	units := []*PipelineContext{NewUnit(ctx, nil, "a", nil)}
	_, err := RunUnits(ctx, New(&recordingProcessor{name: "load", calls: &calls}), units, 1)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(calls) != 0 {
		t.Errorf("no stage should run after cancellation, got %v", calls)
	}
}
