// Package pipeline defines the stage abstraction and the data passed between
// the render, save and convert stages.
package pipeline

import (
	"context"
)

// Stage is one step of a run: it takes an input and produces a result.
type Stage[In, Out any] interface {
	Execute(ctx context.Context, input In) (Out, error)
}

// StageFunc adapts a function to Stage.
type StageFunc[In, Out any] func(ctx context.Context, input In) (Out, error)

// Execute implements Stage.
func (f StageFunc[In, Out]) Execute(ctx context.Context, input In) (Out, error) {
	return f(ctx, input)
}
