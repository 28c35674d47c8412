// Package link implements the GraphQL request pipeline: an ordered list of stages
// that shape an operation, followed by the transport that sends it.
package link

import (
	"context"

	"go.trai.ch/render/internal/core/domain"
	"go.trai.ch/render/internal/core/ports"
)

// Stage transforms an operation before it is dispatched.
// Returning an error aborts the chain.
type Stage interface {
	Name() string
	Apply(ctx context.Context, op *domain.Operation) error
}

// Observer is implemented by stages that want to see the outcome of the operation.
// Observers run after the terminal (or the failing stage) in reverse stage order
// and cannot change the result.
type Observer interface {
	Observe(ctx context.Context, op *domain.Operation, resp *domain.Response, err error)
}

// Pipeline runs stages in order and hands the operation to the terminal transport.
type Pipeline struct {
	stages   []Stage
	terminal ports.Transport
}

// New creates a Pipeline ending in terminal.
func New(terminal ports.Transport, stages ...Stage) *Pipeline {
	return &Pipeline{stages: stages, terminal: terminal}
}

// Stages returns the stage names in execution order.
func (p *Pipeline) Stages() []string {
	names := make([]string, len(p.stages))
	for i, s := range p.stages {
		names[i] = s.Name()
	}
	return names
}

// Execute shapes op and dispatches it.
// A stage error is returned as is; the terminal is not called.
func (p *Pipeline) Execute(ctx context.Context, op *domain.Operation) (*domain.Response, error) {
	resp, observers, err := p.run(ctx, op, true)
	notify(ctx, observers, op, resp, err)
	return resp, err
}

// Shape runs the stages without dispatching, leaving op as the transport would receive it.
func (p *Pipeline) Shape(ctx context.Context, op *domain.Operation) error {
	_, observers, err := p.run(ctx, op, false)
	if err != nil {
		notify(ctx, observers, op, nil, err)
	}
	return err
}

func (p *Pipeline) run(ctx context.Context, op *domain.Operation, dispatch bool) (*domain.Response, []Observer, error) {
	var observers []Observer
	for _, s := range p.stages {
		if o, ok := s.(Observer); ok {
			observers = append(observers, o)
		}
		if err := s.Apply(ctx, op); err != nil {
			return nil, observers, err
		}
	}
	if !dispatch {
		return nil, observers, nil
	}

	resp, err := p.terminal.Dispatch(ctx, op)
	return resp, observers, err
}

func notify(ctx context.Context, observers []Observer, op *domain.Operation, resp *domain.Response, err error) {
	for i := len(observers) - 1; i >= 0; i-- {
		observers[i].Observe(ctx, op, resp, err)
	}
}
