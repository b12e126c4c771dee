package agent

import (
	"context"

	"github.com/mindling-ai/mindling/core/memory"
	"github.com/mindling-ai/mindling/core/types"
)

type Option func(*options) error

type options struct {
	context         context.Context
	safety          types.SafetyGate
	responder       types.TextResponder
	search          types.SearchCollaborator
	model           types.ConversationalModel
	windowCapacity  int
	episodeCapacity int
}

func defaultOptions() *options {
	return &options{
		context:         context.Background(),
		windowCapacity:  memory.DefaultWindowCapacity,
		episodeCapacity: memory.DefaultEpisodeCapacity,
	}
}

func newOptions(opts ...Option) (*options, error) {
	options := defaultOptions()
	for _, o := range opts {
		if err := o(options); err != nil {
			return nil, err
		}
	}
	return options, nil
}

func WithContext(ctx context.Context) Option {
	return func(o *options) error {
		o.context = ctx
		return nil
	}
}

func WithSafetyGate(gate types.SafetyGate) Option {
	return func(o *options) error {
		o.safety = gate
		return nil
	}
}

func WithResponder(responder types.TextResponder) Option {
	return func(o *options) error {
		o.responder = responder
		return nil
	}
}

func WithSearch(search types.SearchCollaborator) Option {
	return func(o *options) error {
		o.search = search
		return nil
	}
}

// WithModel injects the optional LLM-backed responder. Whether the
// model path exists is decided here, once, at construction.
func WithModel(model types.ConversationalModel) Option {
	return func(o *options) error {
		o.model = model
		return nil
	}
}

func WithWindowCapacity(n int) Option {
	return func(o *options) error {
		o.windowCapacity = n
		return nil
	}
}

func WithEpisodeCapacity(n int) Option {
	return func(o *options) error {
		o.episodeCapacity = n
		return nil
	}
}
