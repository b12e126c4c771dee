package agent

import (
	"context"

	"github.com/google/uuid"

	"github.com/mindling-ai/mindling/core/affect"
	"github.com/mindling-ai/mindling/core/memory"
	"github.com/mindling-ai/mindling/core/skills"
	"github.com/mindling-ai/mindling/core/types"
)

const (
	// how many working-memory entries the pipeline attends to
	attentionSpan = 10
	// how many episodes are retrieved per turn
	recallDepth = 5
)

// Agent is a single-conversation turn orchestrator. It exclusively
// owns all mutable state below; nothing is shared between instances
// and no method may be called concurrently.
type Agent struct {
	ID string

	ctx       context.Context
	safety    types.SafetyGate
	responder types.TextResponder
	search    types.SearchCollaborator
	model     types.ConversationalModel

	working  *memory.Window
	episodes *memory.EpisodeLog
	affect   *affect.Engine
	skills   *skills.Ledger
	profile  *Profile

	cycle int
}

func New(opts ...Option) (*Agent, error) {
	options, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}

	gate := options.safety
	if gate == nil {
		gate = permissiveGate{}
	}

	return &Agent{
		ID:        uuid.NewString(),
		ctx:       options.context,
		safety:    gate,
		responder: options.responder,
		search:    options.search,
		model:     options.model,
		working:   memory.NewWindow(options.windowCapacity),
		episodes:  memory.NewEpisodeLog(options.episodeCapacity),
		affect:    affect.NewEngine(),
		skills:    skills.NewLedger(),
		profile:   NewProfile(),
	}, nil
}

// permissiveGate is the default when no safety collaborator is wired.
type permissiveGate struct{}

func (permissiveGate) Check(string) (bool, string) { return true, "" }
func (permissiveGate) Mode() string                { return "off" }

// IdleTick advances decay between turns for conversations that go
// quiet. The caller owns serialization with RunTurn.
func (a *Agent) IdleTick(cycles int) {
	a.skills.Tick(cycles)
	a.affect.Decay()
}
