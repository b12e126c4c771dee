package state

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mindling-ai/mindling/core/agent"
	"github.com/mindling-ai/mindling/pkg/xlog"
)

var ErrConversationNotFound = errors.New("conversation not found")

// ConversationPool holds one agent per conversation. The core stays
// lock-free per its ownership model; all serialization lives here at
// the boundary, one mutex per conversation.
type ConversationPool struct {
	sync.Mutex
	factory       func() (*agent.Agent, error)
	conversations map[string]*conversation
	cron          *cron.Cron
}

type conversation struct {
	sync.Mutex
	agent      *agent.Agent
	lastActive time.Time
}

func NewConversationPool(factory func() (*agent.Agent, error)) *ConversationPool {
	return &ConversationPool{
		factory:       factory,
		conversations: map[string]*conversation{},
	}
}

// Create starts a new conversation and returns its ID.
func (p *ConversationPool) Create() (string, error) {
	a, err := p.factory()
	if err != nil {
		return "", err
	}

	p.Lock()
	defer p.Unlock()
	p.conversations[a.ID] = &conversation{agent: a, lastActive: time.Now()}
	xlog.Info("Conversation created", "id", a.ID)
	return a.ID, nil
}

func (p *ConversationPool) get(id string) (*conversation, bool) {
	p.Lock()
	defer p.Unlock()
	c, ok := p.conversations[id]
	return c, ok
}

// Chat runs one turn on the conversation's agent. Turns on the same
// conversation are serialized; different conversations run freely in
// parallel.
func (p *ConversationPool) Chat(id, text string) (string, error) {
	c, ok := p.get(id)
	if !ok {
		return "", ErrConversationNotFound
	}

	c.Lock()
	defer c.Unlock()
	c.lastActive = time.Now()
	return c.agent.RunTurn(text), nil
}

func (p *ConversationPool) State(id string) (agent.StateSnapshot, error) {
	c, ok := p.get(id)
	if !ok {
		return agent.StateSnapshot{}, ErrConversationNotFound
	}

	c.Lock()
	defer c.Unlock()
	return c.agent.State(), nil
}

func (p *ConversationPool) Remove(id string) bool {
	p.Lock()
	defer p.Unlock()
	if _, ok := p.conversations[id]; !ok {
		return false
	}
	delete(p.conversations, id)
	xlog.Info("Conversation removed", "id", id)
	return true
}

func (p *ConversationPool) IDs() []string {
	p.Lock()
	defer p.Unlock()
	ids := make([]string, 0, len(p.conversations))
	for id := range p.conversations {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (p *ConversationPool) Len() int {
	p.Lock()
	defer p.Unlock()
	return len(p.conversations)
}

// StartIdleTicker schedules background decay for conversations idle
// longer than idleAfter. Each tick goes through the same per-entry
// mutex as Chat, so an agent never sees concurrent access.
func (p *ConversationPool) StartIdleTicker(cronSpec string, idleAfter time.Duration) error {
	if p.cron != nil {
		return errors.New("idle ticker already started")
	}

	c := cron.New()
	_, err := c.AddFunc(cronSpec, func() { p.tickIdle(idleAfter) })
	if err != nil {
		return err
	}
	c.Start()
	p.cron = c
	xlog.Info("Idle ticker started", "schedule", cronSpec)
	return nil
}

func (p *ConversationPool) tickIdle(idleAfter time.Duration) {
	for _, id := range p.IDs() {
		c, ok := p.get(id)
		if !ok {
			continue
		}
		c.Lock()
		if time.Since(c.lastActive) > idleAfter {
			c.agent.IdleTick(1)
		}
		c.Unlock()
	}
}

func (p *ConversationPool) Stop() {
	if p.cron != nil {
		p.cron.Stop()
		p.cron = nil
	}
}
