package memory

import (
	"github.com/mindling-ai/mindling/core/types"
)

const (
	// DefaultWindowCapacity bounds the short working window.
	DefaultWindowCapacity = 20
	// DefaultEpisodeCapacity bounds the episodic log.
	DefaultEpisodeCapacity = 100
)

// Window is the short-term conversational memory: an append-only
// sequence of messages bounded by capacity, oldest dropped first.
type Window struct {
	capacity int
	entries  []types.Message
}

func NewWindow(capacity int) *Window {
	if capacity <= 0 {
		capacity = DefaultWindowCapacity
	}
	return &Window{capacity: capacity}
}

func (w *Window) Append(m types.Message) {
	w.entries = append(w.entries, m)
	if len(w.entries) > w.capacity {
		w.entries = w.entries[len(w.entries)-w.capacity:]
	}
}

// Last returns a copy of the most recent n entries.
func (w *Window) Last(n int) []types.Message {
	if n > len(w.entries) {
		n = len(w.entries)
	}
	out := make([]types.Message, n)
	copy(out, w.entries[len(w.entries)-n:])
	return out
}

func (w *Window) Len() int {
	return len(w.entries)
}

func (w *Window) Clear() {
	w.entries = nil
}

// EpisodeLog is the long-term record of completed turns, bounded the
// same way as Window.
type EpisodeLog struct {
	capacity int
	episodes []types.Episode
}

func NewEpisodeLog(capacity int) *EpisodeLog {
	if capacity <= 0 {
		capacity = DefaultEpisodeCapacity
	}
	return &EpisodeLog{capacity: capacity}
}

func (l *EpisodeLog) Append(e types.Episode) {
	l.episodes = append(l.episodes, e)
	if len(l.episodes) > l.capacity {
		l.episodes = l.episodes[len(l.episodes)-l.capacity:]
	}
}

// Last returns a copy of the most recent n episodes.
func (l *EpisodeLog) Last(n int) []types.Episode {
	if n > len(l.episodes) {
		n = len(l.episodes)
	}
	out := make([]types.Episode, n)
	copy(out, l.episodes[len(l.episodes)-n:])
	return out
}

// Latest returns the most recent episode, if any.
func (l *EpisodeLog) Latest() (types.Episode, bool) {
	if len(l.episodes) == 0 {
		return types.Episode{}, false
	}
	return l.episodes[len(l.episodes)-1], true
}

func (l *EpisodeLog) Len() int {
	return len(l.episodes)
}

func (l *EpisodeLog) Clear() {
	l.episodes = nil
}
