package agent

import (
	"fmt"

	"github.com/mindling-ai/mindling/core/affect"
	"github.com/mindling-ai/mindling/core/skills"
)

// StateSnapshot is a read-only view of everything the agent tracks.
type StateSnapshot struct {
	Cycle         int             `json:"cycle"`
	Emotion       string          `json:"emotion"`
	Confidence    float64         `json:"confidence"`
	Mood          string          `json:"mood"`
	PAD           affect.PAD      `json:"pad"`
	TotalLevel    int             `json:"total_level"`
	Skills        []skills.Skill  `json:"skills"`
	SafetyMode    string          `json:"safety_mode"`
	Profile       ProfileSnapshot `json:"profile"`
	WorkingMemory int             `json:"working_memory"`
	Episodes      int             `json:"episodes"`
}

func (a *Agent) State() StateSnapshot {
	emotion, confidence := a.affect.Dominant()
	return StateSnapshot{
		Cycle:         a.cycle,
		Emotion:       emotion.String(),
		Confidence:    confidence,
		Mood:          a.affect.Mood(),
		PAD:           a.affect.PAD(),
		TotalLevel:    a.skills.TotalLevel(),
		Skills:        a.skills.All(),
		SafetyMode:    a.safety.Mode(),
		Profile:       a.profile.Snapshot(),
		WorkingMemory: a.working.Len(),
		Episodes:      a.episodes.Len(),
	}
}

func (a *Agent) statusLine() string {
	emotion, confidence := a.affect.Dominant()
	return fmt.Sprintf("Cycle: %d, emotion: %s (%.0f%%), mood: %s.",
		a.cycle, emotion, confidence*100, a.affect.Mood())
}
