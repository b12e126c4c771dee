package agent

import (
	"strings"

	"github.com/mindling-ai/mindling/core/skills"
	"github.com/mindling-ai/mindling/core/types"
	"github.com/mindling-ai/mindling/pkg/xlog"
)

// RunTurn runs the full pipeline for one line of user text and returns
// exactly one response. Disallowed input terminates the turn early:
// only the cycle counter advances, every other piece of state stays
// untouched.
func (a *Agent) RunTurn(text string) string {
	a.cycle++

	if allowed, reason := a.safety.Check(text); !allowed {
		xlog.Info("Turn blocked by safety gate", "agent", a.ID, "cycle", a.cycle)
		return "⚠️ " + reason
	}

	a.working.Append(types.UserMessage(text))
	attended := a.working.Last(attentionSpan)
	retrieved := a.episodes.Last(recallDepth)

	a.updateAffect(text)

	intent := inferIntent(text)
	goals := goalsFor(intent)
	plan := a.buildPlan(goals)
	xlog.Debug("Turn planned",
		"agent", a.ID,
		"cycle", a.cycle,
		"intent", intent.String(),
		"plan", plan.Strings(),
	)

	response := a.runPlan(plan, text, attended)

	a.learn(text, response, attended, retrieved, intent, goals)
	a.cleanup()

	return response
}

// updateAffect applies at most one stimulus per turn; the first
// matching keyword group wins.
func (a *Agent) updateAffect(text string) {
	lower := strings.ToLower(text)
	for _, rule := range stimulusRules {
		if rule.match(text, lower) {
			a.affect.ApplyStimulus(rule.emotion, rule.weight)
			return
		}
	}
}

// learn records the episode, grants keyword-triggered skill XP and
// feeds the profile accumulator.
func (a *Agent) learn(input, response string, attended []types.Message, retrieved []types.Episode, intent types.Intent, goals []types.Goal) {
	a.episodes.Append(types.Episode{
		Input:     input,
		Output:    response,
		Context:   attended,
		Retrieved: retrieved,
		Intent:    intent,
		Goals:     goals,
	})

	lower := strings.ToLower(input)
	if hasAny(lower, greetSkillWords) {
		a.skills.Use(skills.SkillGreeting, true)
	}
	if hasAny(lower, searchSkillWords) {
		a.skills.Use(skills.SkillWebSearch, true)
	}
	if hasAny(lower, distressWords) {
		a.skills.Use(skills.SkillEmpathy, true)
	}

	a.profile.Observe(input)
}

// cleanup runs after the response is computed; decay and passive
// growth never affect the current turn's output.
func (a *Agent) cleanup() {
	a.affect.Decay()
	a.skills.Tick(1)
}
