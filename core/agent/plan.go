package agent

import (
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/mindling-ai/mindling/core/skills"
	"github.com/mindling-ai/mindling/core/types"
	"github.com/mindling-ai/mindling/pkg/xlog"
)

// buildPlan turns the goal list into concrete actions. Terminal goals
// (reset, status) short-circuit everything else; otherwise goals are
// walked in their declared order, one action each. Goals with no
// action mapping contribute nothing, and an empty result becomes a
// single fallback action.
func (a *Agent) buildPlan(goals []types.Goal) types.Plan {
	var plan types.Plan

	for _, g := range goals {
		if g == types.GoalResetMemory {
			return types.Plan{types.ActionResetMemory}
		}
		if g == types.GoalReportInternalState {
			return types.Plan{types.ActionDescribeState}
		}
	}

	for _, g := range goals {
		switch g {
		case types.GoalComfortUser:
			plan = append(plan, types.ActionCheckRecentEmotion, types.ActionSupportMessage)
		case types.GoalShowEmpathy:
			plan = append(plan, types.ActionEmpathySkill)
		case types.GoalDescribeCapabilities:
			plan = append(plan, types.ActionDescribeCapabilities)
		case types.GoalAckSearchSkill:
			plan = append(plan, types.ActionAckSearchSkill)
		case types.GoalMaybeOnlineSearch:
			plan = append(plan, types.ActionOnlineSearch)
		case types.GoalOfferSimpleGame:
			plan = append(plan, types.ActionOfferGame)
		case types.GoalTryAnswerQuestion:
			if a.model != nil {
				plan = append(plan, types.ActionQueryModel)
			} else {
				plan = append(plan, types.ActionFallback)
			}
		case types.GoalKeepConversation:
			plan = append(plan, types.ActionKeepConversation)
		}
	}

	if len(plan) == 0 {
		plan = types.Plan{types.ActionFallback}
	}
	return plan
}

// runPlan scans the fixed execution order, not the plan's own order,
// and fires only the first action present. Lower-priority actions in
// the same plan are intentionally shadowed.
func (a *Agent) runPlan(plan types.Plan, input string, attended []types.Message) string {
	for _, kind := range types.ExecutionOrder {
		if plan.Contains(kind) {
			return a.execute(kind, input, attended)
		}
	}

	xlog.Error("Plan contained no runnable action", "agent", a.ID, "plan", plan.Strings())
	panic(fmt.Sprintf("agent: no runnable action in plan %v", plan.Strings()))
}

func (a *Agent) execute(kind types.ActionKind, input string, attended []types.Message) string {
	switch kind {
	case types.ActionResetMemory:
		a.working.Clear()
		a.episodes.Clear()
		return "Memory cleared. Starting fresh!"

	case types.ActionDescribeState:
		return a.statusLine()

	case types.ActionSupportMessage:
		emotion, _ := a.affect.Dominant()
		return fmt.Sprintf("I hear that things aren't easy for you. Right now I'm feeling %s. Want to tell me more?", emotion)

	case types.ActionDescribeCapabilities:
		return "I'm not a full AI yet, but I can already remember context, react with emotions, level up skills and adapt to you."

	case types.ActionEmpathySkill:
		if a.skills.LevelOf(skills.SkillEmpathy) >= skills.LevelAdvanced {
			return "I'm with you. I'll try to be as attentive as I can."
		}
		return "I understand this is hard for you. I'll do my best to support you."

	case types.ActionAckSearchSkill:
		if a.skills.LevelOf(skills.SkillWebSearch) == skills.LevelNovice {
			return "I'm still learning how to search. I can help you shape a query."
		}
		return "My search skill has leveled up. I can suggest how to look for this."

	case types.ActionOnlineSearch:
		return a.onlineSearch(input)

	case types.ActionOfferGame:
		return "Let's play! I'll think of a number from 1 to 10 and you guess it."

	case types.ActionQueryModel:
		return a.queryModel(input, attended)

	case types.ActionKeepConversation:
		return a.keepConversation(input, attended)

	case types.ActionFallback:
		return a.fallback(input, attended)
	}

	xlog.Error("Unhandled action reached execution", "agent", a.ID, "action", kind.String())
	panic(fmt.Sprintf("agent: unhandled action %q", kind))
}

func (a *Agent) onlineSearch(input string) string {
	query := strings.TrimSpace(input)
	if query == "" {
		return "I need something to search for. Try phrasing a query."
	}
	if a.search == nil {
		return "I can't reach the web right now. Let's figure it out together instead."
	}
	return a.search.Answer(a.ctx, query)
}

func (a *Agent) queryModel(input string, attended []types.Message) string {
	emotion, confidence := a.affect.Dominant()

	messages := []openai.ChatCompletionMessage{{
		Role: openai.ChatMessageRoleSystem,
		Content: fmt.Sprintf(
			"You are an AI companion. Current emotion: %s (%.0f%%). Keep replies short.",
			emotion, confidence*100,
		),
	}}
	for _, m := range attended {
		messages = append(messages, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: input,
	})

	response, err := a.model.Respond(a.ctx, messages)
	if err != nil {
		xlog.Error("Model call failed", "agent", a.ID, "error", err)
		return "I couldn't reach my language model. Let's keep talking without it."
	}
	return response
}

// keepConversation first gives the rule responder a chance (so exact
// answers like arithmetic win on any turn), then offers to pick the
// last topic back up, then acknowledges generically.
func (a *Agent) keepConversation(input string, attended []types.Message) string {
	if response, ok := a.tryResponder(input, attended); ok {
		return response
	}
	if last, ok := a.episodes.Latest(); ok && len(last.Input) > 3 {
		return fmt.Sprintf("We were talking about %q recently. Keep going or switch topics?", last.Input)
	}
	return a.cannedReply(input)
}

func (a *Agent) fallback(input string, attended []types.Message) string {
	if response, ok := a.tryResponder(input, attended); ok {
		return response
	}
	return a.cannedReply(input)
}

func (a *Agent) tryResponder(input string, attended []types.Message) (string, bool) {
	if a.responder == nil {
		return "", false
	}
	return a.responder.TryRespond(input, attended)
}

// cannedReply is the generic acknowledgment of last resort.
func (a *Agent) cannedReply(input string) string {
	lower := strings.ToLower(input)

	if hasAny(lower, greetingWords) {
		return "Hi! Good to see you 🙂"
	}
	if strings.Contains(lower, "how are you") {
		emotion, _ := a.affect.Dominant()
		return fmt.Sprintf("I'm doing alright, feeling %s. How about you?", emotion)
	}
	if strings.Contains(lower, "who are you") {
		return "I'm an experimental AI companion that learns from talking with you."
	}
	if hasAny(lower, capabilityWords) {
		return "I can chat, remember context, react with emotions and level up skills."
	}
	if strings.Contains(input, "?") {
		return "Interesting question. How would you answer it yourself?"
	}
	return "Got it. Can you tell me more?"
}
