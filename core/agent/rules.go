package agent

import (
	"strings"

	"github.com/mindling-ai/mindling/core/affect"
	"github.com/mindling-ai/mindling/core/types"
)

// SearchTriggerToken explicitly invokes the search skill.
const SearchTriggerToken = "web_search"

// Keyword vocabularies. Single words match whole words only; entries
// with spaces match as substrings.
var (
	greetingWords   = []string{"hello", "hi", "hey", "good morning", "good evening"}
	sadnessWords    = []string{"sad", "awful", "unhappy", "miserable"}
	angerWords      = []string{"angry", "furious", "annoyed", "annoying"}
	distressWords   = []string{"sad", "awful", "lonely", "struggling"}
	capabilityWords = []string{"what can you do", "what are you able to do", "who are you"}
	adviceWords     = []string{"advice", "what should i do", "how do i", "suggest"}
	leisureWords    = []string{"game", "play", "bored"}

	// words that count as exercising a skill when they appear
	greetSkillWords  = []string{"hello", "hi", "hey", "bye", "goodbye", "thanks", "thank you"}
	searchSkillWords = []string{"find", "search", "look up", "google", SearchTriggerToken}

	// the fixed topic vocabulary the profile counts
	topicWords = []string{"games", "work", "school", "family", "project"}
)

// hasAny reports whether any vocabulary entry occurs in lower.
// lower must already be lowercased.
func hasAny(lower string, vocabulary []string) bool {
	var words []string
	for _, entry := range vocabulary {
		if strings.Contains(entry, " ") || strings.Contains(entry, "_") {
			if strings.Contains(lower, entry) {
				return true
			}
			continue
		}
		if words == nil {
			words = splitWords(lower)
		}
		for _, w := range words {
			if w == entry {
				return true
			}
		}
	}
	return false
}

func splitWords(lower string) []string {
	return strings.FieldsFunc(lower, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '_' || r == '\'')
	})
}

// intentRule pairs an intent with its predicate. The table is
// evaluated top to bottom, first match wins.
type intentRule struct {
	intent types.Intent
	match  func(raw, lower string) bool
}

var intentRules = []intentRule{
	{types.IntentStatus, func(_, lower string) bool {
		return strings.HasPrefix(lower, "/status")
	}},
	{types.IntentReset, func(_, lower string) bool {
		return strings.HasPrefix(lower, "/reset")
	}},
	{types.IntentAskCapabilities, func(_, lower string) bool {
		return hasAny(lower, capabilityWords)
	}},
	{types.IntentAskAdvice, func(_, lower string) bool {
		return hasAny(lower, adviceWords)
	}},
	{types.IntentSeekSupport, func(_, lower string) bool {
		return hasAny(lower, distressWords)
	}},
	{types.IntentSearchSkill, func(_, lower string) bool {
		return strings.Contains(lower, SearchTriggerToken)
	}},
	{types.IntentWantFun, func(_, lower string) bool {
		return hasAny(lower, leisureWords)
	}},
	{types.IntentGenericQuestion, func(raw, _ string) bool {
		return strings.Contains(raw, "?")
	}},
}

func inferIntent(text string) types.Intent {
	lower := strings.ToLower(text)
	for _, rule := range intentRules {
		if rule.match(text, lower) {
			return rule.intent
		}
	}
	return types.IntentSmalltalk
}

// goalTable is the static intent-to-goals mapping. Goal order inside
// each list is the order plan construction walks them in.
var goalTable = map[types.Intent][]types.Goal{
	types.IntentStatus:          {types.GoalReportInternalState},
	types.IntentReset:           {types.GoalResetMemory},
	types.IntentAskCapabilities: {types.GoalDescribeCapabilities},
	types.IntentAskAdvice:       {types.GoalAnalyzeSituation, types.GoalGiveSimpleAdvice},
	types.IntentSeekSupport:     {types.GoalComfortUser, types.GoalShowEmpathy},
	types.IntentSearchSkill:     {types.GoalAckSearchSkill, types.GoalMaybeOnlineSearch},
	types.IntentWantFun:         {types.GoalOfferSimpleGame},
	types.IntentGenericQuestion: {types.GoalTryAnswerQuestion},
}

func goalsFor(intent types.Intent) []types.Goal {
	if goals, ok := goalTable[intent]; ok {
		return goals
	}
	return []types.Goal{types.GoalKeepConversation}
}

// stimulusRule maps a keyword group to the single affect stimulus a
// turn may apply. First matching group wins.
type stimulusRule struct {
	match   func(raw, lower string) bool
	emotion affect.Emotion
	weight  float64
}

var stimulusRules = []stimulusRule{
	{func(_, lower string) bool { return hasAny(lower, greetingWords) }, affect.EmotionJoy, 0.3},
	{func(_, lower string) bool { return hasAny(lower, sadnessWords) }, affect.EmotionSadness, 0.4},
	{func(_, lower string) bool { return hasAny(lower, angerWords) }, affect.EmotionAnger, 0.3},
	{func(raw, _ string) bool { return strings.Contains(raw, "?") }, affect.EmotionInterest, 0.2},
}
