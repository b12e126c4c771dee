package types

// Intent is the classified purpose of one user utterance.
// Classification is first-match-wins over an ordered rule table,
// so the order intents are checked in is part of the contract.
type Intent int

const (
	IntentSmalltalk Intent = iota
	IntentStatus
	IntentReset
	IntentAskCapabilities
	IntentAskAdvice
	IntentSeekSupport
	IntentSearchSkill
	IntentWantFun
	IntentGenericQuestion
)

var intentNames = map[Intent]string{
	IntentSmalltalk:       "smalltalk",
	IntentStatus:          "status",
	IntentReset:           "reset",
	IntentAskCapabilities: "ask_capabilities",
	IntentAskAdvice:       "ask_advice",
	IntentSeekSupport:     "seek_support",
	IntentSearchSkill:     "search_skill",
	IntentWantFun:         "want_fun",
	IntentGenericQuestion: "generic_question",
}

func (i Intent) String() string {
	if s, ok := intentNames[i]; ok {
		return s
	}
	return "unknown"
}

// Goal is an abstract intention derived from an intent. Goals keep
// their declared order: plan construction walks them in sequence.
type Goal int

const (
	GoalReportInternalState Goal = iota
	GoalResetMemory
	GoalDescribeCapabilities
	GoalAnalyzeSituation
	GoalGiveSimpleAdvice
	GoalComfortUser
	GoalShowEmpathy
	GoalAckSearchSkill
	GoalMaybeOnlineSearch
	GoalOfferSimpleGame
	GoalTryAnswerQuestion
	GoalKeepConversation
)

var goalNames = map[Goal]string{
	GoalReportInternalState:  "report_internal_state",
	GoalResetMemory:          "reset_memory",
	GoalDescribeCapabilities: "describe_capabilities",
	GoalAnalyzeSituation:     "analyze_situation",
	GoalGiveSimpleAdvice:     "give_simple_advice",
	GoalComfortUser:          "comfort_user",
	GoalShowEmpathy:          "show_empathy",
	GoalAckSearchSkill:       "ack_search_skill",
	GoalMaybeOnlineSearch:    "maybe_online_search",
	GoalOfferSimpleGame:      "offer_simple_game",
	GoalTryAnswerQuestion:    "try_answer_question",
	GoalKeepConversation:     "keep_conversation",
}

func (g Goal) String() string {
	if s, ok := goalNames[g]; ok {
		return s
	}
	return "unknown"
}
