package types

// ActionKind is one concrete step a plan can contain.
type ActionKind int

const (
	ActionResetMemory ActionKind = iota
	ActionDescribeState
	ActionCheckRecentEmotion
	ActionSupportMessage
	ActionDescribeCapabilities
	ActionEmpathySkill
	ActionAckSearchSkill
	ActionOnlineSearch
	ActionOfferGame
	ActionQueryModel
	ActionKeepConversation
	ActionFallback
)

var actionNames = map[ActionKind]string{
	ActionResetMemory:          "do_reset_memory",
	ActionDescribeState:        "describe_state",
	ActionCheckRecentEmotion:   "check_recent_emotion",
	ActionSupportMessage:       "generate_support_message",
	ActionDescribeCapabilities: "describe_capabilities",
	ActionEmpathySkill:         "use_empathy_skill",
	ActionAckSearchSkill:       "ack_search_skill",
	ActionOnlineSearch:         "run_online_search",
	ActionOfferGame:            "offer_simple_game",
	ActionQueryModel:           "query_model",
	ActionKeepConversation:     "keep_conversation",
	ActionFallback:             "use_fallback_logic",
}

func (a ActionKind) String() string {
	if s, ok := actionNames[a]; ok {
		return s
	}
	return "unknown"
}

// Plan is the ordered list of actions formed for one turn.
// Construction appends in goal order; execution ignores that order and
// fires the first action present when scanning ExecutionOrder. Actions
// shadowed by a higher-priority one never run.
type Plan []ActionKind

func (p Plan) Contains(kind ActionKind) bool {
	for _, a := range p {
		if a == kind {
			return true
		}
	}
	return false
}

func (p Plan) Strings() []string {
	out := make([]string, 0, len(p))
	for _, a := range p {
		out = append(out, a.String())
	}
	return out
}

// ExecutionOrder is the fixed priority the plan executor scans in.
// ActionCheckRecentEmotion is deliberately absent: it can be formed
// (the comfort goal appends it) but it is always accompanied by
// ActionSupportMessage, which outranks it, so it never executes.
var ExecutionOrder = []ActionKind{
	ActionResetMemory,
	ActionDescribeState,
	ActionSupportMessage,
	ActionDescribeCapabilities,
	ActionEmpathySkill,
	ActionAckSearchSkill,
	ActionOnlineSearch,
	ActionOfferGame,
	ActionQueryModel,
	ActionKeepConversation,
	ActionFallback,
}
