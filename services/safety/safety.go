package safety

import (
	"strings"

	"github.com/mindling-ai/mindling/pkg/xlog"
)

// Mode controls how aggressive the input gate is.
type Mode string

const (
	ModeStandard Mode = "standard"
	ModeStrict   Mode = "strict"
	ModeOff      Mode = "off"
)

func ParseMode(s string) Mode {
	switch Mode(strings.ToLower(s)) {
	case ModeStrict:
		return ModeStrict
	case ModeOff:
		return ModeOff
	default:
		return ModeStandard
	}
}

// blockedPhrases trips the gate in every active mode.
var blockedPhrases = []string{
	"how to make a bomb",
	"build a weapon",
	"make a virus",
	"write malware",
	"hurt myself",
	"kill myself",
}

// strictPhrases additionally trips the gate in strict mode.
var strictPhrases = []string{
	"hack into",
	"steal a password",
	"pick a lock",
}

// Gate is a keyword-based input screen. It is deliberately shallow:
// classification quality is out of scope, the contract is only that
// disallowed input never reaches the rest of the pipeline.
type Gate struct {
	mode Mode
}

func NewGate(mode Mode) *Gate {
	return &Gate{mode: mode}
}

func (g *Gate) Mode() string {
	return string(g.mode)
}

func (g *Gate) Check(text string) (bool, string) {
	if g.mode == ModeOff {
		return true, ""
	}

	t := strings.ToLower(text)
	for _, phrase := range blockedPhrases {
		if strings.Contains(t, phrase) {
			xlog.Warn("Input blocked by safety gate", "mode", g.mode)
			return false, "I can't help with that topic."
		}
	}
	if g.mode == ModeStrict {
		for _, phrase := range strictPhrases {
			if strings.Contains(t, phrase) {
				xlog.Warn("Input blocked by safety gate", "mode", g.mode)
				return false, "I'd rather not go there. Let's talk about something else."
			}
		}
	}
	return true, ""
}
