package responder

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/mindling-ai/mindling/core/types"
	"github.com/mindling-ai/mindling/pkg/xlog"
)

// Responder generates rule-based answers from analyzed text. It is the
// last-resort collaborator: when it has nothing to say it reports
// ok=false and the orchestrator falls back to a generic acknowledgment.
type Responder struct {
	ctx      context.Context
	search   types.SearchCollaborator
	analyzer *Analyzer
}

// New builds a responder. search may be nil; informational queries then
// get a canned "I need internet access" reply instead of a search.
func New(ctx context.Context, search types.SearchCollaborator) *Responder {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Responder{
		ctx:      ctx,
		search:   search,
		analyzer: NewAnalyzer(),
	}
}

func (r *Responder) TryRespond(text string, conversation []types.Message) (string, bool) {
	analysis := r.analyzer.Analyze(text)
	xlog.Debug("Analyzed input", "type", analysis.Type, "subject", analysis.Subject)

	switch {
	case analysis.Type == QueryMath:
		return solveMath(analysis.Operands), true

	case isInformational(analysis.Type):
		return r.answerWithSearch(analysis), true

	case analysis.IsQuestion && analysis.Subject == "":
		return answerGenericQuestion(conversation), true

	case len(analysis.Keywords) > 0:
		return r.answerByKeywords(analysis)
	}

	return "", false
}

func isInformational(t QueryType) bool {
	switch t {
	case QueryDefinition, QueryHowTo, QueryWhy, QueryWho, QueryCompare, QueryList:
		return true
	}
	return false
}

func solveMath(op MathOperands) string {
	a, b := float64(op.A), float64(op.B)
	var result float64
	switch op.Op {
	case "+":
		result = a + b
	case "-":
		result = a - b
	case "*":
		result = a * b
	case "/":
		if op.B == 0 {
			return "Can't divide by zero!"
		}
		result = a / b
	default:
		return "I couldn't work that expression out."
	}

	if result == math.Trunc(result) {
		return fmt.Sprintf("%d %s %d = %d", op.A, op.Op, op.B, int64(result))
	}
	return fmt.Sprintf("%d %s %d = %g", op.A, op.Op, op.B, result)
}

func (r *Responder) answerWithSearch(analysis Analysis) string {
	if r.search == nil {
		return fmt.Sprintf("To answer that question about %q I'd need internet access.", analysis.Subject)
	}

	query := analysis.Subject
	switch analysis.Type {
	case QueryDefinition:
		query = "what is " + query
	case QueryHowTo:
		query = "how to " + query
	case QueryWho:
		query = "who is " + query
	}

	return r.search.Answer(r.ctx, query)
}

func answerGenericQuestion(conversation []types.Message) string {
	if len(conversation) > 0 {
		last := conversation[len(conversation)-1].Content
		return fmt.Sprintf("Are you asking about what we were just discussing (%q)? Tell me a bit more.", last)
	}
	return "Interesting question! Can you narrow down what exactly you want to know?"
}

var techWords = []string{"python", "code", "program", "function", "class", "method", "golang"}

func (r *Responder) answerByKeywords(analysis Analysis) (string, bool) {
	for _, kw := range analysis.Keywords {
		for _, tech := range techWords {
			if strings.Contains(kw, tech) {
				if r.search != nil {
					n := len(analysis.Keywords)
					if n > 3 {
						n = 3
					}
					return r.search.Answer(r.ctx, strings.Join(analysis.Keywords[:n], " ")), true
				}
				return "That looks like a programming question. I can search for details if you narrow it down.", true
			}
		}
	}
	return "", false
}
