package responder

import (
	"regexp"
	"strconv"
	"strings"
)

// QueryType is the shape of a request the analyzer recognized.
type QueryType int

const (
	QueryUnknown QueryType = iota
	QueryMath
	QueryDefinition
	QueryHowTo
	QueryWhy
	QueryWhen
	QueryWhere
	QueryWho
	QueryCompare
	QueryList
)

// MathOperands is a parsed binary arithmetic expression.
type MathOperands struct {
	A  int
	Op string
	B  int
}

// Analysis is the structured view of one utterance.
type Analysis struct {
	Original   string
	Type       QueryType
	Subject    string
	Operands   MathOperands
	Keywords   []string
	IsQuestion bool
}

type pattern struct {
	kind QueryType
	re   *regexp.Regexp
}

// Ordered: math is checked first so "what is 2 + 2" never parses as a
// definition query.
var patterns = []pattern{
	{QueryMath, regexp.MustCompile(`(?:what is|what's|how much is|calculate)?\s*(\d+)\s*([-+*/])\s*(\d+)`)},
	{QueryDefinition, regexp.MustCompile(`(?:what is|what are|explain|tell me about)\s+(.+)`)},
	{QueryHowTo, regexp.MustCompile(`(?:how do i|how can i|how to)\s+(.+)`)},
	{QueryWhy, regexp.MustCompile(`(?:why is|why do|why does|why)\s+(.+)`)},
	{QueryWhen, regexp.MustCompile(`when\s+(.+)`)},
	{QueryWhere, regexp.MustCompile(`where\s+(.+)`)},
	{QueryWho, regexp.MustCompile(`(?:who is|who are|who was)\s+(.+)`)},
	{QueryCompare, regexp.MustCompile(`(?:compare|difference between)\s+(.+)`)},
	{QueryList, regexp.MustCompile(`(?:list|name some|what kinds of)\s+(.+)`)},
}

var questionStarters = []string{
	"what", "how", "where", "when", "why", "who", "which", "can", "do", "does", "is", "are",
}

var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "with": {}, "that": {}, "this": {},
	"what": {}, "how": {}, "you": {}, "your": {}, "are": {}, "was": {},
	"but": {}, "not": {}, "all": {}, "can": {}, "about": {}, "from": {},
	"have": {}, "has": {}, "its": {}, "it's": {}, "they": {}, "them": {},
}

var wordRe = regexp.MustCompile(`[a-z]+`)

// Analyzer extracts structure from raw input text.
type Analyzer struct{}

func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

func (a *Analyzer) Analyze(text string) Analysis {
	lower := strings.ToLower(strings.TrimSpace(text))

	result := Analysis{
		Original:   text,
		Type:       QueryUnknown,
		Keywords:   extractKeywords(lower),
		IsQuestion: isQuestion(text, lower),
	}

	for _, p := range patterns {
		m := p.re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		result.Type = p.kind
		if p.kind == QueryMath {
			left, _ := strconv.Atoi(m[1])
			right, _ := strconv.Atoi(m[3])
			result.Operands = MathOperands{A: left, Op: m[2], B: right}
		} else {
			result.Subject = strings.TrimSpace(m[1])
		}
		break
	}

	return result
}

func isQuestion(text, lower string) bool {
	if strings.Contains(text, "?") {
		return true
	}
	for _, w := range questionStarters {
		if strings.HasPrefix(lower, w+" ") {
			return true
		}
	}
	return false
}

func extractKeywords(lower string) []string {
	var out []string
	for _, w := range wordRe.FindAllString(lower, -1) {
		if len(w) <= 2 {
			continue
		}
		if _, stop := stopWords[w]; stop {
			continue
		}
		out = append(out, w)
	}
	return out
}
