package responder_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mindling-ai/mindling/core/types"
	"github.com/mindling-ai/mindling/services/responder"
)

type fakeSearch struct {
	queries []string
	answer  string
}

func (f *fakeSearch) Answer(_ context.Context, query string) string {
	f.queries = append(f.queries, query)
	return f.answer
}

var _ = Describe("Analyzer", func() {
	analyzer := responder.NewAnalyzer()

	It("parses bare arithmetic", func() {
		a := analyzer.Analyze("2 + 2")
		Expect(a.Type).To(Equal(responder.QueryMath))
		Expect(a.Operands).To(Equal(responder.MathOperands{A: 2, Op: "+", B: 2}))
	})

	It("parses arithmetic with a question prefix", func() {
		a := analyzer.Analyze("what is 7 * 6?")
		Expect(a.Type).To(Equal(responder.QueryMath))
		Expect(a.Operands).To(Equal(responder.MathOperands{A: 7, Op: "*", B: 6}))
	})

	It("classifies definition queries with a subject", func() {
		a := analyzer.Analyze("tell me about black holes")
		Expect(a.Type).To(Equal(responder.QueryDefinition))
		Expect(a.Subject).To(Equal("black holes"))
	})

	It("marks questions by punctuation and leading word", func() {
		Expect(analyzer.Analyze("is it raining?").IsQuestion).To(BeTrue())
		Expect(analyzer.Analyze("why bother").IsQuestion).To(BeTrue())
		Expect(analyzer.Analyze("nice weather today").IsQuestion).To(BeFalse())
	})

	It("extracts keywords without stop words", func() {
		a := analyzer.Analyze("what about the python project")
		Expect(a.Keywords).To(ContainElements("python", "project"))
		Expect(a.Keywords).ToNot(ContainElement("the"))
	})
})

var _ = Describe("Responder", func() {
	It("solves arithmetic exactly", func() {
		r := responder.New(context.Background(), nil)
		out, ok := r.TryRespond("2 + 2", nil)
		Expect(ok).To(BeTrue())
		Expect(out).To(Equal("2 + 2 = 4"))
	})

	It("answers division by zero with the fixed message", func() {
		r := responder.New(context.Background(), nil)
		out, ok := r.TryRespond("5 / 0", nil)
		Expect(ok).To(BeTrue())
		Expect(out).To(Equal("Can't divide by zero!"))
	})

	It("keeps fractional results fractional", func() {
		r := responder.New(context.Background(), nil)
		out, _ := r.TryRespond("5 / 2", nil)
		Expect(out).To(Equal("5 / 2 = 2.5"))
	})

	It("routes informational queries to search with a shaped query", func() {
		search := &fakeSearch{answer: "a short web summary"}
		r := responder.New(context.Background(), search)

		out, ok := r.TryRespond("tell me about toroidal magnets", nil)
		Expect(ok).To(BeTrue())
		Expect(out).To(Equal("a short web summary"))
		Expect(search.queries).To(ConsistOf("what is toroidal magnets"))
	})

	It("degrades informational queries without a search collaborator", func() {
		r := responder.New(context.Background(), nil)
		out, ok := r.TryRespond("tell me about toroidal magnets", nil)
		Expect(ok).To(BeTrue())
		Expect(out).To(ContainSubstring("internet access"))
	})

	It("asks for clarification on generic questions", func() {
		r := responder.New(context.Background(), nil)
		out, ok := r.TryRespond("really?", []types.Message{types.UserMessage("the moon landing")})
		Expect(ok).To(BeTrue())
		Expect(out).To(ContainSubstring("the moon landing"))
	})

	It("has nothing to say about plain statements", func() {
		r := responder.New(context.Background(), nil)
		_, ok := r.TryRespond("just got home", nil)
		Expect(ok).To(BeFalse())
	})
})
