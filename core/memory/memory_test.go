package memory_test

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mindling-ai/mindling/core/memory"
	"github.com/mindling-ai/mindling/core/types"
)

var _ = Describe("Window", func() {
	It("keeps entries in insertion order", func() {
		w := memory.NewWindow(5)
		w.Append(types.UserMessage("one"))
		w.Append(types.UserMessage("two"))

		last := w.Last(2)
		Expect(last).To(HaveLen(2))
		Expect(last[0].Content).To(Equal("one"))
		Expect(last[1].Content).To(Equal("two"))
	})

	It("evicts strictly oldest-first when over capacity", func() {
		w := memory.NewWindow(3)
		for i := 0; i < 10; i++ {
			w.Append(types.UserMessage(fmt.Sprintf("msg-%d", i)))
		}

		Expect(w.Len()).To(Equal(3))
		last := w.Last(3)
		Expect(last[0].Content).To(Equal("msg-7"))
		Expect(last[2].Content).To(Equal("msg-9"))
	})

	It("never exceeds the default capacity", func() {
		w := memory.NewWindow(memory.DefaultWindowCapacity)
		for i := 0; i < 200; i++ {
			w.Append(types.UserMessage("x"))
			Expect(w.Len()).To(BeNumerically("<=", memory.DefaultWindowCapacity))
		}
	})

	It("returns fewer entries than requested when short", func() {
		w := memory.NewWindow(5)
		w.Append(types.UserMessage("only"))
		Expect(w.Last(10)).To(HaveLen(1))
	})

	It("clears to empty", func() {
		w := memory.NewWindow(5)
		w.Append(types.UserMessage("x"))
		w.Clear()
		Expect(w.Len()).To(BeZero())
		Expect(w.Last(5)).To(BeEmpty())
	})

	It("does not alias internal state in Last", func() {
		w := memory.NewWindow(5)
		w.Append(types.UserMessage("original"))
		view := w.Last(1)
		view[0].Content = "mutated"
		Expect(w.Last(1)[0].Content).To(Equal("original"))
	})
})

var _ = Describe("EpisodeLog", func() {
	It("evicts oldest-first past capacity", func() {
		l := memory.NewEpisodeLog(4)
		for i := 0; i < 9; i++ {
			l.Append(types.Episode{Input: fmt.Sprintf("in-%d", i)})
		}
		Expect(l.Len()).To(Equal(4))
		Expect(l.Last(4)[0].Input).To(Equal("in-5"))
	})

	It("reports the latest episode", func() {
		l := memory.NewEpisodeLog(4)
		_, ok := l.Latest()
		Expect(ok).To(BeFalse())

		l.Append(types.Episode{Input: "first"})
		l.Append(types.Episode{Input: "second"})
		latest, ok := l.Latest()
		Expect(ok).To(BeTrue())
		Expect(latest.Input).To(Equal("second"))
	})

	It("stays within the default capacity", func() {
		l := memory.NewEpisodeLog(memory.DefaultEpisodeCapacity)
		for i := 0; i < 500; i++ {
			l.Append(types.Episode{Input: "x"})
		}
		Expect(l.Len()).To(Equal(memory.DefaultEpisodeCapacity))
	})
})
