package state_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mindling-ai/mindling/core/agent"
	"github.com/mindling-ai/mindling/core/state"
)

func newPool() *state.ConversationPool {
	return state.NewConversationPool(func() (*agent.Agent, error) {
		return agent.New()
	})
}

var _ = Describe("ConversationPool", func() {
	It("creates independent conversations", func() {
		pool := newPool()

		first, err := pool.Create()
		Expect(err).ToNot(HaveOccurred())
		second, err := pool.Create()
		Expect(err).ToNot(HaveOccurred())
		Expect(first).ToNot(Equal(second))
		Expect(pool.Len()).To(Equal(2))
	})

	It("keeps state strictly per conversation", func() {
		pool := newPool()
		first, _ := pool.Create()
		second, _ := pool.Create()

		_, err := pool.Chat(first, "hello!")
		Expect(err).ToNot(HaveOccurred())

		firstState, _ := pool.State(first)
		secondState, _ := pool.State(second)
		Expect(firstState.Cycle).To(Equal(1))
		Expect(secondState.Cycle).To(BeZero())
		Expect(secondState.Emotion).To(Equal("neutral"))
	})

	It("rejects unknown conversations", func() {
		pool := newPool()
		_, err := pool.Chat("no-such-id", "hi")
		Expect(err).To(MatchError(state.ErrConversationNotFound))

		_, err = pool.State("no-such-id")
		Expect(err).To(MatchError(state.ErrConversationNotFound))
	})

	It("removes conversations", func() {
		pool := newPool()
		id, _ := pool.Create()
		Expect(pool.Remove(id)).To(BeTrue())
		Expect(pool.Remove(id)).To(BeFalse())
		Expect(pool.Len()).To(BeZero())
	})

	It("rejects malformed idle ticker schedules", func() {
		pool := newPool()
		Expect(pool.StartIdleTicker("not a cron spec", 0)).To(HaveOccurred())
	})

	It("starts and stops the idle ticker", func() {
		pool := newPool()
		Expect(pool.StartIdleTicker("@every 1h", 0)).To(Succeed())
		Expect(pool.StartIdleTicker("@every 1h", 0)).To(HaveOccurred())
		pool.Stop()
		Expect(pool.StartIdleTicker("@every 1h", 0)).To(Succeed())
		pool.Stop()
	})
})
