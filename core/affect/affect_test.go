package affect_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mindling-ai/mindling/core/affect"
)

var _ = Describe("Engine", func() {
	var engine *affect.Engine

	BeforeEach(func() {
		engine = affect.NewEngine()
	})

	It("starts neutral", func() {
		em, confidence := engine.Dominant()
		Expect(em).To(Equal(affect.EmotionNeutral))
		Expect(confidence).To(BeZero())
		Expect(engine.Mood()).To(Equal("neutral"))
	})

	It("raises the stimulated emotion's magnitude", func() {
		engine.ApplyStimulus(affect.EmotionJoy, 0.3)
		Expect(engine.Magnitude(affect.EmotionJoy)).To(BeNumerically("~", 0.3, 1e-9))

		em, confidence := engine.Dominant()
		Expect(em).To(Equal(affect.EmotionJoy))
		Expect(confidence).To(BeNumerically("~", 1.0, 1e-9))
	})

	It("moves the mood vector along the emotion signature", func() {
		engine.ApplyStimulus(affect.EmotionAnger, 0.5)
		pad := engine.PAD()
		Expect(pad.Pleasure).To(BeNumerically("<", 0))
		Expect(pad.Arousal).To(BeNumerically(">", 0))
		Expect(pad.Dominance).To(BeNumerically(">", 0))
	})

	It("only touches arousal for interest", func() {
		engine.ApplyStimulus(affect.EmotionInterest, 0.4)
		pad := engine.PAD()
		Expect(pad.Pleasure).To(BeZero())
		Expect(pad.Arousal).To(BeNumerically(">", 0))
		Expect(pad.Dominance).To(BeZero())
	})

	It("caps magnitudes and the mood axes", func() {
		for i := 0; i < 50; i++ {
			engine.ApplyStimulus(affect.EmotionJoy, 0.9)
		}
		Expect(engine.Magnitude(affect.EmotionJoy)).To(BeNumerically("<=", 1.0))
		Expect(engine.PAD().Pleasure).To(BeNumerically("<=", 1.0))
	})

	Describe("Decay", func() {
		It("strictly lowers a raised magnitude", func() {
			engine.ApplyStimulus(affect.EmotionJoy, 0.3)
			before := engine.Magnitude(affect.EmotionJoy)
			engine.Decay()
			Expect(engine.Magnitude(affect.EmotionJoy)).To(BeNumerically("<", before))
		})

		It("keeps the strictly largest emotion dominant", func() {
			engine.ApplyStimulus(affect.EmotionJoy, 0.5)
			engine.ApplyStimulus(affect.EmotionSadness, 0.2)
			engine.Decay()

			em, _ := engine.Dominant()
			Expect(em).To(Equal(affect.EmotionJoy))
		})

		It("approaches the floor asymptotically without crossing it", func() {
			engine.ApplyStimulus(affect.EmotionSadness, 0.8)
			for i := 0; i < 200; i++ {
				engine.Decay()
			}
			Expect(engine.Magnitude(affect.EmotionSadness)).To(BeNumerically(">=", 0))
			Expect(engine.Magnitude(affect.EmotionSadness)).To(BeNumerically("<", 0.001))
		})
	})

	Describe("Mood", func() {
		It("labels a pleasant excited mood", func() {
			engine.ApplyStimulus(affect.EmotionJoy, 0.6)
			engine.ApplyStimulus(affect.EmotionInterest, 0.6)
			Expect(engine.Mood()).To(Equal("exuberant"))
		})

		It("labels a frightened mood as anxious", func() {
			engine.ApplyStimulus(affect.EmotionFear, 0.8)
			Expect(engine.Mood()).To(Equal("anxious"))
		})
	})
})
