package affect

// Emotion is a closed set of named feelings the engine tracks.
type Emotion int

const (
	// EmotionNeutral is never stored; it is reported when every
	// tracked magnitude sits at the floor.
	EmotionNeutral Emotion = iota
	EmotionJoy
	EmotionSadness
	EmotionAnger
	EmotionFear
	EmotionInterest
	EmotionSurprise
)

var emotionNames = map[Emotion]string{
	EmotionNeutral:  "neutral",
	EmotionJoy:      "joy",
	EmotionSadness:  "sadness",
	EmotionAnger:    "anger",
	EmotionFear:     "fear",
	EmotionInterest: "interest",
	EmotionSurprise: "surprise",
}

func (e Emotion) String() string {
	if s, ok := emotionNames[e]; ok {
		return s
	}
	return "unknown"
}

// Emotions is the fixed scan order; ties in Dominant resolve to the
// earliest entry.
var Emotions = []Emotion{
	EmotionJoy,
	EmotionSadness,
	EmotionAnger,
	EmotionFear,
	EmotionInterest,
	EmotionSurprise,
}

// PAD is the pleasure-arousal-dominance mood vector, each axis
// clamped to [-1, 1].
type PAD struct {
	Pleasure  float64 `json:"pleasure"`
	Arousal   float64 `json:"arousal"`
	Dominance float64 `json:"dominance"`
}

const (
	magnitudeFloor = 0.0
	magnitudeCeil  = 1.0

	// fraction of the distance to the floor removed per Decay call
	decayRate = 0.1

	// how strongly a unit stimulus shifts a PAD axis
	padScale = 0.5

	// axes closer to the origin than this count as neutral
	moodDeadzone = 0.1
)

// padSignatures maps each emotion to the direction it pushes the mood
// vector. Only the signs matter; padScale and the stimulus weight set
// the magnitude of the nudge.
var padSignatures = map[Emotion]PAD{
	EmotionJoy:      {Pleasure: 1},
	EmotionSadness:  {Pleasure: -1, Arousal: -1},
	EmotionAnger:    {Pleasure: -1, Arousal: 1, Dominance: 1},
	EmotionFear:     {Pleasure: -1, Arousal: 1, Dominance: -1},
	EmotionInterest: {Arousal: 1},
	EmotionSurprise: {Arousal: 1},
}

// Engine owns the mood vector and per-emotion magnitudes for one agent.
type Engine struct {
	pad        PAD
	magnitudes map[Emotion]float64
}

func NewEngine() *Engine {
	m := make(map[Emotion]float64, len(Emotions))
	for _, e := range Emotions {
		m[e] = magnitudeFloor
	}
	return &Engine{magnitudes: m}
}

// ApplyStimulus raises an emotion's magnitude by weight and nudges the
// mood vector along that emotion's signature.
func (e *Engine) ApplyStimulus(em Emotion, weight float64) {
	if _, ok := e.magnitudes[em]; !ok {
		return
	}
	e.magnitudes[em] = clamp(e.magnitudes[em]+weight, magnitudeFloor, magnitudeCeil)

	sig := padSignatures[em]
	e.pad.Pleasure = clamp(e.pad.Pleasure+sig.Pleasure*weight*padScale, -1, 1)
	e.pad.Arousal = clamp(e.pad.Arousal+sig.Arousal*weight*padScale, -1, 1)
	e.pad.Dominance = clamp(e.pad.Dominance+sig.Dominance*weight*padScale, -1, 1)
}

// Decay pulls every magnitude a fixed fraction toward the floor, so
// unfed emotions fade asymptotically back to baseline.
func (e *Engine) Decay() {
	for em, m := range e.magnitudes {
		e.magnitudes[em] = magnitudeFloor + (m-magnitudeFloor)*(1-decayRate)
	}
}

// Dominant returns the strongest emotion and its share of the total
// magnitude. When everything is at the floor it reports neutral with
// zero confidence.
func (e *Engine) Dominant() (Emotion, float64) {
	var total float64
	best := EmotionNeutral
	var bestMag float64
	for _, em := range Emotions {
		m := e.magnitudes[em]
		total += m
		if m > bestMag {
			best, bestMag = em, m
		}
	}
	if total <= 0 {
		return EmotionNeutral, 0
	}
	return best, bestMag / total
}

// Mood maps the PAD octant to a descriptive label.
func (e *Engine) Mood() string {
	p, a, d := e.pad.Pleasure, e.pad.Arousal, e.pad.Dominance
	if abs(p) < moodDeadzone && abs(a) < moodDeadzone && abs(d) < moodDeadzone {
		return "neutral"
	}
	switch {
	case p >= 0 && a >= 0 && d >= 0:
		return "exuberant"
	case p >= 0 && a >= 0:
		return "dependent"
	case p >= 0 && d >= 0:
		return "relaxed"
	case p >= 0:
		return "docile"
	case a >= 0 && d >= 0:
		return "hostile"
	case a >= 0:
		return "anxious"
	case d >= 0:
		return "disdainful"
	default:
		return "bored"
	}
}

func (e *Engine) PAD() PAD {
	return e.pad
}

func (e *Engine) Magnitude(em Emotion) float64 {
	return e.magnitudes[em]
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
