package skills

import (
	"math"
	"sort"
)

// Level is the ordinal progression stage of a skill.
type Level int

const (
	LevelNovice Level = iota
	LevelBeginner
	LevelIntermediate
	LevelAdvanced
	LevelExpert
)

var levelNames = map[Level]string{
	LevelNovice:       "novice",
	LevelBeginner:     "beginner",
	LevelIntermediate: "intermediate",
	LevelAdvanced:     "advanced",
	LevelExpert:       "expert",
}

func (l Level) String() string {
	if s, ok := levelNames[l]; ok {
		return s
	}
	return "unknown"
}

// xpThresholds is indexed by Level: the minimum experience required.
var xpThresholds = [...]float64{0, 100, 500, 2000, 10000}

// Names of the skills every ledger starts with.
const (
	SkillGreeting   = "greeting"
	SkillWebSearch  = "web_search"
	SkillEmpathy    = "empathy"
	SkillAnalysis   = "analysis"
	SkillCreativity = "creativity"
)

const (
	successXP = 10
	failureXP = 3

	// per-use novelty bonus, saturating at useBonusCap
	useBonusPerUse = 0.01
	useBonusCap    = 2.0

	// uniform passive growth distributed across all skills per tick
	passiveXPPerCycle = 0.5

	// forgetting engages only after this many cycles of disuse
	dormancyThreshold = 50
	dormancyDecayRate = 0.001
)

// Skill is one progressible capability.
type Skill struct {
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Experience    float64  `json:"experience"`
	Level         Level    `json:"level"`
	Uses          int      `json:"uses"`
	Tags          []string `json:"tags,omitempty"`
	LastUsedCycle int      `json:"last_used_cycle"`
}

// Ledger tracks skill progression for one agent.
type Ledger struct {
	skills          map[string]*Skill
	totalExperience float64
	currentCycle    int
}

func NewLedger() *Ledger {
	l := &Ledger{skills: map[string]*Skill{}}
	defaults := []struct {
		name, category string
		tags           []string
	}{
		{SkillGreeting, "social", []string{"social"}},
		{SkillWebSearch, "technical", []string{"web", "research"}},
		{SkillEmpathy, "social", []string{"emotional"}},
		{SkillAnalysis, "technical", []string{"logic"}},
		{SkillCreativity, "creative", []string{"creative"}},
	}
	for _, d := range defaults {
		l.skills[d.name] = &Skill{Name: d.name, Category: d.category, Tags: d.tags}
	}
	return l
}

// Use grants experience for an explicit skill use and returns the XP
// awarded. Unknown skills are created on first use.
func (l *Ledger) Use(name string, success bool) float64 {
	skill, ok := l.skills[name]
	if !ok {
		skill = &Skill{Name: name, Category: "social"}
		l.skills[name] = skill
	}

	base := float64(failureXP)
	if success {
		base = successXP
	}
	bonus := 1.0 + float64(skill.Uses)*useBonusPerUse
	if bonus > useBonusCap {
		bonus = useBonusCap
	}
	xp := base * bonus

	skill.Experience += xp
	skill.Uses++
	skill.LastUsedCycle = l.currentCycle

	l.totalExperience += xp
	skill.Level = levelFor(skill.Experience)
	return xp
}

// Tick advances the skill clock by the given cycles, spreads a small
// passive XP term across all skills and applies the forgetting curve
// to skills dormant for longer than dormancyThreshold cycles.
func (l *Ledger) Tick(cycles int) {
	if cycles <= 0 {
		return
	}
	l.currentCycle += cycles

	passive := passiveXPPerCycle * float64(cycles)
	l.totalExperience += passive
	share := passive / float64(max(len(l.skills), 1))

	for _, skill := range l.skills {
		skill.Experience += share

		dormancy := l.currentCycle - skill.LastUsedCycle
		if dormancy > dormancyThreshold && skill.Experience > 0 {
			decay := skill.Experience * dormancyDecayRate * float64(cycles)
			skill.Experience = math.Max(0, skill.Experience-decay)
		}

		skill.Level = levelFor(skill.Experience)
	}
}

func levelFor(experience float64) Level {
	for level := LevelExpert; level > LevelNovice; level-- {
		if experience >= xpThresholds[level] {
			return level
		}
	}
	return LevelNovice
}

// Skill returns a copy of the named skill.
func (l *Ledger) Skill(name string) (Skill, bool) {
	s, ok := l.skills[name]
	if !ok {
		return Skill{}, false
	}
	return *s, true
}

// LevelOf returns a skill's ordinal level, zero for unknown names.
func (l *Ledger) LevelOf(name string) Level {
	s, ok := l.skills[name]
	if !ok {
		return LevelNovice
	}
	return s.Level
}

// TotalLevel squashes lifetime experience into a slow-growing scalar.
func (l *Ledger) TotalLevel() int {
	return int(math.Log10(l.totalExperience+1)*2) + 1
}

func (l *Ledger) TotalExperience() float64 {
	return l.totalExperience
}

func (l *Ledger) CurrentCycle() int {
	return l.currentCycle
}

// ByCategory returns copies of the skills in a category, name-sorted.
func (l *Ledger) ByCategory(category string) []Skill {
	var out []Skill
	for _, s := range l.skills {
		if s.Category == category {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// All returns copies of every skill, name-sorted.
func (l *Ledger) All() []Skill {
	out := make([]Skill, 0, len(l.skills))
	for _, s := range l.skills {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
