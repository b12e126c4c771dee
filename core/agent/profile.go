package agent

import (
	"regexp"
	"sort"
	"strings"
)

var (
	nameRe    = regexp.MustCompile(`(?i)\bmy name is (\w+)`)
	likeRe    = regexp.MustCompile(`(?i)\bi (?:like|love) (\w+)`)
	dislikeRe = regexp.MustCompile(`(?i)\bi (?:hate|dislike) (\w+)`)
)

// Profile accumulates what the agent knows about its user. It only
// ever grows; unbounded topic growth is a documented property of the
// design, not something to prune away.
type Profile struct {
	name     string
	likes    map[string]struct{}
	dislikes map[string]struct{}
	style    string
	topics   map[string]int
}

func NewProfile() *Profile {
	return &Profile{
		likes:    map[string]struct{}{},
		dislikes: map[string]struct{}{},
		style:    "friendly",
		topics:   map[string]int{},
	}
}

// Observe feeds one input line into the accumulator.
func (p *Profile) Observe(input string) {
	lower := strings.ToLower(input)

	words := splitWords(lower)
	for _, topic := range topicWords {
		for _, w := range words {
			if w == topic {
				p.topics[topic]++
				break
			}
		}
	}

	if p.name == "" {
		if m := nameRe.FindStringSubmatch(input); m != nil {
			p.name = m[1]
		}
	}
	if m := likeRe.FindStringSubmatch(lower); m != nil {
		p.likes[m[1]] = struct{}{}
	}
	if m := dislikeRe.FindStringSubmatch(lower); m != nil {
		p.dislikes[m[1]] = struct{}{}
	}
}

func (p *Profile) Name() string {
	return p.name
}

func (p *Profile) Style() string {
	return p.style
}

func (p *Profile) TopicCount(topic string) int {
	return p.topics[topic]
}

// ProfileSnapshot is the read-only JSON view of a profile.
type ProfileSnapshot struct {
	Name     string         `json:"name,omitempty"`
	Likes    []string       `json:"likes,omitempty"`
	Dislikes []string       `json:"dislikes,omitempty"`
	Style    string         `json:"style"`
	Topics   map[string]int `json:"topics"`
}

func (p *Profile) Snapshot() ProfileSnapshot {
	topics := make(map[string]int, len(p.topics))
	for k, v := range p.topics {
		topics[k] = v
	}
	return ProfileSnapshot{
		Name:     p.name,
		Likes:    sortedKeys(p.likes),
		Dislikes: sortedKeys(p.dislikes),
		Style:    p.style,
		Topics:   topics,
	}
}

func sortedKeys(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
