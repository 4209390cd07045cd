// Package pos estimates a part-of-speech tagging model from a corpus of
// word_TAG sentences: maximum-likelihood emission and transition
// probabilities plus a word -> tag-set lexicon.
package pos

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Boundary markers for the tag sequence of every sentence.
const (
	StartMarker = "<s>"
	EndMarker   = "</s>"
)

// ErrBadToken reports a training token without the word_TAG delimiter.
var ErrBadToken = errors.New("token missing word_TAG delimiter")

// Pair is an ordered symbol pair: {word, tag} for emissions,
// {tag, predecessorTag} for transitions.
type Pair [2]string

// Builder accumulates tagged sentences into a Model.
type Builder struct {
	tagCounts   map[string]int
	emissions   map[Pair]int
	transitions map[Pair]int
	lexicon     map[string]map[string]struct{}
}

// NewBuilder creates an empty POS model builder.
func NewBuilder() *Builder {
	return &Builder{
		tagCounts:   make(map[string]int),
		emissions:   make(map[Pair]int),
		transitions: make(map[Pair]int),
		lexicon:     make(map[string]map[string]struct{}),
	}
}

// AddSentence adds one training sentence of word_TAG tokens. The tag is
// everything after the first underscore. Each sentence contributes one
// StartMarker occurrence and one EndMarker transition from its last tag.
func (b *Builder) AddSentence(tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}
	prevTag := StartMarker
	for _, tok := range tokens {
		word, tag, ok := strings.Cut(tok, "_")
		if !ok || word == "" || tag == "" {
			return fmt.Errorf("%w: %q", ErrBadToken, tok)
		}

		b.tagCounts[tag]++
		b.emissions[Pair{word, tag}]++
		b.transitions[Pair{tag, prevTag}]++

		set, ok := b.lexicon[word]
		if !ok {
			set = make(map[string]struct{})
			b.lexicon[word] = set
		}
		set[tag] = struct{}{}

		prevTag = tag
	}
	b.transitions[Pair{EndMarker, prevTag}]++
	b.tagCounts[StartMarker]++
	return nil
}

// Model freezes the accumulated counts. The builder must not be reused after.
func (b *Builder) Model() *Model {
	return &Model{
		TagCounts:   b.tagCounts,
		Emissions:   b.emissions,
		Transitions: b.transitions,
		lexicon:     b.lexicon,
	}
}

// Model is an immutable maximum-likelihood POS tagging model. Probabilities
// are unsmoothed; any pair absent from the counts has probability 0.
type Model struct {
	TagCounts   map[string]int // tag unigram counts, StartMarker included
	Emissions   map[Pair]int   // {word, tag}
	Transitions map[Pair]int   // {tag, predecessorTag}

	lexicon map[string]map[string]struct{}
}

// EmissionProb returns P(word | tag), or 0 when the pair was never observed.
func (m *Model) EmissionProb(word, tag string) float64 {
	c, ok := m.Emissions[Pair{word, tag}]
	if !ok {
		return 0
	}
	return float64(c) / float64(m.TagCounts[tag])
}

// TransitionProb returns P(tag | prev), or 0 when the pair was never
// observed. prev may be StartMarker and tag may be EndMarker.
func (m *Model) TransitionProb(tag, prev string) float64 {
	c, ok := m.Transitions[Pair{tag, prev}]
	if !ok {
		return 0
	}
	return float64(c) / float64(m.TagCounts[prev])
}

// Known reports whether word was observed during training.
func (m *Model) Known(word string) bool {
	_, ok := m.lexicon[word]
	return ok
}

// TagsFor returns the sorted set of tags observed for word, nil when the
// word is out of vocabulary.
func (m *Model) TagsFor(word string) []string {
	set, ok := m.lexicon[word]
	if !ok {
		return nil
	}
	tags := make([]string, 0, len(set))
	for tag := range set {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Tags returns the sorted list of distinct tags, boundary markers excluded.
func (m *Model) Tags() []string {
	tags := make([]string, 0, len(m.TagCounts))
	for tag := range m.TagCounts {
		if tag == StartMarker || tag == EndMarker {
			continue
		}
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// MostFrequentTag returns the globally most frequent tag, used as the
// fallback for out-of-vocabulary words. Boundary markers are excluded;
// ties break lexicographically so the choice is deterministic.
func (m *Model) MostFrequentTag() string {
	best := ""
	bestCount := -1
	for _, tag := range m.Tags() {
		if c := m.TagCounts[tag]; c > bestCount {
			best = tag
			bestCount = c
		}
	}
	return best
}
