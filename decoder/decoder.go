// Package decoder finds the most likely tag sequence for a sentence under an
// empirical POS model, expanding a per-word table of reachable
// (tag, predecessorTag) states restricted to each word's ambiguity class.
package decoder

import (
	"github.com/AshWije/postag-go/pos"
)

// Decode tags a whitespace-tokenized sentence against the model. Words
// outside the training vocabulary take the model's most frequent tag and
// propagate the previous step's probabilities unchanged; this is a degraded
// path that cannot fire on well-formed input.
func Decode(m *pos.Model, words []string) *Result {
	if len(words) == 0 {
		return &Result{}
	}

	fallback := m.MostFrequentTag()

	// steps[0] is the boundary state; steps[i+1] maps (tag, prevTag) to the
	// best joint probability of any path reaching tag at word i via prevTag.
	// Only strictly-positive entries are kept.
	steps := make([]map[pos.Pair]float64, 1, len(words)+1)
	steps[0] = map[pos.Pair]float64{{pos.StartMarker, ""}: 1}

	for i, word := range words {
		prev := steps[len(steps)-1]
		cur := make(map[pos.Pair]float64)

		tags := m.TagsFor(word)
		if tags == nil {
			// Out of vocabulary: carry each surviving path forward under
			// the fallback tag without consulting the probability tables.
			for key, p := range prev {
				k := pos.Pair{fallback, key[0]}
				if p > cur[k] {
					cur[k] = p
				}
			}
			steps = append(steps, cur)
			continue
		}

		last := i == len(words)-1
		for key, prior := range prev {
			prevTag := key[0]
			for _, tag := range tags {
				ep := m.EmissionProb(word, tag)
				if ep == 0 {
					continue
				}
				tp := m.TransitionProb(tag, prevTag)
				if tp == 0 {
					continue
				}
				p := prior * ep * tp
				if last {
					fp := m.TransitionProb(pos.EndMarker, tag)
					if fp == 0 {
						continue
					}
					p *= fp
				}
				k := pos.Pair{tag, prevTag}
				if p > cur[k] {
					cur[k] = p
				}
			}
		}
		steps = append(steps, cur)
	}

	final := steps[len(steps)-1]
	if len(final) == 0 {
		// Every path was pruned to zero; degrade to the fallback tag.
		tags := make([]string, len(words))
		for i := range tags {
			tags[i] = fallback
		}
		return &Result{Words: words, Tags: tags}
	}

	bestKey, bestProb := maxEntry(final, "")

	tags := make([]string, len(words))
	tags[len(words)-1] = bestKey[0]
	resolved := bestKey[1]

	// Walk backward: the tag of word i is the resolved predecessor from step
	// i+1; the next predecessor is the best same-tag entry of word i's table.
	for i := len(words) - 2; i >= 0; i-- {
		tags[i] = resolved
		if key, _ := maxEntry(steps[i+1], resolved); key[0] != "" {
			resolved = key[1]
		} else {
			resolved = fallback
		}
	}

	return &Result{Words: words, Tags: tags, Prob: bestProb}
}

// maxEntry returns the highest-probability entry of table, restricted to
// entries whose tag equals filterTag when it is non-empty. Ties break on the
// lexicographically smaller key so decoding is independent of map order.
// A zero key is returned when no entry matches.
func maxEntry(table map[pos.Pair]float64, filterTag string) (pos.Pair, float64) {
	var bestKey pos.Pair
	bestProb := -1.0
	for key, p := range table {
		if filterTag != "" && key[0] != filterTag {
			continue
		}
		if p > bestProb || (p == bestProb && less(key, bestKey)) {
			bestKey = key
			bestProb = p
		}
	}
	if bestProb < 0 {
		return pos.Pair{}, 0
	}
	return bestKey, bestProb
}

func less(a, b pos.Pair) bool {
	if a[0] != b[0] {
		return a[0] < b[0]
	}
	return a[1] < b[1]
}
