package ngram

import "fmt"

// Smoothing selects how bigram counts are converted into probabilities.
type Smoothing int

const (
	// SmoothNone uses maximum-likelihood estimates; unseen pairs get 0.
	SmoothNone Smoothing = iota
	// SmoothAddOne is Laplace smoothing with an eagerly materialized dense
	// table covering every (predecessor, word) pair. The table is O(V²) in
	// both time and memory; prefer SmoothAddOneFast for single queries.
	SmoothAddOne
	// SmoothAddOneFast is Laplace smoothing computed on demand per queried
	// pair. Pointwise identical to SmoothAddOne.
	SmoothAddOneFast
	// SmoothGoodTuring discounts observed counts by frequency-of-frequencies
	// and reserves Nc(1)/N probability mass for unseen pairs.
	SmoothGoodTuring
)

var smoothingNames = map[string]Smoothing{
	"none":         SmoothNone,
	"add-one":      SmoothAddOne,
	"add-one-fast": SmoothAddOneFast,
	"good-turing":  SmoothGoodTuring,
}

// ParseSmoothing maps one of the literals none, add-one, good-turing or
// add-one-fast to its Smoothing value.
func ParseSmoothing(s string) (Smoothing, error) {
	v, ok := smoothingNames[s]
	if !ok {
		return 0, fmt.Errorf("unknown smoothing type %q (want none, add-one, good-turing or add-one-fast)", s)
	}
	return v, nil
}

func (s Smoothing) String() string {
	switch s {
	case SmoothNone:
		return "none"
	case SmoothAddOne:
		return "add-one"
	case SmoothAddOneFast:
		return "add-one-fast"
	case SmoothGoodTuring:
		return "good-turing"
	}
	return fmt.Sprintf("Smoothing(%d)", int(s))
}

// Smoother converts bigram counts into probabilities.
type Smoother interface {
	// Prob returns the smoothed P(word | prev).
	Prob(prev, word string) float64
	// Unseen returns the shared fallback probability for pairs absent from
	// the table, and whether the strategy designates one.
	Unseen() (float64, bool)
	// Name returns the smoothing literal.
	Name() string
}

func newSmoother(s Smoothing, m *Model) (Smoother, error) {
	switch s {
	case SmoothNone:
		return &mleSmoother{m: m}, nil
	case SmoothAddOneFast:
		return &addOneSmoother{m: m}, nil
	case SmoothAddOne:
		return newDenseAddOne(m), nil
	case SmoothGoodTuring:
		return newGoodTuring(m), nil
	}
	return nil, fmt.Errorf("unknown smoothing %d", int(s))
}

// mleSmoother implements unsmoothed maximum likelihood:
// P(w|p) = C(p,w) / C(p), 0 for unseen pairs.
type mleSmoother struct {
	m *Model
}

func (s *mleSmoother) Prob(prev, word string) float64 {
	c, ok := s.m.Bigrams[Bigram{prev, word}]
	if !ok {
		return 0
	}
	return float64(c) / float64(s.m.Unigrams[prev])
}

func (s *mleSmoother) Unseen() (float64, bool) { return 0, true }
func (s *mleSmoother) Name() string            { return "none" }

// addOneSmoother implements Laplace smoothing computed lazily per query:
// P(w|p) = (C(p,w) + 1) / (C(p) + V).
type addOneSmoother struct {
	m *Model
}

func (s *addOneSmoother) Prob(prev, word string) float64 {
	c := s.m.Bigrams[Bigram{prev, word}]
	return float64(c+1) / float64(s.m.Unigrams[prev]+s.m.V())
}

func (s *addOneSmoother) Unseen() (float64, bool) { return 0, false }
func (s *addOneSmoother) Name() string            { return "add-one-fast" }

// denseAddOne is the eager form of Laplace smoothing: the full table over
// every predecessor except EndMarker and every word except StartMarker is
// materialized up front. Pairs outside the table fall back to the lazy
// formula, so the two add-one variants agree on every query.
type denseAddOne struct {
	lazy  addOneSmoother
	dense map[Bigram]float64
}

func newDenseAddOne(m *Model) *denseAddOne {
	v := m.V()
	dense := make(map[Bigram]float64, v*v)
	for prev, uc := range m.Unigrams {
		if prev == EndMarker {
			continue
		}
		denom := float64(uc + v)
		for word := range m.Unigrams {
			if word == StartMarker {
				continue
			}
			c := m.Bigrams[Bigram{prev, word}]
			dense[Bigram{prev, word}] = float64(c+1) / denom
		}
	}
	return &denseAddOne{lazy: addOneSmoother{m: m}, dense: dense}
}

func (s *denseAddOne) Prob(prev, word string) float64 {
	if p, ok := s.dense[Bigram{prev, word}]; ok {
		return p
	}
	return s.lazy.Prob(prev, word)
}

func (s *denseAddOne) Unseen() (float64, bool) { return 0, false }
func (s *denseAddOne) Name() string            { return "add-one" }

// Table returns the materialized probability table.
func (s *denseAddOne) Table() map[Bigram]float64 { return s.dense }

// goodTuring implements Good-Turing discounting. The frequency-of-frequencies
// histogram Nc is built in a single pass over the bigram counts; per-query
// work is then O(1). Unseen pairs share the reserved mass Nc(1)/N.
type goodTuring struct {
	counts     map[Bigram]int
	n          int // total bigram token occurrences
	freqOfFreq map[int]int
	unseenP    float64
}

func newGoodTuring(m *Model) *goodTuring {
	gt := &goodTuring{
		counts:     m.Bigrams,
		freqOfFreq: make(map[int]int),
	}
	for _, c := range m.Bigrams {
		gt.n += c
		gt.freqOfFreq[c]++
	}
	if gt.n > 0 {
		gt.unseenP = float64(gt.freqOfFreq[1]) / float64(gt.n)
	}
	return gt
}

func (s *goodTuring) Prob(prev, word string) float64 {
	c, ok := s.counts[Bigram{prev, word}]
	if !ok {
		return s.unseenP
	}
	nc := s.freqOfFreq[c]
	if nc == 0 {
		return 0
	}
	adjusted := float64(c+1) * float64(s.freqOfFreq[c+1]) / float64(nc)
	return adjusted / float64(s.n)
}

func (s *goodTuring) Unseen() (float64, bool) { return s.unseenP, true }
func (s *goodTuring) Name() string            { return "good-turing" }
