package hmm

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/AshWije/postag-go/internal/mathutil"
)

// Result is the most likely state sequence for an observation sequence.
type Result struct {
	Words   []string
	Tags    []string
	LogProb float64 // natural-log probability of the best path
}

// Prob returns the path probability in linear domain. Long sequences
// underflow to 0 here; LogProb does not.
func (r *Result) Prob() float64 {
	if r.LogProb <= mathutil.LogZero/2 {
		return 0
	}
	return math.Exp(r.LogProb)
}

// Tagged renders the result as space-separated word_TAG tokens.
func (r *Result) Tagged() string {
	parts := make([]string, len(r.Words))
	for i, w := range r.Words {
		parts[i] = w + "_" + r.Tags[i]
	}
	return strings.Join(parts, " ")
}

// Decode runs the Viterbi recurrence over the model for the given
// observation sequence. Scores accumulate in log domain so long sequences do
// not underflow; ErrUnknownObservation is returned for any observation
// outside the model's vocabulary.
func (m *Model) Decode(words []string) (*Result, error) {
	if len(words) == 0 {
		return nil, errors.New("hmm: empty observation sequence")
	}
	if m.obsIndex == nil {
		return nil, errors.New("hmm: model not validated")
	}

	obs := make([]int, len(words))
	for i, w := range words {
		o, err := m.ObservationIndex(w)
		if err != nil {
			return nil, fmt.Errorf("observation %d: %w", i, err)
		}
		obs[i] = o
	}

	n := len(m.Tags)
	T := len(obs)

	// v[t][s] is the best log probability of any path ending in state s at
	// time t; bt[t][s] is the predecessor achieving it.
	v := mathutil.NewMat(T, n)
	bt := mathutil.NewIntMat(T, n)

	for s := 0; s < n; s++ {
		v[0][s] = mathutil.Log(m.A[0][s]) + mathutil.Log(m.B[s][obs[0]])
	}

	scores := make([]float64, n)
	for t := 1; t < T; t++ {
		for s := 0; s < n; s++ {
			for sp := 0; sp < n; sp++ {
				scores[sp] = v[t-1][sp] + mathutil.Log(m.A[sp+1][s])
			}
			best := floats.MaxIdx(scores)
			v[t][s] = scores[best] + mathutil.Log(m.B[s][obs[t]])
			bt[t][s] = best
		}
	}

	bestState := floats.MaxIdx(v[T-1])

	states := make([]int, T)
	states[T-1] = bestState
	for t := T - 1; t > 0; t-- {
		states[t-1] = bt[t][states[t]]
	}

	tags := make([]string, T)
	for t, s := range states {
		tags[t] = m.Tags[s]
	}

	return &Result{Words: words, Tags: tags, LogProb: v[T-1][bestState]}, nil
}
