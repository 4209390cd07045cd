// Package hmm decodes observation sequences against a pretrained hidden
// Markov model supplied as explicit transition and emission matrices.
package hmm

import (
	"errors"
	"fmt"
)

// ErrUnknownObservation reports an observation absent from the model's
// observation vocabulary. There is no fallback alphabet; decoding such a
// sequence is a fatal input error.
var ErrUnknownObservation = errors.New("observation not in vocabulary")

// Model is a read-only HMM artifact.
//
// A has N+1 rows of N columns: row 0 is the initial-state distribution and
// row s+1 holds the transition probabilities out of state s. B has N rows of
// M columns: B[s][o] is the likelihood of observation o in state s. Tags
// names the N states in order; Observations names the M observation symbols.
type Model struct {
	A            [][]float64 `json:"transition"`
	B            [][]float64 `json:"emission"`
	Tags         []string    `json:"tags"`
	Observations []string    `json:"observations"`

	obsIndex map[string]int
}

// Validate checks the matrix shapes against the tag and observation lists
// and builds the observation index. It must be called before Decode;
// Load does so automatically.
func (m *Model) Validate() error {
	n := len(m.Tags)
	if n == 0 {
		return errors.New("hmm: empty tag list")
	}
	mo := len(m.Observations)
	if mo == 0 {
		return errors.New("hmm: empty observation vocabulary")
	}
	if len(m.A) != n+1 {
		return fmt.Errorf("hmm: transition matrix has %d rows, want %d", len(m.A), n+1)
	}
	for i, row := range m.A {
		if len(row) != n {
			return fmt.Errorf("hmm: transition row %d has %d columns, want %d", i, len(row), n)
		}
	}
	if len(m.B) != n {
		return fmt.Errorf("hmm: emission matrix has %d rows, want %d", len(m.B), n)
	}
	for i, row := range m.B {
		if len(row) != mo {
			return fmt.Errorf("hmm: emission row %d has %d columns, want %d", i, len(row), mo)
		}
	}

	m.obsIndex = make(map[string]int, mo)
	for i, o := range m.Observations {
		m.obsIndex[o] = i
	}
	return nil
}

// ObservationIndex maps an observation symbol to its column index.
func (m *Model) ObservationIndex(obs string) (int, error) {
	i, ok := m.obsIndex[obs]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownObservation, obs)
	}
	return i, nil
}
