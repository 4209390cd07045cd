package hmm

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"
)

// Two states {A, B}, two observations {x, y}.
func toyModel(t *testing.T) *Model {
	t.Helper()
	m := &Model{
		A: [][]float64{
			{0.6, 0.4}, // initial
			{0.7, 0.3}, // out of A
			{0.4, 0.6}, // out of B
		},
		B: [][]float64{
			{0.9, 0.1}, // state A
			{0.2, 0.8}, // state B
		},
		Tags:         []string{"A", "B"},
		Observations: []string{"x", "y"},
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	return m
}

func TestDecodeToy(t *testing.T) {
	m := toyModel(t)

	// v[A][0] = 0.6*0.9 = 0.54, v[B][0] = 0.4*0.2 = 0.08
	// v[A][1] = max(0.54*0.7, 0.08*0.4) * 0.1 = 0.0378
	// v[B][1] = max(0.54*0.3, 0.08*0.6) * 0.8 = 0.1296
	r, err := m.Decode([]string{"x", "y"})
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if want := []string{"A", "B"}; !reflect.DeepEqual(r.Tags, want) {
		t.Errorf("Tags = %v, want %v", r.Tags, want)
	}
	if want := 0.1296; math.Abs(r.Prob()-want) > 1e-12 {
		t.Errorf("Prob = %v, want %v", r.Prob(), want)
	}
	if got := r.Tagged(); got != "x_A y_B" {
		t.Errorf("Tagged() = %q", got)
	}
}

func TestDecodeBacktrace(t *testing.T) {
	m := toyModel(t)

	// Third step: v[A][2] = max(0.0378*0.7, 0.1296*0.4) * 0.9 = 0.046656
	// via predecessor B; backtracing from A gives A, B, A.
	r, err := m.Decode([]string{"x", "y", "x"})
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if want := []string{"A", "B", "A"}; !reflect.DeepEqual(r.Tags, want) {
		t.Errorf("Tags = %v, want %v", r.Tags, want)
	}
	if want := 0.046656; math.Abs(r.Prob()-want) > 1e-12 {
		t.Errorf("Prob = %v, want %v", r.Prob(), want)
	}
}

func TestDecodeLongSequenceStaysFinite(t *testing.T) {
	m := toyModel(t)

	obs := make([]string, 2000)
	for i := range obs {
		obs[i] = "x"
	}
	r, err := m.Decode(obs)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	// The linear-domain product underflows; the log score must not.
	if r.LogProb >= 0 || math.IsInf(r.LogProb, 0) || math.IsNaN(r.LogProb) {
		t.Errorf("LogProb = %v, want a finite negative score", r.LogProb)
	}
	if len(r.Tags) != len(obs) {
		t.Errorf("len(Tags) = %d, want %d", len(r.Tags), len(obs))
	}
}

func TestDecodeUnknownObservation(t *testing.T) {
	m := toyModel(t)
	_, err := m.Decode([]string{"x", "z"})
	if !errors.Is(err, ErrUnknownObservation) {
		t.Errorf("Decode error = %v, want ErrUnknownObservation", err)
	}
}

func TestDecodeEmptySequence(t *testing.T) {
	m := toyModel(t)
	if _, err := m.Decode(nil); err == nil {
		t.Error("Decode(nil): want error")
	}
}

func TestValidateShapes(t *testing.T) {
	m := toyModel(t)

	bad := *m
	bad.A = m.A[:2]
	if err := bad.Validate(); err == nil {
		t.Error("Validate with short A: want error")
	}

	bad = *m
	bad.B = [][]float64{{0.9}, {0.2}}
	if err := bad.Validate(); err == nil {
		t.Error("Validate with narrow B: want error")
	}

	bad = *m
	bad.Tags = nil
	if err := bad.Validate(); err == nil {
		t.Error("Validate with no tags: want error")
	}
}

const toyJSON = `{
  "transition": [[0.6, 0.4], [0.7, 0.3], [0.4, 0.6]],
  "emission": [[0.9, 0.1], [0.2, 0.8]],
  "tags": ["A", "B"],
  "observations": ["x", "y"]
}`

func TestLoad(t *testing.T) {
	m, err := Load(strings.NewReader(toyJSON))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	r, err := m.Decode([]string{"x", "y"})
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if want := []string{"A", "B"}; !reflect.DeepEqual(r.Tags, want) {
		t.Errorf("Tags = %v, want %v", r.Tags, want)
	}
}

func TestLoadBadArtifact(t *testing.T) {
	if _, err := Load(strings.NewReader(`{"tags": []}`)); err == nil {
		t.Error("Load of empty artifact: want error")
	}
}
