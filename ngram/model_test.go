package ngram

import (
	"math"
	"testing"
)

func TestSentenceProbNone(t *testing.T) {
	m := buildModel(t, SmoothNone)

	// P(the|<s>) * P(dog|the) * P(runs|dog) * P(</s>|runs)
	// = 2/3 * 1/2 * 1/2 * 1 = 1/6
	got := m.SentenceProb([]string{"the", "dog", "runs"})
	want := 1.0 / 6.0
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("SentenceProb(the dog runs) = %v, want %v", got, want)
	}
}

func TestSentenceProbUnseenPairIsZero(t *testing.T) {
	m := buildModel(t, SmoothNone)

	// (cat, sleeps) was never observed; without smoothing the whole
	// sentence probability collapses to 0.
	if got := m.SentenceProb([]string{"the", "cat", "sleeps"}); got != 0 {
		t.Errorf("SentenceProb = %v, want 0", got)
	}
}

func TestSentenceProbAddOneFast(t *testing.T) {
	m := buildModel(t, SmoothAddOneFast)

	// V = 8. Corpus counts: C(<s>)=3, C(the)=2, C(cat)=1, C(runs)=2.
	want := (3.0 / 11.0) * (2.0 / 10.0) * (2.0 / 9.0) * (3.0 / 10.0)
	got := m.SentenceProb([]string{"the", "cat", "runs"})
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("SentenceProb(the cat runs) = %v, want %v", got, want)
	}
}

func TestSentenceProbGoodTuringUsesUnseenMass(t *testing.T) {
	m := buildModel(t, SmoothGoodTuring)

	u, _ := m.UnseenProb()
	if u <= 0 {
		t.Fatalf("unseen probability = %v, want > 0", u)
	}
	// Every factor of a fully-unseen sentence is the shared unseen value.
	got := m.SentenceProb([]string{"zebra"})
	want := u * u // (<s>, zebra) and (zebra, </s>)
	if math.Abs(got-want) > 1e-15 {
		t.Errorf("SentenceProb(zebra) = %v, want %v", got, want)
	}
}
