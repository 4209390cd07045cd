package ngram

import (
	"reflect"
	"testing"
)

func testSentences() [][]string {
	return [][]string{
		{"the", "dog", "runs"},
		{"the", "cat", "runs"},
		{"a", "dog", "sleeps"},
	}
}

func buildModel(t *testing.T, s Smoothing) *Model {
	t.Helper()
	b := NewBuilder()
	for _, sent := range testSentences() {
		b.AddSentence(sent)
	}
	m, err := b.Model(s)
	if err != nil {
		t.Fatalf("Model error: %v", err)
	}
	return m
}

func TestBuilderCounts(t *testing.T) {
	m := buildModel(t, SmoothNone)

	if got := m.Unigrams[StartMarker]; got != 3 {
		t.Errorf("C(<s>) = %d, want 3", got)
	}
	if got := m.Unigrams[EndMarker]; got != 3 {
		t.Errorf("C(</s>) = %d, want 3", got)
	}
	if got := m.Unigrams["the"]; got != 2 {
		t.Errorf("C(the) = %d, want 2", got)
	}
	if got := m.Bigrams[Bigram{"the", "dog"}]; got != 1 {
		t.Errorf("C(dog | the) = %d, want 1", got)
	}
	if got := m.Bigrams[Bigram{StartMarker, "the"}]; got != 2 {
		t.Errorf("C(the | <s>) = %d, want 2", got)
	}

	// 3 sentences x (3 words + 2 markers)
	if m.Total != 15 {
		t.Errorf("Total = %d, want 15", m.Total)
	}
	sum := 0
	for _, c := range m.Unigrams {
		sum += c
	}
	if sum != m.Total {
		t.Errorf("sum of unigram counts = %d, want Total = %d", sum, m.Total)
	}
}

func TestBuilderBigramRowSums(t *testing.T) {
	m := buildModel(t, SmoothNone)

	// For any predecessor, bigram counts sum to its unigram count.
	// The end marker is never a predecessor.
	rowSums := make(map[string]int)
	for bg, c := range m.Bigrams {
		rowSums[bg[0]] += c
	}
	if rowSums[EndMarker] != 0 {
		t.Errorf("bigrams with predecessor </s>: %d, want 0", rowSums[EndMarker])
	}
	for w, uc := range m.Unigrams {
		if w == EndMarker {
			continue
		}
		if rowSums[w] != uc {
			t.Errorf("row sum for %q = %d, want unigram count %d", w, rowSums[w], uc)
		}
	}
}

func TestBuilderEmptySentence(t *testing.T) {
	b := NewBuilder()
	b.AddSentence(nil)
	m, err := b.Model(SmoothNone)
	if err != nil {
		t.Fatalf("Model error: %v", err)
	}
	if m.Total != 0 || m.V() != 0 {
		t.Errorf("empty corpus: Total = %d, V = %d, want 0, 0", m.Total, m.V())
	}
}

func TestUnigramProbSumsToOne(t *testing.T) {
	m := buildModel(t, SmoothNone)
	sum := 0.0
	for w := range m.Unigrams {
		sum += m.UnigramProb(w)
	}
	if diff := sum - 1.0; diff > 1e-12 || diff < -1e-12 {
		t.Errorf("sum of unigram probabilities = %.15f, want 1", sum)
	}
}

func TestRebuildIdempotent(t *testing.T) {
	m1 := buildModel(t, SmoothGoodTuring)
	m2 := buildModel(t, SmoothGoodTuring)

	if !reflect.DeepEqual(m1.Unigrams, m2.Unigrams) {
		t.Error("unigram counts differ between identical builds")
	}
	if !reflect.DeepEqual(m1.Bigrams, m2.Bigrams) {
		t.Error("bigram counts differ between identical builds")
	}
	for bg := range m1.Bigrams {
		p1 := m1.Prob(bg[0], bg[1])
		p2 := m2.Prob(bg[0], bg[1])
		if p1 != p2 {
			t.Errorf("P(%s | %s): %v vs %v across rebuilds", bg[1], bg[0], p1, p2)
		}
	}
	u1, _ := m1.UnseenProb()
	u2, _ := m2.UnseenProb()
	if u1 != u2 {
		t.Errorf("unseen probability differs across rebuilds: %v vs %v", u1, u2)
	}
}
