package ngram

// Model is an immutable bigram language model: raw counts plus a smoothing
// strategy fixed at construction time.
type Model struct {
	Unigrams map[string]int
	Bigrams  map[Bigram]int
	Total    int // total unigram tokens, boundary markers included

	smoothing Smoothing
	smoother  Smoother
}

// V returns the vocabulary size: the number of distinct symbols observed,
// boundary markers included.
func (m *Model) V() int {
	return len(m.Unigrams)
}

// Smoothing returns the strategy the model was built with.
func (m *Model) Smoothing() Smoothing {
	return m.smoothing
}

// UnigramProb returns the maximum-likelihood unigram probability of word.
func (m *Model) UnigramProb(word string) float64 {
	if m.Total == 0 {
		return 0
	}
	return float64(m.Unigrams[word]) / float64(m.Total)
}

// Prob returns the smoothed bigram probability P(word | prev).
func (m *Model) Prob(prev, word string) float64 {
	return m.smoother.Prob(prev, word)
}

// UnseenProb returns the shared fallback probability used for bigrams absent
// from the table, and whether the strategy designates such a shared value.
// The add-one variants compute per-context values instead and return false.
func (m *Model) UnseenProb() (float64, bool) {
	return m.smoother.Unseen()
}

// SentenceProb returns the bigram probability of a tokenized sentence as a
// plain product over adjacent pairs, with boundary markers on both sides.
func (m *Model) SentenceProb(words []string) float64 {
	prob := 1.0
	prev := StartMarker
	for _, w := range words {
		prob *= m.Prob(prev, w)
		prev = w
	}
	prob *= m.Prob(prev, EndMarker)
	return prob
}
