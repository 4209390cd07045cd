package ngram

// Boundary markers added around every sentence.
const (
	StartMarker = "<s>"
	EndMarker   = "</s>"
)

// Bigram is an ordered pair {predecessor, word}.
type Bigram [2]string

// Builder accumulates tokenized sentences into unigram and bigram counts.
type Builder struct {
	unigrams map[string]int
	bigrams  map[Bigram]int
}

// NewBuilder creates an empty bigram model builder.
func NewBuilder() *Builder {
	return &Builder{
		unigrams: make(map[string]int),
		bigrams:  make(map[Bigram]int),
	}
}

// AddSentence adds a tokenized sentence. StartMarker and EndMarker are added
// automatically, one per side, and count toward the unigram totals.
func (b *Builder) AddSentence(words []string) {
	if len(words) == 0 {
		return
	}
	seq := make([]string, 0, len(words)+2)
	seq = append(seq, StartMarker)
	seq = append(seq, words...)
	seq = append(seq, EndMarker)

	for i, w := range seq {
		b.unigrams[w]++
		if i >= 1 {
			b.bigrams[Bigram{seq[i-1], w}]++
		}
	}
}

// Model freezes the accumulated counts into an immutable probability model
// using the given smoothing strategy. The builder must not be reused after.
func (b *Builder) Model(s Smoothing) (*Model, error) {
	m := &Model{
		Unigrams:  b.unigrams,
		Bigrams:   b.bigrams,
		smoothing: s,
	}
	for _, c := range b.unigrams {
		m.Total += c
	}
	sm, err := newSmoother(s, m)
	if err != nil {
		return nil, err
	}
	m.smoother = sm
	return m, nil
}
