// Package postag ties the corpus-estimated models and the decoders together
// behind a single facade.
package postag

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/AshWije/postag-go/corpus"
	"github.com/AshWije/postag-go/decoder"
	"github.com/AshWije/postag-go/hmm"
	"github.com/AshWije/postag-go/ngram"
	"github.com/AshWije/postag-go/pos"
)

// Config holds the inputs the commands share.
type Config struct {
	CorpusPath string `yaml:"corpus"`    // training corpus, one sentence per line
	Smoothing  string `yaml:"smoothing"` // none | add-one | good-turing | add-one-fast
	HMMPath    string `yaml:"hmm"`       // pretrained HMM artifact (JSON)
}

// DefaultConfig returns reasonable defaults.
func DefaultConfig() Config {
	return Config{Smoothing: "add-one-fast"}
}

// LoadConfig reads a YAML config file, filling unset fields with defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Smoothing == "" {
		cfg.Smoothing = DefaultConfig().Smoothing
	}
	return cfg, nil
}

// Tagger is the top-level part-of-speech tagger.
type Tagger struct {
	POS *pos.Model
	HMM *hmm.Model // optional pretrained artifact for matrix decoding
}

// Option configures a Tagger.
type Option func(*Tagger)

// WithHMM loads a pretrained HMM artifact and attaches it to the tagger.
func WithHMM(path string) Option {
	return func(t *Tagger) {
		if path == "" {
			return
		}
		m, err := hmm.LoadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: load HMM: %v\n", err)
			return
		}
		t.HMM = m
	}
}

// NewTagger trains a Tagger from a word_TAG corpus file.
func NewTagger(corpusPath string, opts ...Option) (*Tagger, error) {
	lines, err := corpus.ReadFile(corpusPath)
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	b := pos.NewBuilder()
	for _, line := range lines {
		if err := b.AddSentence(strings.Fields(line)); err != nil {
			return nil, fmt.Errorf("train: %w", err)
		}
	}
	t := &Tagger{POS: b.Model()}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// NewTaggerFromModel creates a Tagger from a pre-built POS model.
func NewTaggerFromModel(m *pos.Model, opts ...Option) *Tagger {
	t := &Tagger{POS: m}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// TagSentence decodes a whitespace-tokenized sentence line.
func (t *Tagger) TagSentence(line string) *decoder.Result {
	return decoder.Decode(t.POS, strings.Fields(line))
}

// TagFile decodes the single-sentence test file at path.
func (t *Tagger) TagFile(path string) (*decoder.Result, error) {
	line, err := corpus.ReadSentence(path)
	if err != nil {
		return nil, err
	}
	return t.TagSentence(line), nil
}

// TrainNGram builds a bigram model with the given smoothing strategy from a
// corpus file. Lines are lowercased and word_TAG tokens are reduced to
// their word part.
func TrainNGram(corpusPath string, s ngram.Smoothing) (*ngram.Model, error) {
	lines, err := corpus.ReadFile(corpusPath)
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	b := ngram.NewBuilder()
	for _, line := range lines {
		b.AddSentence(corpus.Words(line))
	}
	return b.Model(s)
}
