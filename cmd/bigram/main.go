// Command bigram builds a word bigram model from a training corpus and
// either dumps its counts and probabilities or scores a test sentence.
//
// Usage:
//
//	bigram [options] <smoothing-type>
//	bigram [options] <smoothing-type> <input-test-file>
//
// smoothing-type is one of none, add-one, good-turing, add-one-fast.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/cheggaaa/pb/v3"
	"go.uber.org/zap"

	"github.com/AshWije/postag-go/corpus"
	"github.com/AshWije/postag-go/ngram"
)

func main() {
	corpusPath := flag.String("corpus", "TrainingSet.txt", "training corpus, one sentence per line")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: bigram [options] <smoothing-type> [input-test-file]")
		fmt.Fprintln(os.Stderr, "  Builds a word bigram model and dumps it, or scores a test sentence.")
		fmt.Fprintln(os.Stderr, "  <smoothing-type> is one of: none, add-one, good-turing, add-one-fast.")
		fmt.Fprintln(os.Stderr, "  <input-test-file> holds the test sentence as a single line.")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 || flag.NArg() > 2 {
		fmt.Fprintln(os.Stderr, "bigram: incorrect number of arguments")
		flag.Usage()
		os.Exit(2)
	}
	smoothing, err := ngram.ParseSmoothing(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "bigram: %v\n", err)
		flag.Usage()
		os.Exit(2)
	}

	logger, err := zap.NewProductionConfig().Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "bigram: init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	lines, err := corpus.ReadFile(*corpusPath)
	if err != nil {
		logger.Fatal("Failed to read training corpus", zap.Error(err))
	}

	b := ngram.NewBuilder()
	bar := pb.StartNew(len(lines))
	for _, line := range lines {
		b.AddSentence(corpus.Words(line))
		bar.Increment()
	}
	bar.Finish()

	model, err := b.Model(smoothing)
	if err != nil {
		logger.Fatal("Failed to build model", zap.Error(err))
	}
	logger.Info("Model built",
		zap.String("smoothing", smoothing.String()),
		zap.Int("sentences", len(lines)),
		zap.Int("vocabulary", model.V()))

	if flag.NArg() == 2 {
		line, err := corpus.ReadSentence(flag.Arg(1))
		if err != nil {
			logger.Fatal("Failed to read test sentence", zap.Error(err))
		}
		prob := model.SentenceProb(corpus.Words(line))
		fmt.Printf("Probability of test sentence = %g\n", prob)
		return
	}

	dump(model)
}

func dump(m *ngram.Model) {
	vocab := make([]string, 0, m.V())
	for w := range m.Unigrams {
		vocab = append(vocab, w)
	}
	sort.Strings(vocab)

	fmt.Println("UNIGRAM COUNTS//////////////////////////////////////////////////")
	for _, w := range vocab {
		fmt.Printf("C(%s) = %d\n", w, m.Unigrams[w])
	}

	bigrams := make([]ngram.Bigram, 0, len(m.Bigrams))
	for bg := range m.Bigrams {
		bigrams = append(bigrams, bg)
	}
	sort.Slice(bigrams, func(i, j int) bool {
		if bigrams[i][0] != bigrams[j][0] {
			return bigrams[i][0] < bigrams[j][0]
		}
		return bigrams[i][1] < bigrams[j][1]
	})

	fmt.Println("\n\nBIGRAM COUNTS//////////////////////////////////////////////////")
	for _, bg := range bigrams {
		fmt.Printf("C(%s | %s) = %d\n", bg[1], bg[0], m.Bigrams[bg])
	}

	fmt.Println("\n\nUNIGRAM PROBABILITIES//////////////////////////////////////////")
	for _, w := range vocab {
		fmt.Printf("P(%s) = %g\n", w, m.UnigramProb(w))
	}

	fmt.Println("\n\nBIGRAM PROBABILITIES///////////////////////////////////////////")
	if m.Smoothing() == ngram.SmoothAddOne || m.Smoothing() == ngram.SmoothAddOneFast {
		// Laplace assigns every pair a probability; dump the full table the
		// eager variant materializes. O(V²) output, like the table itself.
		for _, prev := range vocab {
			if prev == ngram.EndMarker {
				continue
			}
			for _, w := range vocab {
				if w == ngram.StartMarker {
					continue
				}
				fmt.Printf("P(%s | %s) = %g\n", w, prev, m.Prob(prev, w))
			}
		}
		return
	}
	for _, bg := range bigrams {
		fmt.Printf("P(%s | %s) = %g\n", bg[1], bg[0], m.Prob(bg[0], bg[1]))
	}
	if u, ok := m.UnseenProb(); ok {
		fmt.Printf("For all unseen bigrams: Probability = %g\n", u)
	}
}
