// Command tag trains a part-of-speech tagging model from a word_TAG corpus
// and either dumps its counts and probabilities or tags a test sentence.
//
// Usage:
//
//	tag [options]
//	tag [options] <input-test-file>
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"go.uber.org/zap"

	postag "github.com/AshWije/postag-go"
	"github.com/AshWije/postag-go/corpus"
	"github.com/AshWije/postag-go/pos"
)

func main() {
	corpusPath := flag.String("corpus", "", "training corpus of word_TAG sentences")
	configPath := flag.String("config", "", "optional YAML config file")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: tag [options] [input-test-file]")
		fmt.Fprintln(os.Stderr, "  Trains a POS tagging model and dumps it, or tags a test sentence.")
		fmt.Fprintln(os.Stderr, "  <input-test-file> holds the test sentence as a single line.")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "tag: incorrect number of arguments")
		flag.Usage()
		os.Exit(2)
	}

	logger, err := zap.NewProductionConfig().Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "tag: init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	trainPath := *corpusPath
	if *configPath != "" {
		cfg, err := postag.LoadConfig(*configPath)
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}
		if trainPath == "" {
			trainPath = cfg.CorpusPath
		}
	}
	if trainPath == "" {
		trainPath = "TrainingSet.txt"
	}

	tagger, err := postag.NewTagger(trainPath)
	if err != nil {
		logger.Fatal("Failed to train model", zap.Error(err))
	}
	logger.Info("Model trained",
		zap.String("corpus", trainPath),
		zap.Int("tags", len(tagger.POS.Tags())))

	if flag.NArg() == 1 {
		line, err := corpus.ReadSentence(flag.Arg(0))
		if err != nil {
			logger.Fatal("Failed to read test sentence", zap.Error(err))
		}
		r := tagger.TagSentence(line)
		fmt.Printf("RESULT:\n%s\n", r.Tagged())
		return
	}

	dump(tagger.POS)
}

func dump(m *pos.Model) {
	emissions := make([]pos.Pair, 0, len(m.Emissions))
	for p := range m.Emissions {
		emissions = append(emissions, p)
	}
	sortPairs(emissions)
	transitions := make([]pos.Pair, 0, len(m.Transitions))
	for p := range m.Transitions {
		transitions = append(transitions, p)
	}
	sortPairs(transitions)

	fmt.Println("BIGRAM COUNTS//////////////////////////////////////////////////")
	for _, p := range emissions {
		fmt.Printf("C(%s | %s) = %d\n", p[0], p[1], m.Emissions[p])
	}
	for _, p := range transitions {
		fmt.Printf("C(%s | %s) = %d\n", p[0], p[1], m.Transitions[p])
	}

	fmt.Println("\n\nBIGRAM PROBABILITIES///////////////////////////////////////////")
	for _, p := range emissions {
		fmt.Printf("P(%s | %s) = %g\n", p[0], p[1], m.EmissionProb(p[0], p[1]))
	}
	for _, p := range transitions {
		fmt.Printf("P(%s | %s) = %g\n", p[0], p[1], m.TransitionProb(p[0], p[1]))
	}
	fmt.Println("For all unseen bigrams: Probability = 0")
}

func sortPairs(pairs []pos.Pair) {
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0] != pairs[j][0] {
			return pairs[i][0] < pairs[j][0]
		}
		return pairs[i][1] < pairs[j][1]
	})
}
