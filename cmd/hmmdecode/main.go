// Command hmmdecode runs Viterbi decoding of an observation sequence
// against a pretrained HMM artifact.
//
// Usage:
//
//	hmmdecode [options] <input-test-file>
//
// The test file holds the observation sequence as a single line of
// whitespace-separated symbols.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/AshWije/postag-go/corpus"
	"github.com/AshWije/postag-go/hmm"
)

func main() {
	modelPath := flag.String("model", "hmm.json", "pretrained HMM artifact (JSON)")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: hmmdecode [options] <input-test-file>")
		fmt.Fprintln(os.Stderr, "  Decodes the most likely tag sequence for an observation sequence.")
		fmt.Fprintln(os.Stderr, "  <input-test-file> holds the sequence as a single line.")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "hmmdecode: incorrect number of arguments")
		flag.Usage()
		os.Exit(2)
	}

	logger, err := zap.NewProductionConfig().Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "hmmdecode: init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	model, err := hmm.LoadFile(*modelPath)
	if err != nil {
		logger.Fatal("Failed to load HMM artifact", zap.Error(err))
	}
	logger.Info("Artifact loaded",
		zap.Int("states", len(model.Tags)),
		zap.Int("observations", len(model.Observations)))

	line, err := corpus.ReadSentence(flag.Arg(0))
	if err != nil {
		logger.Fatal("Failed to read test sentence", zap.Error(err))
	}

	r, err := model.Decode(strings.Fields(line))
	if err != nil {
		if errors.Is(err, hmm.ErrUnknownObservation) {
			logger.Fatal("Observation outside model vocabulary", zap.Error(err))
		}
		logger.Fatal("Decode failed", zap.Error(err))
	}

	fmt.Printf("Probability = %g\n", r.Prob())
	fmt.Println("\nMost likely tag sequence:")
	fmt.Println(r.Tagged())
}
