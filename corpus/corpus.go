// Package corpus reads training and test text: UTF-8, one sentence per
// line, tokens separated by whitespace.
package corpus

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrBadFormat reports test input without the expected single sentence line.
var ErrBadFormat = errors.New("input missing sentence line")

// ReadLines returns the non-empty trimmed lines of r.
func ReadLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	var lines []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// ReadFile returns the non-empty lines of the file at path.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	lines, err := ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return lines, nil
}

// ReadSentence returns the first sentence line of the file at path. A file
// with no sentence line is a format error.
func ReadSentence(path string) (string, error) {
	lines, err := ReadFile(path)
	if err != nil {
		return "", err
	}
	if len(lines) == 0 {
		return "", fmt.Errorf("%w: %s", ErrBadFormat, path)
	}
	return lines[0], nil
}

// Words tokenizes a line for the n-gram model: lowercased, split on
// whitespace, and reduced to the word part before the first underscore so
// that word_TAG corpora and plain-word corpora both work.
func Words(line string) []string {
	tokens := strings.Fields(strings.ToLower(line))
	for i, tok := range tokens {
		if word, _, ok := strings.Cut(tok, "_"); ok && word != "" {
			tokens[i] = word
		}
	}
	return tokens
}
