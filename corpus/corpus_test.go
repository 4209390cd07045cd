package corpus

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestReadLines(t *testing.T) {
	in := "The_DET dog_NOUN\n\n  \nruns_VERB\n"
	lines, err := ReadLines(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadLines error: %v", err)
	}
	want := []string{"The_DET dog_NOUN", "runs_VERB"}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("ReadLines = %v, want %v", lines, want)
	}
}

func TestWords(t *testing.T) {
	got := Words("The_DET Dog_NOUN runs")
	want := []string{"the", "dog", "runs"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Words = %v, want %v", got, want)
	}
}

func TestReadSentence(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "test.txt")
	if err := os.WriteFile(path, []byte("the dog runs\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := ReadSentence(path)
	if err != nil {
		t.Fatalf("ReadSentence error: %v", err)
	}
	if got != "the dog runs" {
		t.Errorf("ReadSentence = %q", got)
	}

	empty := filepath.Join(dir, "empty.txt")
	if err := os.WriteFile(empty, []byte("\n\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadSentence(empty); !errors.Is(err, ErrBadFormat) {
		t.Errorf("ReadSentence(empty) error = %v, want ErrBadFormat", err)
	}
}
