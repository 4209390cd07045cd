package hmm

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Load reads a model artifact in JSON form and validates it.
func Load(r io.Reader) (*Model, error) {
	var m Model
	dec := json.NewDecoder(r)
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("decode HMM artifact: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// LoadFile reads a model artifact from a JSON file.
func LoadFile(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open HMM artifact: %w", err)
	}
	defer f.Close()
	return Load(f)
}
