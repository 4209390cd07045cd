package decoder

import "strings"

// Result holds a decoded tag sequence aligned word-for-word with the input.
type Result struct {
	Words []string
	Tags  []string
	Prob  float64 // joint probability of the best path
}

// Tagged renders the result as space-separated word_TAG tokens.
func (r *Result) Tagged() string {
	parts := make([]string, len(r.Words))
	for i, w := range r.Words {
		parts[i] = w + "_" + r.Tags[i]
	}
	return strings.Join(parts, " ")
}
