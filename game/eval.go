package game

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Weights scale a feature vector into a single heuristic score.
type Weights []float64

// Score returns the weighted sum of features clamped to [-bound, bound].
// Terms with a zero weight are skipped so an infinite feature never produces
// NaN, and a sum that is still undefined (+Inf - Inf) evaluates to 0.
func (w Weights) Score(features []float64, bound float64) float64 {
	sum := 0.0
	for i, f := range features {
		if i >= len(w) || w[i] == 0 {
			continue
		}
		sum += w[i] * f
	}
	if math.IsNaN(sum) {
		return 0
	}
	return clamp(sum, bound)
}

func clamp(value, bound float64) float64 {
	if bound <= 0 {
		return value
	}
	return math.Max(-bound, math.Min(bound, value))
}

// ParseWeights reads a comma-separated list such as "1,1.5,0".
func ParseWeights(text string) (Weights, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}

	fields := strings.Split(text, ",")
	w := make(Weights, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid weight %q: %w", field, err)
		}
		w[i] = v
	}
	return w, nil
}

func (w Weights) String() string {
	fields := make([]string, len(w))
	for i, v := range w {
		fields[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(fields, ",")
}
