package synth

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Weighted draws items with probability proportional to their weights.
type Weighted[T any] struct {
	items []T
	dist  distuv.Categorical
}

// NewWeighted builds a Weighted over items. Weights must be finite, non-negative
// and not all zero; they need not be normalized.
func NewWeighted[T any](items []T, weights []float64, src rand.Source) (*Weighted[T], error) {
	if len(items) == 0 {
		return nil, errors.New("weighted choice needs at least one item")
	}
	if len(items) != len(weights) {
		return nil, fmt.Errorf("weighted choice: %d items but %d weights", len(items), len(weights))
	}
	total := 0.0
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("weighted choice: invalid weight %v at %d", w, i)
		}
		total += w
	}
	if total == 0 {
		return nil, errors.New("weighted choice: all weights are zero")
	}

	return &Weighted[T]{
		items: append([]T(nil), items...),
		dist:  distuv.NewCategorical(weights, src),
	}, nil
}

// Pick returns one item.
func (w *Weighted[T]) Pick() T {
	return w.items[int(w.dist.Rand())]
}
