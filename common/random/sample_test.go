package random

import (
	"math"
	"math/rand"
	"testing"
)

func TestSampleDistribution(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	probs := map[string]float64{
		"a": 0.7,
		"b": 0.2,
		"c": 0.1,
	}

	counts := make(map[string]int)
	const draws = 100000
	for range draws {
		v, err := Sample(rng, probs)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		counts[v]++
	}

	for k, want := range probs {
		got := float64(counts[k]) / draws
		if math.Abs(got-want) > 0.01 {
			t.Errorf("key %s: got frequency %.3f, want %.3f", k, got, want)
		}
	}
}

func TestSampleRejectsBadDistribution(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if _, err := Sample(rng, map[int]float64{1: 0.2, 2: 0.2}); err == nil {
		t.Error("expected error for weights summing to 0.4")
	}
}
