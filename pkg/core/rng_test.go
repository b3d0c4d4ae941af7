package core

import (
	"slices"
	"testing"
)

func TestFillBernoulliExtremesAreExact(t *testing.T) {
	buf := make([]uint8, 1000)

	FillBernoulli(NewRNG(1).Source(), buf, 1)
	for i, v := range buf {
		if !IsAlive(v) {
			t.Fatalf("p=1 left cell %d dead", i)
		}
	}

	FillBernoulli(NewRNG(1).Source(), buf, 0)
	for i, v := range buf {
		if IsAlive(v) {
			t.Fatalf("p=0 left cell %d alive", i)
		}
	}
}

func TestFillBernoulliDeterministicPerSeed(t *testing.T) {
	a := make([]uint8, 512)
	b := make([]uint8, 512)
	FillBernoulli(NewRNG(7).Source(), a, 0.3)
	FillBernoulli(NewRNG(7).Source(), b, 0.3)
	if !slices.Equal(a, b) {
		t.Fatal("same seed must produce the same fill")
	}

	FillBernoulli(NewRNG(8).Source(), b, 0.3)
	if slices.Equal(a, b) {
		t.Fatal("different seeds should produce different fills")
	}
}
