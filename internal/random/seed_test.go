package random

import (
	"bytes"
	"errors"
	"testing"
)

func TestSeedFromReader(t *testing.T) {
	got, err := seedFrom(bytes.NewReader([]byte{1, 0, 0, 0, 0, 0, 0, 0}))
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if got != 1 {
		t.Fatalf("seed = %d, want 1", got)
	}
}

func TestSeedFromShortReader(t *testing.T) {
	_, err := seedFrom(bytes.NewReader([]byte{1, 2}))
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestSeedFromFailingReader(t *testing.T) {
	boom := errors.New("boom")
	_, err := seedFrom(failingReader{err: boom})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped boom, got %v", err)
	}
}

func TestResolveKeepsExplicitSeed(t *testing.T) {
	got, err := Resolve(99)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != 99 {
		t.Fatalf("seed = %d, want 99", got)
	}
}

func TestNewSeedVaries(t *testing.T) {
	a, err := NewSeed()
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	b, err := NewSeed()
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if a == b {
		t.Fatalf("two seeds collided: %d", a)
	}
}

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }
