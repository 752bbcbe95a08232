package quiz

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestPresentChoices_DeterministicOrder(t *testing.T) {
	q := MultipleChoice{
		QuestionID:  "mc-1",
		Answer:      "5",
		Distractors: []string{"-1", "-2", "0"},
	}

	got := PresentChoices(q, PresentOptions{})
	want := []string{"5", "-1", "-2", "0"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PresentChoices = %v, want %v", got, want)
	}

	// Repeated calls yield the identical sequence.
	again := PresentChoices(q, PresentOptions{})
	if !reflect.DeepEqual(got, again) {
		t.Errorf("presentation order not stable: %v vs %v", got, again)
	}
}

func TestPresentChoices_LengthAndUniqueness(t *testing.T) {
	q := MultipleChoice{
		QuestionID:  "mc-2",
		Answer:      "a",
		Distractors: []string{"b", "c", "d", "e"},
	}

	got := PresentChoices(q, PresentOptions{})
	if len(got) != 1+len(q.Distractors) {
		t.Fatalf("len = %d, want %d", len(got), 1+len(q.Distractors))
	}

	seen := make(map[string]bool, len(got))
	for _, c := range got {
		if seen[c] {
			t.Errorf("duplicate choice %q", c)
		}
		seen[c] = true
	}
}

func TestPresentChoices_ShuffleIsSeeded(t *testing.T) {
	q := MultipleChoice{
		QuestionID:  "mc-3",
		Answer:      "a",
		Distractors: []string{"b", "c", "d"},
	}

	first := PresentChoices(q, PresentOptions{Shuffle: true, Rand: rand.New(rand.NewSource(42))})
	second := PresentChoices(q, PresentOptions{Shuffle: true, Rand: rand.New(rand.NewSource(42))})
	if !reflect.DeepEqual(first, second) {
		t.Errorf("same seed produced different orders: %v vs %v", first, second)
	}

	// Shuffling permutes, never drops or duplicates.
	if len(first) != 4 {
		t.Fatalf("len = %d, want 4", len(first))
	}
	seen := make(map[string]bool)
	for _, c := range first {
		seen[c] = true
	}
	for _, want := range []string{"a", "b", "c", "d"} {
		if !seen[want] {
			t.Errorf("shuffle dropped %q", want)
		}
	}
}

func TestPresentChoices_ShuffleWithoutRandFallsBack(t *testing.T) {
	q := MultipleChoice{QuestionID: "mc-4", Answer: "x", Distractors: []string{"y"}}

	got := PresentChoices(q, PresentOptions{Shuffle: true})
	want := []string{"x", "y"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PresentChoices = %v, want insertion order %v", got, want)
	}
}
