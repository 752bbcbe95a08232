package quiz

import (
	"errors"
	"testing"
)

func TestGrade_MultipleChoice(t *testing.T) {
	q := MultipleChoice{
		QuestionID:  "mc-1",
		Prompt:      "What does this print?",
		Answer:      "5",
		Distractors: []string{"-1", "-2", "0"},
		Explanation: "The loop runs five times.",
	}

	tests := []struct {
		submitted string
		want      bool
	}{
		{"5", true},
		{"0", false},
		{"-1", false},
		{"", false},
		{" 5", false}, // exact text match, no trimming
		{"5 ", false},
	}

	for _, tc := range tests {
		v, err := Grade(q, ChoiceResponse{Answer: tc.submitted})
		if err != nil {
			t.Fatalf("Grade(%q) returned error: %v", tc.submitted, err)
		}
		if v.Correct != tc.want {
			t.Errorf("Grade(%q).Correct = %v, want %v", tc.submitted, v.Correct, tc.want)
		}
		if v.Explanation != q.Explanation {
			t.Errorf("Grade(%q).Explanation = %q, want the question context", tc.submitted, v.Explanation)
		}
	}
}

func TestGrade_Tracing_NoCompile(t *testing.T) {
	q := Tracing{
		QuestionID:  "tr-1",
		Program:     "fn main() { let x = y; }",
		DoesCompile: false,
		LineNumber:  13,
	}

	tests := []struct {
		name string
		resp TraceResponse
		want bool
	}{
		{"matching line", TraceResponse{DoesCompile: false, LineNumber: 13}, true},
		{"wrong line", TraceResponse{DoesCompile: false, LineNumber: 12}, false},
		{"wrong judgment", TraceResponse{DoesCompile: true, Stdout: "13"}, false},
	}

	for _, tc := range tests {
		v, err := Grade(q, tc.resp)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if v.Correct != tc.want {
			t.Errorf("%s: Correct = %v, want %v", tc.name, v.Correct, tc.want)
		}
	}
}

func TestGrade_Tracing_Compiles(t *testing.T) {
	q := Tracing{
		QuestionID:  "tr-2",
		Program:     `println!("5")`,
		DoesCompile: true,
		Stdout:      "5",
	}

	tests := []struct {
		name string
		resp TraceResponse
		want bool
	}{
		{"exact stdout", TraceResponse{DoesCompile: true, Stdout: "5"}, true},
		{"trailing space", TraceResponse{DoesCompile: true, Stdout: "5 "}, false},
		{"trailing newline", TraceResponse{DoesCompile: true, Stdout: "5\n"}, false},
		{"wrong judgment", TraceResponse{DoesCompile: false, LineNumber: 1}, false},
	}

	for _, tc := range tests {
		v, err := Grade(q, tc.resp)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if v.Correct != tc.want {
			t.Errorf("%s: Correct = %v, want %v", tc.name, v.Correct, tc.want)
		}
	}
}

func TestGrade_Deterministic(t *testing.T) {
	q := Tracing{QuestionID: "tr-3", DoesCompile: true, Stdout: "ok"}
	resp := TraceResponse{DoesCompile: true, Stdout: "ok"}

	first, err := Grade(q, resp)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		v, err := Grade(q, resp)
		if err != nil {
			t.Fatal(err)
		}
		if v != first {
			t.Fatalf("verdict changed between identical calls: %+v vs %+v", v, first)
		}
	}
}

func TestGrade_ShapeMismatch(t *testing.T) {
	mc := MultipleChoice{QuestionID: "mc-1", Answer: "5", Distractors: []string{"0"}}
	tr := Tracing{QuestionID: "tr-1", DoesCompile: false, LineNumber: 3}

	var shapeErr *InputShapeError

	_, err := Grade(mc, TraceResponse{DoesCompile: false, LineNumber: 3})
	if !errors.As(err, &shapeErr) {
		t.Fatalf("expected InputShapeError for trace response on MC question, got %v", err)
	}
	if shapeErr.QuestionType != TypeMultipleChoice {
		t.Errorf("QuestionType = %s, want %s", shapeErr.QuestionType, TypeMultipleChoice)
	}

	_, err = Grade(tr, ChoiceResponse{Answer: "3"})
	if !errors.As(err, &shapeErr) {
		t.Fatalf("expected InputShapeError for choice response on tracing question, got %v", err)
	}
	if shapeErr.ResponseType != "ChoiceResponse" {
		t.Errorf("ResponseType = %s, want ChoiceResponse", shapeErr.ResponseType)
	}
}
