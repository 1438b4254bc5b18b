package generators

import (
	"strings"
	"testing"
)

func TestPracticalFile(t *testing.T) {
	pf := PracticalFile("Stack using Array", "")
	if pf.Aim != "To study and implement Stack using Array and understand its working principles." {
		t.Errorf("unexpected aim: %q", pf.Aim)
	}
	if len(pf.Apparatus) != 5 {
		t.Errorf("expected 5 apparatus items, got %d", len(pf.Apparatus))
	}
	if len(pf.Procedure) != 10 {
		t.Errorf("expected 10 procedure steps, got %d", len(pf.Procedure))
	}
	if len(pf.VivaQuestions) != 10 {
		t.Errorf("expected 10 viva questions, got %d", len(pf.VivaQuestions))
	}
	if strings.Count(pf.Theory, "\n\n") != 1 {
		t.Errorf("expected two theory paragraphs, got %q", pf.Theory)
	}
	if strings.Count(pf.Observation, "\n") != 6 {
		t.Errorf("expected header, divider and 5 rows in observation table")
	}
	if !strings.Contains(pf.Result, "Stack using Array") {
		t.Errorf("result should mention the title: %q", pf.Result)
	}
}

func TestPracticalFile_WithContext(t *testing.T) {
	pf := PracticalFile("Ohm's Law", "Physics Lab")
	want := "To study and implement Ohm's Law and understand its working principles in the context of Physics Lab."
	if pf.Aim != want {
		t.Errorf("Aim = %q, want %q", pf.Aim, want)
	}
}

func TestFormatPracticalFile(t *testing.T) {
	pf := PracticalFile("Stack", "DS Lab")
	got := FormatPracticalFile("Stack", "DS Lab", pf)

	for _, want := range []string{
		"PRACTICAL FILE\n",
		"EXPERIMENT: Stack\nCONTEXT: DS Lab\n",
		"AIM:\n" + pf.Aim,
		"APPARATUS REQUIRED:\n1. Computer system with required software",
		"PROCEDURE:\nStep 1: Set up",
		"Step 10: Draw conclusions",
		"OBSERVATION TABLE:\n| S.No",
		"VIVA QUESTIONS:\n1. What is the principle behind Stack?",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in document:\n%s", want, got)
		}
	}

	noContext := FormatPracticalFile("Stack", "", PracticalFile("Stack", ""))
	if strings.Contains(noContext, "CONTEXT:") {
		t.Error("expected no CONTEXT line without context")
	}
}
