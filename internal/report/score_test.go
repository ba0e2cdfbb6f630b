package report

import (
	"errors"
	"testing"

	"github.com/kavya/markbook/internal/dataset"
)

func TestIsCorrect(t *testing.T) {
	q := testQuestions()[0] // key option2
	if !IsCorrect(dataset.QuestionResponse{QuestionID: "q1", Response: "option2"}, q) {
		t.Error("matching key should be correct")
	}
	if IsCorrect(dataset.QuestionResponse{QuestionID: "q1", Response: "option1"}, q) {
		t.Error("non-matching key should be incorrect")
	}
	// Exact comparison only: labels and case variants never match.
	if IsCorrect(dataset.QuestionResponse{QuestionID: "q1", Response: "B"}, q) {
		t.Error("label must not match the key")
	}
	if IsCorrect(dataset.QuestionResponse{QuestionID: "q1", Response: "Option2"}, q) {
		t.Error("comparison must be case sensitive")
	}
}

func TestTotalScore(t *testing.T) {
	snap := testSnapshot()
	attempt := testAttempt("r1", "student1", "01/01/2020", map[string]string{
		"q1": "option2", // correct
		"q2": "option3", // wrong
		"q3": "option3", // correct
		"q4": "option1", // wrong
	})

	got := TotalScore(attempt, snap)
	if got.Correct != 2 || got.Total != 4 {
		t.Errorf("got %d/%d, want 2/4", got.Correct, got.Total)
	}
}

func TestTotalScore_UnknownQuestionCountsInTotalOnly(t *testing.T) {
	snap := testSnapshot()
	attempt := testAttempt("r1", "student1", "01/01/2020", allCorrect())
	attempt.Responses = append(attempt.Responses, dataset.QuestionResponse{
		QuestionID: "mystery", Response: "option1",
	})

	got := TotalScore(attempt, snap)
	if got.Total != len(attempt.Responses) {
		t.Errorf("total %d, want %d", got.Total, len(attempt.Responses))
	}
	if got.Correct != 4 {
		t.Errorf("correct %d, want 4", got.Correct)
	}
	if got.Correct > got.Total {
		t.Errorf("correct exceeds total: %d/%d", got.Correct, got.Total)
	}
}

func TestStrandScores(t *testing.T) {
	snap := testSnapshot()
	attempt := testAttempt("r1", "student1", "01/01/2020", map[string]string{
		"q1": "option1", // N&A, wrong
		"q2": "option1", // N&A, correct
		"q3": "option3", // M&G, correct
		"q4": "option2", // M&G, correct
	})

	got, err := StrandScores(attempt, snap)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 strands, got %d", len(got))
	}
	// First-seen order follows response order.
	if got[0].Strand != "Number and Algebra" || got[0].Correct != 1 || got[0].Total != 2 {
		t.Errorf("strand 0: got %+v", got[0])
	}
	if got[1].Strand != "Measurement and Geometry" || got[1].Correct != 2 || got[1].Total != 2 {
		t.Errorf("strand 1: got %+v", got[1])
	}

	// Per-strand totals sum to the number of responses.
	sum := 0
	for _, s := range got {
		if s.Correct > s.Total {
			t.Errorf("strand %s: correct exceeds total", s.Strand)
		}
		sum += s.Total
	}
	if sum != len(attempt.Responses) {
		t.Errorf("strand totals sum to %d, want %d", sum, len(attempt.Responses))
	}
}

func TestStrandScores_UnknownQuestionIsFatal(t *testing.T) {
	snap := testSnapshot()
	attempt := testAttempt("r1", "student1", "01/01/2020", allCorrect())
	attempt.Responses = append(attempt.Responses, dataset.QuestionResponse{
		QuestionID: "mystery", Response: "option1",
	})

	_, err := StrandScores(attempt, snap)
	var notFound *dataset.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if notFound.Kind != "question" || notFound.ID != "mystery" {
		t.Errorf("unexpected lookup failure: %+v", notFound)
	}
}

func TestWrongAnswers(t *testing.T) {
	snap := testSnapshot()
	attempt := testAttempt("r1", "student1", "01/01/2020", map[string]string{
		"q1": "option1", // wrong: chose A/7, key is B/9
		"q2": "option1", // correct
		"q3": "option1", // wrong: chose A/7, key is C/12
		"q4": "option2", // correct
	})

	got, err := WrongAnswers(attempt, snap)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 wrong answers, got %d", len(got))
	}

	first := got[0]
	if first.Question.ID != "q1" {
		t.Errorf("expected q1 first (response order), got %s", first.Question.ID)
	}
	if first.UserAnswer != (AnswerView{Key: "A", Value: "7"}) {
		t.Errorf("user answer: got %+v", first.UserAnswer)
	}
	if first.CorrectAnswer != (AnswerView{Key: "B", Value: "9"}) {
		t.Errorf("correct answer: got %+v", first.CorrectAnswer)
	}
	if got[1].CorrectAnswer != (AnswerView{Key: "C", Value: "12"}) {
		t.Errorf("second correct answer: got %+v", got[1].CorrectAnswer)
	}
}

func TestWrongAnswers_UnknownQuestionIsFatal(t *testing.T) {
	snap := testSnapshot()
	attempt := testAttempt("r1", "student1", "01/01/2020", nil)
	attempt.Responses = []dataset.QuestionResponse{{QuestionID: "mystery", Response: "option1"}}

	_, err := WrongAnswers(attempt, snap)
	var notFound *dataset.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestWrongAnswers_UnresolvedOptionRendersEmpty(t *testing.T) {
	snap := testSnapshot()
	attempt := testAttempt("r1", "student1", "01/01/2020", map[string]string{
		"q1": "option99", // not in the options list, and not the key
	})

	got, err := WrongAnswers(attempt, snap)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 wrong answer, got %d", len(got))
	}
	if got[0].UserAnswer != (AnswerView{}) {
		t.Errorf("expected unresolved user answer, got %+v", got[0].UserAnswer)
	}
	// The key still resolves.
	if got[0].CorrectAnswer != (AnswerView{Key: "B", Value: "9"}) {
		t.Errorf("correct answer: got %+v", got[0].CorrectAnswer)
	}
}

func TestWrongAnswers_PerfectScoreIsEmpty(t *testing.T) {
	snap := testSnapshot()
	attempt := testAttempt("r1", "student1", "01/01/2020", allCorrect())

	got, err := WrongAnswers(attempt, snap)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no wrong answers, got %d", len(got))
	}
}
