// Package sample produces a small self-consistent dataset for trying the
// tool out without real assessment data.
package sample

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/kavya/markbook/internal/dataset"
)

// Students returns the sample student roster.
func Students() []dataset.Student {
	return []dataset.Student{
		{ID: "student1", FirstName: "Tony", LastName: "Allen", YearLevel: 6},
		{ID: "student2", FirstName: "Priya", LastName: "Nair", YearLevel: 6},
	}
}

// Questions returns six numeracy questions across three strands.
func Questions() []dataset.Question {
	return []dataset.Question{
		mcq("numeracy1", "Number and Algebra",
			"What is 7 x 8?", "option3",
			"Skip count by 8 seven times",
			"52", "54", "56", "58"),
		mcq("numeracy2", "Number and Algebra",
			"What is the next number in the pattern 3, 6, 12, 24, ...?", "option4",
			"Each number is double the one before it",
			"30", "36", "40", "48"),
		mcq("numeracy3", "Measurement and Geometry",
			"How many degrees are in a right angle?", "option2",
			"A right angle is a quarter of a full turn",
			"45", "90", "180", "360"),
		mcq("numeracy4", "Measurement and Geometry",
			"What is the perimeter of a square with sides of 5cm?", "option3",
			"A square has four sides of equal length",
			"10cm", "15cm", "20cm", "25cm"),
		mcq("numeracy5", "Statistics and Probability",
			"What is the 'median' of the following group of numbers 5, 21, 7, 18, 9?", "option2",
			"You must first arrange the numbers in ascending order. The median is the middle term",
			"7", "9", "18", "21"),
		mcq("numeracy6", "Statistics and Probability",
			"A coin is flipped twice. What is the chance of two heads?", "option1",
			"List all four equally likely outcomes of two flips",
			"1 in 4", "1 in 3", "1 in 2", "3 in 4"),
	}
}

// Assessments returns the single sample assessment referencing every
// question in order.
func Assessments() []dataset.Assessment {
	questions := Questions()
	refs := make([]dataset.QuestionRef, len(questions))
	for i, q := range questions {
		refs[i] = dataset.QuestionRef{QuestionID: q.ID, Position: i + 1}
	}
	return []dataset.Assessment{
		{ID: "assessment1", Name: "Numeracy", Questions: refs},
	}
}

// Responses returns three completed attempts by student1 spanning three
// years with an improving score, plus one unfinished attempt that the
// reports must ignore.
func Responses() []dataset.StudentResponse {
	return []dataset.StudentResponse{
		attempt("student1", "14/12/2019 10:31:00", "16/12/2019 10:00:00", "16/12/2019 10:46:00",
			[]string{"option1", "option4", "option2", "option1", "option1", "option1"}),
		attempt("student1", "14/12/2020 10:31:00", "16/12/2020 10:00:00", "16/12/2020 10:46:00",
			[]string{"option3", "option4", "option2", "option1", "option1", "option1"}),
		attempt("student1", "14/12/2021 10:31:00", "16/12/2021 10:00:00", "16/12/2021 10:46:00",
			[]string{"option3", "option4", "option2", "option3", "option1", "option1"}),
		attempt("student1", "14/12/2022 10:31:00", "16/12/2022 10:00:00", "",
			nil),
	}
}

// Write marshals the sample dataset into the four files Load expects.
func Write(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	files := map[string]any{
		dataset.StudentsFile:    Students(),
		dataset.AssessmentsFile: Assessments(),
		dataset.QuestionsFile:   Questions(),
		dataset.ResponsesFile:   Responses(),
	}
	for name, v := range files {
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal %s: %w", name, err)
		}
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	return nil
}

func mcq(id, strand, stem, key, hint string, values ...string) dataset.Question {
	labels := []string{"A", "B", "C", "D"}
	options := make([]dataset.Option, len(values))
	for i, v := range values {
		options[i] = dataset.Option{
			ID:    fmt.Sprintf("option%d", i+1),
			Label: labels[i],
			Value: v,
		}
	}
	return dataset.Question{
		ID:     id,
		Stem:   stem,
		Type:   "multiple-choice",
		Strand: strand,
		Config: dataset.QuestionConfig{Options: options, Key: key, Hint: hint},
	}
}

func attempt(studentID, assigned, started, completed string, choices []string) dataset.StudentResponse {
	questions := Questions()
	// Always a slice, never nil: the schema requires an array even for
	// unfinished attempts.
	responses := make([]dataset.QuestionResponse, 0, len(choices))
	rawScore := 0
	for i, choice := range choices {
		responses = append(responses, dataset.QuestionResponse{
			QuestionID: questions[i].ID,
			Response:   choice,
		})
		if choice == questions[i].Config.Key {
			rawScore++
		}
	}
	return dataset.StudentResponse{
		ID:           uuid.NewString(),
		AssessmentID: "assessment1",
		Assigned:     assigned,
		Started:      started,
		Completed:    completed,
		Student:      dataset.StudentRef{ID: studentID, YearLevel: 6},
		Responses:    responses,
		Results:      dataset.Results{RawScore: rawScore},
	}
}
