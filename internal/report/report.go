package report

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kavya/markbook/internal/dataset"
)

// Kind selects which of the three reports to build. The set is closed;
// there is no extensibility requirement.
type Kind string

const (
	KindDiagnostic Kind = "diagnostic"
	KindProgress   Kind = "progress"
	KindFeedback   Kind = "feedback"
)

// Kinds lists the supported report kinds in menu order.
var Kinds = []Kind{KindDiagnostic, KindProgress, KindFeedback}

// ErrUnknownKind indicates a report-kind selector outside the supported
// set. It is fatal and raised before any dataset access.
var ErrUnknownKind = errors.New("unknown report kind")

// ParseKind normalizes a user-supplied selector. It accepts the kind
// name (any case) or its menu number (1-3).
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", string(KindDiagnostic):
		return KindDiagnostic, nil
	case "2", string(KindProgress):
		return KindProgress, nil
	case "3", string(KindFeedback):
		return KindFeedback, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Generator builds report text from a dataset snapshot. It holds no
// state beyond the snapshot; Build is a pure function of its arguments.
type Generator struct {
	snap *dataset.Snapshot
}

// NewGenerator creates a Generator over snap.
func NewGenerator(snap *dataset.Snapshot) *Generator {
	return &Generator{snap: snap}
}

// Build renders the requested report for the student, or returns the
// fixed "no completed assessments" message when the student has no
// finished attempts. Lookup failures abort with no partial text.
func (g *Generator) Build(studentID string, kind Kind) (string, error) {
	switch kind {
	case KindDiagnostic, KindProgress, KindFeedback:
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	student, err := g.snap.Student(studentID)
	if err != nil {
		return "", err
	}

	completed := CompletedForStudent(studentID, g.snap.Responses())
	if len(completed) == 0 {
		return fmt.Sprintf("No completed assessments found for %s", student.FullName()), nil
	}

	switch kind {
	case KindDiagnostic:
		return g.diagnostic(student, completed)
	case KindProgress:
		return g.progress(student, completed)
	default:
		return g.feedback(student, completed)
	}
}

// diagnostic reports the most recent attempt broken down by strand. The
// overall summary is summed from the strand breakdown rather than
// TotalScore, so an unknown question id fails the report as a whole.
func (g *Generator) diagnostic(student dataset.Student, completed []dataset.StudentResponse) (string, error) {
	recent := MostRecent(completed)

	assessment, err := g.snap.Assessment(recent.AssessmentID)
	if err != nil {
		return "", err
	}
	strands, err := StrandScores(recent, g.snap)
	if err != nil {
		return "", err
	}

	var correct, total int
	for _, s := range strands {
		correct += s.Correct
		total += s.Total
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s recently completed %s assessment on %s\n",
		student.FullName(), assessment.Name, LongDate(recent.Completed))
	fmt.Fprintf(&b, "He got %d questions right out of %d. Details by strand given below:\n\n",
		correct, total)
	for _, s := range strands {
		fmt.Fprintf(&b, "%s: %d out of %d correct\n", s.Strand, s.Correct, s.Total)
	}
	return b.String(), nil
}

// progress reports every completed attempt in chronological order with
// an improvement line once there are at least two attempts.
func (g *Generator) progress(student dataset.Student, completed []dataset.StudentResponse) (string, error) {
	ordered := Chronological(completed)

	assessment, err := g.snap.Assessment(ordered[0].AssessmentID)
	if err != nil {
		return "", err
	}

	scores := make([]Score, len(ordered))
	for i, r := range ordered {
		scores[i] = TotalScore(r, g.snap)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s has completed %s assessment %d times in total. Date and raw score given below:\n\n",
		student.FullName(), assessment.Name, len(ordered))
	for i, r := range ordered {
		fmt.Fprintf(&b, "Date: %s, Raw Score: %d out of %d\n",
			ShortDate(r.Completed), scores[i].Correct, scores[i].Total)
	}

	if len(ordered) >= 2 {
		// The phrasing is fixed regardless of sign; the delta may be
		// zero or negative.
		delta := scores[len(scores)-1].Correct - scores[0].Correct
		fmt.Fprintf(&b, "\n%s got %d more correct in the recent completed assessment than the oldest\n",
			student.FullName(), delta)
	}
	return b.String(), nil
}

// feedback reports the most recent attempt with a block per wrong answer.
func (g *Generator) feedback(student dataset.Student, completed []dataset.StudentResponse) (string, error) {
	recent := MostRecent(completed)

	assessment, err := g.snap.Assessment(recent.AssessmentID)
	if err != nil {
		return "", err
	}
	wrong, err := WrongAnswers(recent, g.snap)
	if err != nil {
		return "", err
	}
	score := TotalScore(recent, g.snap)

	var b strings.Builder
	fmt.Fprintf(&b, "%s recently completed %s assessment on %s\n",
		student.FullName(), assessment.Name, LongDate(recent.Completed))
	fmt.Fprintf(&b, "He got %d questions right out of %d. Feedback for wrong answers given below\n\n",
		score.Correct, score.Total)

	if len(wrong) == 0 {
		b.WriteString("Perfect score!\n")
		return b.String(), nil
	}

	for i, w := range wrong {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "Question: %s\n", w.Question.Stem)
		fmt.Fprintf(&b, "Your answer: %s with value %s\n", w.UserAnswer.Key, w.UserAnswer.Value)
		fmt.Fprintf(&b, "Right answer: %s with value %s\n", w.CorrectAnswer.Key, w.CorrectAnswer.Value)
		fmt.Fprintf(&b, "Hint: %s\n", w.Question.Config.Hint)
	}
	return b.String(), nil
}
