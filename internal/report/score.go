package report

import (
	"github.com/kavya/markbook/internal/dataset"
)

// Score is a correct/total pair for one attempt.
type Score struct {
	Correct int
	Total   int
}

// StrandScore is a Score attributed to one strand.
type StrandScore struct {
	Strand  string
	Correct int
	Total   int
}

// AnswerView is an option rendered for feedback text. When the option id
// in a response does not resolve against the question's options list the
// view is left zero-valued and renders as empty text.
type AnswerView struct {
	Key   string // option label, e.g. "A"
	Value string // option value, e.g. "7"
}

// WrongAnswer pairs an incorrectly answered question with what the
// student chose and what the key was.
type WrongAnswer struct {
	Question      dataset.Question
	UserAnswer    AnswerView
	CorrectAnswer AnswerView
}

// IsCorrect reports whether the chosen option id equals the question's
// key. Exact string comparison: no case folding, no label comparison.
func IsCorrect(qr dataset.QuestionResponse, q dataset.Question) bool {
	return qr.Response == q.Config.Key
}

// TotalScore counts every question response in the attempt toward the
// total. A response whose question id is unknown still counts in the
// total but can never count as correct. That asymmetry is intentional:
// strand scoring treats the same condition as fatal, total scoring
// tolerates it.
func TotalScore(resp dataset.StudentResponse, snap *dataset.Snapshot) Score {
	score := Score{Total: len(resp.Responses)}
	for _, qr := range resp.Responses {
		q, err := snap.Question(qr.QuestionID)
		if err != nil {
			continue
		}
		if IsCorrect(qr, q) {
			score.Correct++
		}
	}
	return score
}

// StrandScores groups the attempt's responses by their question's strand
// and accumulates correct/total per strand, in first-seen strand order.
// Unlike TotalScore, an unknown question id fails the whole computation.
func StrandScores(resp dataset.StudentResponse, snap *dataset.Snapshot) ([]StrandScore, error) {
	var order []string
	byStrand := make(map[string]*StrandScore)

	for _, qr := range resp.Responses {
		q, err := snap.Question(qr.QuestionID)
		if err != nil {
			return nil, err
		}

		ss, ok := byStrand[q.Strand]
		if !ok {
			ss = &StrandScore{Strand: q.Strand}
			byStrand[q.Strand] = ss
			order = append(order, q.Strand)
		}
		ss.Total++
		if IsCorrect(qr, q) {
			ss.Correct++
		}
	}

	out := make([]StrandScore, 0, len(order))
	for _, strand := range order {
		out = append(out, *byStrand[strand])
	}
	return out, nil
}

// WrongAnswers returns, in response order, every incorrectly answered
// question together with the chosen and correct options. An unknown
// question id is fatal. An option id missing from the question's options
// list leaves that answer view unresolved (empty).
func WrongAnswers(resp dataset.StudentResponse, snap *dataset.Snapshot) ([]WrongAnswer, error) {
	var out []WrongAnswer
	for _, qr := range resp.Responses {
		q, err := snap.Question(qr.QuestionID)
		if err != nil {
			return nil, err
		}
		if IsCorrect(qr, q) {
			continue
		}

		wa := WrongAnswer{Question: q}
		if opt := q.Config.OptionByID(qr.Response); opt != nil {
			wa.UserAnswer = AnswerView{Key: opt.Label, Value: opt.Value}
		}
		if opt := q.Config.OptionByID(q.Config.Key); opt != nil {
			wa.CorrectAnswer = AnswerView{Key: opt.Label, Value: opt.Value}
		}
		out = append(out, wa)
	}
	return out, nil
}
