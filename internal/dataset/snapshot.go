package dataset

import "fmt"

// NotFoundError indicates a referenced id does not exist in the snapshot.
// It is fatal to report generation: callers propagate it rather than
// rendering a partial report.
type NotFoundError struct {
	Kind string // "student", "assessment", "question", "option"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found in dataset", e.Kind, e.ID)
}

// Snapshot is an immutable view of one loaded dataset. All report
// generation for a request runs against a single snapshot; nothing here
// mutates after construction.
type Snapshot struct {
	students    map[string]Student
	assessments map[string]Assessment
	questions   map[string]Question
	responses   []StudentResponse
}

// NewSnapshot indexes the four collections for id lookup. Response order
// is preserved as loaded; the selectors depend on it.
func NewSnapshot(students []Student, assessments []Assessment, questions []Question, responses []StudentResponse) *Snapshot {
	snap := &Snapshot{
		students:    make(map[string]Student, len(students)),
		assessments: make(map[string]Assessment, len(assessments)),
		questions:   make(map[string]Question, len(questions)),
		responses:   responses,
	}
	for _, s := range students {
		snap.students[s.ID] = s
	}
	for _, a := range assessments {
		snap.assessments[a.ID] = a
	}
	for _, q := range questions {
		snap.questions[q.ID] = q
	}
	return snap
}

// Student returns the student with the given id.
func (s *Snapshot) Student(id string) (Student, error) {
	st, ok := s.students[id]
	if !ok {
		return Student{}, &NotFoundError{Kind: "student", ID: id}
	}
	return st, nil
}

// Assessment returns the assessment with the given id.
func (s *Snapshot) Assessment(id string) (Assessment, error) {
	a, ok := s.assessments[id]
	if !ok {
		return Assessment{}, &NotFoundError{Kind: "assessment", ID: id}
	}
	return a, nil
}

// Question returns the question with the given id.
func (s *Snapshot) Question(id string) (Question, error) {
	q, ok := s.questions[id]
	if !ok {
		return Question{}, &NotFoundError{Kind: "question", ID: id}
	}
	return q, nil
}

// HasQuestion reports whether a question id resolves, without allocating
// a lookup error.
func (s *Snapshot) HasQuestion(id string) bool {
	_, ok := s.questions[id]
	return ok
}

// Responses returns all attempts in dataset order.
func (s *Snapshot) Responses() []StudentResponse {
	return s.responses
}
