package dataset

// Student is a learner known to the system.
type Student struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	YearLevel int    `json:"yearLevel"`
}

// FullName returns the student's display name used in report text.
func (s Student) FullName() string {
	return s.FirstName + " " + s.LastName
}

// Assessment is a named, ordered collection of question references.
type Assessment struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Questions []QuestionRef `json:"questions"`
}

// QuestionRef points at a question within an assessment, in display order.
type QuestionRef struct {
	QuestionID string `json:"questionId"`
	Position   int    `json:"position"`
}

// Question is a single multiple-choice item.
type Question struct {
	ID     string         `json:"id"`
	Stem   string         `json:"stem"`
	Type   string         `json:"type"`
	Strand string         `json:"strand"`
	Config QuestionConfig `json:"config"`
}

// QuestionConfig holds the options, the correct option id, and a hint.
type QuestionConfig struct {
	Options []Option `json:"options"`

	// Key is the id of the correct option. It must match exactly one
	// entry in Options.
	Key  string `json:"key"`
	Hint string `json:"hint"`
}

// Option is one selectable answer for a question.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// OptionByID returns the option with the given id, or nil if the id does
// not appear in the options list.
func (c QuestionConfig) OptionByID(id string) *Option {
	for i := range c.Options {
		if c.Options[i].ID == id {
			return &c.Options[i]
		}
	}
	return nil
}

// StudentResponse is one attempt at an assessment. The assigned, started
// and completed fields are raw day-first date strings as they appear in
// the dataset; an empty completed field means the attempt was never
// finished. A student may have multiple attempts at the same assessment.
type StudentResponse struct {
	ID           string             `json:"id"`
	AssessmentID string             `json:"assessmentId"`
	Assigned     string             `json:"assigned"`
	Started      string             `json:"started"`
	Completed    string             `json:"completed"`
	Student      StudentRef         `json:"student"`
	Responses    []QuestionResponse `json:"responses"`
	Results      Results            `json:"results"`
}

// StudentRef identifies the student who made an attempt.
type StudentRef struct {
	ID        string `json:"id"`
	YearLevel int    `json:"yearLevel"`
}

// QuestionResponse records the option a student chose for one question.
type QuestionResponse struct {
	QuestionID string `json:"questionId"`
	Response   string `json:"response"`
}

// Results holds the score recorded with an attempt.
type Results struct {
	RawScore int `json:"rawScore"`
}
