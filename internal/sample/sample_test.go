package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kavya/markbook/internal/dataset"
	"github.com/kavya/markbook/internal/report"
)

func TestWriteThenLoad(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Write(dir))

	snap, err := dataset.Load(dir)
	require.NoError(t, err)

	_, err = snap.Student("student1")
	require.NoError(t, err)
	_, err = snap.Assessment("assessment1")
	require.NoError(t, err)
}

func TestDatasetIsSelfConsistent(t *testing.T) {
	questions := Questions()
	byID := make(map[string]dataset.Question, len(questions))
	for _, q := range questions {
		// Every key resolves to exactly one option.
		opt := q.Config.OptionByID(q.Config.Key)
		require.NotNilf(t, opt, "question %s: key %s has no option", q.ID, q.Config.Key)
		byID[q.ID] = q
	}

	for _, a := range Assessments() {
		for _, ref := range a.Questions {
			_, ok := byID[ref.QuestionID]
			assert.Truef(t, ok, "assessment %s references unknown question %s", a.ID, ref.QuestionID)
		}
	}

	for _, r := range Responses() {
		for _, qr := range r.Responses {
			q, ok := byID[qr.QuestionID]
			require.Truef(t, ok, "response %s references unknown question %s", r.ID, qr.QuestionID)
			assert.NotNilf(t, q.Config.OptionByID(qr.Response),
				"response %s chose unknown option %s for %s", r.ID, qr.Response, qr.QuestionID)
		}
	}
}

func TestSampleSupportsAllReports(t *testing.T) {
	snap := dataset.NewSnapshot(Students(), Assessments(), Questions(), Responses())
	gen := report.NewGenerator(snap)

	for _, kind := range report.Kinds {
		text, err := gen.Build("student1", kind)
		require.NoErrorf(t, err, "kind %s", kind)
		assert.Containsf(t, text, "Tony Allen", "kind %s", kind)
	}

	// student2 never finished anything.
	text, err := gen.Build("student2", report.KindDiagnostic)
	require.NoError(t, err)
	assert.Equal(t, "No completed assessments found for Priya Nair", text)
}

func TestResponsesHaveUniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for _, r := range Responses() {
		assert.Falsef(t, seen[r.ID], "duplicate response id %s", r.ID)
		seen[r.ID] = true
	}
}
