package report

import (
	"sort"
	"time"

	"github.com/kavya/markbook/internal/dataset"
)

// CompletedForStudent returns the attempts belonging to studentID whose
// completed field is non-empty, in dataset order.
func CompletedForStudent(studentID string, responses []dataset.StudentResponse) []dataset.StudentResponse {
	var out []dataset.StudentResponse
	for _, r := range responses {
		if r.Student.ID == studentID && r.Completed != "" {
			out = append(out, r)
		}
	}
	return out
}

// Chronological returns a copy of responses sorted ascending by parsed
// completed time. The sort is stable: attempts with equal (or equally
// unparseable) timestamps keep their input order. Unparseable dates sort
// as the zero time, i.e. before everything else.
func Chronological(responses []dataset.StudentResponse) []dataset.StudentResponse {
	out := make([]dataset.StudentResponse, len(responses))
	copy(out, responses)

	keys := make([]time.Time, len(out))
	for i, r := range out {
		if t, err := ParseDate(r.Completed); err == nil {
			keys[i] = t
		}
	}

	// Sort indices so the key slice stays aligned.
	idx := make([]int, len(out))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return keys[idx[a]].Before(keys[idx[b]])
	})

	sorted := make([]dataset.StudentResponse, len(out))
	for i, j := range idx {
		sorted[i] = out[j]
	}
	return sorted
}

// MostRecent returns the attempt with the greatest parsed completed time.
// With equal timestamps the later dataset entry wins, matching a stable
// ascending sort. The caller guarantees responses is non-empty.
func MostRecent(responses []dataset.StudentResponse) dataset.StudentResponse {
	ordered := Chronological(responses)
	return ordered[len(ordered)-1]
}
