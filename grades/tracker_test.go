package grades

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTracker(t *testing.T) *Tracker {
	t.Helper()
	return NewTracker(NewStore(filepath.Join(t.TempDir(), "students.csv")))
}

func TestAddStudent(t *testing.T) {
	tr := newTracker(t)
	require.NoError(t, tr.AddStudent("Alice"))

	assert.ErrorIs(t, tr.AddStudent(""), ErrEmptyName)
	assert.ErrorIs(t, tr.AddStudent("   "), ErrEmptyName)
	assert.ErrorIs(t, tr.AddStudent("Alice"), ErrDuplicateStudent)
	assert.ErrorIs(t, tr.AddStudent("ALICE"), ErrDuplicateStudent, "duplicate check ignores case")

	require.NoError(t, tr.AddStudent("Bob"))
	require.Len(t, tr.Students(), 2)
}

func TestAddGrade(t *testing.T) {
	tr := newTracker(t)
	require.NoError(t, tr.AddStudent("Alice"))

	assert.ErrorIs(t, tr.AddGrade(0, 50), ErrNoSuchStudent)
	assert.ErrorIs(t, tr.AddGrade(2, 50), ErrNoSuchStudent)
	assert.ErrorIs(t, tr.AddGrade(1, -1), ErrGradeOutOfRange)
	assert.ErrorIs(t, tr.AddGrade(1, 100.5), ErrGradeOutOfRange)

	require.NoError(t, tr.AddGrade(1, 0))
	require.NoError(t, tr.AddGrade(1, 100))
	s, err := tr.Student(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 100}, s.Grades)
}

func TestStudentStats(t *testing.T) {
	s := &Student{Name: "Alice"}
	assert.Equal(t, 0.0, s.Average())
	assert.Equal(t, 0.0, s.Highest())
	assert.Equal(t, 0.0, s.Lowest())

	s.Grades = []float64{90, 70, 85}
	assert.InDelta(t, 81.666, s.Average(), 0.001)
	assert.Equal(t, 90.0, s.Highest())
	assert.Equal(t, 70.0, s.Lowest())
}

func TestRemoveStudentAndGrade(t *testing.T) {
	tr := newTracker(t)
	require.NoError(t, tr.AddStudent("Alice"))
	require.NoError(t, tr.AddStudent("Bob"))
	require.NoError(t, tr.AddGrade(2, 60))
	require.NoError(t, tr.AddGrade(2, 80))

	assert.ErrorIs(t, tr.RemoveGrade(2, 0), ErrNoSuchGrade)
	assert.ErrorIs(t, tr.RemoveGrade(2, 3), ErrNoSuchGrade)
	require.NoError(t, tr.RemoveGrade(2, 1))
	s, err := tr.Student(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{80}, s.Grades)

	require.NoError(t, tr.RemoveStudent(1))
	require.Len(t, tr.Students(), 1)
	assert.Equal(t, "Bob", tr.Students()[0].Name)
	assert.ErrorIs(t, tr.RemoveStudent(2), ErrNoSuchStudent)
}

func TestSearch(t *testing.T) {
	tr := newTracker(t)
	require.NoError(t, tr.AddStudent("Alice"))

	s, err := tr.Search("alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice", s.Name)

	_, err = tr.Search("Carol")
	assert.ErrorIs(t, err, ErrStudentNotFound)
}

func TestSummaryOrder(t *testing.T) {
	tr := newTracker(t)
	require.NoError(t, tr.AddStudent("Low"))
	require.NoError(t, tr.AddStudent("High"))
	require.NoError(t, tr.AddStudent("Mid"))
	require.NoError(t, tr.AddGrade(1, 50))
	require.NoError(t, tr.AddGrade(2, 95))
	require.NoError(t, tr.AddGrade(3, 75))

	var names []string
	for _, s := range tr.Summary() {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"High", "Mid", "Low"}, names)

	// The roster itself keeps insertion order.
	assert.Equal(t, "Low", tr.Students()[0].Name)
}

func TestRosterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "students.csv")
	tr := NewTracker(NewStore(path))
	require.NoError(t, tr.AddStudent("Alice"))
	require.NoError(t, tr.AddGrade(1, 92.5))
	require.NoError(t, tr.AddGrade(1, 88))
	require.NoError(t, tr.AddStudent("Bob"))

	tr2 := NewTracker(NewStore(path))
	require.Len(t, tr2.Students(), 2)
	s, err := tr2.Search("Alice")
	require.NoError(t, err)
	assert.Equal(t, []float64{92.5, 88}, s.Grades)
	s, err = tr2.Search("Bob")
	require.NoError(t, err)
	assert.Empty(t, s.Grades)
}
