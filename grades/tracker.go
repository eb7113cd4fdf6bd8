package grades

import (
	"errors"
	"log"
	"sort"
	"strings"
)

var (
	ErrEmptyName        = errors.New("name cannot be empty")
	ErrDuplicateStudent = errors.New("student already exists")
	ErrNoSuchStudent    = errors.New("invalid selection")
	ErrNoSuchGrade      = errors.New("invalid index")
	ErrGradeOutOfRange  = errors.New("grade must be between 0 and 100")
	ErrStudentNotFound  = errors.New("student not found")
)

// Tracker owns the student roster and writes it back through its Store after
// every change. Single interactive user only.
type Tracker struct {
	store    *Store
	students []*Student
}

// NewTracker loads any prior roster from the store.
func NewTracker(store *Store) *Tracker {
	return &Tracker{store: store, students: store.Load()}
}

// Students returns the roster in insertion order.
func (t *Tracker) Students() []*Student { return t.students }

// Student resolves a 1-based roster index, the way the menu numbers them.
func (t *Tracker) Student(index int) (*Student, error) {
	if index < 1 || index > len(t.students) {
		return nil, ErrNoSuchStudent
	}
	return t.students[index-1], nil
}

// AddStudent appends a new student. Names are unique case-insensitively.
func (t *Tracker) AddStudent(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	for _, s := range t.students {
		if strings.EqualFold(s.Name, name) {
			return ErrDuplicateStudent
		}
	}
	t.students = append(t.students, &Student{Name: name})
	t.persist()
	return nil
}

// AddGrade records a grade for the student at the 1-based roster index.
func (t *Tracker) AddGrade(index int, grade float64) error {
	s, err := t.Student(index)
	if err != nil {
		return err
	}
	if grade < 0 || grade > 100 {
		return ErrGradeOutOfRange
	}
	s.Grades = append(s.Grades, grade)
	t.persist()
	return nil
}

// RemoveStudent deletes the student at the 1-based roster index. Unlike the
// hotel ledger this is a real deletion; the roster has no history to keep.
func (t *Tracker) RemoveStudent(index int) error {
	if _, err := t.Student(index); err != nil {
		return err
	}
	t.students = append(t.students[:index-1], t.students[index:]...)
	t.persist()
	return nil
}

// RemoveGrade deletes one grade (1-based) from the student at the 1-based
// roster index.
func (t *Tracker) RemoveGrade(index, gradeIndex int) error {
	s, err := t.Student(index)
	if err != nil {
		return err
	}
	if gradeIndex < 1 || gradeIndex > len(s.Grades) {
		return ErrNoSuchGrade
	}
	s.Grades = append(s.Grades[:gradeIndex-1], s.Grades[gradeIndex:]...)
	t.persist()
	return nil
}

// Search finds a student by case-insensitive exact name match.
func (t *Tracker) Search(name string) (*Student, error) {
	for _, s := range t.students {
		if strings.EqualFold(s.Name, name) {
			return s, nil
		}
	}
	return nil, ErrStudentNotFound
}

// Summary returns the roster sorted by average descending. It sorts a copy so
// roster and file order stay insertion order.
func (t *Tracker) Summary() []*Student {
	out := make([]*Student, len(t.students))
	copy(out, t.students)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Average() > out[j].Average()
	})
	return out
}

// Save flushes the roster, for the exit path.
func (t *Tracker) Save() error {
	return t.store.Save(t.students)
}

func (t *Tracker) persist() {
	if err := t.store.Save(t.students); err != nil {
		log.Printf("saving students: %v", err)
	}
}
