package grades

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Store persists the roster as the legacy students.csv: one line per student,
// name first, grades after, comma-separated with no escaping. Every save
// rewrites the whole file.
type Store struct {
	path string
}

// NewStore points the store at the roster file.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the roster in file order. A missing file means an empty roster;
// other failures are logged and the roster read so far is kept.
func (s *Store) Load() []*Student {
	f, err := os.Open(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("loading students: %v", err)
		}
		return nil
	}
	defer f.Close()

	var students []*Student
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		st, err := parseStudent(line)
		if err != nil {
			log.Printf("loading students: skipping line %q: %v", line, err)
			continue
		}
		students = append(students, st)
	}
	if err := sc.Err(); err != nil {
		log.Printf("loading students: %v", err)
	}
	return students
}

// Save rewrites the roster file.
func (s *Store) Save(students []*Student) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
	}

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}

	w := bufio.NewWriter(f)
	for _, st := range students {
		fmt.Fprintln(w, st.marshal())
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return f.Close()
}
