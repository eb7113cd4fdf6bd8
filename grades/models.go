package grades

import (
	"fmt"
	"strconv"
	"strings"
)

// Student is one roster entry with the grades recorded for them.
// Grades stay in the order they were entered.
type Student struct {
	Name   string
	Grades []float64
}

// Average of the recorded grades, 0 when there are none.
func (s *Student) Average() float64 {
	if len(s.Grades) == 0 {
		return 0
	}
	sum := 0.0
	for _, g := range s.Grades {
		sum += g
	}
	return sum / float64(len(s.Grades))
}

// Highest recorded grade, 0 when there are none.
func (s *Student) Highest() float64 {
	best := 0.0
	for i, g := range s.Grades {
		if i == 0 || g > best {
			best = g
		}
	}
	return best
}

// Lowest recorded grade, 0 when there are none.
func (s *Student) Lowest() float64 {
	worst := 0.0
	for i, g := range s.Grades {
		if i == 0 || g < worst {
			worst = g
		}
	}
	return worst
}

// marshal renders the roster line: name first, then every grade,
// comma-separated with no escaping.
func (s *Student) marshal() string {
	parts := make([]string, 0, len(s.Grades)+1)
	parts = append(parts, s.Name)
	for _, g := range s.Grades {
		parts = append(parts, strconv.FormatFloat(g, 'f', -1, 64))
	}
	return strings.Join(parts, ",")
}

// parseStudent reads a roster line back. Grade tokens that fail to parse are
// dropped silently, matching how the legacy tracker tolerated hand-edited
// files.
func parseStudent(line string) (*Student, error) {
	parts := strings.Split(line, ",")
	name := strings.TrimSpace(parts[0])
	if name == "" {
		return nil, fmt.Errorf("student record: empty name")
	}
	s := &Student{Name: name}
	for _, tok := range parts[1:] {
		g, err := strconv.ParseFloat(strings.TrimSpace(tok), 64)
		if err != nil {
			continue
		}
		s.Grades = append(s.Grades, g)
	}
	return s, nil
}
