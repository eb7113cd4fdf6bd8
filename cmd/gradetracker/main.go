package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"hotel-management/config"
	"hotel-management/grades"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func main() {
	var (
		envFile string
		dataDir string
	)

	rootCmd := &cobra.Command{
		Use:          "gradetracker",
		Short:        "Interactive student grade tracker console",
		Long:         "Menu-driven student grade tracker backed by a flat students.csv file.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadWithFile(envFile)
			if err != nil {
				return err
			}
			if dataDir != "" {
				cfg.ApplyDataDir(dataDir)
			}
			run(grades.NewTracker(grades.NewStore(cfg.GradesFile)))
			return nil
		},
	}
	rootCmd.Flags().StringVar(&envFile, "env-file", "", "optional .env file with data locations")
	rootCmd.Flags().StringVar(&dataDir, "data-dir", "", "directory holding students.csv")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(tracker *grades.Tracker) {
	scanner := bufio.NewScanner(os.Stdin)

	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Println("Welcome to the Student Grade Tracker!")
	}

	for {
		fmt.Println("\n=== Student Grade Tracker ===")
		fmt.Println("1. Add Student")
		fmt.Println("2. Add Grade to Student")
		fmt.Println("3. Remove Student")
		fmt.Println("4. Remove Grade from Student")
		fmt.Println("5. Search Student")
		fmt.Println("6. View Summary Report")
		fmt.Println("7. Exit")

		fmt.Print("Choose an option: ")
		if !scanner.Scan() {
			break
		}

		switch strings.TrimSpace(scanner.Text()) {
		case "1":
			handleAddStudent(scanner, tracker)
		case "2":
			handleAddGrade(scanner, tracker)
		case "3":
			handleRemoveStudent(scanner, tracker)
		case "4":
			handleRemoveGrade(scanner, tracker)
		case "5":
			handleSearch(scanner, tracker)
		case "6":
			handleSummary(tracker)
		case "7":
			saveAndExit(tracker)
			return
		default:
			fmt.Println("Invalid option. Try again.")
		}
	}
	saveAndExit(tracker)
}

func saveAndExit(tracker *grades.Tracker) {
	if err := tracker.Save(); err != nil {
		fmt.Printf("Error saving data: %v\n", err)
		return
	}
	fmt.Println("Exiting... Data saved.")
}

func handleAddStudent(sc *bufio.Scanner, tracker *grades.Tracker) {
	name, ok := readLine(sc, "Enter student name: ")
	if !ok {
		return
	}
	switch err := tracker.AddStudent(name); {
	case err == nil:
		fmt.Println("Student added successfully.")
	case errors.Is(err, grades.ErrEmptyName):
		fmt.Println("Name cannot be empty.")
	case errors.Is(err, grades.ErrDuplicateStudent):
		fmt.Println("Student already exists.")
	default:
		fmt.Printf("Error: %v\n", err)
	}
}

func handleAddGrade(sc *bufio.Scanner, tracker *grades.Tracker) {
	if len(tracker.Students()) == 0 {
		fmt.Println("No students available. Add a student first.")
		return
	}
	index, ok := selectStudent(sc, tracker)
	if !ok {
		return
	}
	grade, ok := readFloat(sc, "Enter grade (0-100): ", "Invalid grade. Enter a number.")
	if !ok {
		return
	}
	switch err := tracker.AddGrade(index, grade); {
	case err == nil:
		fmt.Println("Grade added successfully.")
	case errors.Is(err, grades.ErrGradeOutOfRange):
		fmt.Println("Grade must be between 0 and 100.")
	default:
		fmt.Printf("Error: %v\n", err)
	}
}

func handleRemoveStudent(sc *bufio.Scanner, tracker *grades.Tracker) {
	if len(tracker.Students()) == 0 {
		fmt.Println("No students to remove.")
		return
	}
	index, ok := selectStudent(sc, tracker)
	if !ok {
		return
	}
	if err := tracker.RemoveStudent(index); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Println("Student removed.")
}

func handleRemoveGrade(sc *bufio.Scanner, tracker *grades.Tracker) {
	if len(tracker.Students()) == 0 {
		fmt.Println("No grades to remove.")
		return
	}
	index, ok := selectStudent(sc, tracker)
	if !ok {
		return
	}
	student, err := tracker.Student(index)
	if err != nil {
		fmt.Println("Invalid selection.")
		return
	}
	if len(student.Grades) == 0 {
		fmt.Println("No grades to remove.")
		return
	}
	fmt.Printf("Grades: %s\n", formatGrades(student.Grades))
	gradeIndex, ok := readInt(sc, "Enter grade index to remove (1-based): ", "Invalid index.")
	if !ok {
		return
	}
	if err := tracker.RemoveGrade(index, gradeIndex); err != nil {
		fmt.Println("Invalid index.")
		return
	}
	fmt.Println("Grade removed.")
}

func handleSearch(sc *bufio.Scanner, tracker *grades.Tracker) {
	name, ok := readLine(sc, "Enter student name to search: ")
	if !ok {
		return
	}
	student, err := tracker.Search(name)
	if err != nil {
		fmt.Println("Student not found.")
		return
	}
	printStudent(student)
}

func handleSummary(tracker *grades.Tracker) {
	if len(tracker.Students()) == 0 {
		fmt.Println("No students to display.")
		return
	}
	fmt.Println("\n=== Summary Report (Sorted by Average Descending) ===")
	for _, student := range tracker.Summary() {
		printStudent(student)
	}
}

// selectStudent lists the roster and reads a 1-based pick.
func selectStudent(sc *bufio.Scanner, tracker *grades.Tracker) (int, bool) {
	fmt.Println("Select a student:")
	for i, s := range tracker.Students() {
		fmt.Printf("%d. %s\n", i+1, s.Name)
	}
	index, ok := readInt(sc, "Enter student number: ", "Invalid input.")
	if !ok {
		return 0, false
	}
	if index < 1 || index > len(tracker.Students()) {
		fmt.Println("Invalid selection.")
		return 0, false
	}
	return index, true
}

func printStudent(s *grades.Student) {
	fmt.Printf("Student: %s\n", s.Name)
	fmt.Printf("Grades: %s\n", formatGrades(s.Grades))
	fmt.Printf("Average: %.2f\n", s.Average())
	fmt.Printf("Highest: %.2f\n", s.Highest())
	fmt.Printf("Lowest: %.2f\n", s.Lowest())
	fmt.Println()
}

func formatGrades(gs []float64) string {
	if len(gs) == 0 {
		return "[]"
	}
	parts := make([]string, 0, len(gs))
	for _, g := range gs {
		parts = append(parts, strconv.FormatFloat(g, 'f', -1, 64))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func readLine(sc *bufio.Scanner, prompt string) (string, bool) {
	fmt.Print(prompt)
	if !sc.Scan() {
		return "", false
	}
	return strings.TrimSpace(sc.Text()), true
}

func readInt(sc *bufio.Scanner, prompt, errMsg string) (int, bool) {
	s, ok := readLine(sc, prompt)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		fmt.Println(errMsg)
		return 0, false
	}
	return n, true
}

func readFloat(sc *bufio.Scanner, prompt, errMsg string) (float64, bool) {
	s, ok := readLine(sc, prompt)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		fmt.Println(errMsg)
		return 0, false
	}
	return f, true
}
