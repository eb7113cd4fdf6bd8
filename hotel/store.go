package hotel

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Store persists the room catalog and the reservation ledger as the legacy
// pair of comma-delimited text files. Every save rewrites the whole file in
// insertion order; there is no append mode and no escaping.
//
// Load failures are deliberately soft: a missing file means no prior data,
// anything else is logged and the program keeps whatever was read so far.
type Store struct {
	roomsPath        string
	reservationsPath string
}

// NewStore points the store at the two data files. The files need not exist
// yet; directories are created on first save.
func NewStore(roomsPath, reservationsPath string) *Store {
	return &Store{roomsPath: roomsPath, reservationsPath: reservationsPath}
}

// HasRooms reports whether a room catalog file exists at all. A missing file
// triggers first-run seeding; an existing-but-empty file does not.
func (s *Store) HasRooms() bool {
	_, err := os.Stat(s.roomsPath)
	return err == nil
}

// LoadRooms reads the room catalog in file order.
func (s *Store) LoadRooms() []Room {
	var rooms []Room
	s.loadLines(s.roomsPath, "rooms", func(line string) error {
		r, err := parseRoom(line)
		if err != nil {
			return err
		}
		rooms = append(rooms, r)
		return nil
	})
	return rooms
}

// LoadReservations reads the ledger in file order, cancelled rows included.
func (s *Store) LoadReservations() []Reservation {
	var reservations []Reservation
	s.loadLines(s.reservationsPath, "reservations", func(line string) error {
		r, err := parseReservation(line)
		if err != nil {
			return err
		}
		reservations = append(reservations, r)
		return nil
	})
	return reservations
}

// SaveRooms rewrites the catalog file.
func (s *Store) SaveRooms(rooms []Room) error {
	lines := make([]string, 0, len(rooms))
	for _, r := range rooms {
		lines = append(lines, r.marshal())
	}
	return writeLines(s.roomsPath, lines)
}

// SaveReservations rewrites the ledger file.
func (s *Store) SaveReservations(reservations []Reservation) error {
	lines := make([]string, 0, len(reservations))
	for _, r := range reservations {
		lines = append(lines, r.marshal())
	}
	return writeLines(s.reservationsPath, lines)
}

func (s *Store) loadLines(path, what string, parse func(string) error) {
	f, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("loading %s: %v", what, err)
		}
		return
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if err := parse(line); err != nil {
			log.Printf("loading %s: skipping line %q: %v", what, line, err)
		}
	}
	if err := sc.Err(); err != nil {
		log.Printf("loading %s: %v", what, err)
	}
}

func writeLines(path string, lines []string) error {
	// Ensure directory exists so first-run succeeds.
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	w := bufio.NewWriter(f)
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
