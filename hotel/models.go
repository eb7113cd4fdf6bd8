package hotel

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the wire format for check-in and check-out dates, both on disk
// and at the prompt.
const DateLayout = "2006-01-02"

// Status of a reservation. Cancellation flips the status; the row itself is
// never removed from the ledger.
type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// Room is one rental unit in the catalog. Category and Price never change
// after creation. Available is written to disk for compatibility with the
// legacy files but search ignores it and recomputes availability from the
// reservation ledger.
type Room struct {
	ID        int
	Category  string
	Price     float64
	Available bool
}

// Reservation is one booking in the ledger. The stay is a half-open range:
// the check-in night is included, the check-out date is not, so a room can
// turn over to a new guest on the same day it is vacated.
type Reservation struct {
	ID         int
	GuestName  string
	RoomID     int
	CheckIn    time.Time
	CheckOut   time.Time
	TotalPrice float64
	Status     Status
}

// Nights is the length of the stay in whole days.
func (r Reservation) Nights() int {
	return nightsBetween(r.CheckIn, r.CheckOut)
}

func nightsBetween(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Hours() / 24)
}

// ---------------------------------------------------------------------------
// Line codecs
//
// The on-disk format is one record per line, comma-separated, no quoting and
// no escaping. A comma inside a guest name or category corrupts the record;
// that is a known limitation of the legacy files and is preserved as-is.
// ---------------------------------------------------------------------------

func (r Room) marshal() string {
	return strings.Join([]string{
		strconv.Itoa(r.ID),
		r.Category,
		strconv.FormatFloat(r.Price, 'f', 2, 64),
		strconv.FormatBool(r.Available),
	}, ",")
}

func parseRoom(line string) (Room, error) {
	parts := strings.Split(line, ",")
	if len(parts) != 4 {
		return Room{}, fmt.Errorf("room record: want 4 fields, got %d", len(parts))
	}
	id, err := strconv.Atoi(parts[0])
	if err != nil {
		return Room{}, fmt.Errorf("room id: %w", err)
	}
	price, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return Room{}, fmt.Errorf("room price: %w", err)
	}
	available, err := strconv.ParseBool(parts[3])
	if err != nil {
		return Room{}, fmt.Errorf("room available flag: %w", err)
	}
	return Room{ID: id, Category: parts[1], Price: price, Available: available}, nil
}

func (r Reservation) marshal() string {
	return strings.Join([]string{
		strconv.Itoa(r.ID),
		r.GuestName,
		strconv.Itoa(r.RoomID),
		r.CheckIn.Format(DateLayout),
		r.CheckOut.Format(DateLayout),
		strconv.FormatFloat(r.TotalPrice, 'f', 2, 64),
		string(r.Status),
	}, ",")
}

func parseReservation(line string) (Reservation, error) {
	parts := strings.Split(line, ",")
	if len(parts) != 7 {
		return Reservation{}, fmt.Errorf("reservation record: want 7 fields, got %d", len(parts))
	}
	id, err := strconv.Atoi(parts[0])
	if err != nil {
		return Reservation{}, fmt.Errorf("reservation id: %w", err)
	}
	roomID, err := strconv.Atoi(parts[2])
	if err != nil {
		return Reservation{}, fmt.Errorf("reservation room id: %w", err)
	}
	checkIn, err := time.Parse(DateLayout, parts[3])
	if err != nil {
		return Reservation{}, fmt.Errorf("check-in date: %w", err)
	}
	checkOut, err := time.Parse(DateLayout, parts[4])
	if err != nil {
		return Reservation{}, fmt.Errorf("check-out date: %w", err)
	}
	total, err := strconv.ParseFloat(parts[5], 64)
	if err != nil {
		return Reservation{}, fmt.Errorf("total price: %w", err)
	}
	return Reservation{
		ID:         id,
		GuestName:  parts[1],
		RoomID:     roomID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		TotalPrice: total,
		Status:     Status(parts[6]),
	}, nil
}
