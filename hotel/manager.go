package hotel

import (
	"log"
	"strings"
	"time"
)

// HotelManager owns the in-memory room catalog and reservation ledger and
// writes both back through its Store after every mutation. It is built for a
// single interactive user; nothing here is safe for concurrent use.
type HotelManager struct {
	store        *Store
	rooms        []Room
	reservations []Reservation
	nextID       int

	// Confirm approves a payment of total for the given night count before a
	// reservation is created. The console installs an interactive prompt;
	// tests swap in a stub. Any non-affirmative answer aborts the booking.
	Confirm func(total float64, nights int) bool
}

// NewHotelManager loads prior state from the store, seeding the default room
// catalog on first run. The next reservation id is derived from the highest
// id on file so ids stay unique across restarts.
func NewHotelManager(store *Store) *HotelManager {
	m := &HotelManager{
		store:   store,
		Confirm: func(float64, int) bool { return true },
	}

	if store.HasRooms() {
		m.rooms = store.LoadRooms()
	} else {
		m.rooms = defaultCatalog()
		if err := store.SaveRooms(m.rooms); err != nil {
			log.Printf("saving seeded rooms: %v", err)
		}
	}

	m.reservations = store.LoadReservations()
	m.nextID = 1
	for _, res := range m.reservations {
		if res.ID >= m.nextID {
			m.nextID = res.ID + 1
		}
	}
	return m
}

func defaultCatalog() []Room {
	return []Room{
		{ID: 1, Category: "Standard", Price: 100, Available: true},
		{ID: 2, Category: "Standard", Price: 100, Available: true},
		{ID: 3, Category: "Deluxe", Price: 150, Available: true},
		{ID: 4, Category: "Deluxe", Price: 150, Available: true},
		{ID: 5, Category: "Suite", Price: 250, Available: true},
		{ID: 6, Category: "Suite", Price: 250, Available: true},
	}
}

// Rooms returns the full catalog in its original order.
func (m *HotelManager) Rooms() []Room { return m.rooms }

// RoomByID looks up one room. Absence is not an error at this layer.
func (m *HotelManager) RoomByID(id int) (Room, bool) {
	for _, r := range m.rooms {
		if r.ID == id {
			return r, true
		}
	}
	return Room{}, false
}

// SearchRooms returns the rooms free for the whole half-open range
// [checkIn, checkOut), optionally restricted to a category
// (case-insensitive; empty means all). Results keep catalog order.
func (m *HotelManager) SearchRooms(category string, checkIn, checkOut time.Time) []Room {
	var available []Room
	for _, room := range m.rooms {
		if category != "" && !strings.EqualFold(room.Category, category) {
			continue
		}
		if m.roomFree(room.ID, checkIn, checkOut) {
			available = append(available, room)
		}
	}
	return available
}

// roomFree reports whether no confirmed reservation for the room overlaps
// [checkIn, checkOut). Ranges that merely touch do not conflict: a check-out
// date is reuse-eligible for a same-day check-in.
func (m *HotelManager) roomFree(roomID int, checkIn, checkOut time.Time) bool {
	for _, res := range m.reservations {
		if res.RoomID != roomID || res.Status != StatusConfirmed {
			continue
		}
		if res.CheckOut.After(checkIn) && res.CheckIn.Before(checkOut) {
			return false
		}
	}
	return true
}

// MakeReservation books a room for guestName over [checkIn, checkOut) and
// returns the new reservation id. The total is the nightly price times the
// number of nights; the Confirm collaborator must approve it before anything
// is recorded.
func (m *HotelManager) MakeReservation(guestName string, roomID int, checkIn, checkOut time.Time) (int, error) {
	room, ok := m.RoomByID(roomID)
	if !ok {
		return 0, ErrRoomNotFound
	}

	nights := nightsBetween(checkIn, checkOut)
	if nights <= 0 {
		return 0, ErrInvalidDateRange
	}

	if !m.roomFree(roomID, checkIn, checkOut) {
		return 0, ErrRoomUnavailable
	}

	total := room.Price * float64(nights)
	if !m.Confirm(total, nights) {
		return 0, ErrPaymentDeclined
	}

	res := Reservation{
		ID:         m.nextID,
		GuestName:  guestName,
		RoomID:     roomID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		TotalPrice: total,
		Status:     StatusConfirmed,
	}
	m.reservations = append(m.reservations, res)
	m.nextID++
	m.persist()
	return res.ID, nil
}

// CancelReservation flips a reservation to cancelled, freeing its date range
// for future bookings. The guest name must match exactly; it is the only
// authorization the legacy system has.
func (m *HotelManager) CancelReservation(reservationID int, guestName string) error {
	res := m.findReservation(reservationID, guestName)
	if res == nil {
		return ErrReservationNotFound
	}
	if res.Status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	res.Status = StatusCancelled
	m.persist()
	return nil
}

// BookingDetails joins a reservation with its room's category for display.
type BookingDetails struct {
	Reservation Reservation
	Category    string
}

// FindBooking returns the details of a reservation matching both id and
// exact guest name.
func (m *HotelManager) FindBooking(reservationID int, guestName string) (BookingDetails, error) {
	res := m.findReservation(reservationID, guestName)
	if res == nil {
		return BookingDetails{}, ErrReservationNotFound
	}
	d := BookingDetails{Reservation: *res}
	if room, ok := m.RoomByID(res.RoomID); ok {
		d.Category = room.Category
	}
	return d, nil
}

func (m *HotelManager) findReservation(id int, guestName string) *Reservation {
	for i := range m.reservations {
		if m.reservations[i].ID == id && m.reservations[i].GuestName == guestName {
			return &m.reservations[i]
		}
	}
	return nil
}

func (m *HotelManager) persist() {
	if err := m.store.SaveReservations(m.reservations); err != nil {
		log.Printf("saving reservations: %v", err)
	}
}
