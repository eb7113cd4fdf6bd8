package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"hotel-management/config"
	"hotel-management/hotel"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func main() {
	var (
		envFile string
		dataDir string
	)

	rootCmd := &cobra.Command{
		Use:          "hotel",
		Short:        "Interactive hotel reservation console",
		Long:         "Menu-driven hotel reservation console backed by flat text files (rooms.txt, reservations.txt).",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadWithFile(envFile)
			if err != nil {
				return err
			}
			if dataDir != "" {
				cfg.ApplyDataDir(dataDir)
			}
			run(hotel.NewHotelManager(hotel.NewStore(cfg.RoomsFile, cfg.ReservationsFile)))
			return nil
		},
	}
	rootCmd.Flags().StringVar(&envFile, "env-file", "", "optional .env file with data locations")
	rootCmd.Flags().StringVar(&dataDir, "data-dir", "", "directory holding rooms.txt and reservations.txt")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(mgr *hotel.HotelManager) {
	scanner := bufio.NewScanner(os.Stdin)

	// Skip the one-time banner when input is piped so scripts see clean output.
	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Println("Welcome to the Hotel Reservation System!")
	}

	mgr.Confirm = func(total float64, nights int) bool {
		fmt.Printf("Simulating payment of $%.2f for %d nights.\n", total, nights)
		fmt.Print("Enter 'yes' to confirm payment: ")
		if !scanner.Scan() {
			return false
		}
		return strings.ToLower(strings.TrimSpace(scanner.Text())) == "yes"
	}

	for {
		fmt.Println("\nHotel Reservation System")
		fmt.Println("1. Search Rooms")
		fmt.Println("2. Make Reservation")
		fmt.Println("3. Cancel Reservation")
		fmt.Println("4. View Booking Details")
		fmt.Println("5. Exit")

		fmt.Print("Choose an option: ")
		if !scanner.Scan() {
			return
		}

		switch strings.TrimSpace(scanner.Text()) {
		case "1":
			handleSearch(scanner, mgr)
		case "2":
			handleReserve(scanner, mgr)
		case "3":
			handleCancel(scanner, mgr)
		case "4":
			handleDetails(scanner, mgr)
		case "5":
			fmt.Println("Exiting...")
			return
		default:
			fmt.Println("Invalid choice.")
		}
	}
}

func handleSearch(sc *bufio.Scanner, mgr *hotel.HotelManager) {
	category, ok := readLine(sc, "Enter category (Standard/Deluxe/Suite) or leave blank: ")
	if !ok {
		return
	}
	checkIn, ok := readDate(sc, "Enter check-in date (YYYY-MM-DD): ")
	if !ok {
		return
	}
	checkOut, ok := readDate(sc, "Enter check-out date (YYYY-MM-DD): ")
	if !ok {
		return
	}

	rooms := mgr.SearchRooms(category, checkIn, checkOut)
	if len(rooms) == 0 {
		fmt.Println("No rooms available.")
		return
	}
	for _, room := range rooms {
		fmt.Printf("Room ID: %d, Category: %s, Price: $%.2f/night\n", room.ID, room.Category, room.Price)
	}
}

func handleReserve(sc *bufio.Scanner, mgr *hotel.HotelManager) {
	name, ok := readLine(sc, "Enter your name: ")
	if !ok {
		return
	}
	roomID, ok := readInt(sc, "Enter room ID: ", "Invalid room ID.")
	if !ok {
		return
	}
	checkIn, ok := readDate(sc, "Enter check-in date (YYYY-MM-DD): ")
	if !ok {
		return
	}
	checkOut, ok := readDate(sc, "Enter check-out date (YYYY-MM-DD): ")
	if !ok {
		return
	}

	id, err := mgr.MakeReservation(name, roomID, checkIn, checkOut)
	switch {
	case err == nil:
		fmt.Printf("Reservation made successfully. ID: %d\n", id)
	case errors.Is(err, hotel.ErrRoomNotFound):
		fmt.Println("Room not found.")
	case errors.Is(err, hotel.ErrRoomUnavailable):
		fmt.Println("Room not available for selected dates.")
	case errors.Is(err, hotel.ErrInvalidDateRange):
		fmt.Println("Invalid dates: check-out must be after check-in.")
	case errors.Is(err, hotel.ErrPaymentDeclined):
		fmt.Println("Payment failed. Reservation not made.")
	default:
		fmt.Printf("Error: %v\n", err)
	}
}

func handleCancel(sc *bufio.Scanner, mgr *hotel.HotelManager) {
	id, ok := readInt(sc, "Enter reservation ID: ", "Invalid reservation ID.")
	if !ok {
		return
	}
	name, ok := readLine(sc, "Enter your name: ")
	if !ok {
		return
	}

	err := mgr.CancelReservation(id, name)
	switch {
	case err == nil:
		fmt.Println("Reservation cancelled successfully.")
	case errors.Is(err, hotel.ErrReservationNotFound):
		fmt.Println("Reservation not found.")
	case errors.Is(err, hotel.ErrAlreadyCancelled):
		fmt.Println("Reservation already cancelled.")
	default:
		fmt.Printf("Error: %v\n", err)
	}
}

func handleDetails(sc *bufio.Scanner, mgr *hotel.HotelManager) {
	id, ok := readInt(sc, "Enter reservation ID: ", "Invalid reservation ID.")
	if !ok {
		return
	}
	name, ok := readLine(sc, "Enter your name: ")
	if !ok {
		return
	}

	d, err := mgr.FindBooking(id, name)
	if err != nil {
		fmt.Println("Reservation not found.")
		return
	}
	res := d.Reservation
	fmt.Printf("Reservation ID: %d\n", res.ID)
	fmt.Printf("User: %s\n", res.GuestName)
	fmt.Printf("Room: %s (ID: %d)\n", d.Category, res.RoomID)
	fmt.Printf("Check-in: %s\n", res.CheckIn.Format(hotel.DateLayout))
	fmt.Printf("Check-out: %s\n", res.CheckOut.Format(hotel.DateLayout))
	fmt.Printf("Total Price: $%.2f\n", res.TotalPrice)
	fmt.Printf("Status: %s\n", res.Status)
}

// readLine prompts and returns the trimmed input; ok is false on EOF.
func readLine(sc *bufio.Scanner, prompt string) (string, bool) {
	fmt.Print(prompt)
	if !sc.Scan() {
		return "", false
	}
	return strings.TrimSpace(sc.Text()), true
}

// readInt prompts for an integer. A malformed number prints errMsg and aborts
// the current operation; the menu loop continues.
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

// readDate prompts for a YYYY-MM-DD date.
func readDate(sc *bufio.Scanner, prompt string) (time.Time, bool) {
	s, ok := readLine(sc, prompt)
	if !ok {
		return time.Time{}, false
	}
	d, err := time.Parse(hotel.DateLayout, s)
	if err != nil {
		fmt.Println("Invalid date format. Use YYYY-MM-DD.")
		return time.Time{}, false
	}
	return d, true
}
