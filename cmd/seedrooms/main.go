// Command seedrooms builds a rooms.txt catalog file from a TOML description,
// for hotels that want something other than the built-in default catalog.
//
// Catalog format:
//
//	[[room]]
//	id = 101
//	category = "Standard"
//	price = 89.50
//
// Usage: seedrooms <catalog.toml> [rooms.txt]
package main

import (
	"fmt"
	"os"

	"hotel-management/hotel"

	"github.com/BurntSushi/toml"
)

type catalog struct {
	Rooms []roomEntry `toml:"room"`
}

type roomEntry struct {
	ID       int     `toml:"id"`
	Category string  `toml:"category"`
	Price    float64 `toml:"price"`
}

func main() {
	if len(os.Args) < 2 || len(os.Args) > 3 {
		fmt.Fprintln(os.Stderr, "Usage: seedrooms <catalog.toml> [rooms.txt]")
		os.Exit(2)
	}
	catalogPath := os.Args[1]
	outPath := "rooms.txt"
	if len(os.Args) == 3 {
		outPath = os.Args[2]
	}

	var cat catalog
	if _, err := toml.DecodeFile(catalogPath, &cat); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading catalog: %v\n", err)
		os.Exit(1)
	}
	if len(cat.Rooms) == 0 {
		fmt.Fprintln(os.Stderr, "Catalog contains no rooms.")
		os.Exit(1)
	}

	rooms := make([]hotel.Room, 0, len(cat.Rooms))
	seen := make(map[int]bool)
	errorCount := 0

	for _, entry := range cat.Rooms {
		fmt.Printf("Room %d (%s, $%.2f)... ", entry.ID, entry.Category, entry.Price)

		switch {
		case entry.ID <= 0:
			fmt.Println("ERROR - id must be positive")
		case seen[entry.ID]:
			fmt.Println("ERROR - duplicate id")
		case entry.Category == "":
			fmt.Println("ERROR - category is empty")
		case entry.Price < 0:
			fmt.Println("ERROR - price is negative")
		default:
			seen[entry.ID] = true
			rooms = append(rooms, hotel.Room{
				ID:        entry.ID,
				Category:  entry.Category,
				Price:     entry.Price,
				Available: true,
			})
			fmt.Println("OK")
			continue
		}
		errorCount++
	}

	if len(rooms) == 0 {
		fmt.Fprintln(os.Stderr, "No valid rooms in catalog; nothing written.")
		os.Exit(1)
	}

	store := hotel.NewStore(outPath, "")
	if err := store.SaveRooms(rooms); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", outPath, err)
		os.Exit(1)
	}

	fmt.Printf("\nWrote %d rooms to %s", len(rooms), outPath)
	if errorCount > 0 {
		fmt.Printf(" (%d entries skipped)", errorCount)
	}
	fmt.Println()
}
