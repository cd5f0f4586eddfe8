// Standalone probe for the RMV HAPI endpoints. Handy for checking the API
// key and payload shapes without going through the CLI.
package main

import (
	"fmt"
	"os"

	"abfahrt/pkg/rmv"
)

func main() {
	apiKey := os.Getenv("RMV_API_KEY")
	if apiKey == "" {
		fmt.Println("RMV_API_KEY is not set")
		os.Exit(1)
	}

	client := rmv.NewClient(apiKey)

	fmt.Println("Searching stations for 'Hauptwache Frankfurt'...")

	stops, err := client.SearchStops("Hauptwache Frankfurt")
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	for _, s := range stops {
		fmt.Printf("[%s] %s\n", s.ExtID, s.Name)
	}

	if len(stops) < 2 {
		return
	}

	fmt.Printf("\nNext connections %s -> %s:\n", stops[1].Name, stops[0].Name)

	trips, err := client.SearchTrips(stops[1].ExtID, stops[0].ExtID, nil)
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	for _, trip := range trips {
		for _, leg := range trip.LegList.Legs {
			fmt.Printf("  [%s %s] %s -> %s",
				leg.Origin.Date, leg.Origin.Time, leg.Origin.Name, leg.Destination.Name)
			if leg.Name != "" {
				fmt.Printf(" (%s)", leg.Name)
			}
			fmt.Println()
		}
		fmt.Println()
	}
}
