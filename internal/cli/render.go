package cli

import (
	"fmt"
	"strings"

	"flightly/internal/crew"
	"flightly/internal/flights"
	"flightly/internal/reservations"
	"flightly/internal/users"
)

func (a *App) printFlights(list []*flights.Flight) bool {
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No flights found.")
		return false
	}
	fmt.Fprintln(a.out, "Available Flights:")
	for i, f := range list {
		fmt.Fprintf(a.out, "%d. Flight ID: %s\n", i+1, f.ID)
		fmt.Fprintf(a.out, "   Origin: %s\n", f.Origin)
		fmt.Fprintf(a.out, "   Destination: %s\n", f.Destination)
		fmt.Fprintf(a.out, "   Departure Time: %s\n", f.Departure)
		fmt.Fprintf(a.out, "   Arrival Time: %s\n", f.Arrival)
		fmt.Fprintf(a.out, "   Aircraft ID: %s\n", f.AircraftID)
		fmt.Fprintln(a.out, "------------------------")
	}
	return true
}

func (a *App) printReservations(list []*reservations.Reservation) bool {
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No reservations found.")
		return false
	}
	fmt.Fprintln(a.out, "Available Reservations:")
	for i, r := range list {
		status := "Confirmed"
		if r.Status == reservations.StatusCancelled {
			status = "Cancelled"
		}
		fmt.Fprintf(a.out, "%d. Reservation ID: %s\n", i+1, r.ID)
		fmt.Fprintf(a.out, "   Flight ID: %s\n", r.FlightID)
		fmt.Fprintf(a.out, "   Seat Number: %s\n", r.Seat)
		fmt.Fprintf(a.out, "   Status: %s\n", status)
		fmt.Fprintf(a.out, "   Passenger ID: %s\n", r.PassengerID)
		fmt.Fprintln(a.out, "------------------------")
	}
	return true
}

func (a *App) printCrew(list []*crew.Member) bool {
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No crew members available.")
		return false
	}
	for i, m := range list {
		fmt.Fprintf(a.out, "%d. Crew ID: %s, Name: %s, Role: %s\n", i+1, m.ID, m.Name, m.Role)
	}
	return true
}

func (a *App) printPassengers(list []*users.User) bool {
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No passengers found.")
		return false
	}
	fmt.Fprintln(a.out, "Available Passengers:")
	for i, p := range list {
		fmt.Fprintf(a.out, "%d. Passenger ID: %s\n", i+1, p.ID)
		fmt.Fprintf(a.out, "   Name: %s\n", p.Username)
		fmt.Fprintf(a.out, "   Loyalty Points: %.2f\n", p.LoyaltyPoints)
		fmt.Fprintln(a.out, "------------------------")
	}
	return true
}

// printSeatMap renders one row per line with [O] free and [X] occupied.
func (a *App) printSeatMap(seatMap [][]bool) {
	if len(seatMap) == 0 {
		fmt.Fprintln(a.out, "No seat map available for this flight.")
		return
	}
	fmt.Fprintln(a.out, "Legend: [O] = Available, [X] = Occupied")
	for i, row := range seatMap {
		var b strings.Builder
		fmt.Fprintf(&b, "Row %d\t", i+1)
		for _, occupied := range row {
			if occupied {
				b.WriteString("[X]\t")
			} else {
				b.WriteString("[O]\t")
			}
		}
		fmt.Fprintln(a.out, b.String())
	}
}
