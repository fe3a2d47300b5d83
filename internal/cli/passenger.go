package cli

import (
	"context"
	"fmt"

	"flightly/internal/flights"
	"flightly/internal/users"
)

func (a *App) passengerMenu(ctx context.Context, passenger *users.User) {
	for {
		fmt.Fprintln(a.out, "Passenger Menu - Please choose an option:")
		fmt.Fprintln(a.out, "1. Search Flights")
		fmt.Fprintln(a.out, "2. View Reservations")
		fmt.Fprintln(a.out, "3. Logout")

		switch a.readLine("Choice: ") {
		case "1":
			a.searchAndBook(ctx, passenger)
		case "2":
			a.viewOwnReservations(ctx, passenger)
		case "3", "":
			fmt.Fprintln(a.out, "Logging out...")
			return
		default:
			fmt.Fprintln(a.out, "Invalid choice. Please try again.")
		}
	}
}

// searchAndBook lets a passenger search flights and book a seat on one
// of the results.
func (a *App) searchAndBook(ctx context.Context, passenger *users.User) {
	fmt.Fprintln(a.out, " ----- Search Flights ----- ")
	if a.searchFlights(ctx) == nil {
		return
	}

	flightID := a.readLine("Enter the Flight ID you wish to book (or '0' to cancel): ")
	if flightID == "0" || flightID == "" {
		fmt.Fprintln(a.out, "Booking cancelled.")
		return
	}
	flight, err := a.svc.Flights.GetByID(ctx, flights.ID(flightID))
	if err != nil {
		fmt.Fprintln(a.out, "Invalid Flight ID.")
		return
	}

	a.printSeatMap(flight.SeatMap())
	seat := a.readLine("Enter the Seat Number you wish to book (e.g., 12A): ")

	// Self-service bookings settle by card or PayPal only.
	method, details, ok := a.readPaymentMethod(false)
	if !ok {
		return
	}
	a.finishBooking(ctx, flight.ID, seat, passenger.ID, method, details)
}

func (a *App) viewOwnReservations(ctx context.Context, passenger *users.User) {
	fmt.Fprintln(a.out, " ----- View Reservations ----- ")
	list, err := a.svc.Reservations.ListByPassenger(ctx, passenger.ID)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	a.printReservations(list)
}
