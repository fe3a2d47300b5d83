package cli

import (
	"context"
	"fmt"

	"flightly/internal/datetime"
	"flightly/internal/flights"
	"flightly/internal/payments"
	"flightly/internal/reservations"
	"flightly/internal/users"
)

func (a *App) managerMenu(ctx context.Context, manager *users.User) {
	for {
		fmt.Fprintln(a.out, "Booking Manager Interface - Please choose an option:")
		fmt.Fprintln(a.out, "1. Search Flights")
		fmt.Fprintln(a.out, "2. View Bookings")
		fmt.Fprintln(a.out, "3. Book a Flight")
		fmt.Fprintln(a.out, "4. Modify a Booking")
		fmt.Fprintln(a.out, "5. Cancel a Booking")
		fmt.Fprintln(a.out, "6. Logout")

		switch a.readLine("Choice: ") {
		case "1":
			a.searchFlights(ctx)
		case "2":
			fmt.Fprintln(a.out, " ----- View All Bookings ----- ")
			a.viewAllBookings(ctx)
		case "3":
			a.bookFlight(ctx)
		case "4":
			a.modifyBooking(ctx)
		case "5":
			a.cancelBooking(ctx)
		case "6", "":
			fmt.Fprintln(a.out, "Logging out...")
			return
		default:
			fmt.Fprintln(a.out, "Invalid choice. Please try again.")
		}
	}
}

// searchFlights lists flights matching an origin, destination and day.
func (a *App) searchFlights(ctx context.Context) []*flights.Flight {
	origin := a.readLine("Please enter the origin of the flight: ")
	destination := a.readLine("Please enter the destination of the flight: ")
	dateStr := a.readLine("Please enter the departure date (YYYY-MM-DD): ")

	day, err := datetime.Parse(dateStr)
	if err != nil {
		fmt.Fprintf(a.out, "Invalid date: %v\n", err)
		return nil
	}
	list := a.svc.Flights.SearchByRouteAndDay(ctx, origin, destination, day)
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No flights found for the specified criteria.")
		return nil
	}
	a.printFlights(list)
	return list
}

func (a *App) viewAllBookings(ctx context.Context) bool {
	list, err := a.svc.Reservations.List(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return false
	}
	return a.printReservations(list)
}

// readPaymentMethod prompts for a payment method and its details.
// Booking managers can also take cash at the counter.
func (a *App) readPaymentMethod(allowCash bool) (payments.Method, payments.Details, bool) {
	fmt.Fprintln(a.out, "Please Select Payment Type: ")
	option := 0
	if allowCash {
		option++
		fmt.Fprintf(a.out, "%d. Cash\n", option)
	}
	fmt.Fprintf(a.out, "%d. Credit Card\n", option+1)
	fmt.Fprintf(a.out, "%d. PayPal\n", option+2)

	choice, ok := a.readInt("Choice: ")
	if !ok {
		return "", payments.Details{}, false
	}
	if allowCash && choice == 1 {
		return payments.MethodCash, payments.Details{}, true
	}
	if allowCash {
		choice--
	}
	switch choice {
	case 1:
		return payments.MethodCredit, payments.Details{
			CardNumber:     a.readLine("Enter Card Number: "),
			ExpirationDate: a.readLine("Enter Expiry Date (MM/YY): "),
			CVV:            a.readLine("Enter CVV: "),
		}, true
	case 2:
		return payments.MethodPaypal, payments.Details{
			Email: a.readLine("Enter PayPal Email: "),
		}, true
	default:
		fmt.Fprintln(a.out, "Invalid payment type selected.")
		return "", payments.Details{}, false
	}
}

// finishBooking books the seat and settles the payment, reporting both
// outcomes.
func (a *App) finishBooking(ctx context.Context, flightID flights.ID, seat string, passengerID users.ID, method payments.Method, details payments.Details) {
	res, err := a.svc.Reservations.Create(ctx, flightID, seat, passengerID, method, details)
	if err != nil {
		fmt.Fprintf(a.out, "Failed to book flight: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Flight booked successfully! Reservation ID: %s\n", res.ID)

	msg, err := a.svc.Payments.Process(ctx, res.PaymentID)
	if err != nil {
		fmt.Fprintf(a.out, "Payment processing failed: %v\n", err)
		fmt.Fprintln(a.out, "Reservation created but payment needs manual processing.")
		return
	}
	fmt.Fprintf(a.out, "Payment Status: %s\n", msg)
}

func (a *App) bookFlight(ctx context.Context) {
	fmt.Fprintln(a.out, " ----- Book a Flight ----- ")
	if !a.printPassengers(a.svc.Users.ListByRole(ctx, users.RolePassenger)) {
		return
	}

	var passenger *users.User
	for attempts := 0; attempts < maxAttempts && passenger == nil; attempts++ {
		id := a.readLine("Please enter the Passenger ID to book a flight for: ")
		if id == "" {
			fmt.Fprintln(a.out, "Passenger ID cannot be empty.")
			continue
		}
		u, err := a.svc.Users.GetByID(ctx, users.ID(id))
		if err != nil || u.Role != users.RolePassenger {
			fmt.Fprintln(a.out, "Invalid Passenger ID.")
			continue
		}
		passenger = u
	}
	if passenger == nil {
		fmt.Fprintln(a.out, "Maximum attempts reached. Aborting booking.")
		return
	}
	fmt.Fprintf(a.out, "Passenger selected: %s\n", passenger.Username)

	if !a.printFlights(a.svc.Flights.List(ctx)) {
		return
	}
	var flight *flights.Flight
	for attempts := 0; attempts < maxAttempts && flight == nil; attempts++ {
		id := a.readLine("Please enter the Flight ID to book: ")
		if id == "" {
			fmt.Fprintln(a.out, "Flight ID cannot be empty.")
			continue
		}
		f, err := a.svc.Flights.GetByID(ctx, flights.ID(id))
		if err != nil {
			fmt.Fprintln(a.out, "Invalid Flight ID.")
			continue
		}
		flight = f
	}
	if flight == nil {
		fmt.Fprintln(a.out, "Maximum attempts reached. Aborting booking.")
		return
	}
	fmt.Fprintf(a.out, "Flight selected: %s\n", flight.ID)

	a.printSeatMap(flight.SeatMap())
	seat := ""
	for attempts := 0; attempts < maxAttempts && seat == ""; attempts++ {
		code := a.readLine("Please enter the Seat Number to book (e.g., 12A): ")
		if code == "" {
			fmt.Fprintln(a.out, "Seat Number cannot be empty.")
			continue
		}
		if !flight.IsValidSeat(code) {
			fmt.Fprintln(a.out, "Invalid seat number format. Please try again.")
			continue
		}
		occupied, err := flight.SeatStatus(code)
		if err != nil || occupied {
			fmt.Fprintln(a.out, "Seat is already occupied or invalid. Please choose another seat.")
			continue
		}
		seat = code
	}
	if seat == "" {
		fmt.Fprintln(a.out, "Maximum attempts reached or invalid seat. Aborting booking.")
		return
	}

	method, details, ok := a.readPaymentMethod(true)
	if !ok {
		return
	}
	a.finishBooking(ctx, flight.ID, seat, passenger.ID, method, details)
}

func (a *App) modifyBooking(ctx context.Context) {
	if !a.viewAllBookings(ctx) {
		return
	}
	reservationID := a.readLine("Please enter the Reservation ID to modify: ")
	res, err := a.svc.Reservations.GetByID(ctx, reservations.ID(reservationID))
	if err != nil {
		fmt.Fprintln(a.out, "Reservation not found.")
		return
	}

	fmt.Fprintln(a.out, "Current Reservation Details:")
	fmt.Fprintf(a.out, "Reservation ID: %s\n", res.ID)
	fmt.Fprintf(a.out, "Flight ID: %s\n", res.FlightID)
	fmt.Fprintf(a.out, "Seat Number: %s\n", res.Seat)

	flight, err := a.svc.Flights.GetByID(ctx, res.FlightID)
	if err != nil {
		fmt.Fprintln(a.out, "Associated flight not found.")
		return
	}
	a.printSeatMap(flight.SeatMap())

	newSeat := a.readLine("Enter new Seat Number (or press Enter to keep current): ")
	if newSeat == "" {
		fmt.Fprintln(a.out, "No changes made to the reservation.")
		return
	}
	if _, err := a.svc.Reservations.Update(ctx, res.ID, res.FlightID, newSeat); err != nil {
		fmt.Fprintf(a.out, "Failed to update reservation: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Reservation modified successfully!")
}

func (a *App) cancelBooking(ctx context.Context) {
	if !a.viewAllBookings(ctx) {
		return
	}
	reservationID := a.readLine("Please enter the Reservation ID to cancel: ")
	res, err := a.svc.Reservations.GetByID(ctx, reservations.ID(reservationID))
	if err != nil {
		fmt.Fprintln(a.out, "Reservation not found.")
		return
	}

	fmt.Fprintln(a.out, "Current Reservation Details:")
	fmt.Fprintf(a.out, "Reservation ID: %s\n", res.ID)
	fmt.Fprintf(a.out, "Flight ID: %s\n", res.FlightID)
	fmt.Fprintf(a.out, "Seat Number: %s\n", res.Seat)

	if !a.confirm("Are you sure you want to cancel this reservation? (y/n): ") {
		fmt.Fprintln(a.out, "Cancellation aborted.")
		return
	}
	paymentID := res.PaymentID
	if err := a.svc.Reservations.Cancel(ctx, res.ID); err != nil {
		fmt.Fprintf(a.out, "Failed to cancel reservation: %v\n", err)
		return
	}
	if msg, err := a.svc.Payments.Refund(ctx, paymentID); err != nil {
		fmt.Fprintf(a.out, "Refund failed: %v\n", err)
	} else {
		fmt.Fprintln(a.out, msg)
	}
	fmt.Fprintln(a.out, "Reservation cancelled successfully!")
}
