// Package cli implements the interactive menu tree. Each role gets its
// own menu loop after login; errors are printed and the loop continues.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"flightly/internal/aircraft"
	"flightly/internal/crew"
	"flightly/internal/flights"
	"flightly/internal/payments"
	"flightly/internal/reservations"
	"flightly/internal/users"
	"flightly/pkg/logger"
)

// Services bundles everything the menu tree needs.
type Services struct {
	Users        users.Service
	Aircraft     aircraft.Service
	Crew         crew.Service
	Flights      flights.Service
	Payments     payments.Service
	Reservations reservations.Service
}

type App struct {
	svc Services
	in  *bufio.Reader
	out io.Writer
	log *logger.Logger
}

func NewApp(svc Services, in io.Reader, out io.Writer, log *logger.Logger) *App {
	return &App{
		svc: svc,
		in:  bufio.NewReader(in),
		out: out,
		log: log,
	}
}

// Run drives the main menu until the user exits or input runs out.
func (a *App) Run(ctx context.Context) error {
	for {
		fmt.Fprintln(a.out, "Welcome to the Airline Management System")
		fmt.Fprintln(a.out, "Please enter your choice:")
		fmt.Fprintln(a.out, "1. Login to the system")
		fmt.Fprintln(a.out, "2. Exit")

		choice := a.readLine("Choice: ")
		switch choice {
		case "1":
			a.handleLogin(ctx)
		case "2", "":
			fmt.Fprintln(a.out, "Exiting the program. Goodbye!")
			return nil
		default:
			fmt.Fprintln(a.out, "Invalid choice. Please try again.")
		}
	}
}

func (a *App) handleLogin(ctx context.Context) {
	username := a.readLine("Username: ")
	password := a.readLine("Password: ")

	user, err := a.svc.Users.Authenticate(ctx, username, password)
	if err != nil {
		fmt.Fprintln(a.out, "Login failed. Please try again.")
		return
	}
	fmt.Fprintf(a.out, "Login successful! Welcome, %s.\n", user.Username)

	switch user.Role {
	case users.RoleAdmin:
		fmt.Fprintln(a.out, "Redirecting to Admin Interface...")
		a.adminMenu(ctx, user)
	case users.RoleBookingManager:
		fmt.Fprintln(a.out, "Redirecting to Booking Manager Interface...")
		a.managerMenu(ctx, user)
	case users.RolePassenger:
		fmt.Fprintln(a.out, "Redirecting to Passenger Interface...")
		a.passengerMenu(ctx, user)
	default:
		fmt.Fprintln(a.out, "Unknown user role. Access denied.")
	}
}
