package cli

import (
	"context"
	"fmt"
	"strings"

	"flightly/internal/aircraft"
	"flightly/internal/crew"
	"flightly/internal/datetime"
	"flightly/internal/flights"
	"flightly/internal/users"
)

func (a *App) adminMenu(ctx context.Context, admin *users.User) {
	for {
		fmt.Fprintln(a.out, "Admin Interface - Please choose an option:")
		fmt.Fprintln(a.out, "1. Manage Flights")
		fmt.Fprintln(a.out, "2. Manage Aircrafts")
		fmt.Fprintln(a.out, "3. Manage Users")
		fmt.Fprintln(a.out, "4. Logout")

		switch a.readLine("Choice: ") {
		case "1":
			a.manageFlights(ctx)
		case "2":
			a.manageAircraft(ctx)
		case "3":
			a.manageUsers(ctx, admin)
		case "4", "":
			fmt.Fprintln(a.out, "Logging out...")
			return
		default:
			fmt.Fprintln(a.out, "Invalid choice. Please try again.")
		}
	}
}

func (a *App) manageFlights(ctx context.Context) {
	for {
		fmt.Fprintln(a.out, "Manage Flights Menu - Please choose an option:")
		fmt.Fprintln(a.out, "1. Add Flight")
		fmt.Fprintln(a.out, "2. Update Flight")
		fmt.Fprintln(a.out, "3. Remove Flight")
		fmt.Fprintln(a.out, "4. View Flights")
		fmt.Fprintln(a.out, "5. Assign Crew to Flight")
		fmt.Fprintln(a.out, "6. Remove Crew from Flight")
		fmt.Fprintln(a.out, "7. Back to Admin Menu")

		switch a.readLine("Choice: ") {
		case "1":
			a.addFlight(ctx)
		case "2":
			a.updateFlight(ctx)
		case "3":
			a.removeFlight(ctx)
		case "4":
			fmt.Fprintln(a.out, " ----- View All Flights ----- ")
			a.viewFlightsWithCrew(ctx)
		case "5":
			a.assignCrew(ctx)
		case "6":
			a.removeCrew(ctx)
		case "7", "":
			fmt.Fprintln(a.out, "Going back to Admin Menu...")
			return
		default:
			fmt.Fprintln(a.out, "Invalid choice. Please try again.")
		}
	}
}

func (a *App) viewFlightsWithCrew(ctx context.Context) bool {
	list := a.svc.Flights.List(ctx)
	if !a.printFlights(list) {
		return false
	}
	for _, f := range list {
		members, err := a.svc.Flights.CrewOfFlight(ctx, f.ID)
		if err != nil || len(members) == 0 {
			continue
		}
		names := make([]string, 0, len(members))
		for _, m := range members {
			names = append(names, fmt.Sprintf("%s (%s)", m.Name, m.Role))
		}
		fmt.Fprintf(a.out, "Crew of %s: %s\n", f.ID, strings.Join(names, ", "))
	}
	return true
}

func (a *App) readDateTime(label string) (datetime.DateTime, bool) {
	for attempts := 0; attempts < maxAttempts; attempts++ {
		value := a.readLine(label)
		dt, err := datetime.Parse(value)
		if err != nil {
			fmt.Fprintf(a.out, "Invalid date: %v\n", err)
			continue
		}
		return dt, true
	}
	fmt.Fprintln(a.out, "Maximum attempts reached. Aborting.")
	return datetime.DateTime{}, false
}

// readCrewIDs parses a comma separated crew ID list, skipping unknown
// IDs with a warning.
func (a *App) readCrewIDs(ctx context.Context, label string) []crew.ID {
	var ids []crew.ID
	line := a.readLine(label)
	if line == "" {
		return nil
	}
	for _, part := range strings.Split(line, ",") {
		id := crew.ID(strings.TrimSpace(part))
		if id == "" {
			continue
		}
		if _, err := a.svc.Crew.GetByID(ctx, id); err != nil {
			fmt.Fprintf(a.out, "Warning: Crew ID %s does not exist and will be ignored.\n", id)
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

func (a *App) addFlight(ctx context.Context) {
	fmt.Fprintln(a.out, " ----- Add New Flight ----- ")
	origin, ok := a.readNonEmpty("Enter Origin: ")
	if !ok {
		return
	}
	destination, ok := a.readNonEmpty("Enter Destination: ")
	if !ok {
		return
	}
	departure, ok := a.readDateTime("Enter Departure Date & Time (YYYY-MM-DD HH:MM): ")
	if !ok {
		return
	}
	arrival, ok := a.readDateTime("Enter Arrival Date & Time (YYYY-MM-DD HH:MM): ")
	if !ok {
		return
	}

	if !a.printAircraft(ctx) {
		return
	}
	aircraftID, ok := a.readNonEmpty("Enter Aircraft ID: ")
	if !ok {
		return
	}

	a.printCrew(a.svc.Crew.ListByRole(ctx, crew.RolePilot))
	crewIDs := a.readCrewIDs(ctx, "Enter Pilot Crew IDs (comma separated) or leave empty to assign later: ")
	a.printCrew(a.svc.Crew.ListByRole(ctx, crew.RoleFlightAttendant))
	crewIDs = append(crewIDs, a.readCrewIDs(ctx, "Enter Flight Attendant Crew IDs (comma separated) or leave empty to assign later: ")...)

	f, err := a.svc.Flights.Create(ctx, flights.CreateParams{
		Origin:      origin,
		Destination: destination,
		Departure:   departure,
		Arrival:     arrival,
		AircraftID:  aircraft.ID(aircraftID),
		CrewIDs:     crewIDs,
	})
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Flight added successfully! Flight ID: %s\n", f.ID)
}

func (a *App) updateFlight(ctx context.Context) {
	fmt.Fprintln(a.out, " ----- Update Existing Flight ----- ")
	if !a.viewFlightsWithCrew(ctx) {
		return
	}
	flightID, ok := a.readNonEmpty("Please enter the Flight ID to update: ")
	if !ok {
		return
	}
	f, err := a.svc.Flights.GetByID(ctx, flights.ID(flightID))
	if err != nil {
		fmt.Fprintln(a.out, "Invalid flight selection. Please try again.")
		return
	}

	fmt.Fprintln(a.out, "Current Flight Details:")
	fmt.Fprintf(a.out, "   Flight ID: %s\n", f.ID)
	fmt.Fprintf(a.out, "   Origin: %s\n", f.Origin)
	fmt.Fprintf(a.out, "   Destination: %s\n", f.Destination)
	fmt.Fprintf(a.out, "   Departure: %s\n", f.Departure)
	fmt.Fprintf(a.out, "   Arrival: %s\n", f.Arrival)
	fmt.Fprintf(a.out, "   Aircraft ID: %s\n", f.AircraftID)

	params := flights.CreateParams{
		Origin:      orDefault(a.readLine("Enter new Origin (leave blank to keep current): "), f.Origin),
		Destination: orDefault(a.readLine("Enter new Destination (leave blank to keep current): "), f.Destination),
		Departure:   f.Departure,
		Arrival:     f.Arrival,
		AircraftID:  f.AircraftID,
		CrewIDs:     f.CrewIDs,
	}
	if value := a.readLine("Enter new Departure Time (leave blank to keep current): "); value != "" {
		dt, err := datetime.Parse(value)
		if err != nil {
			fmt.Fprintf(a.out, "Error: %v\n", err)
			return
		}
		params.Departure = dt
	}
	if value := a.readLine("Enter new Arrival Time (leave blank to keep current): "); value != "" {
		dt, err := datetime.Parse(value)
		if err != nil {
			fmt.Fprintf(a.out, "Error: %v\n", err)
			return
		}
		params.Arrival = dt
	}
	if value := a.readLine("Enter new Aircraft ID (leave blank to keep current): "); value != "" {
		params.AircraftID = aircraft.ID(value)
	}

	if err := a.svc.Flights.Update(ctx, f.ID, params); err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Flight updated successfully!")
}

func (a *App) removeFlight(ctx context.Context) {
	fmt.Fprintln(a.out, " ----- Remove Existing Flight ----- ")
	if !a.viewFlightsWithCrew(ctx) {
		return
	}
	flightID, ok := a.readNonEmpty("Please enter the Flight ID to remove: ")
	if !ok {
		return
	}
	if err := a.svc.Flights.Delete(ctx, flights.ID(flightID)); err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Flight removed successfully!")
}

func (a *App) assignCrew(ctx context.Context) {
	fmt.Fprintln(a.out, " ----- Assign Crew to Flight ----- ")
	if !a.viewFlightsWithCrew(ctx) {
		return
	}
	flightID, ok := a.readNonEmpty("Please enter the Flight ID to assign crew: ")
	if !ok {
		return
	}
	a.printCrew(a.svc.Crew.List(ctx))
	crewIDs := a.readCrewIDs(ctx, "Enter Crew IDs (comma separated): ")
	if len(crewIDs) == 0 {
		fmt.Fprintln(a.out, "No valid crew IDs provided.")
		return
	}
	for _, id := range crewIDs {
		if err := a.svc.Flights.AssignCrew(ctx, flights.ID(flightID), id); err != nil {
			fmt.Fprintf(a.out, "Error: %v\n", err)
			return
		}
	}
	fmt.Fprintf(a.out, "Crew assigned successfully to flight %s!\n", flightID)
}

func (a *App) removeCrew(ctx context.Context) {
	fmt.Fprintln(a.out, " ----- Remove Crew Member from Flight ----- ")
	if !a.viewFlightsWithCrew(ctx) {
		return
	}
	flightID, ok := a.readNonEmpty("Please enter the Flight ID to remove crew from: ")
	if !ok {
		return
	}
	members, err := a.svc.Flights.CrewOfFlight(ctx, flights.ID(flightID))
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	if !a.printCrew(members) {
		fmt.Fprintln(a.out, "No crew members assigned to this flight.")
		return
	}
	crewID, ok := a.readNonEmpty("Please enter the Crew ID to remove: ")
	if !ok {
		return
	}
	if !a.confirm(fmt.Sprintf("Are you sure you want to remove crew member %s from flight %s? (y/n): ", crewID, flightID)) {
		fmt.Fprintln(a.out, "Operation cancelled.")
		return
	}
	if err := a.svc.Flights.RemoveCrew(ctx, flights.ID(flightID), crew.ID(crewID)); err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Crew member removed successfully from flight %s!\n", flightID)
}

/* Aircraft management */

func (a *App) printAircraft(ctx context.Context) bool {
	list := a.svc.Aircraft.List(ctx)
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No aircrafts available.")
		return false
	}
	fmt.Fprintln(a.out, "Here are the existing aircrafts:")
	for i, ac := range list {
		fmt.Fprintf(a.out, "%d. Aircraft ID: %s\n", i+1, ac.ID)
		fmt.Fprintf(a.out, "   Model: %s\n", ac.Model)
		fmt.Fprintf(a.out, "   Capacity: %d\n", ac.Capacity)
		fmt.Fprintf(a.out, "   Number of Seats in each row: %d\n", ac.SeatsPerRow)
	}
	return true
}

func (a *App) manageAircraft(ctx context.Context) {
	for {
		fmt.Fprintln(a.out, "Manage Aircrafts Menu - Please choose an option:")
		fmt.Fprintln(a.out, "1. Add Aircraft")
		fmt.Fprintln(a.out, "2. Update Aircraft")
		fmt.Fprintln(a.out, "3. Remove Aircraft")
		fmt.Fprintln(a.out, "4. View Aircrafts")
		fmt.Fprintln(a.out, "5. Back to Admin Menu")

		switch a.readLine("Choice: ") {
		case "1":
			a.addAircraft(ctx)
		case "2":
			a.updateAircraft(ctx)
		case "3":
			a.removeAircraft(ctx)
		case "4":
			fmt.Fprintln(a.out, " ----- View All Aircrafts ----- ")
			a.printAircraft(ctx)
		case "5", "":
			fmt.Fprintln(a.out, "Going back to Admin Menu...")
			return
		default:
			fmt.Fprintln(a.out, "Invalid choice. Please try again.")
		}
	}
}

func (a *App) addAircraft(ctx context.Context) {
	fmt.Fprintln(a.out, " ----- Add New Aircraft ----- ")
	model, ok := a.readNonEmpty("Enter Model: ")
	if !ok {
		return
	}
	capacity, ok := a.readInt("Enter Capacity: ")
	if !ok {
		return
	}
	seatsPerRow, ok := a.readInt("Enter Number of Row Seats: ")
	if !ok {
		return
	}

	ac, err := a.svc.Aircraft.Create(ctx, aircraft.CreateParams{
		Model:       model,
		Capacity:    capacity,
		SeatsPerRow: seatsPerRow,
	})
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Aircraft added successfully! Aircraft ID: %s\n", ac.ID)
}

func (a *App) updateAircraft(ctx context.Context) {
	fmt.Fprintln(a.out, " ----- Update Existing Aircraft ----- ")
	if !a.printAircraft(ctx) {
		return
	}
	aircraftID, ok := a.readNonEmpty("Please enter the Aircraft ID to update: ")
	if !ok {
		return
	}
	ac, err := a.svc.Aircraft.GetByID(ctx, aircraft.ID(aircraftID))
	if err != nil {
		fmt.Fprintln(a.out, "Aircraft not found.")
		return
	}

	fmt.Fprintln(a.out, "Current Aircraft Details:")
	fmt.Fprintf(a.out, "Model: %s\n", ac.Model)
	fmt.Fprintf(a.out, "Capacity: %d\n", ac.Capacity)
	fmt.Fprintf(a.out, "Number of Seats in each row: %d\n", ac.SeatsPerRow)

	params := aircraft.CreateParams{
		Model:       orDefault(a.readLine("Enter new Model (leave blank to keep current): "), ac.Model),
		Capacity:    a.readIntDefault("Enter new Capacity (leave blank to keep current): ", ac.Capacity),
		SeatsPerRow: a.readIntDefault("Enter new number of seats in each row (leave blank to keep current): ", ac.SeatsPerRow),
	}
	if err := a.svc.Aircraft.Update(ctx, ac.ID, params); err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Aircraft updated successfully!")
}

func (a *App) removeAircraft(ctx context.Context) {
	fmt.Fprintln(a.out, " ----- Remove Existing Aircraft ----- ")
	if !a.printAircraft(ctx) {
		return
	}
	aircraftID, ok := a.readNonEmpty("Please enter the Aircraft ID to remove: ")
	if !ok {
		return
	}
	if err := a.svc.Aircraft.Delete(ctx, aircraft.ID(aircraftID)); err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Aircraft removed successfully!")
}

/* User management */

func (a *App) printUsers(ctx context.Context, current *users.User) bool {
	list := a.svc.Users.List(ctx)
	shown := 0
	for _, u := range list {
		if u.ID == current.ID {
			continue
		}
		shown++
		fmt.Fprintf(a.out, "%d. User ID: %s\n", shown, u.ID)
		fmt.Fprintf(a.out, "   Username: %s\n", u.Username)
		fmt.Fprintf(a.out, "   Role: %s\n", u.Role)
	}
	if shown == 0 {
		fmt.Fprintln(a.out, "No other users available.")
		return false
	}
	return true
}

func (a *App) manageUsers(ctx context.Context, admin *users.User) {
	for {
		fmt.Fprintln(a.out, "Manage Users Menu:")
		fmt.Fprintln(a.out, "1. Add User")
		fmt.Fprintln(a.out, "2. Update User Password")
		fmt.Fprintln(a.out, "3. Remove User")
		fmt.Fprintln(a.out, "4. View Users")
		fmt.Fprintln(a.out, "5. Back to Admin Menu")

		switch a.readLine("Choice: ") {
		case "1":
			a.addUser(ctx)
		case "2":
			a.updateUserPassword(ctx, admin)
		case "3":
			a.removeUser(ctx, admin)
		case "4":
			a.printUsers(ctx, admin)
		case "5", "":
			return
		default:
			fmt.Fprintln(a.out, "Invalid choice. Please try again.")
		}
	}
}

func (a *App) addUser(ctx context.Context) {
	fmt.Fprintln(a.out, " ----- Add New User ----- ")
	username, ok := a.readNonEmpty("Enter Username: ")
	if !ok {
		return
	}
	password, ok := a.readNonEmpty("Enter Password: ")
	if !ok {
		return
	}
	fmt.Fprintln(a.out, "Select User Role:")
	fmt.Fprintln(a.out, "1. Passenger")
	fmt.Fprintln(a.out, "2. Admin")
	fmt.Fprintln(a.out, "3. Booking Manager")

	role := users.RolePassenger
	switch a.readLine("Choice: ") {
	case "1":
		role = users.RolePassenger
	case "2":
		role = users.RoleAdmin
	case "3":
		role = users.RoleBookingManager
	default:
		fmt.Fprintln(a.out, "Invalid role. User will be added as Passenger by default.")
	}

	u, err := a.svc.Users.Create(ctx, users.CreateParams{
		Username: username,
		Password: password,
		Role:     role,
	})
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "User added successfully! User ID: %s\n", u.ID)
}

func (a *App) updateUserPassword(ctx context.Context, admin *users.User) {
	fmt.Fprintln(a.out, " ----- Update Existing User ----- ")
	if !a.printUsers(ctx, admin) {
		return
	}
	userID, ok := a.readNonEmpty("Please enter the User ID to update: ")
	if !ok {
		return
	}
	u, err := a.svc.Users.GetByID(ctx, users.ID(userID))
	if err != nil {
		fmt.Fprintln(a.out, "User not found.")
		return
	}
	fmt.Fprintln(a.out, "Current User Details:")
	fmt.Fprintf(a.out, "User ID: %s\n", u.ID)
	fmt.Fprintf(a.out, "Username: %s\n", u.Username)
	fmt.Fprintf(a.out, "Role: %s\n", u.Role)

	password := a.readLine("Enter new Password (leave blank to keep current): ")
	if password == "" {
		fmt.Fprintln(a.out, "No changes made to the password.")
		return
	}
	if err := a.svc.Users.UpdatePassword(ctx, u.ID, password); err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "User password updated successfully!")
}

func (a *App) removeUser(ctx context.Context, admin *users.User) {
	fmt.Fprintln(a.out, " ----- Remove Existing User ----- ")
	if !a.printUsers(ctx, admin) {
		return
	}
	userID, ok := a.readNonEmpty("Please enter the User ID to remove: ")
	if !ok {
		return
	}
	if err := a.svc.Users.Delete(ctx, users.ID(userID)); err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "User removed successfully!")
}
