package cli

import (
	"fmt"
	"strconv"
	"strings"
)

const maxAttempts = 3

// readLine prints the label and returns the next input line, trimmed.
// Returns "" once input is exhausted.
func (a *App) readLine(label string) string {
	fmt.Fprint(a.out, label)
	line, err := a.in.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}

// readNonEmpty reprompts up to maxAttempts times for a non-empty value.
func (a *App) readNonEmpty(label string) (string, bool) {
	for attempts := 0; attempts < maxAttempts; attempts++ {
		value := a.readLine(label)
		if value != "" {
			return value, true
		}
		fmt.Fprintln(a.out, "Input cannot be empty. Please try again.")
	}
	fmt.Fprintln(a.out, "Maximum attempts reached. Aborting.")
	return "", false
}

// readInt reprompts up to maxAttempts times for an integer value.
func (a *App) readInt(label string) (int, bool) {
	for attempts := 0; attempts < maxAttempts; attempts++ {
		value := a.readLine(label)
		n, err := strconv.Atoi(value)
		if err != nil {
			fmt.Fprintln(a.out, "Invalid input. Please enter a number.")
			continue
		}
		return n, true
	}
	fmt.Fprintln(a.out, "Maximum attempts reached. Aborting.")
	return 0, false
}

// readIntDefault returns def when the input line is left blank.
func (a *App) readIntDefault(label string, def int) int {
	for {
		value := a.readLine(label)
		if value == "" {
			return def
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			fmt.Fprintln(a.out, "Invalid input. Please enter a number.")
			continue
		}
		return n
	}
}

// confirm asks a y/n question.
func (a *App) confirm(label string) bool {
	answer := a.readLine(label)
	return answer == "y" || answer == "Y"
}

// orDefault keeps def when the entered value is blank.
func orDefault(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
