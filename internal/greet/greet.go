// Package greet builds the greeting lines printed by the hello command.
package greet

import (
	"fmt"
	"strings"
)

// Message formats a single greeting for name.
func Message(name string, uppercase bool) string {
	if uppercase {
		return fmt.Sprintf("HELLO, %s!", strings.ToUpper(name))
	}
	return fmt.Sprintf("Hello, %s!", name)
}

// Lines returns the greeting repeated count times. When more than one line
// is requested each line carries its 1-based ordinal.
func Lines(name string, count int, uppercase bool) []string {
	message := Message(name, uppercase)

	lines := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		if count > 1 {
			lines = append(lines, fmt.Sprintf("%s (%d)", message, i))
		} else {
			lines = append(lines, message)
		}
	}
	return lines
}
