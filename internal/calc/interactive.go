package calc

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Interactive runs a read-eval-print loop over r, writing everything to w.
// It returns when the reader is exhausted or the user types quit or exit.
func Interactive(r io.Reader, w io.Writer) error {
	fmt.Fprintln(w, "Calculator Interactive Mode")
	fmt.Fprintln(w, "Enter mathematical expressions or 'quit' to exit")
	fmt.Fprintln(w, "Examples: 2 + 3, 10 / 2, sqrt 16")

	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(w, "calc> ")

		if !scanner.Scan() {
			return scanner.Err()
		}
		input := strings.TrimSpace(scanner.Text())

		if input == "" {
			continue
		}

		if input == "quit" || input == "exit" {
			fmt.Fprintln(w, "Goodbye!")
			return nil
		}

		if input == "help" {
			printHelp(w)
			continue
		}

		if rest, ok := strings.CutPrefix(input, "sqrt "); ok {
			number, err := strconv.ParseFloat(rest, 64)
			if err != nil {
				fmt.Fprintln(w, "Error: Invalid number format")
				continue
			}
			result, err := SquareRoot(number)
			if err != nil {
				fmt.Fprintf(w, "Error: %v\n", err)
				continue
			}
			fmt.Fprintf(w, "√%v = %v\n", number, result)
			continue
		}

		result, err := Evaluate(input)
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			continue
		}
		fmt.Fprintf(w, "%s = %v\n", input, result)
	}
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "Available operations:")
	fmt.Fprintln(w, "  Basic: +, -, *, /")
	fmt.Fprintln(w, "  Special: sqrt <number>")
	fmt.Fprintln(w, "  Commands: help, quit, exit")
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  2 + 3")
	fmt.Fprintln(w, "  10 / 2")
	fmt.Fprintln(w, "  sqrt 16")
	fmt.Fprintln(w, "  -5 + 3")
}
