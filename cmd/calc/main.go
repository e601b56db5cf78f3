// Package main implements an arithmetic calculator CLI.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/mopinfish/gltfview/internal/calc"
)

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		printUsage()
		return
	}

	switch args[0] {
	case "add", "a":
		binaryOp(args[1:], "+", calc.Add)
	case "subtract", "s":
		binaryOp(args[1:], "-", calc.Subtract)
	case "multiply", "m":
		binaryOp(args[1:], "*", calc.Multiply)
	case "divide", "d":
		binaryOp(args[1:], "/", calc.Divide)

	case "power", "p":
		a, b := twoNumbers(args[1:])
		result, err := calc.Power(a, b)
		if err != nil {
			fail(err)
		}
		fmt.Printf("%v^%v = %v\n", a, b, result)

	case "sqrt":
		if len(args) != 2 {
			fmt.Fprintln(os.Stderr, "Usage: calc sqrt <number>")
			os.Exit(1)
		}
		number, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			fail(fmt.Errorf("invalid number %q", args[1]))
		}
		result, err := calc.SquareRoot(number)
		if err != nil {
			fail(err)
		}
		fmt.Printf("√%v = %v\n", number, result)

	case "eval", "e":
		if len(args) != 2 {
			fmt.Fprintln(os.Stderr, "Usage: calc eval <expression>")
			os.Exit(1)
		}
		result, err := calc.Evaluate(args[1])
		if err != nil {
			fail(err)
		}
		fmt.Printf("%s = %v\n", args[1], result)

	case "interactive", "i":
		if err := calc.Interactive(os.Stdin, os.Stdout); err != nil {
			fail(err)
		}

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", args[0])
		printUsage()
		os.Exit(1)
	}
}

// binaryOp parses two numbers, applies op and prints "a sym b = result".
func binaryOp(args []string, sym string, op func(a, b float64) (float64, error)) {
	a, b := twoNumbers(args)
	result, err := op(a, b)
	if err != nil {
		fail(err)
	}
	fmt.Printf("%v %s %v = %v\n", a, sym, b, result)
}

func twoNumbers(args []string) (float64, float64) {
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "Expected exactly two numbers")
		os.Exit(1)
	}
	a, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		fail(fmt.Errorf("invalid number %q", args[0]))
	}
	b, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		fail(fmt.Errorf("invalid number %q", args[1]))
	}
	return a, b
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func printUsage() {
	fmt.Println("No command provided. Use --help for usage information.")
	fmt.Println("Quick examples:")
	fmt.Println("  calc add 10 5")
	fmt.Println("  calc eval \"2 + 3 * 4\"")
	fmt.Println("  calc interactive")
	fmt.Println()
	fmt.Println("Commands: add (a), subtract (s), multiply (m), divide (d),")
	fmt.Println("          power (p), sqrt, eval (e), interactive (i)")
}
