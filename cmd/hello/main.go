// Package main implements a simple greeting CLI.
package main

import (
	"flag"
	"fmt"

	"github.com/mopinfish/gltfview/internal/greet"
)

func main() {
	name := flag.String("name", "World", "Name to greet")
	count := flag.Int("count", 1, "Number of times to greet")
	uppercase := flag.Bool("uppercase", false, "Display greeting in uppercase")
	flag.Parse()

	for _, line := range greet.Lines(*name, *count, *uppercase) {
		fmt.Println(line)
	}
}
