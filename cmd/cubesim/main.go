// cubesim - CLI for the 3x3 Rubik's cube simulator.
package main

import (
	"github.com/jmolinar/cubesim/internal/cli"
)

func main() {
	cli.Execute()
}
