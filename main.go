// Package main is the entry point for the physiological simulation core's
// command-line interface.
package main

import (
	"github.com/JeffJassky/pyhsim/cmd"
)

func main() {
	cmd.Execute()
}
