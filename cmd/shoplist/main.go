// Command shoplist is a terminal client for the shoplist server.
//
//	shoplist recipes
//	shoplist build --recipe "Leek soup" --item Bakery/Bread --stock Dairy/Milk=1L
//	shoplist seed data/seed.yaml
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+err.Error())
		os.Exit(1)
	}
}
