// Studinest - a terminal planner for students
// Copyright (c) Manav Panchal

package main

import (
	"os"

	"github.com/manav03panchal/studinest/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
