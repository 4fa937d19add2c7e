// Wallplan — Panel Cutting & Joint Classification Planner
//
// A command-line tool that covers building walls with fixed-width
// prefabricated panels, classifies wall joints, and reuses cut
// leftovers across walls.
//
// Build:
//   go build -o wallplan ./cmd/wallplan
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o wallplan.exe ./cmd/wallplan
//   GOOS=darwin  GOARCH=amd64 go build -o wallplan-darwin ./cmd/wallplan

package main

import "github.com/panelwright/wallplan/internal/cli"

func main() {
	cli.Execute()
}
