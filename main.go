// Package main is the entry point for the reprowiz CLI.
package main

import "reprowiz.dev/pkg/reprowiz/cmd"

func main() {
	cmd.Execute()
}
