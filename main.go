// main package for lexmod command-line tool
// Package main is the entry point for the Lexmod CLI.
package main

import "lexmod.dev/pkg/lexmod/cmd"

func main() {
	cmd.Execute()
}
