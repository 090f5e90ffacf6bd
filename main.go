// Package main is the entry point for the semreg CLI.
package main

import "semreg.dev/pkg/semreg/cmd"

func main() {
	cmd.Execute()
}
