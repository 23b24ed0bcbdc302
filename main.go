// Package main is the entry point for the vogue CLI.
package main

import "github.com/ajxudir/vogue/cmd"

func main() {
	cmd.Execute()
}
