package main

import "locstrings/internal/cli"

func main() {
	cli.Execute()
}
