package main

import "serde-cli/internal/cli"

func main() {
	cli.Execute()
}
