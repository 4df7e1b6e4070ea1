package main

import "serde-cli/internal/flagdemo"

func main() {
	flagdemo.Main()
}
