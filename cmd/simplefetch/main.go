package main

import "github.com/derekvmcintire/simple-fetch-ts/internal/cli"

func main() {
	cli.Execute()
}
