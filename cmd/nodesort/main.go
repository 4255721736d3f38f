package main

import "github.com/aalvaropc/nodesort/internal/cli"

func main() {
	cli.Execute()
}
