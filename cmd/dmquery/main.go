package main

import "distance-matrix-client/internal/adapters/cli"

func main() {
	cli.Execute()
}
