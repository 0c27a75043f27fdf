package main

import "fast-colcon/internal/cli"

func main() {
	cli.Execute()
}
