package main

import "github.com/jasperwreed/story-memory/internal/cli"

func main() {
	cli.Execute()
}
