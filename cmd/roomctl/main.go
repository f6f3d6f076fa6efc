package main

import "github.com/soracane/roomdraw/internal/cli"

func main() {
	cli.Execute()
}
