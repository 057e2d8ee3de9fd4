package main

import "github.com/watzon/huebloom/cli"

func main() {
	cli.Execute()
}
