package main

import "github.com/sahla-platform/sahla/cmd/sahlad/cmd"

func main() {
	cmd.Execute()
}
