package main

import "github.com/tzneal/gridconv/cmd/gridconv/cmd"

func main() {
	cmd.Execute()
}
