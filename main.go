package main

import "github.com/papapumpkin/loadout/cmd"

func main() {
	cmd.Execute()
}
