package main

import "github.com/papapumpkin/orrery/cmd"

func main() {
	cmd.Execute()
}
