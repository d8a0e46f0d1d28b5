package main

import "declutter/cmd/declutter-cli/cmd"

func main() {
	cmd.Execute()
}
