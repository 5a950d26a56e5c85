package main

import "github.com/forgelight/eventcore/cmd/eventcore/cmd"

func main() {
	cmd.Execute()
}
