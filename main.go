package main

import "rnpmrc-cli/cmd"

func main() {
	cmd.Execute()
}
