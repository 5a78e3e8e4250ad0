package main

import "forwardtask/cmd/forwardtask-cli/cmd"

func main() {
	cmd.Execute()
}
