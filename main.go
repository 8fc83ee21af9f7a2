package main

import "safetravelbuddy/cmd"

func main() {
	cmd.Execute()
}
