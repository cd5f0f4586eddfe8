package main

import "abfahrt/cmd"

func main() {
	cmd.Execute()
}
