package main

import "github.com/jsphweid/fretforge/cmd"

func main() {
	cmd.Execute()
}
