package main

import "github.com/alexiusacademia/beamprops/cmd"

func main() {
	cmd.Execute()
}
