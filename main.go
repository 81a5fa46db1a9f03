package main

import "data-verifier/cmd"

func main() {
	cmd.Execute()
}
