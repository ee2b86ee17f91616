package main

import "shelf-cli/cmd"

func main() {
	cmd.Execute()
}
