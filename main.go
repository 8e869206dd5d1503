package main

import "github.com/zbiljic/aitools/cmd"

func main() {
	cmd.Execute()
}
