package main

import "github.com/brogergvhs/se8/cmd"

func main() {
	cmd.Execute()
}
