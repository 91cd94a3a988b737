package main

import "github.com/go-arrower/recordstore/cmd"

func main() {
	cmd.Execute()
}
