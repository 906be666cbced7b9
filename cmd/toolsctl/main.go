package main

import "github.com/sbilibin2017/gw-tools-directory/cmd/toolsctl/commands"

func main() {
	commands.Execute()
}
