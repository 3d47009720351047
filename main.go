package main

import "github.com/treeflip/treeflip/cmd"

func main() {
	cmd.Execute()
}
