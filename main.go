package main

import "ti99tape/cmd"

func main() {
	cmd.Execute()
}
